// Package main implements a standalone seed script that populates a
// running storefront instance with demo shopper data. It drives the
// public HTTP API so everything goes through the normal write path:
// carts get line items across sizes and colors, wishlists get a few
// products each.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// --------------------------------------------------------------------------
// HTTP helpers
// --------------------------------------------------------------------------

func doJSON(method, url, userID string, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return result, nil
}

// --------------------------------------------------------------------------
// Demo data
// --------------------------------------------------------------------------

type cartSeed struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type shopper struct {
	UserID   string
	Cart     []cartSeed
	Wishlist []string
}

func demoShoppers() []shopper {
	return []shopper{
		{
			UserID: "demo-alex",
			Cart: []cartSeed{
				{ProductID: "p1", Quantity: 2, Size: "M", Color: "#FFFFFF"},
				{ProductID: "p3", Quantity: 1, Size: "32"},
			},
			Wishlist: []string{"p9", "p10"},
		},
		{
			UserID: "demo-sam",
			Cart: []cartSeed{
				{ProductID: "p4", Quantity: 1, Size: "S"},
				{ProductID: "p7", Quantity: 1},
				{ProductID: "p4", Quantity: 1, Size: "M"},
			},
			Wishlist: []string{"p2", "p5", "p8"},
		},
		{
			UserID: "demo-riley",
			Cart: []cartSeed{
				{ProductID: "p6", Quantity: 3},
			},
			Wishlist: []string{"p1"},
		},
	}
}

// --------------------------------------------------------------------------
// Main
// --------------------------------------------------------------------------

func main() {
	base := getEnv("STOREFRONT_URL", "http://localhost:8080")

	// Wait for the service to come up.
	if err := waitForHealth(base, 30*time.Second); err != nil {
		log.Fatalf("storefront not reachable at %s: %v", base, err)
	}

	for _, s := range demoShoppers() {
		// Start from a clean slate so the script is re-runnable.
		if _, err := doJSON(http.MethodDelete, base+"/api/v1/cart", s.UserID, nil); err != nil {
			log.Fatalf("clear cart for %s: %v", s.UserID, err)
		}
		if _, err := doJSON(http.MethodDelete, base+"/api/v1/wishlist", s.UserID, nil); err != nil {
			log.Fatalf("clear wishlist for %s: %v", s.UserID, err)
		}

		for _, item := range s.Cart {
			if _, err := doJSON(http.MethodPost, base+"/api/v1/cart/items", s.UserID, item); err != nil {
				log.Fatalf("add cart item for %s: %v", s.UserID, err)
			}
		}
		for _, productID := range s.Wishlist {
			if _, err := doJSON(http.MethodPost, base+"/api/v1/wishlist/"+productID, s.UserID, nil); err != nil {
				log.Fatalf("add wishlist product for %s: %v", s.UserID, err)
			}
		}

		log.Printf("seeded %s: %d cart lines, %d wishlist products",
			s.UserID, len(s.Cart), len(s.Wishlist))
	}

	log.Println("demo data seeded")
}

func waitForHealth(base string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		resp, err := http.Get(base + "/health/ready")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		if time.Now().After(deadline) {
			if err != nil {
				return err
			}
			return fmt.Errorf("health check returned %d", resp.StatusCode)
		}
		time.Sleep(time.Second)
	}
}
