package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/zenithwear/storefront/pkg/errors"
	"github.com/zenithwear/storefront/pkg/httputil"
	"github.com/zenithwear/storefront/pkg/pagination"

	"github.com/zenithwear/storefront/internal/catalog"
	"github.com/zenithwear/storefront/internal/domain"
)

// CatalogHandler handles HTTP requests for catalog endpoints.
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(cat *catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		logger:  logger,
	}
}

// ProductResponse is a catalog product in API responses.
type ProductResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand,omitempty"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsOnSale      bool     `json:"is_on_sale,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse(p)
}

func toProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// ListProducts handles GET /api/v1/catalog/products
//
// Optional query parameters: category, min_price, max_price, page, page_size.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minPrice, err := parsePriceParam(q.Get("min_price"))
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("min_price must be an integer"), h.logger)
		return
	}
	maxPrice, err := parsePriceParam(q.Get("max_price"))
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("max_price must be an integer"), h.logger)
		return
	}

	var products []domain.Product
	if category := q.Get("category"); category != "" {
		if !domain.IsValidCategory(category) {
			httputil.WriteError(w, r, apperrors.InvalidInput("unknown category: "+category), h.logger)
			return
		}
		products = filterByPrice(h.catalog.FilterByCategory(category), minPrice, maxPrice)
	} else {
		products = h.catalog.FilterByPriceRange(minPrice, maxPrice)
	}

	params := pagination.FromRequest(r)
	page := pagination.Slice(toProductResponses(products), params)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: pagination.NewResult(page, len(products), params),
	})
}

// GetProduct handles GET /api/v1/catalog/products/{id}
//
// The id segment matches by product ID first, then by slug.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, ok := h.catalog.GetByID(id)
	if !ok {
		product, ok = h.catalog.GetBySlug(id)
	}
	if !ok {
		httputil.WriteError(w, r, apperrors.NotFound("product", id), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toProductResponse(product)})
}

// SearchProducts handles GET /api/v1/catalog/search?q=
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results := h.catalog.Search(query)

	params := pagination.FromRequest(r)
	page := pagination.Slice(toProductResponses(results), params)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: pagination.NewResult(page, len(results), params),
	})
}

func parsePriceParam(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func filterByPrice(products []domain.Product, min, max *int64) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}
