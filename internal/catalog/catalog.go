package catalog

import (
	"strings"

	"github.com/zenithwear/storefront/internal/domain"
	"github.com/zenithwear/storefront/pkg/slug"
)

// Catalog is the read-only set of purchasable products, fixed at process
// start. It is safe for concurrent reads and is never mutated after New
// returns, so no locking is needed.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
	bySlug   map[string]int
}

// New builds a catalog from the given products, preserving their order.
// Products without a slug get one generated from their name. Later
// duplicates of an id are ignored.
func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}

	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		if p.Slug == "" {
			p.Slug = slug.Generate(p.Name)
		}
		c.byID[p.ID] = len(c.products)
		c.bySlug[p.Slug] = len(c.products)
		c.products = append(c.products, p)
	}

	return c
}

// Default builds the catalog from the built-in Zenith collection.
func Default() *Catalog {
	return New(SeedProducts())
}

// GetByID returns the product with the given id.
func (c *Catalog) GetByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// GetBySlug returns the product with the given slug.
func (c *Catalog) GetBySlug(s string) (domain.Product, bool) {
	i, ok := c.bySlug[s]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Resolve adapts the catalog to the domain.ProductResolver signature used by
// cart and wishlist joins.
func (c *Catalog) Resolve(id string) (domain.Product, bool) {
	return c.GetByID(id)
}

// All returns every product in catalog order. The returned slice is a copy.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Search returns products whose name, brand, or category contains the query,
// case-insensitively. A blank or whitespace-only query yields an empty
// result, not the full catalog. Results keep catalog order; there is no
// relevance ranking.
func (c *Catalog) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Product{}
	}

	matched := make([]domain.Product, 0)
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByCategory returns products in the given category, in catalog order.
func (c *Catalog) FilterByCategory(category string) []domain.Product {
	matched := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByPriceRange returns products whose price falls within [min, max].
// A nil bound is open.
func (c *Catalog) FilterByPriceRange(min, max *int64) []domain.Product {
	matched := make([]domain.Product, 0)
	for _, p := range c.products {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
