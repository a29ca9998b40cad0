package domain

// Product category constants.
const (
	CategoryWomen       = "women"
	CategoryMen         = "men"
	CategoryAccessories = "accessories"
)

// Product represents a purchasable product in the catalog. Products are
// immutable once the catalog is built.
type Product struct {
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

// ValidCategories returns the set of valid product categories.
func ValidCategories() []string {
	return []string{CategoryWomen, CategoryMen, CategoryAccessories}
}

// IsValidCategory checks whether the given string is a valid category.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// HasSize reports whether the product offers the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the product offers the given color token.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
