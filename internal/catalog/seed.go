package catalog

import "github.com/zenithwear/storefront/internal/domain"

func int64Ptr(v int64) *int64    { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int          { return &v }

// SeedProducts returns the built-in Zenith collection. Prices are in minor
// currency units.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Classic White T-Shirt",
			Description: "Premium cotton crew neck tee",
			Price:       799,
			ImageURL:    "/assets/products/white-tshirt.jpg",
			Category:    domain.CategoryMen,
			Brand:       "Zenith",
			IsNew:       true,
			Rating:      floatPtr(4.5),
			Colors:      []string{"#ffffff", "#f3f4f6"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Stock:       intPtr(50),
		},
		{
			ID:          "p2",
			Name:        "Black Hoodie",
			Description: "Comfortable cotton blend hoodie",
			Price:       1999,
			ImageURL:    "/assets/products/black-hoodie.jpg",
			Category:    domain.CategoryMen,
			Brand:       "Zenith",
			Rating:      floatPtr(4.7),
			Colors:      []string{"#000000", "#111827"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Stock:       intPtr(30),
		},
		{
			ID:          "p3",
			Name:        "Blue Denim Jeans",
			Description: "Slim fit stretch denim jeans",
			Price:       2499,
			ImageURL:    "/assets/products/blue-jeans.jpg",
			Category:    domain.CategoryMen,
			Brand:       "Zenith",
			IsNew:       true,
			Rating:      floatPtr(4.4),
			Colors:      []string{"#1e40af", "#1e3a8a"},
			Sizes:       []string{"30", "32", "34", "36"},
			Stock:       intPtr(40),
		},
		{
			ID:          "p4",
			Name:        "Floral Maxi Dress",
			Description: "Elegant summer maxi dress",
			Price:       2299,
			ImageURL:    "/assets/products/floral-maxi-dress.jpg",
			Category:    domain.CategoryWomen,
			Brand:       "Zenith",
			Rating:      floatPtr(4.8),
			Colors:      []string{"#f472b6", "#a855f7", "#3b82f6"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Stock:       intPtr(25),
		},
		{
			ID:          "p5",
			Name:        "Pink Crop Top",
			Description: "Trendy fitted crop top",
			Price:       899,
			ImageURL:    "/assets/products/pink-crop-top.jpg",
			Category:    domain.CategoryWomen,
			Brand:       "Zenith",
			IsNew:       true,
			Rating:      floatPtr(4.3),
			Colors:      []string{"#ec4899", "#f472b6"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Stock:       intPtr(35),
		},
		{
			ID:          "p6",
			Name:        "Black Leather Jacket",
			Description: "Genuine leather jacket with zippers",
			Price:       5999,
			ImageURL:    "/assets/products/black-leather-jacket.jpg",
			Category:    domain.CategoryAccessories,
			Brand:       "Zenith Luxe",
			Rating:      floatPtr(4.9),
			Colors:      []string{"#000000"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Stock:       intPtr(15),
		},
		{
			ID:          "p7",
			Name:        "Grey Sweatshirt",
			Description: "Cozy oversized sweatshirt",
			Price:       1599,
			ImageURL:    "/assets/products/grey-sweatshirt.jpg",
			Category:    domain.CategoryWomen,
			Brand:       "Zenith",
			Rating:      floatPtr(4.6),
			Colors:      []string{"#6b7280", "#9ca3af"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Stock:       intPtr(28),
		},
		{
			ID:          "p8",
			Name:        "Khaki Cargo Pants",
			Description: "Multi-pocket utility pants",
			Price:       1899,
			ImageURL:    "/assets/products/khaki-cargo-pants.jpg",
			Category:    domain.CategoryMen,
			Brand:       "Zenith",
			Rating:      floatPtr(4.2),
			Colors:      []string{"#a3a3a3", "#d6d3d1"},
			Sizes:       []string{"30", "32", "34", "36"},
			Stock:       intPtr(45),
		},
		{
			ID:            "p9",
			Name:          "Red Party Dress",
			Description:   "Elegant evening party dress",
			Price:         2799,
			OriginalPrice: int64Ptr(3499),
			ImageURL:      "/assets/products/red-party-dress.jpg",
			Category:      domain.CategoryWomen,
			Brand:         "Zenith",
			IsNew:         true,
			IsOnSale:      true,
			Rating:        floatPtr(4.7),
			Colors:        []string{"#dc2626", "#ef4444"},
			Sizes:         []string{"XS", "S", "M", "L"},
			Stock:         intPtr(20),
		},
		{
			ID:          "p10",
			Name:        "Navy Blue Blazer",
			Description: "Professional tailored blazer",
			Price:       3999,
			ImageURL:    "/assets/products/navy-blue-blazer.jpg",
			Category:    domain.CategoryMen,
			Brand:       "Zenith",
			Rating:      floatPtr(4.8),
			Colors:      []string{"#1e3a8a", "#1e40af"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Stock:       intPtr(22),
		},
	}
}
