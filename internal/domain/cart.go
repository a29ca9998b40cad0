package domain

// LineItem is one (product, variant) entry in the cart with a quantity.
// The JSON layout doubles as the persisted storage format, so the field
// names match the blob written by the legacy storefront: a line item is
// `{id, productId, quantity, size?, color?}`. An empty Size or Color means
// the variant dimension was not chosen.
type LineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Cart holds the ordered line items for one user. The product references are
// weak: a line item may point at a product the catalog no longer carries, and
// such items are only filtered out when detailed views are computed.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []LineItem `json:"items"`
}

// DetailedLine joins a line item with its resolved catalog product.
type DetailedLine struct {
	LineItem
	Product Product `json:"product"`
}

// ProductResolver looks up a product by id, reporting whether it exists.
type ProductResolver func(id string) (Product, bool)

// FindLine returns the index of the line item matching the exact
// (productID, size, color) combination, or -1. Empty size/color must match
// empty size/color; a selection with a size is a different line than one
// without.
func (c *Cart) FindLine(productID, size, color string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size && c.Items[i].Color == color {
			return i
		}
	}
	return -1
}

// FindLineByID returns the index of the line item with the given id, or -1.
func (c *Cart) FindLineByID(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// TotalQuantity returns the sum of quantities across all line items,
// including items whose product no longer resolves.
func (c *Cart) TotalQuantity() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// DetailedItems joins each line item with its resolved product. Line items
// whose product does not resolve are dropped from the view; dangling
// references are tolerated in the stored collection but never surfaced.
func (c *Cart) DetailedItems(resolve ProductResolver) []DetailedLine {
	detailed := make([]DetailedLine, 0, len(c.Items))
	for _, item := range c.Items {
		product, ok := resolve(item.ProductID)
		if !ok {
			continue
		}
		detailed = append(detailed, DetailedLine{LineItem: item, Product: product})
	}
	return detailed
}

// TotalPrice returns the sum of quantity times current product price over all
// resolvable line items. Prices are read live from the catalog, not
// snapshotted at add time.
func (c *Cart) TotalPrice(resolve ProductResolver) int64 {
	var total int64
	for _, item := range c.Items {
		product, ok := resolve(item.ProductID)
		if !ok {
			continue
		}
		total += product.Price * int64(item.Quantity)
	}
	return total
}
