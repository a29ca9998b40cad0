package domain

// Wishlist is a deduplicated set of product ids for one user. Insertion
// order is preserved so the wishlist page renders items in the order they
// were saved; set semantics are enforced on mutation.
type Wishlist struct {
	UserID     string   `json:"user_id"`
	ProductIDs []string `json:"product_ids"`
}

// Has reports whether the product is in the wishlist.
func (w *Wishlist) Has(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Add inserts the product id if absent. Returns true when the set changed.
func (w *Wishlist) Add(productID string) bool {
	if w.Has(productID) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// Remove deletes the product id if present. Returns true when the set changed.
func (w *Wishlist) Remove(productID string) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle flips membership and returns the new state: true when the product
// is now in the wishlist.
func (w *Wishlist) Toggle(productID string) bool {
	if w.Remove(productID) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// Count returns the cardinality of the set.
func (w *Wishlist) Count() int {
	return len(w.ProductIDs)
}

// Clear empties the set.
func (w *Wishlist) Clear() {
	w.ProductIDs = w.ProductIDs[:0]
}

// Products resolves the wishlist against the catalog, dropping ids that no
// longer resolve. Order follows the wishlist, not the catalog.
func (w *Wishlist) Products(resolve ProductResolver) []Product {
	products := make([]Product, 0, len(w.ProductIDs))
	for _, id := range w.ProductIDs {
		if product, ok := resolve(id); ok {
			products = append(products, product)
		}
	}
	return products
}
