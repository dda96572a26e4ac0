package domain

// CartItem is a value snapshot of a Product taken when it was added to a
// cart, plus the ordered quantity (never below 1).
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the snapshot price times the quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Clone returns a deep copy of the item.
func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), Quantity: i.Quantity}
}
