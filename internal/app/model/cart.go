package model

// ItemKey identifies one cart line. The same product in two colors or two
// sizes occupies two lines.
type ItemKey struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// LineItem is one line of the cart, a snapshot of the product at the time
// it was added plus the chosen variant and quantity.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // VND
	Image    string `json:"image"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

// Key returns the line's identity key used for merge and removal.
func (i LineItem) Key() ItemKey {
	return ItemKey{ProductID: i.ID, Color: i.Color, Size: i.Size}
}

// Subtotal returns price times quantity for this line.
func (i LineItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
