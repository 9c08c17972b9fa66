package models

// CartItem is one line in the cart: a product and how many of it.
// A cart holds at most one CartItem per product ID; quantity is always >= 1
// (dropping to zero or below removes the line instead).
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// CartSnapshot is an immutable view of the cart handed to subscribers and
// API responses. Totals are derived from Items at snapshot time and are
// never stored separately, so they cannot drift from the item list.
type CartSnapshot struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int        `json:"totalPrice"` // euro cents
	Animating  bool       `json:"animating"`
}
