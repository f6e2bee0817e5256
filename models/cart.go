package models

// CartItem is a marketplace product line in the checkout request.
type CartItem struct {
	ProductID string `json:"productId"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// CartTotal is the marketplace checkout breakdown. It shares nothing with the
// trip booking calculator.
type CartTotal struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}
