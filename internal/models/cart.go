package models

type Price struct {
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

type CartPrice struct {
	TotalPrice float64 `json:"totalPrice"`
	NetPrice   float64 `json:"netPrice"`
}

type LineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Label     string `json:"label"`
	Quantity  int    `json:"quantity"`
	Price     Price  `json:"price"`
}

type Cart struct {
	Token     string     `json:"token"`
	LineItems []LineItem `json:"lineItems"`
	Price     CartPrice  `json:"price"`
}

// CartSummary is the cart section of the widget payload.
type CartSummary struct {
	Total    float64           `json:"total"`
	Subtotal float64           `json:"subtotal"`
	Currency string            `json:"currency"`
	Items    []CartItemSummary `json:"items"`
}

// CartItemSummary describes one line item. ID is always 0: line item ids are
// hex strings and the widget expects a number.
type CartItemSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
	Quantity int     `json:"quantity"`
}
