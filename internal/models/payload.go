package models

// WidgetPayload is the flat object handed to the widget. The embedded
// sections are merged into the top level and vanish when nil.
type WidgetPayload struct {
	ShopID string       `json:"shopId"`
	Cart   *CartSummary `json:"cart"`
	*CustomerProfile
	*OrderAggregate
	Hash string `json:"hash,omitempty"`
}
