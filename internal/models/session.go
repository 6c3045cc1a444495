package models

// SalesChannelContext is the per-visitor storefront session.
type SalesChannelContext struct {
	Token          string    `json:"token"`
	SalesChannelID string    `json:"salesChannelId"`
	CurrencyISO    string    `json:"currencyIso"`
	Customer       *Customer `json:"customer,omitempty"`
}
