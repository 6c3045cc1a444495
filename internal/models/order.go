package models

import "time"

// OrderAggregations holds the raw aggregation values as returned by the order
// store. Any of them may be NULL.
type OrderAggregations struct {
	TotalSpent *float64
	LastOrder  *time.Time
	OrderCount *int64
}

// OrderAggregate is the order history section of the widget payload.
// LastOrder is a Unix timestamp, nil when the customer has never ordered.
type OrderAggregate struct {
	TotalSpent float64 `json:"totalSpent"`
	LastOrder  *int64  `json:"lastOrder"`
	OrderCount int     `json:"orderCount"`
}
