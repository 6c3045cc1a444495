package orders

import (
	"context"

	"belco/shopware-widget/internal/models"
)

type Store interface {
	SearchAggregations(ctx context.Context, customerID string) (*models.OrderAggregations, error)
}

type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{
		store: store,
	}
}

// Aggregate summarizes the order history of customerID. A nil result means
// the store had no aggregation to offer; a customer without orders still gets
// an aggregate with a nil LastOrder.
func (a *Aggregator) Aggregate(ctx context.Context, customerID string) (*models.OrderAggregate, error) {
	aggregations, err := a.store.SearchAggregations(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if aggregations == nil {
		return nil, nil
	}

	aggregate := &models.OrderAggregate{}
	if aggregations.TotalSpent != nil {
		aggregate.TotalSpent = *aggregations.TotalSpent
	}
	if aggregations.OrderCount != nil {
		aggregate.OrderCount = int(*aggregations.OrderCount)
	}
	if aggregations.LastOrder != nil {
		lastOrder := aggregations.LastOrder.Unix()
		aggregate.LastOrder = &lastOrder
	}

	return aggregate, nil
}
