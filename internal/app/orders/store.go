package orders

import (
	"context"
	"database/sql"
	"fmt"

	"belco/shopware-widget/internal/models"

	_ "github.com/lib/pq"
)

const aggregationQuery = `SELECT SUM(o.amount_total), MAX(o.order_date_time), COUNT(o.id)
	FROM "order" o
	JOIN order_customer oc ON oc.order_id = o.id
	WHERE oc.customer_id = $1`

// PostgresStorage reads order history from the shop database.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// SearchAggregations returns the total spent, latest order time and order
// count for customerID. It returns nil when the query yields no row.
func (s *PostgresStorage) SearchAggregations(ctx context.Context, customerID string) (*models.OrderAggregations, error) {
	row := s.db.QueryRowContext(ctx, aggregationQuery, customerID)

	var (
		totalSpent sql.NullFloat64
		lastOrder  sql.NullTime
		orderCount sql.NullInt64
	)
	err := row.Scan(&totalSpent, &lastOrder, &orderCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders for customer %s: %w", customerID, err)
	}

	var aggregations models.OrderAggregations
	if totalSpent.Valid {
		aggregations.TotalSpent = &totalSpent.Float64
	}
	if lastOrder.Valid {
		aggregations.LastOrder = &lastOrder.Time
	}
	if orderCount.Valid {
		aggregations.OrderCount = &orderCount.Int64
	}

	return &aggregations, nil
}
