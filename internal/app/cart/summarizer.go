package cart

import (
	"fmt"

	"belco/shopware-widget/internal/models"
)

type URLBuilder interface {
	ProductURL(productID, domainName string) (string, error)
}

type Summarizer struct {
	urls URLBuilder
}

func NewSummarizer(urls URLBuilder) *Summarizer {
	return &Summarizer{
		urls: urls,
	}
}

// Summarize converts cart into the widget's cart section. An empty cart has
// no summary at all.
//
// Product URLs are rewritten onto the channel's domainName; without one they
// keep the storefront base URL.
func (s *Summarizer) Summarize(cart *models.Cart, currencyISO string, config models.ChannelConfig) (*models.CartSummary, error) {
	if cart == nil || len(cart.LineItems) == 0 {
		return nil, nil
	}

	items := make([]models.CartItemSummary, 0, len(cart.LineItems))
	for _, item := range cart.LineItems {
		productURL, err := s.urls.ProductURL(productID(item), config.DomainName())
		if err != nil {
			return nil, fmt.Errorf("failed to build url for line item %s: %w", item.ID, err)
		}

		items = append(items, models.CartItemSummary{
			ID:       0,
			Name:     item.Label,
			Price:    item.Price.UnitPrice,
			URL:      productURL,
			Quantity: item.Quantity,
		})
	}

	return &models.CartSummary{
		Total:    cart.Price.TotalPrice,
		Subtotal: cart.Price.NetPrice,
		Currency: currencyISO,
		Items:    items,
	}, nil
}

func productID(item models.LineItem) string {
	if item.ProductID != "" {
		return item.ProductID
	}

	return item.ID
}
