package cart

import (
	"errors"
	"testing"

	"belco/shopware-widget/internal/app/seo"
	"belco/shopware-widget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingURLs struct{}

func (failingURLs) ProductURL(productID, domainName string) (string, error) {
	return "", errors.New("no route")
}

func newTestSummarizer() *Summarizer {
	return NewSummarizer(seo.NewURLBuilder("http://localhost:8000"))
}

func TestSummarizeEmptyCartIsAbsent(t *testing.T) {
	summarizer := newTestSummarizer()

	summary, err := summarizer.Summarize(&models.Cart{Token: "t"}, "EUR", models.ChannelConfig{})
	require.NoError(t, err)
	assert.Nil(t, summary)

	summary, err = summarizer.Summarize(nil, "EUR", models.ChannelConfig{})
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestSummarizeCart(t *testing.T) {
	summarizer := newTestSummarizer()
	cart := &models.Cart{
		Token: "t",
		LineItems: []models.LineItem{
			{ID: "0a1b2c", ProductID: "abc", Label: "Mug", Quantity: 2, Price: models.Price{UnitPrice: 9.99}},
			{ID: "ffee00", ProductID: "def", Label: "Plate", Quantity: 1, Price: models.Price{UnitPrice: 15}},
		},
		Price: models.CartPrice{TotalPrice: 34.98, NetPrice: 29.39},
	}
	config := models.ChannelConfig{models.ConfigKeyDomainName: "shop.example"}

	summary, err := summarizer.Summarize(cart, "EUR", config)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 34.98, summary.Total)
	assert.Equal(t, 29.39, summary.Subtotal)
	assert.Equal(t, "EUR", summary.Currency)
	require.Len(t, summary.Items, 2)

	assert.Equal(t, models.CartItemSummary{
		ID:       0,
		Name:     "Mug",
		Price:    9.99,
		URL:      "https://shop.example/detail/abc",
		Quantity: 2,
	}, summary.Items[0])

	for _, item := range summary.Items {
		assert.Zero(t, item.ID)
	}
}

func TestSummarizeWithoutDomainKeepsBaseURL(t *testing.T) {
	summarizer := newTestSummarizer()
	cart := &models.Cart{LineItems: []models.LineItem{{ID: "0a1b2c", Label: "Mug", Quantity: 1}}}

	summary, err := summarizer.Summarize(cart, "USD", models.ChannelConfig{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/detail/0a1b2c", summary.Items[0].URL)
}

func TestSummarizePropagatesURLErrors(t *testing.T) {
	summarizer := NewSummarizer(failingURLs{})
	cart := &models.Cart{LineItems: []models.LineItem{{ID: "0a1b2c", ProductID: "abc"}}}

	_, err := summarizer.Summarize(cart, "EUR", models.ChannelConfig{})
	assert.Error(t, err)
}
