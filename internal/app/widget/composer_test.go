package widget

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"belco/shopware-widget/internal/models"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, payload string) map[string]any {
	t.Helper()

	var fields map[string]any
	require.NoError(t, sonic.UnmarshalString(payload, &fields))
	return fields
}

func testConfig() models.ChannelConfig {
	return models.ChannelConfig{
		models.ConfigKeyShopID:     "s1",
		models.ConfigKeyAPISecret:  "secret",
		models.ConfigKeyDomainName: "shop.example",
	}
}

func testProfile() *models.CustomerProfile {
	return &models.CustomerProfile{
		ID:        "c1",
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Country:   "EUR",
	}
}

func TestComposeGuest(t *testing.T) {
	lastOrder := int64(1700000000)
	orders := &models.OrderAggregate{TotalSpent: 10, LastOrder: &lastOrder, OrderCount: 1}

	payload, err := Compose(testConfig(), nil, nil, orders)
	require.NoError(t, err)

	fields := decode(t, payload)
	assert.Equal(t, map[string]any{"shopId": "s1", "cart": nil}, fields)
}

func TestComposeCustomerWithCartAndOrders(t *testing.T) {
	lastOrder := int64(1700000000)
	cart := &models.CartSummary{
		Total:    19.98,
		Subtotal: 16.79,
		Currency: "EUR",
		Items: []models.CartItemSummary{
			{ID: 0, Name: "Mug", Price: 9.99, URL: "https://shop.example/detail/abc", Quantity: 2},
		},
	}
	orders := &models.OrderAggregate{TotalSpent: 120.5, LastOrder: &lastOrder, OrderCount: 3}

	payload, err := Compose(testConfig(), cart, testProfile(), orders)
	require.NoError(t, err)

	fields := decode(t, payload)
	assert.Equal(t, "s1", fields["shopId"])
	assert.Equal(t, "c1", fields["id"])
	assert.Equal(t, "A", fields["firstName"])
	assert.Equal(t, "EUR", fields["country"])
	assert.Equal(t, false, fields["signedUp"])
	assert.Equal(t, 120.5, fields["totalSpent"])
	assert.Equal(t, float64(1700000000), fields["lastOrder"])
	assert.Equal(t, float64(3), fields["orderCount"])
	assert.Equal(t, Sign("secret", "c1"), fields["hash"])
	assert.NotContains(t, fields, "phoneNumber")

	cartFields := fields["cart"].(map[string]any)
	items := cartFields["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{
		"id":       float64(0),
		"name":     "Mug",
		"price":    9.99,
		"url":      "https://shop.example/detail/abc",
		"quantity": float64(2),
	}, items[0])
}

func TestComposeCustomerWithoutOrderHistory(t *testing.T) {
	payload, err := Compose(testConfig(), nil, testProfile(), &models.OrderAggregate{})
	require.NoError(t, err)

	fields := decode(t, payload)
	assert.Contains(t, fields, "lastOrder")
	assert.Nil(t, fields["lastOrder"])
	assert.Equal(t, float64(0), fields["totalSpent"])
	assert.Equal(t, float64(0), fields["orderCount"])
}

func TestComposeCustomerWithoutAggregation(t *testing.T) {
	payload, err := Compose(testConfig(), nil, testProfile(), nil)
	require.NoError(t, err)

	fields := decode(t, payload)
	assert.NotContains(t, fields, "totalSpent")
	assert.NotContains(t, fields, "lastOrder")
	assert.NotContains(t, fields, "orderCount")
	assert.Contains(t, fields, "hash")
}

func TestComposeWithoutSecretSkipsHash(t *testing.T) {
	config := testConfig()
	delete(config, models.ConfigKeyAPISecret)

	payload, err := Compose(config, nil, testProfile(), nil)
	require.NoError(t, err)

	assert.NotContains(t, decode(t, payload), "hash")
}

func TestComposeIsDeterministic(t *testing.T) {
	cart := &models.CartSummary{Total: 1, Subtotal: 1, Currency: "EUR", Items: []models.CartItemSummary{{Name: "Mug"}}}

	first, err := Compose(testConfig(), cart, testProfile(), &models.OrderAggregate{OrderCount: 1})
	require.NoError(t, err)
	second, err := Compose(testConfig(), cart, testProfile(), &models.OrderAggregate{OrderCount: 1})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSignKeysWithSecret(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("c1"))
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, Sign("secret", "c1"))
	assert.NotEqual(t, expected, Sign("c1", "secret"))
	assert.Len(t, Sign("secret", "c1"), 64)
}
