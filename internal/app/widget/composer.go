package widget

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"belco/shopware-widget/internal/models"

	"github.com/bytedance/sonic"
)

// Compose merges the payload sections into the flat widget config and
// encodes it as JSON. Order history and the signature only apply when a
// customer is present.
func Compose(config models.ChannelConfig, cart *models.CartSummary, profile *models.CustomerProfile, orders *models.OrderAggregate) (string, error) {
	payload := models.WidgetPayload{
		ShopID: config.ShopID(),
		Cart:   cart,
	}

	if profile != nil {
		payload.CustomerProfile = profile
		payload.OrderAggregate = orders

		if secret := config.APISecret(); secret != "" {
			payload.Hash = Sign(secret, profile.ID)
		}
	}

	data, err := sonic.ConfigStd.Marshal(&payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode widget config: %w", err)
	}

	return string(data), nil
}

// Sign is the hex HMAC-SHA256 of customerID keyed with secret.
func Sign(secret, customerID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(customerID))
	return hex.EncodeToString(mac.Sum(nil))
}
