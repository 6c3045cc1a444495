package cart

import (
	"context"
	"fmt"
	"time"

	"belco/shopware-widget/internal/models"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"
	cartTTL       = 30 * 24 * time.Hour
)

type StorageService struct {
	cache *redis.Client
}

func NewStorageService(cache *redis.Client) *StorageService {
	return &StorageService{
		cache: cache,
	}
}

// GetCart returns the cart stored for token. A token without a stored cart
// gets a new empty cart.
func (s *StorageService) GetCart(ctx context.Context, token string) (*models.Cart, error) {
	payload, err := s.cache.Get(ctx, cartKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return &models.Cart{Token: token}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", token, err)
	}

	var cart models.Cart
	if err := sonic.ConfigFastest.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", token, err)
	}

	return &cart, nil
}

func (s *StorageService) SaveCart(ctx context.Context, cart *models.Cart) error {
	for i := range cart.LineItems {
		if cart.LineItems[i].ID == "" {
			cart.LineItems[i].ID = newLineItemID()
		}
	}

	payload, err := sonic.ConfigFastest.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", cart.Token, err)
	}

	return s.cache.Set(ctx, cartKeyPrefix+cart.Token, payload, cartTTL).Err()
}

func (s *StorageService) DeleteCart(ctx context.Context, token string) error {
	return s.cache.Del(ctx, cartKeyPrefix+token).Err()
}

// Line item ids are dashless hex uuids.
func newLineItemID() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:])
}
