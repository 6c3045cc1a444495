package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"belco/shopware-widget/internal/models"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 7 * 24 * time.Hour
)

var ErrSessionNotFound = errors.New("session not found")

type StorageService struct {
	cache *redis.Client
}

func NewStorageService(cache *redis.Client) *StorageService {
	return &StorageService{
		cache: cache,
	}
}

func (s *StorageService) Load(ctx context.Context, token string) (*models.SalesChannelContext, error) {
	payload, err := s.cache.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", token, err)
	}

	var salesContext models.SalesChannelContext
	if err := sonic.ConfigFastest.Unmarshal(payload, &salesContext); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", token, err)
	}

	return &salesContext, nil
}

func (s *StorageService) Save(ctx context.Context, salesContext *models.SalesChannelContext) error {
	payload, err := sonic.ConfigFastest.Marshal(salesContext)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", salesContext.Token, err)
	}

	return s.cache.Set(ctx, sessionKeyPrefix+salesContext.Token, payload, sessionTTL).Err()
}

// New starts an anonymous session with a fresh token.
func (s *StorageService) New(ctx context.Context, salesChannelID, currencyISO string) (*models.SalesChannelContext, error) {
	salesContext := &models.SalesChannelContext{
		Token:          uuid.NewString(),
		SalesChannelID: salesChannelID,
		CurrencyISO:    currencyISO,
	}

	if err := s.Save(ctx, salesContext); err != nil {
		return nil, err
	}

	return salesContext, nil
}
