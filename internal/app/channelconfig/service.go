package channelconfig

import (
	"context"
	"fmt"

	"belco/shopware-widget/internal/models"

	"github.com/redis/go-redis/v9"
)

// Namespace is the system config domain the plugin settings live under.
const Namespace = "BelcoShopware.config"

type ConfigService struct {
	cache *redis.Client
}

func NewConfigService(cache *redis.Client) *ConfigService {
	return &ConfigService{
		cache: cache,
	}
}

// Get returns the settings stored for the sales channel. A channel without
// settings yields an empty config, not an error.
func (s *ConfigService) Get(ctx context.Context, salesChannelID string) (models.ChannelConfig, error) {
	values, err := s.cache.HGetAll(ctx, configKey(salesChannelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load config for sales channel %s: %w", salesChannelID, err)
	}

	if values == nil {
		return models.ChannelConfig{}, nil
	}

	return models.ChannelConfig(values), nil
}

func (s *ConfigService) Set(ctx context.Context, salesChannelID string, config models.ChannelConfig) error {
	if len(config) == 0 {
		return nil
	}

	values := make(map[string]any, len(config))
	for key, value := range config {
		values[key] = value
	}

	return s.cache.HSet(ctx, configKey(salesChannelID), values).Err()
}

func (s *ConfigService) Delete(ctx context.Context, salesChannelID string) error {
	return s.cache.Del(ctx, configKey(salesChannelID)).Err()
}

func configKey(salesChannelID string) string {
	return Namespace + ":" + salesChannelID
}
