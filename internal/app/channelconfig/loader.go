package channelconfig

import (
	"context"
	"fmt"
	"os"

	"belco/shopware-widget/internal/models"

	"gopkg.in/yaml.v3"
)

type channelsFile struct {
	Channels map[string]channelEntry `yaml:"channels"`
}

type channelEntry struct {
	ShopID     string `yaml:"shopId"`
	APISecret  string `yaml:"apiSecret"`
	DomainName string `yaml:"domainName"`
}

// LoadFile parses a channels seed file keyed by sales channel id.
func LoadFile(path string) (map[string]models.ChannelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channels file %q: %w", path, err)
	}

	return Parse(data)
}

func Parse(data []byte) (map[string]models.ChannelConfig, error) {
	var file channelsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse channels file: %w", err)
	}

	configs := make(map[string]models.ChannelConfig, len(file.Channels))
	for salesChannelID, entry := range file.Channels {
		config := models.ChannelConfig{}
		setIfPresent(config, models.ConfigKeyShopID, entry.ShopID)
		setIfPresent(config, models.ConfigKeyAPISecret, entry.APISecret)
		setIfPresent(config, models.ConfigKeyDomainName, entry.DomainName)

		configs[salesChannelID] = config
	}

	return configs, nil
}

// Seed writes every parsed channel config into the store.
func (s *ConfigService) Seed(ctx context.Context, configs map[string]models.ChannelConfig) error {
	for salesChannelID, config := range configs {
		if err := s.Set(ctx, salesChannelID, config); err != nil {
			return fmt.Errorf("failed to seed sales channel %s: %w", salesChannelID, err)
		}
	}

	return nil
}

func setIfPresent(config models.ChannelConfig, key, value string) {
	if value != "" {
		config[key] = value
	}
}
