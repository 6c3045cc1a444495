package handlers

import (
	"log/slog"

	"belco/shopware-widget/internal/app/events"
	"belco/shopware-widget/internal/app/session"
	"belco/shopware-widget/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	HeaderContextToken   = "sw-context-token"
	HeaderSalesChannelID = "sw-sales-channel-id"
	HeaderCurrencyISO    = "sw-currency-iso"
)

type Handlers struct {
	cfg        *config.Config
	cache      *redis.Client
	sessions   *session.StorageService
	dispatcher *events.Dispatcher
	logger     *slog.Logger
}

func NewHandlers(cfg *config.Config, cache *redis.Client, sessions *session.StorageService, dispatcher *events.Dispatcher, logger *slog.Logger) *Handlers {
	return &Handlers{
		cfg:        cfg,
		cache:      cache,
		sessions:   sessions,
		dispatcher: dispatcher,
		logger:     logger,
	}
}
