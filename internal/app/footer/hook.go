package footer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"belco/shopware-widget/internal/app/customer"
	"belco/shopware-widget/internal/app/events"
	"belco/shopware-widget/internal/app/widget"
	"belco/shopware-widget/internal/models"
)

const EventPageletLoaded = "footer.pagelet.loaded"

type ConfigStore interface {
	Get(ctx context.Context, salesChannelID string) (models.ChannelConfig, error)
}

type CartStore interface {
	GetCart(ctx context.Context, token string) (*models.Cart, error)
}

type CartSummarizer interface {
	Summarize(cart *models.Cart, currencyISO string, config models.ChannelConfig) (*models.CartSummary, error)
}

type OrderAggregator interface {
	Aggregate(ctx context.Context, customerID string) (*models.OrderAggregate, error)
}

type Hook struct {
	configs    ConfigStore
	carts      CartStore
	summarizer CartSummarizer
	orders     OrderAggregator
	logger     *slog.Logger
}

func NewHook(configs ConfigStore, carts CartStore, summarizer CartSummarizer, orders OrderAggregator, logger *slog.Logger) *Hook {
	return &Hook{
		configs:    configs,
		carts:      carts,
		summarizer: summarizer,
		orders:     orders,
		logger:     logger,
	}
}

func (h *Hook) SubscribedEvents() map[string]events.Handler {
	return map[string]events.Handler{
		EventPageletLoaded: func(ctx context.Context, event any) error {
			footerEvent, ok := event.(*PageletLoadedEvent)
			if !ok {
				return fmt.Errorf("unexpected event type %T", event)
			}

			return h.OnPageletLoaded(ctx, footerEvent)
		},
	}
}

// OnPageletLoaded assigns the widget config and shop id to the footer. With
// an incomplete channel config it logs the missing keys and assigns nothing.
func (h *Hook) OnPageletLoaded(ctx context.Context, event *PageletLoadedEvent) error {
	salesContext := event.SalesContext

	config, err := h.configs.Get(ctx, salesContext.SalesChannelID)
	if err != nil {
		return err
	}

	if err := Validate(salesContext.SalesChannelID, config); err != nil {
		var missingErr *MissingConfigError
		if errors.As(err, &missingErr) {
			h.logger.Error(missingErr.Error(),
				"salesChannelId", missingErr.SalesChannelID,
				"missing", missingErr.Missing,
			)
			return nil
		}

		return err
	}

	widgetConfig, err := h.WidgetConfig(ctx, salesContext, config)
	if err != nil {
		return err
	}

	event.Pagelet.Assign(map[string]string{
		VarWidgetConfig: widgetConfig,
		VarShopID:       config.ShopID(),
	})

	return nil
}

// WidgetConfig builds the serialized widget payload for the session.
func (h *Hook) WidgetConfig(ctx context.Context, salesContext *models.SalesChannelContext, config models.ChannelConfig) (string, error) {
	profile := customer.Extract(salesContext)

	var orders *models.OrderAggregate
	if profile != nil {
		aggregate, err := h.orders.Aggregate(ctx, profile.ID)
		if err != nil {
			return "", err
		}
		orders = aggregate
	}

	cart, err := h.carts.GetCart(ctx, salesContext.Token)
	if err != nil {
		return "", err
	}

	summary, err := h.summarizer.Summarize(cart, salesContext.CurrencyISO, config)
	if err != nil {
		return "", err
	}

	return widget.Compose(config, summary, profile, orders)
}
