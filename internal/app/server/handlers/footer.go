package handlers

import (
	"context"
	"errors"
	"net/http"

	"belco/shopware-widget/internal/app/footer"
	"belco/shopware-widget/internal/app/session"
	"belco/shopware-widget/internal/models"

	"github.com/bytedance/sonic"
)

// GetFooter renders the footer pagelet variables for the caller's session.
func (h *Handlers) GetFooter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	salesContext, err := h.resolveSession(ctx, r)
	if err != nil {
		h.logger.Error("Error resolving session", "path", r.URL.Path, "error", err)
		http.Error(w, "failed to resolve session", http.StatusInternalServerError)
		return
	}

	pagelet := footer.NewPagelet()
	event := &footer.PageletLoadedEvent{SalesContext: salesContext, Pagelet: pagelet}

	if err := h.dispatcher.Dispatch(ctx, footer.EventPageletLoaded, event); err != nil {
		h.logger.Error("Error rendering footer", "path", r.URL.Path, "salesChannelId", salesContext.SalesChannelID, "error", err)
		http.Error(w, "failed to render footer", http.StatusInternalServerError)
		return
	}

	data, err := sonic.Marshal(pagelet.Vars())
	if err != nil {
		h.logger.Error("Error encoding response", "error", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContextToken, salesContext.Token)
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *Handlers) resolveSession(ctx context.Context, r *http.Request) (*models.SalesChannelContext, error) {
	if token := r.Header.Get(HeaderContextToken); token != "" {
		salesContext, err := h.sessions.Load(ctx, token)
		if err == nil {
			return salesContext, nil
		}
		if !errors.Is(err, session.ErrSessionNotFound) {
			return nil, err
		}
	}

	salesChannelID := r.Header.Get(HeaderSalesChannelID)
	if salesChannelID == "" {
		salesChannelID = h.cfg.Storefront.DefaultSalesChannelID
	}

	currencyISO := r.Header.Get(HeaderCurrencyISO)
	if currencyISO == "" {
		currencyISO = h.cfg.Storefront.DefaultCurrency
	}

	return h.sessions.New(ctx, salesChannelID, currencyISO)
}
