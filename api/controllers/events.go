package controllers

import (
	"context"
	"net/http"

	"github.com/farmshop-si/farmshop-backend/api/responses"
	"github.com/farmshop-si/farmshop-backend/api/validators"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	pkgerrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

// PageEventPublisher covers the storefront-initiated analytics events.
// Cart and checkout events are emitted server-side, never through this
// endpoint.
type PageEventPublisher interface {
	PageView(ctx context.Context, cartToken, path, locale string)
}

type ingestEventRequest struct {
	Type   string `json:"type" validate:"required"`
	Path   string `json:"path" validate:"required,max=500"`
	Locale string `json:"locale" validate:"max=5"`
}

// IngestEvent accepts a storefront analytics beacon. The response is always
// accepted; the publisher drops events itself when the stats flag is off.
func IngestEvent(events PageEventPublisher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ingestEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		eventType := enums.StorefrontEventType(payload.Type)
		if eventType != enums.StorefrontEventPageView {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unsupported event type").WithDetails(map[string]any{"type": payload.Type}))
			return
		}

		if events != nil {
			events.PageView(r.Context(), r.Header.Get(cartTokenHeader), payload.Path, payload.Locale)
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}
