package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/farmshop-si/farmshop-backend/api/responses"
	"github.com/farmshop-si/farmshop-backend/internal/gifts"
	pkgerrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/flags"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
	"github.com/farmshop-si/farmshop-backend/pkg/types"
)

// FlagChecker gates storefront surfaces on feature flags.
type FlagChecker interface {
	IsEnabled(ctx context.Context, id string) bool
}

// GiftEventPublisher emits the bundle-viewed analytics event.
type GiftEventPublisher interface {
	GiftBundleViewed(ctx context.Context, cartToken string, packageID int)
}

type giftPackageSummary struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	ImageKey  *string         `json:"image_key,omitempty"`
}

type giftPackageDetail struct {
	giftPackageSummary
	Components []types.GiftComponent `json:"components"`
	Total      decimal.Decimal       `json:"total"`
}

// ListGiftPackages returns the active gift bundles.
func ListGiftPackages(svc *gifts.Service, checker FlagChecker, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checker.IsEnabled(r.Context(), flags.FlagGiftPackages) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "gift packages unavailable"))
			return
		}

		packages, err := svc.ListPackages(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]giftPackageSummary, 0, len(packages))
		for _, pkg := range packages {
			out = append(out, giftPackageSummary{
				ID:        pkg.ID,
				Name:      pkg.Name,
				BasePrice: pkg.BasePrice,
				ImageKey:  pkg.ImageKey,
			})
		}
		responses.WriteSuccess(w, out)
	}
}

// GetGiftPackage resolves one bundle against the live catalog. The message
// query parameter lets the storefront preview the charged total before the
// bundle lands in a cart.
func GetGiftPackage(svc *gifts.Service, checker FlagChecker, events GiftEventPublisher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checker.IsEnabled(r.Context(), flags.FlagGiftPackages) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "gift packages unavailable"))
			return
		}

		packageID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "gift package id must be numeric"))
			return
		}

		resolved, err := svc.ResolvePackage(r.Context(), packageID, r.URL.Query().Get("message"), localeFromRequest(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if events != nil {
			events.GiftBundleViewed(r.Context(), r.Header.Get(cartTokenHeader), packageID)
		}

		responses.WriteSuccess(w, giftPackageDetail{
			giftPackageSummary: giftPackageSummary{
				ID:        resolved.Package.ID,
				Name:      resolved.Package.Name,
				BasePrice: resolved.Package.BasePrice,
				ImageKey:  resolved.Package.ImageKey,
			},
			Components: resolved.Components,
			Total:      resolved.Total,
		})
	}
}
