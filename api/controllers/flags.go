package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/farmshop-si/farmshop-backend/api/responses"
	pkgerrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/flags"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

type publicFlagView struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// PublicFlags returns the effective id/enabled pairs the storefront consumes.
// Names, categories and defaults stay on the admin surface.
func PublicFlags(registry *flags.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := registry.List(r.Context())
		views := make([]publicFlagView, 0, len(list))
		for _, flag := range list {
			views = append(views, publicFlagView{ID: flag.ID, Enabled: flag.Enabled})
		}
		responses.WriteSuccess(w, views)
	}
}

// AdminListFlags returns every flag with its effective state.
func AdminListFlags(registry *flags.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
			responses.WriteSuccess(w, registry.ByCategory(r.Context(), category))
			return
		}
		responses.WriteSuccess(w, registry.List(r.Context()))
	}
}

// AdminToggleFlag flips one flag and returns the full updated table.
func AdminToggleFlag(registry *flags.Registry, logg *logger.Logger) http.HandlerFunc {
	return mutateFlag(registry, logg, registry.Toggle)
}

// AdminEnableFlag switches one flag on.
func AdminEnableFlag(registry *flags.Registry, logg *logger.Logger) http.HandlerFunc {
	return mutateFlag(registry, logg, registry.Enable)
}

// AdminDisableFlag switches one flag off.
func AdminDisableFlag(registry *flags.Registry, logg *logger.Logger) http.HandlerFunc {
	return mutateFlag(registry, logg, registry.Disable)
}

// AdminResetFlags restores every flag to its compiled default.
func AdminResetFlags(registry *flags.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := registry.Reset(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func mutateFlag(registry *flags.Registry, logg *logger.Logger, apply func(ctx context.Context, id string) ([]flags.FeatureFlag, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "flag id is required"))
			return
		}

		list, err := apply(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
