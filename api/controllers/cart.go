package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/farmshop-si/farmshop-backend/api/responses"
	"github.com/farmshop-si/farmshop-backend/api/validators"
	cartsvc "github.com/farmshop-si/farmshop-backend/internal/cart"
	pkgerrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

const cartTokenHeader = "X-Cart-Token"

// CartEventPublisher emits the add-to-cart analytics event.
type CartEventPublisher interface {
	AddToCart(ctx context.Context, cartToken string)
}

type addProductRequest struct {
	OptionID string `json:"option_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type addGiftRequest struct {
	PackageID int    `json:"package_id" validate:"required,min=1"`
	Message   string `json:"message" validate:"max=500"`
}

func writeCart(w http.ResponseWriter, view *cartsvc.View) {
	w.Header().Set(cartTokenHeader, view.Token)
	responses.WriteSuccess(w, view)
}

// GetCart returns the cart for the supplied token, minting a fresh cart when
// the token is absent or stale.
func GetCart(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.GetOrCreate(r.Context(), r.Header.Get(cartTokenHeader))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeCart(w, view)
	}
}

// CartAddProduct adds a catalog option line to the cart.
func CartAddProduct(svc *cartsvc.Service, events CartEventPublisher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		optionID, err := uuid.Parse(payload.OptionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid option id"))
			return
		}

		view, err := svc.AddProduct(r.Context(), r.Header.Get(cartTokenHeader), optionID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if events != nil {
			events.AddToCart(r.Context(), view.Token)
		}
		writeCart(w, view)
	}
}

// CartAddGift adds a gift bundle line to the cart.
func CartAddGift(svc *cartsvc.Service, events CartEventPublisher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addGiftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddGift(r.Context(), r.Header.Get(cartTokenHeader), payload.PackageID, payload.Message, localeFromRequest(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if events != nil {
			events.AddToCart(r.Context(), view.Token)
		}
		writeCart(w, view)
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartUpdateItem changes the quantity of an existing line.
func CartUpdateItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "itemID")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateItemQuantity(r.Context(), r.Header.Get(cartTokenHeader), itemID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeCart(w, view)
	}
}

// CartRemoveItem deletes one line from the cart.
func CartRemoveItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "itemID")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		view, err := svc.RemoveItem(r.Context(), r.Header.Get(cartTokenHeader), itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeCart(w, view)
	}
}
