package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/farmshop-si/farmshop-backend/api/responses"
	"github.com/farmshop-si/farmshop-backend/api/validators"
	checkoutsvc "github.com/farmshop-si/farmshop-backend/internal/checkout"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	pkgerrors "github.com/farmshop-si/farmshop-backend/pkg/errors"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

type placeOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	Pickup        bool   `json:"pickup"`

	CustomerName  string `json:"customer_name" validate:"required,max=200"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"max=40"`

	ShippingAddress string `json:"shipping_address" validate:"required,max=300"`
	ShippingCity    string `json:"shipping_city" validate:"required,max=100"`
	ShippingZip     string `json:"shipping_zip" validate:"required,max=10"`
	Note            string `json:"note" validate:"max=1000"`
}

// PlaceOrder turns the active cart into an order.
func PlaceOrder(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), checkoutsvc.PlaceOrderInput{
			CartToken:       r.Header.Get(cartTokenHeader),
			PaymentMethod:   enums.PaymentMethod(strings.ToLower(strings.TrimSpace(payload.PaymentMethod))),
			Pickup:          payload.Pickup,
			CustomerName:    validators.SanitizeString(payload.CustomerName, 200),
			CustomerEmail:   validators.SanitizeString(payload.CustomerEmail, 200),
			CustomerPhone:   validators.SanitizeString(payload.CustomerPhone, 40),
			ShippingAddress: validators.SanitizeString(payload.ShippingAddress, 300),
			ShippingCity:    validators.SanitizeString(payload.ShippingCity, 100),
			ShippingZip:     validators.SanitizeString(payload.ShippingZip, 10),
			Note:            validators.SanitizeString(payload.Note, 1000),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// GetOrder returns an order confirmation by number.
func GetOrder(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := strings.TrimSpace(chi.URLParam(r, "number"))
		if number == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order number is required"))
			return
		}

		order, err := svc.GetOrder(r.Context(), number)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
