package checkout

import (
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput is the validated checkout submission.
type PlaceOrderInput struct {
	CartToken     string
	PaymentMethod enums.PaymentMethod
	Pickup        bool

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	Note            string
}

// OrderView is the checkout result returned to the storefront.
type OrderView struct {
	Number        string              `json:"number"`
	Status        enums.OrderStatus   `json:"status"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	ShippingFee   decimal.Decimal     `json:"shipping_fee"`
	Total         decimal.Decimal     `json:"total"`
	UPNReference  *string             `json:"upn_reference,omitempty"`
	UPNPayload    string              `json:"upn_payload,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func toOrderView(order *models.Order, upnPayload string) OrderView {
	return OrderView{
		Number:        order.Number,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Total:         order.Total,
		UPNReference:  order.UPNReference,
		UPNPayload:    upnPayload,
		CreatedAt:     order.CreatedAt,
	}
}
