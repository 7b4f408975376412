package types

import "github.com/shopspring/decimal"

// GiftComponent records one resolved preset line attached to a gift cart
// item. The price is informational; the cart item carries the charged total.
type GiftComponent struct {
	OptionID  string          `json:"option_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
}
