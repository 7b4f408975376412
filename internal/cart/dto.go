package cart

import (
	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/farmshop-si/farmshop-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemView is one cart line as returned to the storefront.
type ItemView struct {
	ID            uuid.UUID             `json:"id"`
	Kind          enums.CartItemKind    `json:"kind"`
	Name          string                `json:"name"`
	ProductID     *uuid.UUID            `json:"product_id,omitempty"`
	OptionID      *uuid.UUID            `json:"option_id,omitempty"`
	GiftPackageID *int                  `json:"gift_package_id,omitempty"`
	GiftMessage   *string               `json:"gift_message,omitempty"`
	Components    []types.GiftComponent `json:"components,omitempty"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     decimal.Decimal       `json:"unit_price"`
	LineSubtotal  decimal.Decimal       `json:"line_subtotal"`
}

// View is the full cart payload.
type View struct {
	Token    string           `json:"token"`
	Status   enums.CartStatus `json:"status"`
	Items    []ItemView       `json:"items"`
	Subtotal decimal.Decimal  `json:"subtotal"`
}

func toView(cart *models.CartRecord) View {
	items := make([]ItemView, 0, len(cart.Items))
	subtotal := decimal.Zero
	for _, item := range cart.Items {
		items = append(items, ItemView{
			ID:            item.ID,
			Kind:          item.Kind,
			Name:          item.Name,
			ProductID:     item.ProductID,
			OptionID:      item.OptionID,
			GiftPackageID: item.GiftPackageID,
			GiftMessage:   item.GiftMessage,
			Components:    item.Components,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			LineSubtotal:  item.LineSubtotal,
		})
		subtotal = subtotal.Add(item.LineSubtotal)
	}
	return View{
		Token:    cart.Token,
		Status:   cart.Status,
		Items:    items,
		Subtotal: subtotal,
	}
}
