package models

import (
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/farmshop-si/farmshop-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineItem freezes a cart line at checkout time. Prices and gift
// components are copied, not referenced, so later catalog edits never
// change what the order says was sold.
type OrderLineItem struct {
	ID      uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID uuid.UUID          `gorm:"column:order_id;type:uuid;not null;index"`
	Kind    enums.CartItemKind `gorm:"column:kind;not null;default:'product'"`

	ProductID *uuid.UUID `gorm:"column:product_id;type:uuid"`
	OptionID  *uuid.UUID `gorm:"column:option_id;type:uuid"`

	GiftPackageID *int                  `gorm:"column:gift_package_id"`
	GiftMessage   *string               `gorm:"column:gift_message"`
	Components    []types.GiftComponent `gorm:"column:components;type:jsonb;serializer:json"`

	Name         string          `gorm:"column:name;not null"`
	Quantity     int             `gorm:"column:quantity;not null"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	LineSubtotal decimal.Decimal `gorm:"column:line_subtotal;type:numeric(10,2);not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
