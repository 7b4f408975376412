package models

import (
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/farmshop-si/farmshop-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one cart line. Product lines reference an option and carry its
// unit price; gift lines reference a gift package and carry the bundle's
// fixed charged price plus the resolved components snapshot.
type CartItem struct {
	ID     uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID uuid.UUID          `gorm:"column:cart_id;type:uuid;not null;index"`
	Kind   enums.CartItemKind `gorm:"column:kind;not null;default:'product'"`

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
