package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageOption is a purchasable variant of a product. Weight keeps the
// catalog's own formatting, including the comma decimal separator.
type PackageOption struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID   uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index"`
	Description string          `gorm:"column:description;not null"`
	Weight      *string         `gorm:"column:weight"`
	Unit        *string         `gorm:"column:unit"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Position    int             `gorm:"column:position;not null;default:0"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
