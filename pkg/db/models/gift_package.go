package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GiftPackage is a fixed-price bundle sold as a single unit. The integer id
// matches the compiled preset table; the bundle contents are resolved against
// the live catalog at read time, never persisted.
type GiftPackage struct {
	ID        int             `gorm:"column:id;primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	NameEN    *string         `gorm:"column:name_en"`
	NameDE    *string         `gorm:"column:name_de"`
	NameIT    *string         `gorm:"column:name_it"`
	BasePrice decimal.Decimal `gorm:"column:base_price;type:numeric(10,2);not null"`
	ImageKey  *string         `gorm:"column:image_key"`
	IsActive  bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
