package models

import (
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID     uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Number string            `gorm:"column:number;not null;uniqueIndex"`
	Status enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`

	CustomerName  string `gorm:"column:customer_name;not null"`
	CustomerEmail string `gorm:"column:customer_email;not null"`
	CustomerPhone string `gorm:"column:customer_phone"`

	ShippingAddress string `gorm:"column:shipping_address;not null"`
	ShippingCity    string `gorm:"column:shipping_city;not null"`
	ShippingZip     string `gorm:"column:shipping_zip;not null"`
	Note            string `gorm:"column:note"`

	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;not null"`
	UPNReference  *string             `gorm:"column:upn_reference"`

	Subtotal    decimal.Decimal `gorm:"column:subtotal;type:numeric(10,2);not null"`
	ShippingFee decimal.Decimal `gorm:"column:shipping_fee;type:numeric(10,2);not null"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric(10,2);not null"`

	LineItems []OrderLineItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
