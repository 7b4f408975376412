package models

import (
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/google/uuid"
)

// CartRecord is the session-scoped cart a visitor accumulates lines into.
type CartRecord struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Token     string           `gorm:"column:token;not null;uniqueIndex"`
	Status    enums.CartStatus `gorm:"column:status;not null;default:'active'"`
	Items     []CartItem       `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
