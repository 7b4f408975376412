package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents one catalog listing. Name holds the Slovenian base
// name; the locale variants are optional translations.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug        string          `gorm:"column:slug;not null;uniqueIndex"`
	Name        string          `gorm:"column:name;not null"`
	NameEN      *string         `gorm:"column:name_en"`
	NameDE      *string         `gorm:"column:name_de"`
	NameIT      *string         `gorm:"column:name_it"`
	Description *string         `gorm:"column:description"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	Position    int             `gorm:"column:position;not null;default:0"`
	Options     []PackageOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
