package catalog

import (
	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OptionView is a storefront-facing package option.
type OptionView struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description,omitempty"`
	Weight      *string         `json:"weight,omitempty"`
	Unit        *string         `json:"unit,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// ProductView is a storefront-facing product with the name already picked
// for the requested locale.
type ProductView struct {
	ID          uuid.UUID    `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Options     []OptionView `json:"options"`
}

func toProductView(product models.Product, locale enums.Locale) ProductView {
	options := make([]OptionView, 0, len(product.Options))
	for _, option := range product.Options {
		options = append(options, OptionView{
			ID:          option.ID,
			Description: option.Description,
			Weight:      option.Weight,
			Unit:        option.Unit,
			Price:       option.Price,
		})
	}
	description := ""
	if product.Description != nil {
		description = *product.Description
	}
	return ProductView{
		ID:          product.ID,
		Slug:        product.Slug,
		Name:        localizedName(product, locale),
		Description: description,
		Options:     options,
	}
}

func localizedName(product models.Product, locale enums.Locale) string {
	var variant *string
	switch locale {
	case enums.LocaleEN:
		variant = product.NameEN
	case enums.LocaleDE:
		variant = product.NameDE
	case enums.LocaleIT:
		variant = product.NameIT
	}
	if variant != nil && *variant != "" {
		return *variant
	}
	return product.Name
}
