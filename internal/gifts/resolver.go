package gifts

import (
	"strings"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
)

// ResolvedLine is one preset entry matched against the live catalog. Lines
// exist only when both the product and one of its options matched.
type ResolvedLine struct {
	Product  models.Product
	Option   models.PackageOption
	Quantity int
}

// Resolve matches a package's preset definitions against the catalog. The
// output preserves the preset table's order, not catalog order, and entries
// whose product or option found no match are dropped entirely.
//
// The catalog must be fully loaded with options attached; Resolve is a pure
// function of (catalog snapshot, package id) and holds no state of its own.
func Resolve(packageID int, products []models.Product) []ResolvedLine {
	defs := presetTable[packageID]
	lines := make([]ResolvedLine, 0, len(defs))
	for _, def := range defs {
		product, ok := matchProduct(products, def.ProductName)
		if !ok {
			continue
		}
		option, ok := matchOption(product.Options, def.OptionTextContains)
		if !ok {
			continue
		}
		lines = append(lines, ResolvedLine{
			Product:  product,
			Option:   option,
			Quantity: def.Quantity,
		})
	}
	return lines
}

// matchProduct scans the catalog in order and returns the first product any
// of whose localized names contains needle, case-insensitively.
func matchProduct(products []models.Product, needle string) (models.Product, bool) {
	target := strings.ToLower(needle)
	for _, product := range products {
		for _, name := range localizedNames(product) {
			if strings.Contains(strings.ToLower(name), target) {
				return product, true
			}
		}
	}
	return models.Product{}, false
}

func localizedNames(product models.Product) []string {
	names := []string{product.Name}
	for _, variant := range []*string{product.NameEN, product.NameDE, product.NameIT} {
		if variant != nil {
			names = append(names, *variant)
		}
	}
	return names
}

// matchOption scans options in stored order and returns the first whose
// combined text contains needle, case-insensitively. Matching is substring
// based, so a needle like "0,5" also accepts "0,55". Decimal commas in the
// stored text are matched verbatim and must never be normalized to periods.
func matchOption(options []models.PackageOption, needle string) (models.PackageOption, bool) {
	target := strings.ToLower(needle)
	for _, option := range options {
		if strings.Contains(strings.ToLower(optionText(option)), target) {
			return option, true
		}
	}
	return models.PackageOption{}, false
}

// optionText joins description, weight, and unit with single spaces, skipping
// absent fields.
func optionText(option models.PackageOption) string {
	parts := make([]string, 0, 3)
	if option.Description != "" {
		parts = append(parts, option.Description)
	}
	if option.Weight != nil && *option.Weight != "" {
		parts = append(parts, *option.Weight)
	}
	if option.Unit != nil && *option.Unit != "" {
		parts = append(parts, *option.Unit)
	}
	return strings.Join(parts, " ")
}
