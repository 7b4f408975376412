package gifts

import (
	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/farmshop-si/farmshop-backend/pkg/types"
)

// BuildCartComponents converts resolved lines into the component snapshot
// stored on a gift cart item. Component prices carry the option price for
// display; the item's charged price is computed separately from the package
// base price.
func BuildCartComponents(lines []ResolvedLine, locale enums.Locale) []types.GiftComponent {
	components := make([]types.GiftComponent, 0, len(lines))
	for _, line := range lines {
		components = append(components, types.GiftComponent{
			OptionID:  line.Option.ID.String(),
			ProductID: line.Product.ID.String(),
			Quantity:  line.Quantity,
			Price:     line.Option.Price,
			Name:      displayName(line.Product, locale),
		})
	}
	return components
}

func displayName(product models.Product, locale enums.Locale) string {
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
