package flags

import "github.com/farmshop-si/farmshop-backend/pkg/enums"

// Flag ids referenced elsewhere in the codebase. The full canonical set is
// the defaultTable below; any id missing from it resolves to disabled.
const (
	FlagCardPayments    = "card_payments"
	FlagPaypalPayments  = "paypal_payments"
	FlagUPNPayments     = "upn_payments"
	FlagCashOnDelivery  = "cash_on_delivery"
	FlagGuestCheckout   = "guest_checkout"
	FlagOrderNotes      = "order_notes"
	FlagGiftPackages    = "gift_packages"
	FlagNewsletterBox   = "newsletter_box"
	FlagPromoBanner     = "promo_banner"
	FlagProductBadges   = "product_badges"
	FlagFreeShippingBar = "free_shipping_bar"
	FlagPickupPoint     = "pickup_point"
	FlagStructuredData  = "structured_data"
	FlagSitemap         = "sitemap"
	FlagStorefrontStats = "storefront_stats"
)

// defaultTable is the compiled baseline for every known flag. Its ordering is
// the canonical display ordering; reconciliation and reset both start here.
var defaultTable = []FeatureFlag{
	{
		ID:             FlagUPNPayments,
		Name:           "UPN bank transfer",
		Description:    "Offer UPN QR bank transfer at checkout.",
		Category:       enums.FlagCategoryPayment,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagCardPayments,
		Name:           "Card payments",
		Description:    "Offer card payment at checkout.",
		Category:       enums.FlagCategoryPayment,
		Enabled:        false,
		DefaultEnabled: false,
	},
	{
		ID:             FlagPaypalPayments,
		Name:           "PayPal payments",
		Description:    "Offer PayPal at checkout.",
		Category:       enums.FlagCategoryPayment,
		Enabled:        false,
		DefaultEnabled: false,
	},
	{
		ID:             FlagCashOnDelivery,
		Name:           "Cash on delivery",
		Description:    "Allow paying the courier on delivery.",
		Category:       enums.FlagCategoryCheckout,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagGuestCheckout,
		Name:           "Guest checkout",
		Description:    "Let customers order without an account.",
		Category:       enums.FlagCategoryCheckout,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagOrderNotes,
		Name:           "Order notes",
		Description:    "Show the free-form note field on the checkout form.",
		Category:       enums.FlagCategoryCheckout,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagGiftPackages,
		Name:           "Gift packages",
		Description:    "Show the gift package pages and allow gift bundles in the cart.",
		Category:       enums.FlagCategoryMarketing,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagNewsletterBox,
		Name:           "Newsletter signup",
		Description:    "Show the newsletter signup box in the footer.",
		Category:       enums.FlagCategoryMarketing,
		Enabled:        false,
		DefaultEnabled: false,
	},
	{
		ID:             FlagPromoBanner,
		Name:           "Promo banner",
		Description:    "Show the seasonal promotion banner on the home page.",
		Category:       enums.FlagCategoryUI,
		Enabled:        false,
		DefaultEnabled: false,
	},
	{
		ID:             FlagProductBadges,
		Name:           "Product badges",
		Description:    "Show new/sale badges on product cards.",
		Category:       enums.FlagCategoryUI,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagFreeShippingBar,
		Name:           "Free shipping bar",
		Description:    "Show the remaining-amount-to-free-shipping bar in the cart.",
		Category:       enums.FlagCategoryShipping,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagPickupPoint,
		Name:           "Farm pickup",
		Description:    "Offer free pickup at the farm as a shipping choice.",
		Category:       enums.FlagCategoryShipping,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagStructuredData,
		Name:           "Structured data",
		Description:    "Emit product structured data for search engines.",
		Category:       enums.FlagCategorySEO,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagSitemap,
		Name:           "Sitemap",
		Description:    "Serve the generated sitemap.",
		Category:       enums.FlagCategorySEO,
		Enabled:        true,
		DefaultEnabled: true,
	},
	{
		ID:             FlagStorefrontStats,
		Name:           "Storefront events",
		Description:    "Record page view and cart events for reporting.",
		Category:       enums.FlagCategoryAnalytics,
		Enabled:        true,
		DefaultEnabled: true,
	},
}

// DefaultFlags returns a fresh copy of the compiled default table.
func DefaultFlags() []FeatureFlag {
	out := make([]FeatureFlag, len(defaultTable))
	copy(out, defaultTable)
	return out
}
