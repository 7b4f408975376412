package enums

import "fmt"

// FlagCategory groups feature flags by the storefront area they gate.
type FlagCategory string

const (
	FlagCategoryPayment   FlagCategory = "payment"
	FlagCategoryCheckout  FlagCategory = "checkout"
	FlagCategoryMarketing FlagCategory = "marketing"
	FlagCategoryUI        FlagCategory = "ui"
	FlagCategoryShipping  FlagCategory = "shipping"
	FlagCategorySEO       FlagCategory = "seo"
	FlagCategoryAnalytics FlagCategory = "analytics"
)

var validFlagCategories = []FlagCategory{
	FlagCategoryPayment,
	FlagCategoryCheckout,
	FlagCategoryMarketing,
	FlagCategoryUI,
	FlagCategoryShipping,
	FlagCategorySEO,
	FlagCategoryAnalytics,
}

// String implements fmt.Stringer.
func (c FlagCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known FlagCategory.
func (c FlagCategory) IsValid() bool {
	for _, candidate := range validFlagCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseFlagCategory converts raw input into a FlagCategory.
func ParseFlagCategory(value string) (FlagCategory, error) {
	for _, candidate := range validFlagCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid flag category %q", value)
}

// FlagCategories returns the full category set in display order.
func FlagCategories() []FlagCategory {
	out := make([]FlagCategory, len(validFlagCategories))
	copy(out, validFlagCategories)
	return out
}

// Label returns the admin display label for the category.
func (c FlagCategory) Label() string {
	switch c {
	case FlagCategoryPayment:
		return "Payments"
	case FlagCategoryCheckout:
		return "Checkout"
	case FlagCategoryMarketing:
		return "Marketing"
	case FlagCategoryUI:
		return "Interface"
	case FlagCategoryShipping:
		return "Shipping"
	case FlagCategorySEO:
		return "SEO"
	case FlagCategoryAnalytics:
		return "Analytics"
	}
	return string(c)
}

// Icon returns the admin icon identifier for the category.
func (c FlagCategory) Icon() string {
	switch c {
	case FlagCategoryPayment:
		return "credit-card"
	case FlagCategoryCheckout:
		return "shopping-bag"
	case FlagCategoryMarketing:
		return "megaphone"
	case FlagCategoryUI:
		return "layout"
	case FlagCategoryShipping:
		return "truck"
	case FlagCategorySEO:
		return "search"
	case FlagCategoryAnalytics:
		return "bar-chart"
	}
	return "flag"
}
