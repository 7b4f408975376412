package enums

import "fmt"

// StorefrontEventType enumerates the analytics events the storefront emits.
type StorefrontEventType string

const (
	StorefrontEventPageView          StorefrontEventType = "page_view"
	StorefrontEventAddToCart         StorefrontEventType = "add_to_cart"
	StorefrontEventGiftBundleViewed  StorefrontEventType = "gift_bundle_viewed"
	StorefrontEventCheckoutCompleted StorefrontEventType = "checkout_completed"
)

var validStorefrontEventTypes = []StorefrontEventType{
	StorefrontEventPageView,
	StorefrontEventAddToCart,
	StorefrontEventGiftBundleViewed,
	StorefrontEventCheckoutCompleted,
}

// String implements fmt.Stringer.
func (t StorefrontEventType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known StorefrontEventType.
func (t StorefrontEventType) IsValid() bool {
	for _, candidate := range validStorefrontEventTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseStorefrontEventType converts raw input into a StorefrontEventType.
func ParseStorefrontEventType(value string) (StorefrontEventType, error) {
	for _, candidate := range validStorefrontEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid storefront event type %q", value)
}
