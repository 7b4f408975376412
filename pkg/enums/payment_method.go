package enums

import "fmt"

// PaymentMethod identifies how an order will be settled.
type PaymentMethod string

const (
	PaymentMethodUPNQR          PaymentMethod = "upn_qr"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodPayPal         PaymentMethod = "paypal"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodUPNQR,
	PaymentMethodCard,
	PaymentMethodCashOnDelivery,
	PaymentMethodPayPal,
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is a known PaymentMethod.
func (m PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}

// FeatureFlagID returns the flag id gating the method, or empty when the
// method is always available.
func (m PaymentMethod) FeatureFlagID() string {
	switch m {
	case PaymentMethodUPNQR:
		return "upn_payments"
	case PaymentMethodCard:
		return "card_payments"
	case PaymentMethodPayPal:
		return "paypal_payments"
	case PaymentMethodCashOnDelivery:
		return "cash_on_delivery"
	}
	return ""
}
