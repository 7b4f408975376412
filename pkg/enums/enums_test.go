package enums

import "testing"

func TestParseFlagCategory(t *testing.T) {
	for _, category := range FlagCategories() {
		parsed, err := ParseFlagCategory(category.String())
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", category, err)
		}
		if parsed != category {
			t.Fatalf("expected %q, got %q", category, parsed)
		}
	}

	if _, err := ParseFlagCategory("warehouse"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestFlagCategoryAssociatedData(t *testing.T) {
	for _, category := range FlagCategories() {
		if category.Label() == "" {
			t.Fatalf("category %q has no label", category)
		}
		if category.Icon() == "" || category.Icon() == "flag" {
			t.Fatalf("category %q has no dedicated icon", category)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("upn_qr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != PaymentMethodUPNQR {
		t.Fatalf("expected upn_qr, got %q", method)
	}
	if _, err := ParsePaymentMethod("bitcoin"); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
}

func TestPaymentMethodFeatureFlagID(t *testing.T) {
	if got := PaymentMethodUPNQR.FeatureFlagID(); got != "" {
		t.Fatalf("upn_qr should not be flag gated, got %q", got)
	}
	if got := PaymentMethodCard.FeatureFlagID(); got != "card_payments" {
		t.Fatalf("unexpected flag id %q", got)
	}
	if got := PaymentMethodPayPal.FeatureFlagID(); got != "paypal_payments" {
		t.Fatalf("unexpected flag id %q", got)
	}
}

func TestParseLocaleDefaultsToSlovenian(t *testing.T) {
	locale, err := ParseLocale("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locale != LocaleSL {
		t.Fatalf("expected sl default, got %q", locale)
	}
	if _, err := ParseLocale("fr"); err == nil {
		t.Fatal("expected error for unsupported locale")
	}
}

func TestCartAndOrderStatusParsing(t *testing.T) {
	if _, err := ParseCartStatus("active"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseCartStatus("resting"); err == nil {
		t.Fatal("expected error for unknown cart status")
	}
	if _, err := ParseOrderStatus("paid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseOrderStatus("lost"); err == nil {
		t.Fatal("expected error for unknown order status")
	}
}
