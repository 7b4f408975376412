package checkout

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func testBeneficiary() UPNBeneficiary {
	return UPNBeneficiary{
		IBAN:    "SI56 0400 1004 6551 312",
		Name:    "Kmetija Sončni hrib",
		Address: "Sončna pot 12",
		City:    "2000 Maribor",
	}
}

func TestBuildUPNPayload(t *testing.T) {
	payload := BuildUPNPayload(testBeneficiary(), decimal.RequireFromString("19.00"),
		"Naročilo FS-20260901-1234", "SI00 202609011234")

	lines := strings.Split(payload, "\n")
	// 20 fields, each LF-terminated, so the split yields a trailing empty.
	if len(lines) != 21 {
		t.Fatalf("expected 20 terminated fields, got %d", len(lines)-1)
	}

	if lines[0] != "UPNQR" {
		t.Fatalf("expected UPNQR lead-in, got %q", lines[0])
	}
	if lines[8] != "00000001900" {
		t.Fatalf("expected amount 00000001900, got %q", lines[8])
	}
	if lines[11] != "GDSV" {
		t.Fatalf("expected purpose code GDSV, got %q", lines[11])
	}
	if lines[14] != "SI56040010046551312" {
		t.Fatalf("expected IBAN without spaces, got %q", lines[14])
	}
	if lines[15] != "SI00 202609011234" {
		t.Fatalf("unexpected reference %q", lines[15])
	}
	if lines[16] != "Kmetija Sončni hrib" {
		t.Fatalf("unexpected beneficiary name %q", lines[16])
	}
}

func TestBuildUPNPayloadControlSum(t *testing.T) {
	payload := BuildUPNPayload(testBeneficiary(), decimal.RequireFromString("16.00"),
		"Naročilo", "SI00 1")

	idx := strings.LastIndex(strings.TrimSuffix(payload, "\n"), "\n")
	body := payload[:idx+1]
	sumField := strings.TrimSuffix(payload[idx+1:], "\n")

	if len(sumField) != 3 {
		t.Fatalf("control sum must be three digits, got %q", sumField)
	}
	sum, err := strconv.Atoi(sumField)
	if err != nil {
		t.Fatalf("control sum is not numeric: %v", err)
	}
	if sum != len(body) {
		t.Fatalf("control sum %d does not match body length %d", sum, len(body))
	}
}

func TestFormatUPNAmountRoundsToCents(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "16.00", want: "00000001600"},
		{in: "19.00", want: "00000001900"},
		{in: "3.999", want: "00000000400"},
		{in: "0", want: "00000000000"},
	}
	for _, tc := range cases {
		if got := formatUPNAmount(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Fatalf("formatUPNAmount(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildUPNReferenceKeepsDigitsOnly(t *testing.T) {
	if got := BuildUPNReference("FS-20260901-1234"); got != "SI00 202609011234" {
		t.Fatalf("unexpected reference %q", got)
	}
}
