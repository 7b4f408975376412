package checkout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// UPNBeneficiary is the account the payment order credits.
type UPNBeneficiary struct {
	IBAN    string
	Name    string
	Address string
	City    string
}

// purposeCodeGoods is the ZBS purpose code for the purchase of goods.
const purposeCodeGoods = "GDSV"

// BuildUPNReference derives the SI00 payment reference from an order number,
// keeping only its digits.
func BuildUPNReference(orderNumber string) string {
	var digits strings.Builder
	for _, r := range orderNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "SI00 " + digits.String()
}

// BuildUPNPayload renders the UPN QR text payload per the ZBS specification:
// twenty LF-terminated fields, a fixed "UPNQR" lead-in, the amount as eleven
// zero-padded digits of cents, and a trailing three-digit control sum that
// counts every character of the first nineteen fields including their
// terminators.
func BuildUPNPayload(beneficiary UPNBeneficiary, amount decimal.Decimal, purpose, reference string) string {
	fields := []string{
		"UPNQR",
		"", // payer IBAN
		"", // deposit
		"", // withdrawal
		"", // payer reference
		"", // payer name
		"", // payer address
		"", // payer city
		formatUPNAmount(amount),
		"", // payment date
		"", // urgent
		purposeCodeGoods,
		purpose,
		"", // due date
		strings.ReplaceAll(beneficiary.IBAN, " ", ""),
		reference,
		beneficiary.Name,
		beneficiary.Address,
		beneficiary.City,
	}

	var payload strings.Builder
	for _, field := range fields {
		payload.WriteString(field)
		payload.WriteByte('\n')
	}
	payload.WriteString(fmt.Sprintf("%03d\n", payload.Len()))
	return payload.String()
}

// formatUPNAmount renders the amount as an eleven-digit cent count.
func formatUPNAmount(amount decimal.Decimal) string {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return fmt.Sprintf("%011d", cents)
}
