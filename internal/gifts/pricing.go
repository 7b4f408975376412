package gifts

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MessageFee is added once when the customer personalizes the bundle with a
// non-empty message.
var MessageFee = decimal.NewFromInt(3)

// ChargedTotal computes what the customer pays for a gift package: the fixed
// base price, plus the message fee when the trimmed message is non-empty.
// Component prices are informational and never summed; the package sells at
// its fixed price no matter how many preset lines resolved.
func ChargedTotal(basePrice decimal.Decimal, message string) decimal.Decimal {
	if strings.TrimSpace(message) == "" {
		return basePrice
	}
	return basePrice.Add(MessageFee)
}
