package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

func decimalFromInt(value int) decimal.Decimal {
	return decimal.NewFromInt(int64(value))
}

func trimMessage(message string) string {
	return strings.TrimSpace(message)
}
