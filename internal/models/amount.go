package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts are stored as DECIMAL(20,8). SQLite keeps such columns as
// REAL, which holds 15 significant digits exactly.
const (
	MaxAmountPlaces = 8
	MaxAmountDigits = 15
)

// MaxAmount is the exclusive upper bound for amounts and limits.
var MaxAmount = decimal.New(1, 12)

// checkAmount returns the reason why d is not a storable positive amount.
// It returns an empty string for valid amounts.
func checkAmount(field string, d decimal.Decimal) string {
	switch {
	case !d.IsPositive():
		return fmt.Sprintf("%s must be greater than 0", field)
	case d.GreaterThanOrEqual(MaxAmount):
		return fmt.Sprintf("%s must be less than %s", field, MaxAmount)
	case !d.Equal(d.Truncate(MaxAmountPlaces)):
		return fmt.Sprintf("%s must not have more than %d decimal places", field, MaxAmountPlaces)
	case significantDigits(d) > MaxAmountDigits:
		return fmt.Sprintf("%s must not have more than %d significant digits", field, MaxAmountDigits)
	}

	return ""
}

// significantDigits counts the digits of a positive decimal without leading
// and trailing zeros.
func significantDigits(d decimal.Decimal) int {
	return len(strings.TrimRight(d.Coefficient().String(), "0"))
}
