package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxMinorAmount is the largest amount the processor accepts, in minor units (999,999.99).
const MaxMinorAmount int64 = 99999999

// ErrAmountOutOfRange is returned for amounts that are negative, not finite or above MaxMinorAmount.
var ErrAmountOutOfRange = errors.New("amount out of range")

// ToMinorUnits converts a decimal amount (e.g. 12.5 EUR) to integer minor units (1250).
// The range is checked on the float so the int64 conversion cannot overflow.
func ToMinorUnits(amount float64) (int64, error) {
	minor := math.Round(amount * 100)
	if math.IsNaN(minor) || minor < 0 || minor > float64(MaxMinorAmount) {
		return 0, ErrAmountOutOfRange
	}
	return int64(minor), nil
}

// FromMinorUnits converts minor units back to a decimal amount.
func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// NormalizeCurrency lower-cases an ISO code, falling back to def when empty.
func NormalizeCurrency(currency, def string) string {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		return strings.ToLower(def)
	}
	return currency
}

// FormatAmount renders a decimal amount without trailing zeros, for metadata.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
