package entity

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// centsPerUnit is the number of minor currency units in one major unit.
const centsPerUnit = 2

// ErrInvalidAmount is returned when an amount string is not a plain decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// CentsFromAmount converts a decimal amount in major units to integer cents,
// rounding half away from zero (half-up for positive amounts).
func CentsFromAmount(amount string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, errors.Wrap(ErrInvalidAmount, err.Error())
	}

	return d.Shift(centsPerUnit).Round(0).IntPart(), nil
}

// AmountFromCents converts integer cents back to major units.
func AmountFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -centsPerUnit)
}

// FormatCents renders cents as a fixed two-decimal string, e.g. 1235 -> "12.35".
func FormatCents(cents int64) string {
	return AmountFromCents(cents).StringFixed(centsPerUnit)
}
