package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit currency amount into integer minor
// units, rounding half away from zero. Negative amounts are rejected.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, ErrInvalidAmount
	}
	return amount.Mul(minorUnitsPerMajor).Round(0).IntPart(), nil
}
