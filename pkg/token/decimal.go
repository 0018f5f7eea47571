package token

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// displayPlaces is the minimum number of fractional digits used when rendering amounts.
const displayPlaces = 2

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrZeroAmount     = errors.New("amount must be greater than zero")
	ErrTooPrecise     = errors.New("amount has more fractional digits than the token supports")
)

// ParseAmount parses a human readable amount.
func ParseAmount(human string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(human))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", human, err)
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// ToMinorUnits converts a human amount to minor units for the given decimals.
// Amounts that would need rounding are rejected.
func ToMinorUnits(human string, decimals int32) (*big.Int, error) {
	d, err := ParseAmount(human)
	if err != nil {
		return nil, err
	}
	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: %s with %d decimals", ErrTooPrecise, human, decimals)
	}
	return shifted.BigInt(), nil
}

// FromMinorUnits renders minor units as a human amount. Values with at most two
// fractional digits keep two places ("150.00"), finer values keep all
// significant digits.
func FromMinorUnits(raw *big.Int, decimals int32) string {
	if raw == nil {
		return decimal.Zero.StringFixed(displayPlaces)
	}
	d := decimal.NewFromBigInt(raw, -decimals)
	if d.Equal(d.Truncate(displayPlaces)) {
		return d.StringFixed(displayPlaces)
	}
	return d.String()
}

// Normalize returns the canonical display form and minor units of a human amount.
func Normalize(human string, decimals int32) (string, *big.Int, error) {
	raw, err := ToMinorUnits(human, decimals)
	if err != nil {
		return "", nil, err
	}
	return FromMinorUnits(raw, decimals), raw, nil
}
