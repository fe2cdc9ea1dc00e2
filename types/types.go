package types

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidParameter is returned when a structural precondition is
// violated (non-positive leverage, negative risk amount, non-positive
// price, unrecognized direction). Check it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Direction of a leveraged position. It determines the sign applied to
// every price adjustment: longs profit as price rises, shorts as it falls.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// Valid reports whether d is one of the two recognized directions.
func (d Direction) Valid() bool {
	return d == Long || d == Short
}

// PriceTargets is the result of a percentage-based target computation.
// All prices are non-negative; a target that would fall below zero is
// reported as exactly zero.
type PriceTargets struct {
	TP1 decimal.Decimal
	SL  decimal.Decimal
	TP2 decimal.Decimal
}

// VolatilityTargets is the result of an ATR/swing-point target
// computation. An all-zero value is the sentinel for "could not
// compute"; callers must not treat it as a real trade level.
type VolatilityTargets struct {
	TP decimal.Decimal
	SL decimal.Decimal
}

// Zero reports whether both prices are zero, i.e. the degenerate result.
func (v VolatilityTargets) Zero() bool {
	return v.TP.IsZero() && v.SL.IsZero()
}
