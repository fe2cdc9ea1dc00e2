// Package risk converts margin risk into notional exposure and notional
// exposure into traded quantity.
package risk

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/evdnx/gopt/types"
)

// PositionValue returns the total notional value of a position:
// margin (risk amount) multiplied by leverage.
func PositionValue(riskAmount decimal.Decimal, leverage int) (decimal.Decimal, error) {
	if leverage <= 0 {
		return decimal.Zero, fmt.Errorf("%w: leverage must be positive, got %d",
			types.ErrInvalidParameter, leverage)
	}
	if riskAmount.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: risk amount cannot be negative, got %s",
			types.ErrInvalidParameter, riskAmount)
	}
	return riskAmount.Mul(decimal.NewFromInt(int64(leverage))), nil
}

// Quantity returns the quantity to trade for a given notional position
// value at the given price.
func Quantity(positionValue, price decimal.Decimal) (decimal.Decimal, error) {
	if price.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: price must be greater than zero, got %s",
			types.ErrInvalidParameter, price)
	}
	return positionValue.Div(price), nil
}
