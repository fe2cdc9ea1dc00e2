package analysis

import (
	"fmt"

	"github.com/cinar/indicator"
	"github.com/samber/lo"
)

// FromCandles builds a Snapshot from OHLC history: ATR over atrPeriod
// bars and swing high/low over the last swingLookback bars. The slices
// must be equally sized and long enough to warm up the ATR.
func FromCandles(high, low, closing []float64, atrPeriod, swingLookback int) (Snapshot, error) {
	n := len(closing)
	if len(high) != n || len(low) != n {
		return nil, fmt.Errorf("candle slices differ in length: high=%d low=%d close=%d",
			len(high), len(low), n)
	}
	if atrPeriod <= 0 || swingLookback <= 0 {
		return nil, fmt.Errorf("atrPeriod (%d) and swingLookback (%d) must be positive",
			atrPeriod, swingLookback)
	}
	if n < atrPeriod || n < swingLookback {
		return nil, fmt.Errorf("need at least %d bars, got %d",
			max(atrPeriod, swingLookback), n)
	}

	_, atr := indicator.Atr(atrPeriod, high, low, closing)

	return Snapshot{
		"atr":       lo.LastOrEmpty(atr),
		"swingHigh": lo.Max(high[n-swingLookback:]),
		"swingLow":  lo.Min(low[n-swingLookback:]),
	}, nil
}
