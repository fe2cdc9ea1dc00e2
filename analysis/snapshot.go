package analysis

import (
	stdjson "encoding/json"
	"fmt"

	json "github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
)

// Snapshot is a loosely structured market-analysis record, typically
// decoded from an upstream producer's JSON payload. The volatility
// calculator expects the keys "atr", "swingHigh" and "swingLow"; any
// other keys are carried along untouched.
type Snapshot map[string]any

// Decimal extracts the named field as an exact decimal. String and
// float values are converted through their decimal string form, never
// through a lossy binary intermediate.
func (s Snapshot) Decimal(key string) (decimal.Decimal, error) {
	raw, ok := s[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("missing field %q", key)
	}
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("field %q: %w", key, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case stdjson.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("field %q: %w", key, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("field %q has unsupported type %T", key, raw)
	}
}

// SnapshotFromJSON decodes a producer payload into a Snapshot.
func SnapshotFromJSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
