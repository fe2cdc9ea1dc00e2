package logger

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// The field values must survive a real zap core, not just the mock:
// strings and integers live outside Field.Interface, so any key/value
// re-encoding of the fields would log them as null.
func TestFieldValuesSurviveRealCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &zapLogger{z: zap.New(core)}

	l.Error("analysis_data_invalid",
		String("field", "swingHigh"),
		Decimal("entry", decimal.RequireFromString("30150.00")),
		Int("leverage", 10),
		Float64("sl_multiplier", 1.5),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["field"] != "swingHigh" {
		t.Fatalf("field: want swingHigh, got %v", ctx["field"])
	}
	if ctx["entry"] != "30150.00" {
		t.Fatalf("entry: want the exact decimal string, got %v", ctx["entry"])
	}
	if ctx["leverage"] != int64(10) {
		t.Fatalf("leverage: want 10, got %v", ctx["leverage"])
	}
	if ctx["sl_multiplier"] != 1.5 {
		t.Fatalf("sl_multiplier: want 1.5, got %v", ctx["sl_multiplier"])
	}
}
