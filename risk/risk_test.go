package risk

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/evdnx/gopt/types"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestPositionValueBasic(t *testing.T) {
	v, err := PositionValue(dec(t, "100"), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Equal(dec(t, "500")) {
		t.Fatalf("want 500, got %s", v)
	}
}

func TestPositionValueZeroRisk(t *testing.T) {
	v, err := PositionValue(decimal.Zero, 10)
	if err != nil {
		t.Fatalf("zero risk is valid, got error: %v", err)
	}
	if !v.Equal(decimal.Zero) {
		t.Fatalf("want 0, got %s", v)
	}
}

func TestPositionValueRejectsBadInputs(t *testing.T) {
	if _, err := PositionValue(dec(t, "100"), 0); !errors.Is(err, types.ErrInvalidParameter) {
		t.Fatalf("zero leverage: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := PositionValue(dec(t, "100"), -3); !errors.Is(err, types.ErrInvalidParameter) {
		t.Fatalf("negative leverage: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := PositionValue(dec(t, "-1"), 5); !errors.Is(err, types.ErrInvalidParameter) {
		t.Fatalf("negative risk: expected ErrInvalidParameter, got %v", err)
	}
}

func TestQuantityBasic(t *testing.T) {
	q, err := Quantity(dec(t, "500"), dec(t, "25000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Equal(dec(t, "0.02")) {
		t.Fatalf("want 0.02, got %s", q)
	}
}

func TestQuantityRejectsNonPositivePrice(t *testing.T) {
	for _, price := range []string{"0", "-25000"} {
		if _, err := Quantity(dec(t, "500"), dec(t, price)); !errors.Is(err, types.ErrInvalidParameter) {
			t.Fatalf("price %s: expected ErrInvalidParameter, got %v", price, err)
		}
	}
}

func TestSizeThenQuantityRoundTrip(t *testing.T) {
	cases := []struct {
		risk     string
		leverage int
		price    string
	}{
		{"100", 5, "25000"},
		{"250.50", 10, "30000"},
		{"33.33", 3, "1999.98"},
		{"1", 125, "0.0625"},
	}
	for _, tc := range cases {
		v, err := PositionValue(dec(t, tc.risk), tc.leverage)
		if err != nil {
			t.Fatalf("PositionValue(%s, %d): %v", tc.risk, tc.leverage, err)
		}
		q, err := Quantity(v, dec(t, tc.price))
		if err != nil {
			t.Fatalf("Quantity(%s, %s): %v", v, tc.price, err)
		}
		want := dec(t, tc.risk).
			Mul(decimal.NewFromInt(int64(tc.leverage))).
			Div(dec(t, tc.price))
		if !q.Equal(want) {
			t.Fatalf("round trip %s*%d/%s: want %s, got %s",
				tc.risk, tc.leverage, tc.price, want, q)
		}
	}
}
