package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Defaults for CalcConfig.
const (
	// DefaultDivisionPrecision is the number of decimal digits kept by
	// division. 28 is enough to keep chained multiply/divide sequences
	// free of visible rounding artifacts at typical price magnitudes.
	DefaultDivisionPrecision = 28

	DefaultSLMultiplier = 1.5
	DefaultTPMultiplier = 2.0
)

// CalcConfig holds all tunable parameters for the calculators.
type CalcConfig struct {
	// DivisionPrecision is the process-wide decimal division precision.
	// It is applied once (see ApplyPrecision) and never mutated per call.
	DivisionPrecision int32

	// ATR multipliers for the volatility calculator.
	SLMultiplier float64 // stop distance, in ATRs, beyond the swing point
	TPMultiplier float64 // take-profit distance, in ATRs, from entry

	// StrictAnalysis switches the volatility calculator from its default
	// fail-soft policy (log + all-zero result) to returning an
	// InvalidParameter error, matching the percentage calculator.
	StrictAnalysis bool
}

// DefaultConfig returns a CalcConfig with production defaults.
func DefaultConfig() CalcConfig {
	return CalcConfig{
		DivisionPrecision: DefaultDivisionPrecision,
		SLMultiplier:      DefaultSLMultiplier,
		TPMultiplier:      DefaultTPMultiplier,
	}
}

// Validate checks that all numeric fields are within sensible bounds.
// It returns the first encountered error, allowing the caller to surface
// a clear configuration problem before any calculation starts.
func (c *CalcConfig) Validate() error {
	// 28 digits is the floor for keeping chained multiply/divide
	// sequences free of visible rounding artifacts; anything lower can
	// let monetary figures drift.
	if c.DivisionPrecision < DefaultDivisionPrecision {
		return fmt.Errorf("DivisionPrecision (%d) must be at least %d",
			c.DivisionPrecision, DefaultDivisionPrecision)
	}
	if c.SLMultiplier <= 0 {
		return fmt.Errorf("SLMultiplier (%f) must be positive", c.SLMultiplier)
	}
	if c.TPMultiplier <= 0 {
		return fmt.Errorf("TPMultiplier (%f) must be positive", c.TPMultiplier)
	}
	return nil
}

// FromEnv builds a CalcConfig from GOPT_* environment variables, falling
// back to defaults for anything unset. A .env file in the working
// directory is loaded first if present.
//
//	GOPT_DIVISION_PRECISION  int
//	GOPT_SL_MULTIPLIER       float
//	GOPT_TP_MULTIPLIER       float
//	GOPT_STRICT_ANALYSIS     bool
func FromEnv() (CalcConfig, error) {
	_ = godotenv.Load() // best effort; env vars win anyway

	cfg := DefaultConfig()
	if v := os.Getenv("GOPT_DIVISION_PRECISION"); v != "" {
		p, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return cfg, fmt.Errorf("GOPT_DIVISION_PRECISION: %w", err)
		}
		cfg.DivisionPrecision = int32(p)
	}
	if v := os.Getenv("GOPT_SL_MULTIPLIER"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("GOPT_SL_MULTIPLIER: %w", err)
		}
		cfg.SLMultiplier = f
	}
	if v := os.Getenv("GOPT_TP_MULTIPLIER"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("GOPT_TP_MULTIPLIER: %w", err)
		}
		cfg.TPMultiplier = f
	}
	if v := os.Getenv("GOPT_STRICT_ANALYSIS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("GOPT_STRICT_ANALYSIS: %w", err)
		}
		cfg.StrictAnalysis = b
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var precisionOnce sync.Once

// ApplyPrecision establishes the process-wide decimal division precision.
// The first call wins; later calls are no-ops regardless of their value,
// so concurrent callers can never observe two different settings.
func (c *CalcConfig) ApplyPrecision() {
	precisionOnce.Do(func() {
		decimal.DivisionPrecision = int(c.DivisionPrecision)
	})
}
