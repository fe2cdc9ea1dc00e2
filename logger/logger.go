package logger

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is re-exported so callers never import zap directly.
type Field = zap.Field

// Logger is a thin wrapper around zap.SugaredLogger that provides the
// three log levels we need throughout the codebase.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Typed field constructors.
func String(key, val string) Field        { return zap.String(key, val) }
func Int(key string, val int) Field       { return zap.Int(key, val) }
func Float64(key string, v float64) Field { return zap.Float64(key, v) }
func Err(err error) Field                 { return zap.Error(err) }

// Decimal renders a decimal value as its exact string form; formatting
// through float64 here would reintroduce the binary noise the decimal
// type exists to avoid.
func Decimal(key string, v decimal.Decimal) Field {
	return zap.String(key, v.String())
}

// zapLogger implements Logger on the unsugared zap.Logger. Fields pass
// through as-is; round-tripping them through SugaredLogger key/value
// pairs would lose every value stored outside Field.Interface.
type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.z.Info(msg, fields...)
}
func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.z.Warn(msg, fields...)
}
func (l *zapLogger) Error(msg string, fields ...Field) {
	l.z.Error(msg, fields...)
}

// NewZapLogger creates a production-ready logger (JSON encoding, level INFO).
func NewZapLogger() (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{z: z}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &zapLogger{z: zap.NewNop()}
}
