// Package legendre defines configuration options and sentinel errors for
// Legendre polynomial evaluation.
package legendre

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/orthopoly/apfloat"
)

// MaxDegree is the highest supported degree (2^13). Larger degrees are out
// of scope and yield NaN.
const MaxDegree = 8192

// Sentinel errors returned by Legendre.
var (
	// ErrNilInput indicates that the input value x is nil.
	ErrNilInput = errors.New("legendre: input value is nil")

	// ErrBadRounding indicates a rounding mode outside the supported set.
	ErrBadRounding = errors.New("legendre: unsupported rounding mode")
)

// Options configures a Legendre call.
//
// Fields:
//   - Prec     — target precision in bits; 0 selects the input's precision.
//   - Rounding — rounding mode of the single final rounding.
//   - Logger   — destination for evaluator debug traces (no-op by default).
type Options struct {
	Prec     uint
	Rounding apfloat.RoundingMode
	Logger   *zap.Logger
}

// DefaultOptions returns the canonical configuration: the input's own
// precision, round-to-nearest-even, no logging.
func DefaultOptions() Options {
	return Options{
		Prec:     0,
		Rounding: apfloat.ToNearestEven,
		Logger:   zap.NewNop(),
	}
}

// Option mutates an Options value.
type Option func(*Options)

// WithPrecision sets the target precision in bits; 0 keeps the input's.
func WithPrecision(prec uint) Option {
	return func(o *Options) { o.Prec = prec }
}

// WithRounding sets the rounding mode of the final rounding.
func WithRounding(mode apfloat.RoundingMode) Option {
	return func(o *Options) { o.Rounding = mode }
}

// WithLogger directs evaluator debug traces to l; nil restores the no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}
