// Package ziv defines the recurrence description, configuration options and
// sentinel errors of the adaptive-precision evaluator.
package ziv

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by Evaluate.
var (
	// ErrNilInput indicates that the input value x is nil.
	ErrNilInput = errors.New("ziv: input value is nil")

	// ErrSingularInput indicates a NaN or infinite x; singular inputs belong
	// to the callers' classifiers, not to the recurrence.
	ErrSingularInput = errors.New("ziv: input value must be finite")

	// ErrBadDegree indicates a degree below 2; the base cases belong to the
	// callers' classifiers, not to the recurrence.
	ErrBadDegree = errors.New("ziv: degree must be at least 2")

	// ErrBadPrecision indicates a zero target precision.
	ErrBadPrecision = errors.New("ziv: target precision must be at least 1 bit")

	// ErrNilRecurrence indicates a Recurrence with a nil coefficient func.
	ErrNilRecurrence = errors.New("ziv: recurrence coefficients must be non-nil")

	// ErrPrecisionCeiling indicates that certification was not reached below
	// MaxPrec working bits. No practical input triggers it; it exists so the
	// loop has a deterministic failure outcome instead of spinning forever.
	ErrPrecisionCeiling = errors.New("ziv: working precision ceiling exceeded")
)

// MaxPrec bounds the working precision the evaluator may grow to.
const MaxPrec = 1 << 24

// Recurrence describes a three-term linear recurrence
//
//	p_i = (A(i)·x·p_{i-1} − B(i)·p_{i-2}) / C(i),  i ≥ 2,
//
// seeded with p_0 = 1 and p_1 = SeedCoeff·x. All coefficients are machine
// integers, exact in working arithmetic.
//
// Bonnet's recurrence for Legendre uses SeedCoeff=1, A(i)=2i−1, B(i)=i−1,
// C(i)=i; the physicist's Hermite recurrence uses SeedCoeff=2, A(i)=2,
// B(i)=2(i−1), C(i)=1.
type Recurrence struct {
	// SeedCoeff scales x into the first-degree seed: p_1 = SeedCoeff·x.
	SeedCoeff uint64
	// TermCoeff returns A(i), the coefficient of x·p_{i-1}.
	TermCoeff func(i uint64) uint64
	// PrevCoeff returns B(i), the coefficient of p_{i-2}.
	PrevCoeff func(i uint64) uint64
	// Divisor returns C(i); return 1 to skip the division step.
	Divisor func(i uint64) uint64
}

// Options configures an Evaluate call.
//
// Fields:
//   - Logger — destination for per-call and per-round debug traces.
//     Defaults to a no-op logger; the evaluator never logs unless asked.
type Options struct {
	Logger *zap.Logger
}

// DefaultOptions returns the canonical evaluator configuration.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Option mutates an Options value.
type Option func(*Options)

// WithLogger directs the evaluator's debug traces to l. A nil l restores
// the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}
