package legendre

import (
	"github.com/katalvlaran/orthopoly/apfloat"
	"github.com/katalvlaran/orthopoly/ziv"
)

// Cached canonical bounds of the domain [-1, 1]. Initialized at process
// start, read-only afterwards: safe for concurrent calls.
var (
	one    = apfloat.New(2).SetUint64(1)
	negOne = apfloat.New(2).SetInt64(-1)
)

// bonnet is the Legendre three-term recurrence
// P_i = ((2i−1)·x·P_{i−1} − (i−1)·P_{i−2}) / i, seeded with P_1 = x.
func bonnet() ziv.Recurrence {
	return ziv.Recurrence{
		SeedCoeff: 1,
		TermCoeff: func(i uint64) uint64 { return 2*i - 1 },
		PrevCoeff: func(i uint64) uint64 { return i - 1 },
		Divisor:   func(i uint64) uint64 { return i },
	}
}

// Legendre returns P_n(x) correctly rounded to the configured precision
// and mode, with the Ternary of the final rounding.
//
// Returns:
//
//   - value:   the correctly-rounded P_n(x); NaN for NaN/±Inf inputs, for
//     x outside [-1, 1] and for degrees above MaxDegree.
//   - ternary: Exact when the value equals the exact P_n(x) (always the
//     case for NaN results), Below/Above otherwise.
//   - err:     ErrNilInput or ErrBadRounding; never a mathematical
//     condition.
//
// Resolution order (each case short-circuits the recurrence):
//  1. Singular input, out-of-domain x or out-of-range degree → NaN, Exact.
//  2. x = ±1 → ±1 algebraically: P_n(1) = 1, P_n(−1) = (−1)^n, both
//     exactly representable at any precision.
//  3. n = 0 → 1 exactly; n = 1 → x, rounded only if the target precision
//     is below the input's.
//  4. Odd n at x = 0 → +0 exactly.
//  5. Otherwise Bonnet's recurrence under the adaptive evaluator.
func Legendre(n uint64, x *apfloat.Float, opts ...Option) (*apfloat.Float, apfloat.Ternary, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if x == nil {
		return nil, apfloat.Exact, ErrNilInput
	}
	if cfg.Rounding > apfloat.ToPositiveInf {
		return nil, apfloat.Exact, ErrBadRounding
	}
	prec := cfg.Prec
	if prec == 0 {
		prec = x.Prec()
	}

	// 1) Domain: x must lie in [-1, 1] (false for NaN and ±Inf) and the
	// degree below the ceiling. A NaN result is always an exact return.
	within := x.LessEqual(one) && x.GreaterEqual(negOne)
	if !within || n > MaxDegree {
		return apfloat.New(prec).SetNaN(), apfloat.Exact, nil
	}

	// 2) Domain bounds, for any degree, without Bonnet's recurrence.
	if x.Equal(one) {
		return apfloat.New(prec).SetUint64(1), apfloat.Exact, nil
	}
	if x.Equal(negOne) {
		v := apfloat.New(prec)
		if n&1 == 0 {
			v.SetUint64(1)
		} else {
			v.SetInt64(-1)
		}

		return v, apfloat.Exact, nil
	}

	// 3) Base cases of the recurrence.
	if n == 0 {
		return apfloat.New(prec).SetUint64(1), apfloat.Exact, nil
	}
	if n == 1 {
		v := apfloat.New(prec).SetMode(cfg.Rounding).Set(x)

		return v, v.Acc(), nil
	}

	// 4) P_n(0) = 0 for odd n.
	if x.IsZero() && n&1 == 1 {
		return apfloat.New(prec), apfloat.Exact, nil
	}

	// 5) The adaptive-precision recurrence.
	return ziv.Evaluate(n, x, prec, cfg.Rounding, bonnet(), ziv.WithLogger(cfg.Logger))
}
