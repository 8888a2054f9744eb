package hermite

import (
	"github.com/katalvlaran/orthopoly/apfloat"
	"github.com/katalvlaran/orthopoly/ziv"
)

// physicists is the Hermite three-term recurrence
// H_i = 2x·H_{i−1} − 2(i−1)·H_{i−2}, seeded with H_1 = 2x.
func physicists() ziv.Recurrence {
	return ziv.Recurrence{
		SeedCoeff: 2,
		TermCoeff: func(i uint64) uint64 { return 2 },
		PrevCoeff: func(i uint64) uint64 { return 2 * (i - 1) },
		Divisor:   func(i uint64) uint64 { return 1 },
	}
}

// Hermite returns H_n(x) correctly rounded to the configured precision
// and mode, with the Ternary of the final rounding.
//
// Returns:
//
//   - value:   the correctly-rounded H_n(x); NaN for NaN/±Inf inputs, for
//     degrees above MaxDegree and for overflow of the even-degree
//     closed form at x = 0.
//   - ternary: Exact when the value equals the exact H_n(x) (always the
//     case for NaN results), Below/Above otherwise.
//   - err:     ErrNilInput or ErrBadRounding; never a mathematical
//     condition.
//
// Resolution order (each case short-circuits the recurrence):
//  1. Singular input or out-of-range degree → NaN, Exact. A NaN input is
//     singular at every degree, including 0.
//  2. n = 0 → 1 exactly.
//  3. x = 0: odd n → +0 exactly; even n via the closed form of zero.go.
//  4. n = 1 → 2x, rounded once in the caller's mode.
//  5. Otherwise the physicists' recurrence under the adaptive evaluator.
func Hermite(n uint64, x *apfloat.Float, opts ...Option) (*apfloat.Float, apfloat.Ternary, error) {
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

	// 1) Singular input and out-of-range degrees short-circuit everything,
	// H_0 included: H_0(NaN) is NaN, not 1.
	if x.IsNaN() || x.IsInf() || n > MaxDegree {
		return apfloat.New(prec).SetNaN(), apfloat.Exact, nil
	}

	// 2) H_0(x) = 1 for every finite x.
	if n == 0 {
		return apfloat.New(prec).SetUint64(1), apfloat.Exact, nil
	}

	// 3) x = 0 is closed-form for both parities.
	if x.IsZero() {
		if n&1 == 1 {
			return apfloat.New(prec), apfloat.Exact, nil
		}

		return atZeroEven(n, prec, cfg.Rounding)
	}

	// 4) H_1(x) = 2x, a single exact shift followed by one rounding.
	if n == 1 {
		v := apfloat.New(prec).SetMode(cfg.Rounding).MulUint64(x, 2)

		return v, v.Acc(), nil
	}

	// 5) The adaptive-precision recurrence.
	return ziv.Evaluate(n, x, prec, cfg.Rounding, physicists(), ziv.WithLogger(cfg.Logger))
}
