package ziv

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/orthopoly/apfloat"
)

const (
	// safetyBits is the fixed pad above the target precision.
	safetyBits = 10
	// errSafety is charged on top of the tracked bound before certification,
	// covering the final rounding.
	errSafety = 2
	// stepSlope is the worst-case growth of the error bound per recurrence
	// step, in bits: two roundings into each product, one into the
	// difference, one into the division, one for summing the two operand
	// bounds.
	stepSlope = 4
	// bumpMargin is added on top of the lost-bit count when a cancellation
	// bump reprecisions the working buffers.
	bumpMargin = 16
	// geometricFrom is the Ziv round after which growth falls back to 1.5×,
	// for values that sit hard against a rounding boundary.
	geometricFrom = 3
)

func max3(a, b, c int64) int64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}

	return a
}

// Evaluate computes the recurrence rec at degree n ≥ 2 for the finite,
// non-NaN input x, correctly rounded to prec bits in mode, together with
// the ternary indicator of the single final rounding.
//
// Preconditions (enforced by the callers' domain classifiers, validated
// here): x non-nil and n ≥ 2; base cases and singular inputs never reach
// the recurrence.
//
// The algorithm is the Ziv loop described in the package documentation:
// five rotated working buffers, a per-step error bound pair for the two
// live terms, the cancellation guard ahead of every subtraction with a
// restart-from-index-2 on overflow, the certification oracle on the final
// term, and a single final rounding in the caller's mode. All intermediate
// arithmetic rounds to nearest.
//
// Evaluate never returns an uncertified result: it either certifies, or
// fails deterministically with ErrPrecisionCeiling past MaxPrec working
// bits.
func Evaluate(n uint64, x *apfloat.Float, prec uint, mode apfloat.RoundingMode, rec Recurrence, opts ...Option) (*apfloat.Float, apfloat.Ternary, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch {
	case x == nil:
		return nil, apfloat.Exact, ErrNilInput
	case x.IsNaN() || x.IsInf():
		return nil, apfloat.Exact, ErrSingularInput
	case n < 2:
		return nil, apfloat.Exact, ErrBadDegree
	case prec == 0:
		return nil, apfloat.Exact, ErrBadPrecision
	case rec.SeedCoeff == 0 || rec.TermCoeff == nil || rec.PrevCoeff == nil || rec.Divisor == nil:
		return nil, apfloat.Exact, ErrNilRecurrence
	}
	log := cfg.Logger

	// 1) Initial working precision: strictly above the target, raised to at
	// least the input's own precision, padded proportionally to the degree.
	wprec := prec + safetyBits
	if xp := x.Prec(); xp > wprec {
		wprec = xp
	}
	wprec += apfloat.CeilLog2(wprec)
	wprec += uint(n)*stepSlope + 8

	log.Debug("ziv: evaluate",
		zap.Uint64("degree", n),
		zap.Uint("target_prec", prec),
		zap.Uint("working_prec", wprec),
		zap.Stringer("mode", mode))

	// 2) Five working-precision scratch values, live for this call only.
	p2 := apfloat.New(wprec)     // term at index i-2
	p1 := apfloat.New(wprec)     // term at index i-1
	pn := apfloat.New(wprec)     // newly computed term
	first := apfloat.New(wprec)  // A(i)·x·p1
	second := apfloat.New(wprec) // B(i)·p2

	round := 0
sweep:
	for {
		round++
		if wprec > MaxPrec {
			return nil, apfloat.Exact, ErrPrecisionCeiling
		}
		// Destructive reprecision: prior contents are not reusable, the
		// recurrence restarts below.
		p2.SetPrec(wprec)
		p1.SetPrec(wprec)
		pn.SetPrec(wprec)
		first.SetPrec(wprec)
		second.SetPrec(wprec)

		// Seeds: p_1 = SeedCoeff·x, p_0 = 1.
		p1.Set(x)
		if rec.SeedCoeff != 1 {
			p1.MulUint64(p1, rec.SeedCoeff)
		}
		p2.SetUint64(1)

		// (a, b) bound the errors of p1 and p2: |error| ≤ 2^(a−wprec)
		// relative to the term's own exponent frame.
		var a, b int64
		if p1.Acc() != apfloat.Exact {
			a = 1
		}

		slack := int64(wprec) - int64(prec)
		for i := uint64(2); i <= n; i++ {
			first.MulUint64(x, rec.TermCoeff(i))
			first.Mul(first, p1)
			second.MulUint64(p2, rec.PrevCoeff(i))

			// 3) The guard runs strictly before the production subtraction.
			lost := int64(LostBits(first, second, wprec))
			if lost > slack {
				wprec += uint(lost) + bumpMargin
				log.Debug("ziv: cancellation restart",
					zap.Uint64("index", i),
					zap.Int64("lost_bits", lost),
					zap.Uint("working_prec", wprec))

				continue sweep
			}

			pn.Sub(first, second)
			e := max3(a, b, 1) + lost + 3
			if d := rec.Divisor(i); d > 1 {
				pn.QuoUint64(pn, d)
				e++
			}

			// Swap, not copy: p1 now holds the newest term.
			p2, p1, pn = p1, pn, p2
			b, a = a, e
		}

		// 4) Certification over the final term.
		trackedErr := a + errSafety
		testPrec := int64(wprec) - trackedErr
		if testPrec > int64(prec)+1 {
			// A final term exactly representable below the test precision is
			// already the exact value at working precision.
			if int64(p1.MinPrec()) < testPrec-1 {
				break
			}
			if CanRound(p1, uint(testPrec), prec, mode) {
				break
			}
		}

		// 5) Ziv growth: by the precision's own logarithm, extended to cover
		// the known bound deficit so one re-sweep normally certifies, and
		// geometric once a value proves hard to round.
		grow := int64(apfloat.CeilLog2(wprec))
		if deficit := int64(prec) + trackedErr + 32 - int64(wprec); deficit > grow {
			grow = deficit
		}
		if round >= geometricFrom && int64(wprec/2) > grow {
			grow = int64(wprec / 2)
		}
		wprec += uint(grow)
		log.Debug("ziv: next round",
			zap.Int("round", round),
			zap.Int64("err_bits", trackedErr),
			zap.Uint("working_prec", wprec))
	}

	// 6) The single final rounding in the caller's mode.
	res := apfloat.New(prec).SetMode(mode).Set(p1)

	return res, res.Acc(), nil
}
