// Package hermite evaluates physicists' Hermite polynomials H_n(x) over
// arbitrary-precision floating-point inputs, correctly rounded to any
// requested precision and rounding mode.
//
// 🚀 What is Hermite?
//
//	H_n are the orthogonal polynomials on the real line (with Gaussian
//	weight) satisfying the three-term recurrence
//
//	    H_i = 2x·H_{i−1} − 2(i−1)·H_{i−2},
//	    H_0 = 1,  H_1 = 2x.
//
//	They appear in the quantum harmonic oscillator, Gauss-Hermite
//	quadrature and probability theory.
//
// ✨ Semantics:
//   - The result is the unique correctly-rounded value of H_n(x) at the
//     target precision and mode, with a Ternary reporting the rounding
//     direction — certified by the adaptive evaluator in package ziv.
//   - NaN/±Inf inputs and degrees above MaxDegree yield NaN with an Exact
//     ternary: a NaN result always corresponds to an exact return.
//   - Base cases H_0 = 1 (exact) and H_1 = 2x (rounded once) never run
//     the recurrence.
//   - x = 0 is closed-form: odd degrees give +0 exactly; even degrees
//     n = 2k give (−1)^k·(2k)!/k!, evaluated through a log-Gamma
//     difference to survive degrees whose factorial quotient overflows
//     plain evaluation. Overflow of the final exponential yields NaN.
//
// ⚙️ Usage:
//
//	x, _ := apfloat.Parse("3.49376", 10, 53, apfloat.ToNearestEven)
//	v, t, err := hermite.Hermite(3, x,
//	    hermite.WithPrecision(53),
//	    hermite.WithRounding(apfloat.ToNearestEven),
//	)
//
// Errors are contract violations only (nil input); every mathematical
// edge case is an ordinary return value.
package hermite
