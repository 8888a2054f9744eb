// Package legendre evaluates Legendre polynomials P_n(x) over
// arbitrary-precision floating-point inputs, correctly rounded to any
// requested precision and rounding mode.
//
// 🚀 What is Legendre?
//
//	P_n are the orthogonal polynomials on [-1, 1] satisfying Bonnet's
//	recurrence
//
//	    P_i = ((2i−1)·x·P_{i−1} − (i−1)·P_{i−2}) / i,
//	    P_0 = 1,  P_1 = x.
//
//	They appear in spherical harmonics, Gaussian quadrature and
//	potential theory.
//
// ✨ Semantics:
//   - The result is the unique correctly-rounded value of P_n(x) at the
//     target precision and mode, with a Ternary reporting the rounding
//     direction — certified by the adaptive evaluator in package ziv.
//   - NaN/±Inf inputs, x outside the closed interval [-1, 1] and degrees
//     above MaxDegree yield NaN with an Exact ternary: a NaN result always
//     corresponds to an exact return.
//   - Domain bounds are algebraic: P_n(1) = 1 and P_n(-1) = (−1)^n for
//     every degree, exactly representable at any precision.
//   - Base cases P_0 = 1 and P_1 = x, and odd degrees at x = 0, never run
//     the recurrence.
//
// ⚙️ Usage:
//
//	x, _ := apfloat.Parse("0.5", 10, 53, apfloat.ToNearestEven)
//	v, t, err := legendre.Legendre(1024, x,
//	    legendre.WithPrecision(53),
//	    legendre.WithRounding(apfloat.ToZero),
//	)
//
// Errors are contract violations only (nil input); every mathematical
// edge case is an ordinary return value.
package legendre
