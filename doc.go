// Package orthopoly is a correctly-rounded evaluation engine for
// recurrence-defined orthogonal polynomials (Legendre and Hermite) over
// arbitrary-precision binary floating-point numbers.
//
// 🚀 What is orthopoly?
//
//	A pure-Go library that returns, for any target precision and IEEE-754
//	rounding mode, the unique correctly-rounded value of P_n(x) or H_n(x)
//	— never merely an approximation with unspecified error — together
//	with a ternary indicator reporting the direction of the final
//	rounding, or a well-defined NaN when the mathematical value is
//	undefined or out of domain.
//
// ✨ Key guarantees:
//   - Correct rounding certified by Ziv's strategy: the recurrence runs at a
//     working precision above the target, with a formally-derived bound on
//     accumulated rounding error at every step, and iterates until that
//     bound proves the result roundable.
//   - Catastrophic cancellation inside the recurrence is detected before the
//     subtraction is trusted, and triggers a precision bump plus a full
//     restart of the recurrence.
//   - All domain and degenerate cases (NaN/±Inf inputs, domain bounds,
//     base degrees, odd degrees at zero, Hermite-at-zero closed form)
//     resolve algebraically without running the recurrence.
//
// Under the hood, everything is organized under six subpackages:
//
//	apfloat/  — the arbitrary-precision value type, rounding modes & ternary
//	bigmath/  — arbitrary-precision exp, log and log-Gamma collaborators
//	digest/   — canonical byte encoding & hashing of apfloat values
//	ziv/      — the shared adaptive-precision recurrence evaluator
//	legendre/ — Legendre polynomials P_n on the canonical domain [-1,1]
//	hermite/  — physicist's Hermite polynomials H_n
//
// Quick example:
//
//	x, _ := apfloat.Parse("0.5", 10, 53, apfloat.ToNearestEven)
//	v, t, err := legendre.Legendre(2, x, legendre.WithPrecision(10))
//	// v = -1/8 exactly, t = apfloat.Exact, err = nil
//
// Dive into the per-package docs for contracts, error semantics and the
// certification model.
package orthopoly
