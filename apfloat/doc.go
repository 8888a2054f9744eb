// Package apfloat provides the arbitrary-precision binary floating-point
// value type shared by every orthopoly component.
//
// A Float is an opaque number with a sign, a binary exponent, a significand
// and a precision in bits. It wraps math/big.Float — whose operations are
// all correctly rounded and report their own rounding direction — and adds
// the one thing big.Float deliberately lacks: a NaN form. NaN is how the
// evaluation engine represents domain errors and overflowed closed forms,
// so it must be an ordinary value, not a panic.
//
// Semantics:
//   - Every arithmetic method rounds correctly into the receiver's precision
//     and rounding mode; the direction of that rounding is available through
//     Acc as a Ternary (Below / Exact / Above).
//   - Any operation with a NaN operand yields NaN. A NaN value always
//     reports Exact: there is no rounding error to report.
//   - The big.Float panic cases (∞−∞, 0×∞, 0/0, ∞/∞) are intercepted and
//     yield NaN, matching the conventions of correctly-rounded libraries.
//   - Ordered comparisons (LessEqual, GreaterEqual) are false when either
//     operand is NaN; the domain classifiers rely on this to reject
//     singular inputs without a separate check.
//
// Exponent frame: Exp reports the exponent e such that the value equals
// m·2^e with |m| in [1/2, 1). Error bounds elsewhere in orthopoly are
// expressed against this frame.
//
// Ownership: a Float is exclusively owned by whichever component holds it.
// Big and NewFromBig copy; nothing in this package aliases caller state.
package apfloat
