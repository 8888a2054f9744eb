// Package ziv implements the adaptive-precision evaluator shared by the
// Legendre and Hermite operations: a three-term linear recurrence computed
// at a working precision above the target, instrumented with an explicit
// bound on accumulated rounding error at every step, and iterated — Ziv's
// strategy — until that bound certifies correct rounding.
//
// The certification model:
//
//  1. An initial working precision is chosen strictly above the target,
//     padded proportionally to the degree (each recurrence step can
//     amplify relative error by a small constant factor) plus a fixed
//     safety margin, and never below the input's own precision.
//  2. The recurrence sweeps to the requested degree over five working
//     buffers rotated — not copied — each iteration. Every elementary
//     operation propagates an error bound in bits: a product adds the
//     relative errors of its factors plus a rounding unit; a difference
//     takes the maximum of its operands' errors plus a rounding unit,
//     shifted up by the bits cancelled in the subtraction.
//  3. Before each subtraction the cancellation guard (LostBits) estimates,
//     without trusting the subtraction's own rounded result, how many bits
//     of significance will be destroyed. A loss exceeding the current
//     slack bumps the working precision and restarts the recurrence from
//     index 2 — partial state at the old precision is not reusable.
//  4. After the sweep, the tracked bound yields a test precision; the
//     rounding certification oracle (CanRound) decides whether rounding
//     the approximation is guaranteed to equal rounding the unknown exact
//     value. On failure the working precision grows and the sweep repeats.
//  5. All sweep arithmetic is round-to-nearest regardless of the caller's
//     mode; only the single final rounding applies the requested mode.
//     Rounding every step in a directed mode would bias the accumulated
//     error and invalidate the bound arithmetic.
//
// The loop cannot return an uncertified result. Growth is bounded by
// MaxPrec; exceeding it surfaces as ErrPrecisionCeiling, which no practical
// degree reaches.
package ziv
