// Package bigmath provides the arbitrary-precision transcendental
// collaborators consumed by the closed-form Hermite-at-zero path: the
// exponential, the natural logarithm and the log-Gamma function at integer
// arguments.
//
// All functions round to nearest into the requested precision and stay
// within one unit in the last place of the exact value: results are
// computed with generous guard bits (precision + 32 + the logarithm of the
// term count) and rounded once. Consumers account for that residual ulp
// inside their own error margins.
//
// Methods:
//   - Log reduces to the significand in [1/2, 1) plus an exponent multiple
//     of ln 2, and sums the atanh series 2·Σ t^(2j+1)/(2j+1) for
//     t = (m−1)/(m+1), |t| ≤ 1/3.
//   - Exp reduces modulo ln 2 to r ∈ [0, ln 2), sums the Taylor series of
//     e^r, and rescales by a binary shift. Results whose binary exponent
//     would exceed MaxExp overflow to +Inf; callers map that to NaN.
//   - Lgamma(m) = ln Γ(m) = ln((m−1)!) for integer m ≥ 1, with the
//     factorial formed exactly as a big integer before taking Log.
//
// The ln 2 constant is cached process-wide, grown on demand behind a
// mutex, and handed out as copies: safe for concurrent callers.
package bigmath
