package ziv

import "github.com/katalvlaran/orthopoly/apfloat"

// CanRound decides whether rounding the approximation v to targetPrec bits
// in mode is guaranteed to produce the same result as rounding the unknown
// exact value directly: v is known to lie within 2^(Exp(v)−testPrec) of that
// exact value.
//
// The decision brackets the uncertainty exactly: both ends of the interval
// [v−ε, v+ε] are formed without rounding (ε is a power of two inside v's
// significand span) and rounded to targetPrec in mode. Every rounding mode
// is monotone, so equal rounded ends certify every value in between —
// including the exact one. If the interval straddles a rounding boundary at
// targetPrec, the ends differ and CanRound reports false rather than risk
// the double-rounding hazard.
//
// CanRound is a pure predicate; it never modifies v.
func CanRound(v *apfloat.Float, testPrec, targetPrec uint, mode apfloat.RoundingMode) bool {
	if v == nil || v.IsNaN() || v.IsInf() || v.IsZero() {
		return false
	}
	// Need at least one certain bit beyond the target to separate the
	// interval ends from a shared boundary.
	if testPrec <= targetPrec+1 {
		return false
	}

	// ε = 2^(Exp(v) − testPrec): the absolute uncertainty of v.
	eps := apfloat.New(2).SetMantExp(apfloat.New(2).SetUint64(1), v.Exp()-int(testPrec))

	// v spans Exp(v)−1 … Exp(v)−Prec(v) and ε sits inside that span, so
	// Prec(v)+2 bits make both interval ends exact.
	work := v.Prec() + 2
	lo := apfloat.New(work).Sub(v, eps)
	hi := apfloat.New(work).Add(v, eps)

	rlo := apfloat.New(targetPrec).SetMode(mode).Set(lo)
	rhi := apfloat.New(targetPrec).SetMode(mode).Set(hi)

	return rlo.Cmp(rhi) == 0
}
