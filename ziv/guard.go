package ziv

import "github.com/katalvlaran/orthopoly/apfloat"

// guardBits is the short margin added to the working precision when the
// guard re-derives the subtraction to approximate the true difference.
const guardBits = 8

// LostBits estimates how many bits of significance the subtraction x−y
// would destroy at working precision prec, without relying on the
// subtraction's own (possibly rounded) result. It must run strictly before
// the production subtraction is trusted: a rounded subtraction already
// hides the lost bits.
//
// Zero operands, opposite signs and exponents more than 2 apart cannot
// cancel meaningfully and report 0. Otherwise the difference is re-derived
// at prec+8 bits: a zero re-derived difference is total cancellation (prec
// bits lost); losses of 1 bit or fewer are negligible and report 0.
//
// LostBits is a pure predicate over its operands.
func LostBits(x, y *apfloat.Float, prec uint) uint {
	if x == nil || y == nil || x.IsNaN() || y.IsNaN() || x.IsInf() || y.IsInf() {
		return 0
	}
	// Cancellation needs two nonzero operands of the same sign.
	if x.IsZero() || y.IsZero() || x.Sign() != y.Sign() {
		return 0
	}

	ex, ey := x.Exp(), y.Exp()
	gap := ex - ey
	if gap < 0 {
		gap = -gap
	}
	if gap > 2 {
		return 0
	}

	diff := apfloat.New(prec + guardBits).Sub(x, y)
	if diff.IsZero() {
		return prec
	}

	top := ex
	if ey > top {
		top = ey
	}
	lost := top - diff.Exp()
	if lost <= 1 {
		return 0
	}

	return uint(lost)
}
