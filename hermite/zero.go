package hermite

import (
	"math/big"

	"github.com/katalvlaran/orthopoly/apfloat"
	"github.com/katalvlaran/orthopoly/bigmath"
	"github.com/katalvlaran/orthopoly/ziv"
)

// Working-precision margins of the log-Gamma route. The scalar error of
// exp(lnGamma(n+1) − lnGamma(n/2+1)) grows with the ceiling of log2(n);
// errMargin and precMargin absorb the constant rounding terms of the two
// log-Gamma evaluations, the subtraction and the exponential.
const (
	errMargin  = 6
	precMargin = 10
)

// atZeroEven returns H_n(0) for even n = 2k, which is (−1)^k·(2k)!/k!.
//
// The quotient (2k)!/k! = (k+1)·(k+2)···(2k) is an exact integer. When it
// fits within one bit of the target precision it is rounded directly: an
// exactly representable or midpoint value sits on a rounding boundary,
// where bracket certification cannot terminate, so the exact route is
// required, not merely an optimization. Otherwise the value is computed
// as exp(lnGamma(n+1) − lnGamma(n/2+1)) under the same iterate-and-certify
// discipline as the recurrence evaluator, with a scalar error bound in
// place of the per-step pair. Overflow of the exponential yields NaN.
//
// The sign is applied before the final rounding so that the directed
// modes and the Ternary refer to the signed value.
func atZeroEven(n uint64, prec uint, mode apfloat.RoundingMode) (*apfloat.Float, apfloat.Ternary, error) {
	k := n >> 1
	neg := k&1 == 1

	// 1) Exact-integer probe. MulRange(k+1, 2k) is (2k)!/k!; its minimal
	// precision is the bit length net of trailing zeros.
	q := new(big.Int).MulRange(int64(k+1), int64(2*k))
	minPrec := uint(q.BitLen()) - q.TrailingZeroBits()
	if minPrec <= prec+1 {
		if neg {
			q.Neg(q)
		}
		v := apfloat.New(prec).SetMode(mode).SetInt(q)

		return v, v.Acc(), nil
	}

	// 2) The log-Gamma route for values strictly between grid points.
	errBits := apfloat.CeilLog2(uint(n)) + errMargin
	wprec := prec + precMargin + errBits + apfloat.CeilLog2(prec)
	for {
		if wprec > ziv.MaxPrec {
			return nil, apfloat.Exact, ziv.ErrPrecisionCeiling
		}

		g1 := bigmath.Lgamma(n+1, wprec)
		g2 := bigmath.Lgamma(k+1, wprec)
		sub := apfloat.New(wprec).Sub(g1, g2)
		e := bigmath.Exp(sub, wprec)
		if e.IsInf() {
			return apfloat.New(prec).SetNaN(), apfloat.Exact, nil
		}
		if neg {
			e.Neg(e)
		}

		if ziv.CanRound(e, wprec-errBits, prec, mode) {
			v := apfloat.New(prec).SetMode(mode).Set(e)

			return v, v.Acc(), nil
		}

		wprec += apfloat.CeilLog2(wprec)
	}
}
