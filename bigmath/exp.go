package bigmath

import (
	"math/big"

	"github.com/katalvlaran/orthopoly/apfloat"
)

// MaxExp caps the binary exponent of an Exp result. Results past the cap
// overflow to +Inf; callers map the overflow to NaN.
const MaxExp = 1 << 30

// Exp returns e^x rounded to nearest at prec bits.
//
// Special cases: Exp(NaN) = NaN; Exp(+Inf) = +Inf; Exp(−Inf) = +0.
// Overflow past MaxExp reports +Inf, underflow below −MaxExp reports +0.
func Exp(x *apfloat.Float, prec uint) *apfloat.Float {
	if prec == 0 {
		prec = 1
	}
	switch {
	case x == nil || x.IsNaN():
		return apfloat.New(prec).SetNaN()
	case x.IsInf():
		if x.Sign() > 0 {
			return apfloat.New(prec).SetInf(false)
		}

		return apfloat.New(prec)
	case x.IsZero():
		return apfloat.New(prec).SetUint64(1)
	}

	w := workPrec(prec) + 64
	xf := new(big.Float).SetPrec(w).Set(x.Big())
	l2 := ln2(w)

	// Reduce x = q·ln2 + r with q integer and r ∈ [0, ln 2):
	// e^x = 2^q · e^r.
	q := new(big.Float).SetPrec(w).Quo(xf, l2)
	qi, _ := q.Int(nil) // truncated toward zero
	r := new(big.Float).SetPrec(w)
	scaled := new(big.Float).SetPrec(w)
	for {
		scaled.SetInt(qi)
		scaled.Mul(scaled, l2)
		r.Sub(xf, scaled)
		if r.Sign() < 0 {
			qi.Sub(qi, big.NewInt(1))

			continue
		}
		if r.Cmp(l2) >= 0 {
			qi.Add(qi, big.NewInt(1))

			continue
		}

		break
	}

	if !qi.IsInt64() {
		if qi.Sign() > 0 {
			return apfloat.New(prec).SetInf(false)
		}

		return apfloat.New(prec)
	}
	shift := qi.Int64()
	if shift > MaxExp {
		return apfloat.New(prec).SetInf(false)
	}
	if shift < -MaxExp {
		return apfloat.New(prec)
	}

	// Taylor series of e^r on r ∈ [0, ln 2).
	cut := -int(w) - 8
	sum := new(big.Float).SetPrec(w).SetUint64(1)
	term := new(big.Float).SetPrec(w).SetUint64(1)
	den := new(big.Float).SetPrec(w)
	for j := uint64(1); ; j++ {
		term.Mul(term, r)
		den.SetUint64(j)
		term.Quo(term, den)
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)+cut {
			break
		}
	}

	res := new(big.Float).SetPrec(w).SetMantExp(sum, int(shift))

	return apfloat.NewFromBig(new(big.Float).SetPrec(prec).Set(res))
}
