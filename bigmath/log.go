package bigmath

import (
	"math/big"
	"sync"

	"github.com/katalvlaran/orthopoly/apfloat"
)

// guardBits pads every internal computation above the requested precision.
const guardBits = 32

// workPrec returns the internal precision for a result of prec bits.
func workPrec(prec uint) uint {
	return prec + guardBits + apfloat.CeilLog2(prec)
}

// atanhSeries returns atanh(t) = Σ t^(2j+1)/(2j+1) for |t| ≤ 1/3, at t's
// precision. At |t| ≤ 1/3 every term gains more than three bits, so the
// loop runs O(prec) iterations.
func atanhSeries(t *big.Float) *big.Float {
	prec := t.Prec()
	cut := -int(prec) - 2

	t2 := new(big.Float).SetPrec(prec).Mul(t, t)
	pow := new(big.Float).SetPrec(prec).Set(t)
	sum := new(big.Float).SetPrec(prec).Set(t)
	cur := new(big.Float).SetPrec(prec)
	den := new(big.Float).SetPrec(prec)

	for j := uint64(1); ; j++ {
		pow.Mul(pow, t2)
		den.SetUint64(2*j + 1)
		cur.Quo(pow, den)
		sum.Add(sum, cur)
		if cur.Sign() == 0 || cur.MantExp(nil) < sum.MantExp(nil)+cut {
			break
		}
	}

	return sum
}

// ln2State caches the most precise ln 2 computed so far. Read-mostly;
// grown on demand under the lock, handed out as copies.
var ln2State struct {
	sync.Mutex
	prec uint
	val  *big.Float
}

// ln2 returns ln 2 accurate to at least prec bits.
func ln2(prec uint) *big.Float {
	ln2State.Lock()
	defer ln2State.Unlock()

	if ln2State.val == nil || ln2State.prec < prec {
		w := prec + guardBits
		// ln 2 = 2·atanh(1/3): t = (2−1)/(2+1).
		t := new(big.Float).SetPrec(w).Quo(
			new(big.Float).SetPrec(w).SetUint64(1),
			new(big.Float).SetPrec(w).SetUint64(3))
		v := atanhSeries(t)
		ln2State.val = v.Add(v, v)
		ln2State.prec = prec
	}

	return new(big.Float).SetPrec(prec).Set(ln2State.val)
}

// Ln2 returns ln 2 rounded to nearest at prec bits.
func Ln2(prec uint) *apfloat.Float {
	if prec == 0 {
		prec = 1
	}

	return apfloat.NewFromBig(ln2(prec))
}

// logBig computes ln x at prec bits for finite positive x.
func logBig(x *big.Float, prec uint) *big.Float {
	w := workPrec(prec)

	m := new(big.Float).SetPrec(w)
	e := x.MantExp(m) // x = m·2^e, m ∈ [1/2, 1)

	// t = (m−1)/(m+1) ∈ [−1/3, 0); ln m = 2·atanh(t).
	one := new(big.Float).SetPrec(w).SetUint64(1)
	num := new(big.Float).SetPrec(w).Sub(m, one)
	den := new(big.Float).SetPrec(w).Add(m, one)
	t := new(big.Float).SetPrec(w).Quo(num, den)

	lnm := atanhSeries(t)
	lnm.Add(lnm, lnm)

	// ln x = ln m + e·ln 2.
	res := new(big.Float).SetPrec(w).SetInt64(int64(e))
	res.Mul(res, ln2(w))
	res.Add(res, lnm)

	return new(big.Float).SetPrec(prec).Set(res)
}

// Log returns ln x rounded to nearest at prec bits.
//
// Special cases: Log(NaN) = Log(x < 0) = NaN; Log(±0) = −Inf;
// Log(+Inf) = +Inf.
func Log(x *apfloat.Float, prec uint) *apfloat.Float {
	if prec == 0 {
		prec = 1
	}
	switch {
	case x == nil || x.IsNaN() || x.Sign() < 0:
		return apfloat.New(prec).SetNaN()
	case x.IsZero():
		return apfloat.New(prec).SetInf(true)
	case x.IsInf():
		return apfloat.New(prec).SetInf(false)
	case x.Exp() == 1 && x.MinPrec() == 1:
		// x == 1 exactly; the series would only cancel to ~2^-prec here.
		return apfloat.New(prec)
	}

	return apfloat.NewFromBig(logBig(x.Big(), prec))
}
