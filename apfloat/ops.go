package apfloat

import "math/big"

// uintAsFloat returns u as an exact big.Float. A uint64 always fits in 64
// significand bits, so the conversion never rounds.
func uintAsFloat(u uint64) *big.Float {
	return new(big.Float).SetPrec(64).SetUint64(u)
}

// Add sets z to the correctly-rounded sum x+y. NaN operands and ∞+(−∞)
// yield NaN.
func (z *Float) Add(x, y *Float) *Float {
	if x.nan || y.nan {
		return z.SetNaN()
	}
	if x.f.IsInf() && y.f.IsInf() && x.f.Signbit() != y.f.Signbit() {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Add(&x.f, &y.f)

	return z
}

// Sub sets z to the correctly-rounded difference x−y. NaN operands and
// ∞−∞ (same signs) yield NaN.
func (z *Float) Sub(x, y *Float) *Float {
	if x.nan || y.nan {
		return z.SetNaN()
	}
	if x.f.IsInf() && y.f.IsInf() && x.f.Signbit() == y.f.Signbit() {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Sub(&x.f, &y.f)

	return z
}

// Mul sets z to the correctly-rounded product x·y. NaN operands and 0·∞
// yield NaN.
func (z *Float) Mul(x, y *Float) *Float {
	if x.nan || y.nan {
		return z.SetNaN()
	}
	if (x.f.IsInf() && y.f.Sign() == 0) || (y.f.IsInf() && x.f.Sign() == 0) {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Mul(&x.f, &y.f)

	return z
}

// Quo sets z to the correctly-rounded quotient x/y. NaN operands, 0/0 and
// ∞/∞ yield NaN; x/0 with x ≠ 0 yields an infinity of the appropriate sign.
func (z *Float) Quo(x, y *Float) *Float {
	if x.nan || y.nan {
		return z.SetNaN()
	}
	xZero, yZero := x.f.Sign() == 0 && !x.f.IsInf(), y.f.Sign() == 0 && !y.f.IsInf()
	if (xZero && yZero) || (x.f.IsInf() && y.f.IsInf()) {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Quo(&x.f, &y.f)

	return z
}

// MulUint64 sets z to the correctly-rounded product x·u. The machine
// integer is exact, so a single rounding occurs. 0·∞-style conflicts
// (u == 0 with infinite x) yield NaN.
func (z *Float) MulUint64(x *Float, u uint64) *Float {
	if x.nan || (u == 0 && x.f.IsInf()) {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Mul(&x.f, uintAsFloat(u))

	return z
}

// QuoUint64 sets z to the correctly-rounded quotient x/u. Division by zero
// yields NaN for zero x and a signed infinity otherwise.
func (z *Float) QuoUint64(x *Float, u uint64) *Float {
	if x.nan {
		return z.SetNaN()
	}
	if u == 0 {
		if x.f.Sign() == 0 && !x.f.IsInf() {
			return z.SetNaN()
		}

		return z.SetInf(x.f.Signbit())
	}
	z.nan = false
	z.f.Quo(&x.f, uintAsFloat(u))

	return z
}

// Neg sets z to x with its sign flipped. Negation is exact.
func (z *Float) Neg(x *Float) *Float {
	if x.nan {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Neg(&x.f)

	return z
}

// Abs sets z to |x|. Taking the absolute value is exact.
func (z *Float) Abs(x *Float) *Float {
	if x.nan {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Abs(&x.f)

	return z
}
