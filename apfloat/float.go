package apfloat

import (
	"errors"
	"math/big"
	"math/bits"
	"strings"
)

// CeilLog2 returns ⌈log2(v)⌉, with CeilLog2(0) = CeilLog2(1) = 0. Precision
// schedules use it to size the slack that covers a v-step computation.
func CeilLog2(v uint) uint {
	if v <= 1 {
		return 0
	}

	return uint(bits.Len(v - 1))
}

// RoundingMode selects how a result is rounded to the receiver's precision.
// It is math/big's rounding mode; all six modes are supported.
type RoundingMode = big.RoundingMode

// Re-exported rounding modes, so callers never need to import math/big.
const (
	ToNearestEven RoundingMode = big.ToNearestEven // == IEEE 754-2008 roundTiesToEven
	ToNearestAway RoundingMode = big.ToNearestAway // == IEEE 754-2008 roundTiesToAway
	ToZero        RoundingMode = big.ToZero        // == IEEE 754-2008 roundTowardZero
	AwayFromZero  RoundingMode = big.AwayFromZero  // no IEEE 754-2008 equivalent
	ToNegativeInf RoundingMode = big.ToNegativeInf // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf RoundingMode = big.ToPositiveInf // == IEEE 754-2008 roundTowardPositive
)

// Ternary reports the position of a returned value relative to the exact
// mathematical value: the standard correctly-rounded-library convention.
type Ternary int8

const (
	// Below means the returned value is smaller than the exact value.
	Below Ternary = -1
	// Exact means the returned value equals the exact value. By convention
	// a NaN result is always Exact: there is no rounding error to report.
	Exact Ternary = 0
	// Above means the returned value is greater than the exact value.
	Above Ternary = 1
)

// String implements fmt.Stringer.
func (t Ternary) String() string {
	switch t {
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return "exact"
	}
}

// Sentinel errors returned by apfloat.
var (
	// ErrParse indicates that a string could not be parsed as a number.
	ErrParse = errors.New("apfloat: cannot parse value")

	// ErrBadPrecision indicates a zero target precision; every Float must
	// carry at least one significand bit.
	ErrBadPrecision = errors.New("apfloat: precision must be at least 1 bit")
)

// Float is an arbitrary-precision binary floating-point number with a sign,
// an exponent, a significand, a precision in bits — and, unlike
// math/big.Float, a NaN form.
//
// The zero value is not ready for use; construct Floats with New, NewFromBig
// or Parse.
type Float struct {
	nan bool
	f   big.Float
}

// New returns a new Float set to +0 with the given precision in bits and
// rounding mode ToNearestEven. A precision of 0 is clamped to 1.
func New(prec uint) *Float {
	if prec == 0 {
		prec = 1
	}
	z := new(Float)
	z.f.SetPrec(prec)

	return z
}

// NewFromBig returns a new Float holding a copy of f: same value, precision
// and rounding mode. f is not aliased.
func NewFromBig(f *big.Float) *Float {
	z := new(Float)
	z.f.Copy(f)

	return z
}

// Parse interprets s in the given base (2, 8, 10 or 16; 0 auto-detects
// from a 0b/0o/0x prefix) and returns it rounded to prec bits in mode.
// The mantissa may carry a binary exponent "p±d" in any base; a decimal
// exponent "e±d" is accepted for base 10 only. "NaN" (any case) yields the
// NaN form; "Inf"/"+Inf"/"-Inf" yield infinities.
func Parse(s string, base int, prec uint, mode RoundingMode) (*Float, error) {
	if prec == 0 {
		return nil, ErrBadPrecision
	}
	z := New(prec)
	z.f.SetMode(mode)
	if strings.EqualFold(strings.TrimLeft(s, "+-"), "nan") {
		return z.SetNaN(), nil
	}
	if _, _, err := z.f.Parse(s, base); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	return z, nil
}

// IsNaN reports whether x is the NaN form.
func (x *Float) IsNaN() bool { return x.nan }

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool { return !x.nan && x.f.IsInf() }

// IsZero reports whether x is ±0.
func (x *Float) IsZero() bool { return !x.nan && !x.f.IsInf() && x.f.Sign() == 0 }

// Sign returns -1, 0 or +1 depending on the sign of x. The sign of NaN is 0.
func (x *Float) Sign() int {
	if x.nan {
		return 0
	}

	return x.f.Sign()
}

// Exp returns the binary exponent e of x in the frame x = m·2^e with
// |m| ∈ [1/2, 1). It is 0 for zero, infinite and NaN values.
func (x *Float) Exp() int {
	if x.nan {
		return 0
	}

	return x.f.MantExp(nil)
}

// Prec returns the precision of x in bits (0 for NaN).
func (x *Float) Prec() uint {
	if x.nan {
		return 0
	}

	return x.f.Prec()
}

// MinPrec returns the minimum number of significand bits required to
// represent x exactly. It is 0 for zero, infinite and NaN values, mirroring
// the convention of the underlying arithmetic.
func (x *Float) MinPrec() uint {
	if x.nan {
		return 0
	}

	return x.f.MinPrec()
}

// Mode returns the rounding mode of x.
func (x *Float) Mode() RoundingMode { return x.f.Mode() }

// Acc returns the Ternary produced by the most recent operation that set x:
// Exact if x equals the exact result, Below/Above if x was rounded down/up.
// NaN is always Exact.
func (x *Float) Acc() Ternary {
	if x.nan {
		return Exact
	}
	switch x.f.Acc() {
	case big.Below:
		return Below
	case big.Above:
		return Above
	default:
		return Exact
	}
}

// SetPrec destructively resizes z to prec bits, rounding the current value
// in z's mode. Resizing invalidates any error bound previously attached to
// z's value by a caller; the recurrence evaluator restarts after it.
// A precision of 0 is clamped to 1. NaN stays NaN.
func (z *Float) SetPrec(prec uint) *Float {
	if prec == 0 {
		prec = 1
	}
	z.f.SetPrec(prec)

	return z
}

// SetMode sets z's rounding mode; the value of z is unchanged.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.f.SetMode(mode)

	return z
}

// SetNaN sets z to the NaN form.
func (z *Float) SetNaN() *Float {
	z.nan = true
	prec := z.f.Prec()
	z.f.SetInt64(0)
	if prec != 0 {
		z.f.SetPrec(prec)
	}

	return z
}

// SetInf sets z to -Inf if signbit is set, +Inf otherwise.
func (z *Float) SetInf(signbit bool) *Float {
	z.nan = false
	z.f.SetInf(signbit)

	return z
}

// Set sets z to x rounded to z's precision in z's mode.
func (z *Float) Set(x *Float) *Float {
	if x.nan {
		return z.SetNaN()
	}
	z.nan = false
	z.f.Set(&x.f)

	return z
}

// SetUint64 sets z to u rounded to z's precision.
func (z *Float) SetUint64(u uint64) *Float {
	z.nan = false
	z.f.SetUint64(u)

	return z
}

// SetInt64 sets z to i rounded to z's precision.
func (z *Float) SetInt64(i int64) *Float {
	z.nan = false
	z.f.SetInt64(i)

	return z
}

// SetFloat64 sets z to v rounded to z's precision. NaN inputs yield the
// NaN form.
func (z *Float) SetFloat64(v float64) *Float {
	if v != v {
		return z.SetNaN()
	}
	z.nan = false
	z.f.SetFloat64(v)

	return z
}

// SetInt sets z to i rounded to z's precision.
func (z *Float) SetInt(i *big.Int) *Float {
	z.nan = false
	z.f.SetInt(i)

	return z
}

// SetRat sets z to r, correctly rounded to z's precision in z's mode.
// The rounding direction is available through Acc.
func (z *Float) SetRat(r *big.Rat) *Float {
	z.nan = false
	z.f.SetRat(r)

	return z
}

// SetMantExp sets z to mant·2^exp, rounded to z's precision. It mirrors
// big.Float.SetMantExp; a NaN mant yields NaN.
func (z *Float) SetMantExp(mant *Float, exp int) *Float {
	if mant.nan {
		return z.SetNaN()
	}
	z.nan = false
	z.f.SetMantExp(&mant.f, exp)

	return z
}

// MantExp stores the significand of x in mant (if non-nil) and returns the
// exponent in the [1/2, 1) frame. It mirrors big.Float.MantExp.
func (x *Float) MantExp(mant *Float) int {
	if x.nan {
		if mant != nil {
			mant.SetNaN()
		}

		return 0
	}
	if mant == nil {
		return x.f.MantExp(nil)
	}
	mant.nan = false

	return x.f.MantExp(&mant.f)
}

// Cmp compares x and y and returns -1, 0 or +1. NaN operands have no
// ordering: Cmp panics on them. Use LessEqual/GreaterEqual when a NaN
// operand must simply fail the comparison.
func (x *Float) Cmp(y *Float) int {
	if x.nan || y.nan {
		panic("apfloat: Cmp with NaN operand")
	}

	return x.f.Cmp(&y.f)
}

// LessEqual reports whether x ≤ y. It is false when either operand is NaN.
func (x *Float) LessEqual(y *Float) bool {
	if x.nan || y.nan {
		return false
	}

	return x.f.Cmp(&y.f) <= 0
}

// GreaterEqual reports whether x ≥ y. It is false when either operand is NaN.
func (x *Float) GreaterEqual(y *Float) bool {
	if x.nan || y.nan {
		return false
	}

	return x.f.Cmp(&y.f) >= 0
}

// Equal reports whether x and y hold the same mathematical value,
// regardless of stored precision. It is false when either operand is NaN.
func (x *Float) Equal(y *Float) bool {
	if x.nan || y.nan {
		return false
	}

	return x.f.Cmp(&y.f) == 0
}

// Big returns an independent big.Float copy of x (same value, precision and
// mode). For NaN it returns ±0; check IsNaN first when the form matters.
func (x *Float) Big() *big.Float {
	return new(big.Float).Copy(&x.f)
}

// Text formats x like big.Float.Text ("NaN" for the NaN form).
func (x *Float) Text(format byte, prec int) string {
	if x.nan {
		return "NaN"
	}

	return x.f.Text(format, prec)
}

// String formats x in shortest decimal form ("NaN" for the NaN form).
func (x *Float) String() string { return x.Text('g', -1) }
