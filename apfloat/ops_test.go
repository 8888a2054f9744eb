package apfloat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orthopoly/apfloat"
)

// TestArithmetic_Basics covers the four dyadic operations on finite
// operands.
func TestArithmetic_Basics(t *testing.T) {
	a := apfloat.New(53).SetFloat64(1.5)
	b := apfloat.New(53).SetFloat64(0.25)

	assert.Zero(t, apfloat.New(53).Add(a, b).Cmp(apfloat.New(53).SetFloat64(1.75)))
	assert.Zero(t, apfloat.New(53).Sub(a, b).Cmp(apfloat.New(53).SetFloat64(1.25)))
	assert.Zero(t, apfloat.New(53).Mul(a, b).Cmp(apfloat.New(53).SetFloat64(0.375)))
	assert.Zero(t, apfloat.New(53).Quo(a, b).Cmp(apfloat.New(53).SetFloat64(6.0)))
}

// TestArithmetic_NaNPropagation verifies that a NaN operand yields a NaN
// result through every operation.
func TestArithmetic_NaNPropagation(t *testing.T) {
	nan := apfloat.New(53).SetNaN()
	one := apfloat.New(53).SetUint64(1)

	assert.True(t, apfloat.New(53).Add(nan, one).IsNaN())
	assert.True(t, apfloat.New(53).Sub(one, nan).IsNaN())
	assert.True(t, apfloat.New(53).Mul(nan, nan).IsNaN())
	assert.True(t, apfloat.New(53).Quo(nan, one).IsNaN())
	assert.True(t, apfloat.New(53).Neg(nan).IsNaN())
	assert.True(t, apfloat.New(53).Abs(nan).IsNaN())
}

// TestArithmetic_IndeterminateForms verifies that the forms math/big
// panics on are returned as NaN instead: ∞−∞, 0·∞, 0/0 and ∞/∞.
func TestArithmetic_IndeterminateForms(t *testing.T) {
	pinf := apfloat.New(53).SetInf(false)
	ninf := apfloat.New(53).SetInf(true)
	zero := apfloat.New(53)

	assert.True(t, apfloat.New(53).Add(pinf, ninf).IsNaN(), "+Inf + -Inf is NaN")
	assert.True(t, apfloat.New(53).Sub(pinf, pinf).IsNaN(), "+Inf - +Inf is NaN")
	assert.True(t, apfloat.New(53).Mul(zero, pinf).IsNaN(), "0 · Inf is NaN")
	assert.True(t, apfloat.New(53).Mul(ninf, zero).IsNaN(), "Inf · 0 is NaN")
	assert.True(t, apfloat.New(53).Quo(zero, zero).IsNaN(), "0 / 0 is NaN")
	assert.True(t, apfloat.New(53).Quo(pinf, ninf).IsNaN(), "Inf / Inf is NaN")
}

// TestArithmetic_InfDeterminate verifies that determinate infinite forms
// stay infinite rather than degrading to NaN.
func TestArithmetic_InfDeterminate(t *testing.T) {
	pinf := apfloat.New(53).SetInf(false)
	one := apfloat.New(53).SetUint64(1)

	sum := apfloat.New(53).Add(pinf, one)
	assert.True(t, sum.IsInf())
	assert.Equal(t, 1, sum.Sign())

	prod := apfloat.New(53).Mul(pinf, pinf)
	assert.True(t, prod.IsInf())
	assert.Equal(t, 1, prod.Sign())
}

// TestMulUint64 verifies scaling by a machine integer, the fast path of
// the recurrence coefficients.
func TestMulUint64(t *testing.T) {
	x := apfloat.New(53).SetFloat64(0.75)

	doubled := apfloat.New(53).MulUint64(x, 2)
	assert.Zero(t, doubled.Cmp(apfloat.New(53).SetFloat64(1.5)))
	assert.Equal(t, apfloat.Exact, doubled.Acc(), "scaling by 2 is a pure exponent shift")

	tripled := apfloat.New(53).MulUint64(x, 3)
	assert.Zero(t, tripled.Cmp(apfloat.New(53).SetFloat64(2.25)))
}

// TestQuoUint64 verifies division by a machine integer, with the zero
// divisor mapping to the IEEE conventions.
func TestQuoUint64(t *testing.T) {
	x := apfloat.New(53).SetFloat64(1.5)

	half := apfloat.New(53).QuoUint64(x, 2)
	assert.Zero(t, half.Cmp(apfloat.New(53).SetFloat64(0.75)))

	// x / 0 is signed infinity, 0 / 0 is NaN.
	byZero := apfloat.New(53).QuoUint64(x, 0)
	assert.True(t, byZero.IsInf())
	assert.Equal(t, 1, byZero.Sign())

	negByZero := apfloat.New(53).QuoUint64(apfloat.New(53).SetInt64(-3), 0)
	assert.True(t, negByZero.IsInf())
	assert.Equal(t, -1, negByZero.Sign())

	assert.True(t, apfloat.New(53).QuoUint64(apfloat.New(53), 0).IsNaN())
}

// TestNegAbs covers the sign operations.
func TestNegAbs(t *testing.T) {
	x := apfloat.New(53).SetFloat64(-2.5)

	assert.Zero(t, apfloat.New(53).Neg(x).Cmp(apfloat.New(53).SetFloat64(2.5)))
	assert.Zero(t, apfloat.New(53).Abs(x).Cmp(apfloat.New(53).SetFloat64(2.5)))
	assert.Equal(t, 1, apfloat.New(53).Abs(x).Sign())
}
