package ziv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orthopoly/apfloat"
	"github.com/katalvlaran/orthopoly/ziv"
)

const guardPrec = 64

// TestLostBits_NoCancellationCases verifies the operand shapes that can
// never cancel: zeros, opposite signs, singular values and wide exponent
// gaps.
func TestLostBits_NoCancellationCases(t *testing.T) {
	one := apfloat.New(guardPrec).SetUint64(1)
	negOne := apfloat.New(guardPrec).SetInt64(-1)
	zero := apfloat.New(guardPrec)
	far := apfloat.New(guardPrec).SetUint64(1 << 20)

	assert.Zero(t, ziv.LostBits(zero, one, guardPrec), "a zero operand cannot cancel")
	assert.Zero(t, ziv.LostBits(one, zero, guardPrec), "a zero operand cannot cancel")
	assert.Zero(t, ziv.LostBits(one, negOne, guardPrec), "opposite signs add magnitude")
	assert.Zero(t, ziv.LostBits(one, far, guardPrec), "exponent gap over 2 cannot cancel")
	assert.Zero(t, ziv.LostBits(apfloat.New(guardPrec).SetNaN(), one, guardPrec))
	assert.Zero(t, ziv.LostBits(apfloat.New(guardPrec).SetInf(false), one, guardPrec))
	assert.Zero(t, ziv.LostBits(nil, one, guardPrec))
}

// TestLostBits_TotalCancellation verifies that equal operands report the
// full working precision as lost.
func TestLostBits_TotalCancellation(t *testing.T) {
	x := apfloat.New(guardPrec).SetFloat64(0.8125)
	y := apfloat.New(guardPrec).SetFloat64(0.8125)

	assert.Equal(t, uint(guardPrec), ziv.LostBits(x, y, guardPrec),
		"x - x destroys every bit of the working precision")
}

// TestLostBits_PartialCancellation checks the exponent-drop measurement on
// close-but-distinct operands.
func TestLostBits_PartialCancellation(t *testing.T) {
	// x = 1, y = 1 + 2^-20: the difference drops the exponent by 20 bits.
	x := apfloat.New(guardPrec).SetUint64(1)
	y := apfloat.New(guardPrec).SetUint64(1)
	y.Add(y, apfloat.New(guardPrec).SetMantExp(apfloat.New(guardPrec).SetUint64(1), -20))

	lost := ziv.LostBits(x, y, guardPrec)
	assert.Equal(t, uint(20), lost, "exp(max) - exp(diff) = 1 - (-19)")
}

// TestLostBits_NegligibleLoss verifies that a loss of one bit or less is
// reported as zero.
func TestLostBits_NegligibleLoss(t *testing.T) {
	// 1 - 0.5: diff 0.5 has the same exponent as the smaller operand.
	x := apfloat.New(guardPrec).SetUint64(1)
	y := apfloat.New(guardPrec).SetFloat64(0.5)

	assert.Zero(t, ziv.LostBits(x, y, guardPrec), "1 - 0.5 loses a single bit at most")
}
