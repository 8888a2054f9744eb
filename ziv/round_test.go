package ziv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orthopoly/apfloat"
	"github.com/katalvlaran/orthopoly/ziv"
)

// TestCanRound_Singulars verifies that values without a meaningful
// exponent frame are never certified.
func TestCanRound_Singulars(t *testing.T) {
	mode := apfloat.ToNearestEven

	assert.False(t, ziv.CanRound(nil, 100, 53, mode))
	assert.False(t, ziv.CanRound(apfloat.New(200).SetNaN(), 100, 53, mode))
	assert.False(t, ziv.CanRound(apfloat.New(200).SetInf(false), 100, 53, mode))
	assert.False(t, ziv.CanRound(apfloat.New(200), 100, 53, mode))
}

// TestCanRound_InsufficientTestPrecision verifies the refusal when the
// certain bits do not exceed the target by at least two.
func TestCanRound_InsufficientTestPrecision(t *testing.T) {
	v, err := apfloat.Parse("0.333333333333333333333333333333", 10, 200, apfloat.ToNearestEven)
	assert.NoError(t, err)

	assert.False(t, ziv.CanRound(v, 53, 53, apfloat.ToNearestEven))
	assert.False(t, ziv.CanRound(v, 54, 53, apfloat.ToNearestEven))
	assert.True(t, ziv.CanRound(v, 100, 53, apfloat.ToNearestEven),
		"1/3 sits far from every 53-bit boundary at 100 certain bits")
}

// TestCanRound_FarFromBoundary verifies certification of a value whose
// uncertainty interval stays inside one rounding cell, in every mode.
func TestCanRound_FarFromBoundary(t *testing.T) {
	// 1/3 at 200 bits: no 53-bit rounding boundary lies within 2^-150.
	v, err := apfloat.Parse("0.333333333333333333333333333333", 10, 200, apfloat.ToNearestEven)
	assert.NoError(t, err)

	modes := []apfloat.RoundingMode{
		apfloat.ToNearestEven,
		apfloat.ToNearestAway,
		apfloat.ToZero,
		apfloat.AwayFromZero,
		apfloat.ToNegativeInf,
		apfloat.ToPositiveInf,
	}
	for _, mode := range modes {
		assert.True(t, ziv.CanRound(v, 150, 53, mode), "mode %v", mode)
	}
}

// TestCanRound_StraddlesBoundary verifies the refusal when the uncertainty
// interval contains a representable point of the target grid: rounding an
// exactly-representable approximation in a directed mode could go either
// way, the double-rounding hazard CanRound exists to catch.
func TestCanRound_StraddlesBoundary(t *testing.T) {
	// v = 1.0 exactly: a grid point at every target precision. The interval
	// [1-eps, 1+eps] rounds apart in the directed modes.
	v := apfloat.New(200).SetUint64(1)

	assert.False(t, ziv.CanRound(v, 150, 53, apfloat.ToZero),
		"a grid point inside the interval must refuse directed rounding")
	assert.False(t, ziv.CanRound(v, 150, 53, apfloat.ToPositiveInf))
	assert.False(t, ziv.CanRound(v, 150, 53, apfloat.ToNegativeInf))
	assert.True(t, ziv.CanRound(v, 150, 53, apfloat.ToNearestEven),
		"both interval ends of a tight interval round to the grid point itself")
}

// TestCanRound_NearestMidpoint verifies the refusal when the interval
// straddles a nearest-mode midpoint.
func TestCanRound_NearestMidpoint(t *testing.T) {
	// The midpoint between the consecutive 4-bit numbers 1 and 1.125.
	v := apfloat.New(200).SetUint64(1)
	v.Add(v, apfloat.New(200).SetMantExp(apfloat.New(2).SetUint64(1), -4))

	assert.False(t, ziv.CanRound(v, 150, 4, apfloat.ToNearestEven),
		"an interval around a midpoint cannot certify nearest rounding")
	assert.True(t, ziv.CanRound(v, 150, 4, apfloat.ToZero),
		"the same interval rounds identically toward zero")
}
