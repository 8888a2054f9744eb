package ziv_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/orthopoly/apfloat"
	"github.com/katalvlaran/orthopoly/ziv"
)

// bonnetRec is the Legendre recurrence, the denser of the two production
// recurrences (it exercises the division path).
func bonnetRec() ziv.Recurrence {
	return ziv.Recurrence{
		SeedCoeff: 1,
		TermCoeff: func(i uint64) uint64 { return 2*i - 1 },
		PrevCoeff: func(i uint64) uint64 { return i - 1 },
		Divisor:   func(i uint64) uint64 { return i },
	}
}

// bonnetRat evaluates the same recurrence exactly over rationals.
func bonnetRat(n uint64, x *big.Rat) *big.Rat {
	p2 := big.NewRat(1, 1)
	p1 := new(big.Rat).Set(x)
	for i := uint64(2); i <= n; i++ {
		first := new(big.Rat).Mul(new(big.Rat).SetUint64(2*i-1), x)
		first.Mul(first, p1)
		second := new(big.Rat).Mul(new(big.Rat).SetUint64(i-1), p2)
		pn := new(big.Rat).Sub(first, second)
		pn.Mul(pn, big.NewRat(1, int64(i)))
		p2, p1 = p1, pn
	}

	return p1
}

// TestEvaluate_Validation covers the contract-violation errors.
func TestEvaluate_Validation(t *testing.T) {
	x := apfloat.New(53).SetFloat64(0.5)
	mode := apfloat.ToNearestEven

	_, _, err := ziv.Evaluate(4, nil, 53, mode, bonnetRec())
	assert.ErrorIs(t, err, ziv.ErrNilInput)

	_, _, err = ziv.Evaluate(4, apfloat.New(53).SetNaN(), 53, mode, bonnetRec())
	assert.ErrorIs(t, err, ziv.ErrSingularInput, "singular inputs belong to the classifiers")

	_, _, err = ziv.Evaluate(4, apfloat.New(53).SetInf(true), 53, mode, bonnetRec())
	assert.ErrorIs(t, err, ziv.ErrSingularInput)

	_, _, err = ziv.Evaluate(1, x, 53, mode, bonnetRec())
	assert.ErrorIs(t, err, ziv.ErrBadDegree, "base cases never reach the evaluator")

	_, _, err = ziv.Evaluate(4, x, 0, mode, bonnetRec())
	assert.ErrorIs(t, err, ziv.ErrBadPrecision)

	_, _, err = ziv.Evaluate(4, x, 53, mode, ziv.Recurrence{})
	assert.ErrorIs(t, err, ziv.ErrNilRecurrence)
}

// TestEvaluate_MatchesExactRational verifies correct rounding against an
// exact rational evaluation of the recurrence, across degrees and modes.
func TestEvaluate_MatchesExactRational(t *testing.T) {
	modes := []apfloat.RoundingMode{
		apfloat.ToNearestEven,
		apfloat.ToZero,
		apfloat.AwayFromZero,
		apfloat.ToNegativeInf,
		apfloat.ToPositiveInf,
	}
	// Dyadic sample points, exactly representable at the input precision.
	points := []*big.Rat{
		big.NewRat(1, 2),
		big.NewRat(-3, 8),
		big.NewRat(7, 16),
		big.NewRat(-15, 32),
		big.NewRat(163, 256),
	}

	const prec = 53
	for _, r := range points {
		x := apfloat.New(prec).SetRat(r)
		require.Equal(t, apfloat.Exact, x.Acc(), "sample points must be exact inputs")

		for n := uint64(2); n <= 20; n++ {
			exact := bonnetRat(n, r)
			for _, mode := range modes {
				got, tern, err := ziv.Evaluate(n, x, prec, mode, bonnetRec())
				require.NoError(t, err, "n=%d x=%s mode=%v", n, r, mode)

				want := apfloat.New(prec).SetMode(mode).SetRat(exact)
				assert.Zero(t, got.Cmp(want),
					"n=%d x=%s mode=%v: got %s want %s", n, r, mode, got, want)

				// The ternary must agree with the value's true position.
				diff := new(big.Rat).Sub(ratOf(got), exact)
				if diff.Sign() != 0 {
					assert.Equal(t, diff.Sign(), int(tern),
						"n=%d x=%s mode=%v: ternary direction", n, r, mode)
				}
			}
		}
	}
}

// TestEvaluate_TernaryExactOnExactValues verifies a value that is exactly
// representable at the target precision: P_2(1/2) = -1/8.
func TestEvaluate_TernaryExactOnExactValues(t *testing.T) {
	x := apfloat.New(10).SetFloat64(0.5)

	got, tern, err := ziv.Evaluate(2, x, 10, apfloat.ToNearestEven, bonnetRec())
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(apfloat.New(10).SetFloat64(-0.125)))
	assert.Equal(t, apfloat.Exact, tern, "-1/8 is exactly representable at 10 bits")
}

// TestEvaluate_HighPrecisionTarget runs a deeper degree at a 200-bit
// target, forcing several recurrence steps per certified bit.
func TestEvaluate_HighPrecisionTarget(t *testing.T) {
	r := big.NewRat(1, 2)
	x := apfloat.New(200).SetRat(r)
	exact := bonnetRat(50, r)

	got, _, err := ziv.Evaluate(50, x, 200, apfloat.ToNearestEven, bonnetRec())
	require.NoError(t, err)

	want := apfloat.New(200).SetRat(exact)
	assert.Zero(t, got.Cmp(want))
}

// TestEvaluate_CancellationRestart drives the guard-triggered restart:
// near 1/√3 the degree-2 subtraction 3x²−1 cancels roughly a hundred
// bits, far beyond the initial slack, so the loop must reprecision the
// buffers mid-sweep. The restart is observed through the debug log and
// the result is checked against the exact rational oracle.
func TestEvaluate_CancellationRestart(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	x := apfloat.New(53).SetFloat64(1.0 / math.Sqrt(3))

	got, _, err := ziv.Evaluate(2, x, 53, apfloat.ToNearestEven, bonnetRec(),
		ziv.WithLogger(zap.New(core)))
	require.NoError(t, err)

	restarts := logs.FilterMessage("ziv: cancellation restart").Len()
	assert.GreaterOrEqual(t, restarts, 1, "the subtraction must trip the guard at least once")

	want := apfloat.New(53).SetRat(bonnetRat(2, ratOf(x)))
	assert.Zero(t, got.Cmp(want), "the restarted sweep must still round correctly")
}

// ratOf returns the exact rational value of a finite Float.
func ratOf(x *apfloat.Float) *big.Rat {
	r, _ := x.Big().Rat(nil)

	return r
}
