package bigmath

import (
	"math/big"

	"github.com/katalvlaran/orthopoly/apfloat"
)

// Lgamma returns ln Γ(m) = ln((m−1)!) for an integer argument m, rounded
// to nearest at prec bits. The factorial is formed exactly as a big
// integer before the logarithm is taken, so the only inexactness is Log's.
//
// Special cases: Lgamma(0) = +Inf (the Gamma pole); Lgamma(1) and
// Lgamma(2) are exactly 0.
func Lgamma(m uint64, prec uint) *apfloat.Float {
	if prec == 0 {
		prec = 1
	}
	switch m {
	case 0:
		return apfloat.New(prec).SetInf(false)
	case 1, 2:
		return apfloat.New(prec)
	}

	fact := new(big.Int).MulRange(2, int64(m-1))

	return apfloat.NewFromBig(logBig(new(big.Float).SetInt(fact), prec))
}
