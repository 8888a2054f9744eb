package digest

import (
	"encoding/binary"
	"errors"
	"hash"
	"hash/fnv"
	"math/big"

	"github.com/katalvlaran/orthopoly/apfloat"
)

// ErrNilValue indicates that a nil *apfloat.Float was passed in.
var ErrNilValue = errors.New("digest: value is nil")

// Fixed encodings for the four singular numbers: a sign byte (0 positive,
// 1 negative) followed by a 16-bit little-endian tag. Precision and
// significand carry no information for these, so none is encoded.
var (
	singularZero   = []byte{0x00, 0x01, 0x80}
	singularNaN    = []byte{0x00, 0x02, 0x80}
	singularPosInf = []byte{0x00, 0x03, 0x80}
	singularNegInf = []byte{0x01, 0x03, 0x80}
)

// leMinimal appends u as little-endian bytes with high zero bytes
// stripped (at least one byte is always written). Stripping makes the
// encoding independent of the integer width on the host.
func leMinimal(dst []byte, u uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	n := len(buf)
	for n > 1 && buf[n-1] == 0 {
		n--
	}

	return append(dst, buf[:n]...)
}

func singularBytes(x *apfloat.Float) []byte {
	switch {
	case x.IsNaN():
		return singularNaN
	case x.IsZero():
		return singularZero
	case x.Sign() > 0:
		return singularPosInf
	default:
		return singularNegInf
	}
}

// UniqueBytes returns the canonical encoding of x. Equal values encode
// identically regardless of stored precision; distinct values encode
// distinctly.
func UniqueBytes(x *apfloat.Float) ([]byte, error) {
	if x == nil {
		return nil, ErrNilValue
	}
	if x.IsNaN() || x.IsZero() || x.IsInf() {
		out := make([]byte, len(singularZero))
		copy(out, singularBytes(x))

		return out, nil
	}

	minPrec := x.MinPrec()
	exp := x.Exp()

	var sign byte
	if x.Sign() < 0 {
		sign = 1
	}

	// Scale the significand to an exact integer of exactly minPrec bits.
	mant := apfloat.New(x.Prec())
	x.MantExp(mant)
	mant.Abs(mant)
	scaled := new(big.Float).SetPrec(minPrec).SetMantExp(mant.Big(), int(minPrec))
	mi, _ := scaled.Int(nil)

	out := make([]byte, 0, 1+8+8+(minPrec+7)/8)
	out = append(out, sign)
	out = leMinimal(out, uint64(minPrec))
	out = leMinimal(out, uint64(int64(exp)))
	out = append(out, mi.Bytes()...) // most significant byte first, minimal

	return out, nil
}

// Hash32 returns the 32-bit FNV-1a digest of x's canonical encoding.
func Hash32(x *apfloat.Float) (uint32, error) {
	b, err := UniqueBytes(x)
	if err != nil {
		return 0, err
	}
	h := fnv.New32a()
	_, _ = h.Write(b)

	return h.Sum32(), nil
}

// Digest accumulates canonical encodings into an arbitrary hash.Hash, so
// several values (and interleaved raw bytes) can share one digest.
type Digest struct {
	h hash.Hash
}

// New returns a Digest over h; a nil h selects 32-bit FNV-1a.
func New(h hash.Hash) *Digest {
	if h == nil {
		h = fnv.New32a()
	}

	return &Digest{h: h}
}

// Write feeds x's canonical encoding into the digest.
func (d *Digest) Write(x *apfloat.Float) error {
	b, err := UniqueBytes(x)
	if err != nil {
		return err
	}
	_, _ = d.h.Write(b)

	return nil
}

// WriteBytes feeds raw bytes into the digest.
func (d *Digest) WriteBytes(b []byte) {
	_, _ = d.h.Write(b)
}

// Sum appends the current digest to b and returns it; the underlying
// state is not reset.
func (d *Digest) Sum(b []byte) []byte { return d.h.Sum(b) }

// Sum32 returns the current digest of a 32-bit hash, and false when the
// underlying hash is not 32-bit.
func (d *Digest) Sum32() (uint32, bool) {
	h32, ok := d.h.(hash.Hash32)
	if !ok {
		return 0, false
	}

	return h32.Sum32(), true
}
