// Package digest canonicalizes arbitrary-precision values into a unique
// byte encoding and hashes them.
//
// Two values that compare equal encode identically even when their stored
// precisions differ: the encoding keeps only the minimal number of
// significand bits (MinPrec), so 0.5 stored at 10 bits and 0.5 stored at
// 200 bits hash the same. The encoding is also architecture-independent:
// integers are minimal little-endian, the significand is minimal
// most-significant-byte-first.
//
// Layout:
//   - Singular values (±0, NaN, ±Inf) use fixed 3-byte constants — a sign
//     byte followed by a 16-bit little-endian tag — since neither
//     precision nor significand carries information for them.
//   - Regular values encode the sign byte, the minimal little-endian
//     MinPrec, the minimal little-endian exponent, then the significand's
//     MinPrec bits as minimal bytes, most significant first.
//
// The significand bytes are the minimal big-endian form of the MinPrec-bit
// integer, right-aligned within the last byte. This is this encoding's own
// canonical layout: it deliberately diverges from encodings that left-align
// significand limbs into fixed-width buffers, so digests are comparable
// only to digests produced by this package.
//
// Hash32 hashes the encoding with 32-bit FNV-1a. A Digest accumulates the
// encodings of several values into any hash.Hash for pluggable digests.
package digest
