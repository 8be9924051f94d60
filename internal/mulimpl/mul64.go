//go:build !komihash32

// Package mulimpl provides the 64x64->128 unsigned multiply primitive
// komihash's round functions are built on, with the accumulating
// (lo, hi_accum) contract spec'd for mul128: hi_accum is added to, not
// overwritten, so callers that chain multiple products into the same
// high-half accumulator get correct results without an explicit add.
//
// This file holds the default, 64-bit-native path. Build with the
// komihash32 tag to force the 32-bit fallback in mul64_32bit.go instead
// (useful for verifying the two paths agree on 64-bit hosts too).
package mulimpl

import "math/bits"

// Mul128 computes u*v as a full 128-bit product, returns the low 64
// bits, and adds the high 64 bits into *hiAccum.
func Mul128(u, v uint64, hiAccum *uint64) uint64 {
	hi, lo := bits.Mul64(u, v)
	*hiAccum += hi
	return lo
}
