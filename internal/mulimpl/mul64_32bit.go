//go:build komihash32

package mulimpl

// Mul128 computes the same 128-bit product as the default build via
// four 32x32->64 partial products with explicit carry propagation,
// for parity with platforms where a native 64x64->128 instruction is
// unavailable (spec.md §9's 32-bit fallback requirement). Output must
// be, and is, bit-identical to the math/bits.Mul64 path.
func Mul128(u, v uint64, hiAccum *uint64) uint64 {
	const mask32 = 1<<32 - 1

	u0 := u & mask32
	u1 := u >> 32
	v0 := v & mask32
	v1 := v >> 32

	w0 := u0 * v0
	t := u1*v0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += u0 * v1

	hi := u1*v1 + w2 + w1>>32
	lo := u * v

	*hiAccum += hi
	return lo
}
