// Package komihash implements the KOMIHASH 64-bit non-cryptographic
// hash function and its streamed (incremental) variant. The companion
// KOMIRAND pseudo-random generator lives in the komirand subpackage.
//
// KOMIHASH produces a bit-identical 64-bit digest for a given
// (message, seed) pair on every platform, regardless of host byte
// order. It makes no cryptographic-strength claim and runs in time
// proportional to input size with no branching on input contents,
// only on length.
package komihash

import "github.com/avaneev/komihash/internal/mulimpl"

// Hash computes the one-shot KOMIHASH digest of msg under seed. It is
// a pure function: it performs no allocation, no I/O, and is safe to
// call concurrently on disjoint inputs from any number of goroutines.
func Hash(msg []byte, seed uint64) uint64 {
	var l lanes
	l.initSeed(seed)

	n := len(msg)

	switch {
	case n < 16:
		r1, r2 := l.s1, l.s5
		switch {
		case n > 7:
			r2 ^= padTailL3(msg, 8, n-8)
			r1 ^= load64(msg)
		case n != 0:
			r1 ^= padTailNZ(msg, 0, n)
		}
		return l.hashFin(r1, r2)

	case n < 32:
		l.hash16(msg)
		var r1, r2 uint64
		if n > 23 {
			r2 = l.s5 ^ padTailL4(msg, 24, n-24)
			r1 = l.s1 ^ load64(msg[16:])
		} else {
			r1 = l.s1 ^ padTailL4(msg, 16, n-16)
			r2 = l.s5
		}
		return l.hashFin(r1, r2)

	case n <= 63:
		// Short enough that the primary pair alone carries the whole
		// message; the bulk loop's auxiliary lanes are never derived.
		return epilogue(&l, msg, 0, n)

	default:
		l.deriveAux()
		pos := runBulkLoop(&l, msg, 63)
		l.s5 ^= l.s6 ^ l.s7 ^ l.s8
		l.s1 ^= l.s2 ^ l.s3 ^ l.s4
		return epilogue(&l, msg, pos, n-pos)
	}
}

// runBulkLoop mixes 64-byte blocks of msg[0:] into l for as long as
// more than threshold bytes remain, and returns the position it
// stopped at. threshold=63 is the one-shot/drain form (stops with
// 0-63 bytes left); threshold=64 is the streaming direct-processing
// form (stops with 1-64 bytes left, so a partition boundary between
// Write calls never lands exactly on a full block).
func runBulkLoop(l *lanes, msg []byte, threshold int) (pos int) {
	n := len(msg)

	for n-pos > threshold {
		m := msg[pos:]
		l.s1 = mulimpl.Mul128(l.s1^load64(m), l.s5^load64(m[32:]), &l.s5)
		l.s2 = mulimpl.Mul128(l.s2^load64(m[8:]), l.s6^load64(m[40:]), &l.s6)
		l.s3 = mulimpl.Mul128(l.s3^load64(m[16:]), l.s7^load64(m[48:]), &l.s7)
		l.s4 = mulimpl.Mul128(l.s4^load64(m[24:]), l.s8^load64(m[56:]), &l.s8)

		pos += 64

		l.s2 ^= l.s5
		l.s3 ^= l.s6
		l.s4 ^= l.s7
		l.s1 ^= l.s8
	}

	return pos
}

// epilogue handles the <=63-byte residue left after the bulk loop,
// or the whole message directly for 32..63-byte inputs (spec §4.7 and
// §9's open question: both structurings of the 16..31 fall-through
// must, and do, produce the same result; this module routes 16..31
// through its own dedicated branch in Hash rather than epilogue, which
// is equally conforming). msg is the full buffer being hashed; pos is
// the current read position; remaining is len(msg)-pos.
func epilogue(l *lanes, msg []byte, pos, remaining int) uint64 {
	if remaining > 31 {
		l.hash16(msg[pos:])
		l.hash16(msg[pos+16:])
		pos += 32
		remaining -= 32
	}
	if remaining > 15 {
		l.hash16(msg[pos:])
		pos += 16
		remaining -= 16
	}

	var r1, r2 uint64
	if remaining > 7 {
		r2 = l.s5 ^ padTailL4(msg, pos+8, remaining-8)
		r1 = l.s1 ^ load64(msg[pos:])
	} else {
		r1 = l.s1 ^ padTailL4(msg, pos, remaining)
		r2 = l.s5
	}

	return l.hashFin(r1, r2)
}
