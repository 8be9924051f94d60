package komihash

import "github.com/avaneev/komihash/internal/mulimpl"

// Lane constants: mantissa bits of pi, fixed forever. Changing any of
// these breaks bit-compatibility with every prior hash value.
const (
	seedS1 = 0x243F6A8885A308D3
	seedS2 = 0x13198A2E03707344
	seedS3 = 0xA4093822299F31D0
	seedS4 = 0x082EFA98EC4E6C89
	seedS5 = 0x452821E638D01377
	seedS6 = 0xBE5466CF34E90C6C
	seedS7 = 0xC0AC29B7C97C50DD
	seedS8 = 0x3F84D5B5B5470917
)

const (
	maskEven = 0x5555555555555555
	maskOdd  = 0xAAAAAAAAAAAAAAAA
)

// lanes holds the eight 64-bit PRNG state variables komihash mixes
// message bytes through. S1 and S5 are the primary pair, used alone
// for messages of 63 bytes or fewer; S2..S4 and S6..S8 are the
// auxiliary lanes the bulk loop derives once a message needs them.
type lanes struct {
	s1, s2, s3, s4 uint64
	s5, s6, s7, s8 uint64
}

// initSeed seeds the primary pair from useSeed and runs the mandatory
// pre-mix HASHROUND, diffusing seed entropy before any message byte is
// absorbed (without this round patterned inputs, e.g. Perlin-noise
// style lattice coordinates, would under-mix).
func (l *lanes) initSeed(useSeed uint64) {
	l.s1 = seedS1 ^ (useSeed & maskEven)
	l.s5 = seedS5 ^ (useSeed & maskOdd)
	l.hashRound()
}

// deriveAux derives the six auxiliary lanes from the already-mixed
// primary pair. Only needed once a message exceeds 63 bytes.
func (l *lanes) deriveAux() {
	l.s2 = seedS2 ^ l.s1
	l.s3 = seedS3 ^ l.s1
	l.s4 = seedS4 ^ l.s1
	l.s6 = seedS6 ^ l.s5
	l.s7 = seedS7 ^ l.s5
	l.s8 = seedS8 ^ l.s5
}

// hashRound is HASHROUND: a no-input mix of the primary pair.
func (l *lanes) hashRound() {
	l.s1 = mulimpl.Mul128(l.s1, l.s5, &l.s5)
	l.s1 ^= l.s5
}

// hash16 is HASH16: mixes the 16 bytes at m[0:16] into the primary pair.
func (l *lanes) hash16(m []byte) {
	l.s1 = mulimpl.Mul128(l.s1^load64(m), l.s5^load64(m[8:]), &l.s5)
	l.s1 ^= l.s5
}

// hashFin is HASHFIN: mixes the last (r1, r2) pair, runs one final
// HASHROUND, and returns the resulting digest.
func (l *lanes) hashFin(r1, r2 uint64) uint64 {
	l.s1 = mulimpl.Mul128(r1, r2, &l.s5)
	l.s1 ^= l.s5
	l.hashRound()
	return l.s1
}
