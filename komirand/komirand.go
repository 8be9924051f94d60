package komirand

import "github.com/avaneev/komihash/internal/mulimpl"

// prngConst is KOMIRAND's mixing constant: the bit pattern "10"
// replicated across all 64 bits, chosen for spectral neutrality and
// so the generator self-starts from the all-zero state.
const prngConst = 0xAAAAAAAAAAAAAAAA

// Next advances the two-word KOMIRAND state (s1, s2) in place and
// returns the sample for this step. Both words must be supplied by the
// caller; any initial state, including (0, 0), is self-starting within
// a few iterations (spec §4.9, §8 property 6).
func Next(s1, s2 *uint64) uint64 {
	lo := mulimpl.Mul128(*s1, *s2, s2)
	*s2 += prngConst
	*s1 = lo ^ *s2
	return *s1
}

// Source adapts KOMIRAND to math/rand.Source64, so a *rand.Rand can be
// backed by it directly: rand.New(komirand.NewSource(s1, s2)).
type Source struct {
	s1, s2 uint64
}

// NewSource returns a Source seeded with the given two-word state.
func NewSource(s1, s2 uint64) *Source {
	return &Source{s1: s1, s2: s2}
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	return Next(&s.s1, &s.s2)
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements rand.Source. It maps the single int64 seed math/rand
// supplies into a KOMIRAND state pair; KOMIRAND's self-starting
// property (spec §8 property 6) means any resulting pair is safe to
// use, including when seed is 0.
func (s *Source) Seed(seed int64) {
	s.s1 = prngConst ^ uint64(seed)
	s.s2 = uint64(seed)
}
