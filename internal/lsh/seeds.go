package lsh

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strconv"
)

// maxSeed is the inclusive upper bound for generated seeds.
const maxSeed = 1 << 32

// SeedSet is the ordered list of MinHash seeds for a run. It is immutable once
// built; every document compared in a run must be signed with the same set.
type SeedSet struct {
	values []uint64
	text   []string
}

// NewSeedSet builds a SeedSet from explicit values.
func NewSeedSet(values []uint64) SeedSet {
	vals := make([]uint64, len(values))
	copy(vals, values)
	text := make([]string, len(vals))
	for i, v := range vals {
		text[i] = strconv.FormatUint(v, 10)
	}
	return SeedSet{values: vals, text: text}
}

// GenerateSeeds draws n seeds uniformly from [0, 2^32]. A zero source seed
// draws from crypto/rand so each run gets fresh seeds; any other value makes
// the set reproducible.
func GenerateSeeds(n int, sourceSeed uint64) SeedSet {
	if n <= 0 {
		return NewSeedSet(nil)
	}
	if sourceSeed == 0 {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err == nil {
			sourceSeed = binary.LittleEndian.Uint64(buf[:])
		}
	}
	rng := rand.New(rand.NewPCG(sourceSeed, sourceSeed^0x9e3779b97f4a7c15))
	values := make([]uint64, n)
	for i := range values {
		values[i] = rng.Uint64N(maxSeed + 1)
	}
	return NewSeedSet(values)
}

// Len returns the number of seeds.
func (s SeedSet) Len() int {
	return len(s.values)
}

// Values returns a copy of the seed values in order.
func (s SeedSet) Values() []uint64 {
	out := make([]uint64, len(s.values))
	copy(out, s.values)
	return out
}
