package lsh

import (
	"fmt"
	"math"

	"github.com/sourcegraph/conc/iter"
)

// Signature holds one minimum hash value per seed. Position i always belongs
// to seed i of the SeedSet that produced it.
type Signature []uint32

// Signer computes MinHash signatures for a fixed SeedSet and Hasher.
type Signer struct {
	seeds  SeedSet
	hasher Hasher
}

// NewSigner constructs a signer. A nil hasher selects MD5.
func NewSigner(seeds SeedSet, hasher Hasher) *Signer {
	if hasher == nil {
		hasher = MD5Hasher{}
	}
	return &Signer{seeds: seeds, hasher: hasher}
}

// Size returns the signature length produced by this signer.
func (s *Signer) Size() int {
	return s.seeds.Len()
}

// Sign computes the signature for a shingle sequence. For each seed the
// component is the minimum of hash(shingle + decimal(seed)) over all
// shingles. An empty sequence produces an all-zero signature; such signatures
// collide with each other in every band.
func (s *Signer) Sign(shingles []string) Signature {
	sig := make(Signature, s.seeds.Len())
	if len(shingles) == 0 {
		return sig
	}
	var buf []byte
	for i := range sig {
		sig[i], buf = s.minHash(shingles, i, buf)
	}
	return sig
}

// SignConcurrent computes the same signature as Sign, spreading seeds across
// up to workers goroutines. Each component is written to its seed's position.
func (s *Signer) SignConcurrent(shingles []string, workers int) Signature {
	if len(shingles) == 0 || workers <= 1 {
		return s.Sign(shingles)
	}
	positions := make([]int, s.seeds.Len())
	for i := range positions {
		positions[i] = i
	}
	mapper := iter.Mapper[int, uint32]{MaxGoroutines: workers}
	values := mapper.Map(positions, func(pos *int) uint32 {
		v, _ := s.minHash(shingles, *pos, nil)
		return v
	})
	return Signature(values)
}

func (s *Signer) minHash(shingles []string, seedIdx int, buf []byte) (uint32, []byte) {
	seed := s.seeds.text[seedIdx]
	minValue := uint32(math.MaxUint32)
	for _, shingle := range shingles {
		buf = append(buf[:0], shingle...)
		buf = append(buf, seed...)
		if h := s.hasher.Sum32(buf); h < minValue {
			minValue = h
		}
	}
	return minValue, buf
}

// Similarity returns the fraction of positions where two signatures agree,
// an estimate of the Jaccard similarity of the underlying shingle sets.
func Similarity(a, b Signature) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrSignatureLength, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a)), nil
}

// Jaccard computes the exact Jaccard similarity of two shingle sequences,
// treating each as a set. Two empty sequences are defined as identical.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
