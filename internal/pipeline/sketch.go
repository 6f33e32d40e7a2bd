package pipeline

import (
	"fmt"
	"runtime"
	"strings"

	"lshsim/internal/config"
	"lshsim/internal/lsh"
	"lshsim/internal/textutil"
)

// Sketch is the LSH view of one text.
type Sketch struct {
	Normalized string         `json:"normalized"`
	Shingles   int            `json:"shingles"`
	Signature  lsh.Signature  `json:"signature"`
	Bands      lsh.BandVector `json:"bands"`
}

// Degenerate reports whether the text was too short to produce any shingle.
func (s Sketch) Degenerate() bool {
	return s.Shingles == 0
}

// Sketcher turns raw text into signatures and band vectors with one fixed
// set of parameters and seeds.
type Sketcher struct {
	shingleSize int
	fold        bool
	seeds       lsh.SeedSet
	signer      *lsh.Signer
	bander      *lsh.Bander
}

// NewSketcher builds a Sketcher from the LSH and normalization sections of
// cfg. Seeds come from lsh.seeds when pinned, otherwise they are generated
// from lsh.random_seed.
func NewSketcher(cfg *config.Config) (*Sketcher, error) {
	if cfg.LSH.ShingleSize <= 0 {
		return nil, &lsh.ConfigError{Field: "lsh.shingle_size", Err: lsh.ErrNonPositive}
	}
	hasher, err := lsh.NewHasher(cfg.LSH.Hash)
	if err != nil {
		return nil, err
	}
	bander, err := lsh.NewBander(cfg.LSH.SignatureSize, cfg.LSH.NumBands, hasher)
	if err != nil {
		return nil, err
	}

	var seeds lsh.SeedSet
	if len(cfg.LSH.Seeds) > 0 {
		seeds = lsh.NewSeedSet(cfg.LSH.Seeds)
	} else {
		seeds = lsh.GenerateSeeds(cfg.LSH.SignatureSize, cfg.LSH.RandomSeed)
	}
	if seeds.Len() != cfg.LSH.SignatureSize {
		return nil, &lsh.ConfigError{
			Field: "lsh.seeds",
			Err:   fmt.Errorf("%w: %d seeds for signature size %d", lsh.ErrSignatureLength, seeds.Len(), cfg.LSH.SignatureSize),
		}
	}

	return &Sketcher{
		shingleSize: cfg.LSH.ShingleSize,
		fold:        cfg.Normalize.FoldDiacritics,
		seeds:       seeds,
		signer:      lsh.NewSigner(seeds, hasher),
		bander:      bander,
	}, nil
}

// Seeds returns the seed set shared by every sketch.
func (s *Sketcher) Seeds() lsh.SeedSet {
	return s.seeds
}

// Bander exposes the band layout.
func (s *Sketcher) Bander() *lsh.Bander {
	return s.bander
}

// Sketch normalizes, shingles, signs and bands text. Surrounding whitespace
// is dropped first, the same way CSV cells are read.
func (s *Sketcher) Sketch(text string) (Sketch, error) {
	return s.sketch(text, s.signer.Sign)
}

// SketchConcurrent produces the same Sketch, signing seeds on up to workers
// goroutines, or on every CPU when workers is zero. It suits a handful of
// texts; a corpus run parallelizes across documents instead and uses Sketch.
func (s *Sketcher) SketchConcurrent(text string, workers int) (Sketch, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return s.sketch(text, func(shingles []string) lsh.Signature {
		return s.signer.SignConcurrent(shingles, workers)
	})
}

func (s *Sketcher) sketch(text string, sign func([]string) lsh.Signature) (Sketch, error) {
	normalized := textutil.Prepare(strings.TrimSpace(text), s.fold)
	shingles := textutil.Shingles(normalized, s.shingleSize)
	sig := sign(shingles)
	bands, err := s.bander.Bands(sig)
	if err != nil {
		return Sketch{}, err
	}
	return Sketch{
		Normalized: normalized,
		Shingles:   len(shingles),
		Signature:  sig,
		Bands:      bands,
	}, nil
}
