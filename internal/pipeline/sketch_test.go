package pipeline_test

import (
	"errors"
	"slices"
	"testing"

	"lshsim/internal/lsh"
	"lshsim/internal/pipeline"
	"lshsim/internal/testsupport"
)

var referenceSeeds = []uint64{3646798515, 20632853, 1924355997, 2813258669, 897037277, 1510520485}

func TestSketchMatchesReference(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLayout(4, 6, 3))
	cfg.LSH.Seeds = referenceSeeds

	sketcher, err := pipeline.NewSketcher(cfg)
	if err != nil {
		t.Fatalf("NewSketcher: %v", err)
	}
	sketch, err := sketcher.Sketch("How do I learn Go?")
	if err != nil {
		t.Fatalf("Sketch: %v", err)
	}

	if sketch.Normalized != "how do i learn go" {
		t.Fatalf("Normalized = %q", sketch.Normalized)
	}
	if sketch.Shingles != 14 {
		t.Fatalf("Shingles = %d, want 14", sketch.Shingles)
	}
	wantSig := lsh.Signature{292161562, 81713653, 505147154, 144632738, 392166437, 143742281}
	if !slices.Equal(sketch.Signature, wantSig) {
		t.Fatalf("Signature = %v, want %v", sketch.Signature, wantSig)
	}
	wantBands := lsh.BandVector{4268167087, 2235674578, 1544452545}
	if !slices.Equal(sketch.Bands, wantBands) {
		t.Fatalf("Bands = %v, want %v", sketch.Bands, wantBands)
	}
}

func TestSketchTrimsLikeCSVCells(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLayout(4, 6, 3))
	cfg.LSH.Seeds = referenceSeeds
	sketcher, err := pipeline.NewSketcher(cfg)
	if err != nil {
		t.Fatalf("NewSketcher: %v", err)
	}

	want, err := sketcher.Sketch("How do I learn Go?")
	if err != nil {
		t.Fatalf("Sketch: %v", err)
	}
	for _, text := range []string{" How do I learn Go?", "How do I learn Go?\t", "\n How do I learn Go? "} {
		got, err := sketcher.Sketch(text)
		if err != nil {
			t.Fatalf("Sketch(%q): %v", text, err)
		}
		if got.Normalized != want.Normalized {
			t.Fatalf("Sketch(%q).Normalized = %q, want %q", text, got.Normalized, want.Normalized)
		}
		if !slices.Equal(got.Signature, want.Signature) || !slices.Equal(got.Bands, want.Bands) {
			t.Fatalf("Sketch(%q) = %v / %v, want %v / %v", text, got.Signature, got.Bands, want.Signature, want.Bands)
		}
	}
}

func TestSketchConcurrentMatchesSketch(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLayout(4, 6, 3))
	cfg.LSH.Seeds = referenceSeeds
	sketcher, err := pipeline.NewSketcher(cfg)
	if err != nil {
		t.Fatalf("NewSketcher: %v", err)
	}

	tests := []struct {
		name    string
		text    string
		workers int
	}{
		{"reference", "How do I learn Go?", 4},
		{"all cpus", "How do I learn Go?", 0},
		{"single worker", "What is the best way to learn Go", 1},
		{"degenerate", "Go", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := sketcher.Sketch(tt.text)
			if err != nil {
				t.Fatalf("Sketch: %v", err)
			}
			got, err := sketcher.SketchConcurrent(tt.text, tt.workers)
			if err != nil {
				t.Fatalf("SketchConcurrent: %v", err)
			}
			if !slices.Equal(got.Signature, want.Signature) || !slices.Equal(got.Bands, want.Bands) {
				t.Fatalf("SketchConcurrent = %v / %v, want %v / %v", got.Signature, got.Bands, want.Signature, want.Bands)
			}
		})
	}
}

func TestSketchDegenerate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	sketcher, err := pipeline.NewSketcher(cfg)
	if err != nil {
		t.Fatalf("NewSketcher: %v", err)
	}
	sketch, err := sketcher.Sketch("Go!")
	if err != nil {
		t.Fatalf("Sketch: %v", err)
	}
	if !sketch.Degenerate() {
		t.Fatal("expected degenerate sketch")
	}
	for i, v := range sketch.Signature {
		if v != 0 {
			t.Fatalf("signature[%d] = %d, want 0", i, v)
		}
	}
}

func TestSketchFoldDiacritics(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Normalize.FoldDiacritics = true
	sketcher, err := pipeline.NewSketcher(cfg)
	if err != nil {
		t.Fatalf("NewSketcher: %v", err)
	}
	sketch, err := sketcher.Sketch("Café crème")
	if err != nil {
		t.Fatalf("Sketch: %v", err)
	}
	if sketch.Normalized != "cafe creme" {
		t.Fatalf("Normalized = %q, want %q", sketch.Normalized, "cafe creme")
	}
}

func TestNewSketcherRejectsBadLayout(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLayout(4, 10, 3))
	if _, err := pipeline.NewSketcher(cfg); !errors.Is(err, lsh.ErrBandsNotDivisor) {
		t.Fatalf("expected ErrBandsNotDivisor, got %v", err)
	}

	cfg = testsupport.NewConfig(t, testsupport.WithLayout(4, 6, 3))
	cfg.LSH.Seeds = referenceSeeds[:4]
	var cfgErr *lsh.ConfigError
	if _, err := pipeline.NewSketcher(cfg); !errors.As(err, &cfgErr) || cfgErr.Field != "lsh.seeds" {
		t.Fatalf("expected lsh.seeds ConfigError, got %v", err)
	}

	cfg = testsupport.NewConfig(t, testsupport.WithLayout(0, 6, 3))
	if _, err := pipeline.NewSketcher(cfg); !errors.Is(err, lsh.ErrNonPositive) {
		t.Fatalf("expected ErrNonPositive, got %v", err)
	}
}

func TestSketcherSharesSeeds(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	first, err := pipeline.NewSketcher(cfg)
	if err != nil {
		t.Fatalf("NewSketcher: %v", err)
	}
	second, err := pipeline.NewSketcher(cfg)
	if err != nil {
		t.Fatalf("NewSketcher: %v", err)
	}
	if !slices.Equal(first.Seeds().Values(), second.Seeds().Values()) {
		t.Fatal("random_seed should make seeds reproducible")
	}

	a, _ := first.Sketch("How can I improve my English speaking?")
	b, _ := second.Sketch("How can I improve my english speaking")
	if !lsh.Candidate(a.Bands, b.Bands) {
		t.Fatal("identical normalized texts must be candidates")
	}
}
