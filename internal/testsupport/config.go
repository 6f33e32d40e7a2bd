package testsupport

import (
	"path/filepath"
	"testing"

	"lshsim/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Logging stays off the filesystem and seeds are reproducible.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = ""
	cfgVal.LSH.RandomSeed = 42
	cfgVal.Engine.Workers = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLayout overrides the shingle size, signature size and band count.
func WithLayout(shingleSize, signatureSize, numBands int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LSH.ShingleSize = shingleSize
		b.cfg.LSH.SignatureSize = signatureSize
		b.cfg.LSH.NumBands = numBands
	}
}

// WithInputs writes the questions and gold CSV bodies under the temp
// directory and points the config at them.
func WithInputs(questions, gold string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.QuestionsPath = WriteFile(b.t, filepath.Join(b.baseDir, "input", "questions.csv"), questions)
		b.cfg.Input.GoldPath = WriteFile(b.t, filepath.Join(b.baseDir, "input", "gold.csv"), gold)
	}
}

// WithResults toggles run history persistence.
func WithResults(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Results.Enabled = enabled
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
