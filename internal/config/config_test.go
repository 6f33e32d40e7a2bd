package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"lshsim/internal/config"
	"lshsim/internal/lsh"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "lshsim")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.LSH.ShingleSize != 4 || cfg.LSH.SignatureSize != 50 || cfg.LSH.NumBands != 10 {
		t.Fatalf("unexpected LSH defaults: %+v", cfg.LSH)
	}
	if cfg.RowsPerBand() != 5 {
		t.Fatalf("RowsPerBand = %d, want 5", cfg.RowsPerBand())
	}
	if cfg.LSH.Hash != "md5" {
		t.Fatalf("unexpected default hash %q", cfg.LSH.Hash)
	}
	if !cfg.Results.Enabled {
		t.Fatal("expected results history enabled by default")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if err := cfg.ValidateInput(); err == nil {
		t.Fatal("expected missing input paths to fail ValidateInput")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "lshsim.toml")

	type payload struct {
		Input struct {
			QuestionsPath string `toml:"questions_path"`
			GoldPath      string `toml:"gold_path"`
		} `toml:"input"`
		LSH struct {
			ShingleSize   int      `toml:"shingle_size"`
			SignatureSize int      `toml:"signature_size"`
			NumBands      int      `toml:"num_bands"`
			Hash          string   `toml:"hash"`
			Seeds         []uint64 `toml:"seeds"`
		} `toml:"lsh"`
	}
	custom := payload{}
	custom.Input.QuestionsPath = filepath.Join(tempDir, "q.csv")
	custom.Input.GoldPath = filepath.Join(tempDir, "g.csv")
	custom.LSH.ShingleSize = 3
	custom.LSH.SignatureSize = 4
	custom.LSH.NumBands = 2
	custom.LSH.Hash = "XXHash"
	custom.LSH.Seeds = []uint64{1, 2, 3, 4294967296}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.LSH.Hash != "xxhash" {
		t.Fatalf("expected normalized hash name, got %q", cfg.LSH.Hash)
	}
	if len(cfg.LSH.Seeds) != 4 || cfg.LSH.Seeds[3] != 4294967296 {
		t.Fatalf("unexpected seeds: %v", cfg.LSH.Seeds)
	}
	if err := cfg.ValidateInput(); err != nil {
		t.Fatalf("ValidateInput failed: %v", err)
	}
}

func TestEnvVarOverridesInputPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LSHSIM_QUESTIONS", filepath.Join(dir, "env-questions.csv"))
	t.Setenv("LSHSIM_GOLD", filepath.Join(dir, "env-gold.csv"))

	cfg, _, _, err := config.Load(filepath.Join(dir, "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Input.QuestionsPath != filepath.Join(dir, "env-questions.csv") {
		t.Errorf("expected questions path from env, got %q", cfg.Input.QuestionsPath)
	}
	if cfg.Input.GoldPath != filepath.Join(dir, "env-gold.csv") {
		t.Errorf("expected gold path from env, got %q", cfg.Input.GoldPath)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "num_bands must evenly divide signature_size") {
		t.Fatalf("sample config missing band guidance: %s", contents)
	}

	cfg := config.Default()
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config does not validate: %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{"bands do not divide", func(c *config.Config) { c.LSH.SignatureSize = 10; c.LSH.NumBands = 3 }, lsh.ErrBandsNotDivisor},
		{"zero bands", func(c *config.Config) { c.LSH.NumBands = 0 }, lsh.ErrNonPositive},
		{"zero shingle size", func(c *config.Config) { c.LSH.ShingleSize = 0 }, lsh.ErrNonPositive},
		{"unknown hash", func(c *config.Config) { c.LSH.Hash = "crc" }, lsh.ErrUnknownHash},
		{"seed count mismatch", func(c *config.Config) { c.LSH.Seeds = []uint64{1, 2} }, nil},
		{"negative workers", func(c *config.Config) { c.Engine.Workers = -1 }, nil},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }, nil},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "trace" }, nil},
		{"negative log size", func(c *config.Config) { c.Logging.MaxSizeMB = -1 }, nil},
		{"negative log backups", func(c *config.Config) { c.Logging.MaxBackups = -1 }, nil},
		{"negative log retention", func(c *config.Config) { c.Logging.RetentionDays = -1 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAcceptsDivisibleLayout(t *testing.T) {
	cfg := config.Default()
	cfg.LSH.SignatureSize = 10
	cfg.LSH.NumBands = 5
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.RowsPerBand() != 2 {
		t.Fatalf("RowsPerBand = %d, want 2", cfg.RowsPerBand())
	}
}
