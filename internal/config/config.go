package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Input contains the locations of the corpus and the gold pairs.
type Input struct {
	QuestionsPath string `toml:"questions_path"`
	GoldPath      string `toml:"gold_path"`
}

// LSH contains the similarity estimation parameters. They are fixed for the
// duration of a run.
type LSH struct {
	ShingleSize   int `toml:"shingle_size"`
	SignatureSize int `toml:"signature_size"`
	NumBands      int `toml:"num_bands"`
	// Hash selects the 32-bit hash: "md5" (reference compatible) or "xxhash".
	Hash string `toml:"hash"`
	// Seeds pins the MinHash seeds. When empty, signature_size seeds are
	// generated at run start.
	Seeds []uint64 `toml:"seeds"`
	// RandomSeed makes generated seeds reproducible. Zero means fresh seeds per run.
	RandomSeed uint64 `toml:"random_seed"`
}

// Normalize contains text preparation switches.
type Normalize struct {
	FoldDiacritics bool `toml:"fold_diacritics"`
}

// Engine contains parallel execution settings.
type Engine struct {
	// Workers bounds per-document parallelism. Zero uses all CPUs.
	Workers int `toml:"workers"`
}

// Results contains run history settings.
type Results struct {
	Enabled bool `toml:"enabled"`
}

// Metrics contains Prometheus export settings.
type Metrics struct {
	// Textfile, when set, receives the run's metrics in text exposition format.
	Textfile string `toml:"textfile"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`

	// MaxSizeMB rotates lshsim.log once a write would cross this size.
	MaxSizeMB int `toml:"max_size_mb"`

	// MaxBackups and RetentionDays prune rotated logs by count and age.
	// Zero keeps them.
	MaxBackups    int `toml:"max_backups"`
	RetentionDays int `toml:"retention_days"`
}

// Config encapsulates all configuration values for lshsim.
//
// Configuration sections by subsystem:
//   - Paths: data (results database, lock) and log directories
//   - Input: questions and gold pair CSV files
//   - LSH: shingle size, signature size, bands, hash and seeds
//   - Normalize: optional diacritic folding
//   - Engine: worker count
//   - Results: run history in SQLite
//   - Metrics: Prometheus textfile export
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Input     Input     `toml:"input"`
	LSH       LSH       `toml:"lsh"`
	Normalize Normalize `toml:"normalize"`
	Engine    Engine    `toml:"engine"`
	Results   Results   `toml:"results"`
	Metrics   Metrics   `toml:"metrics"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lshsim/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("lshsim.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ResultsDBPath returns the run history database location.
func (c *Config) ResultsDBPath() string {
	return filepath.Join(c.Paths.DataDir, "results.db")
}

// LockPath returns the run lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "lshsim.lock")
}

// LogFilePath returns the log file location, or "" when file logging is off.
func (c *Config) LogFilePath() string {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, "lshsim.log")
}

// RowsPerBand returns signature_size / num_bands. Only meaningful after Validate.
func (c *Config) RowsPerBand() int {
	if c.LSH.NumBands <= 0 {
		return 0
	}
	return c.LSH.SignatureSize / c.LSH.NumBands
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
