package config

import (
	"errors"
	"fmt"

	"lshsim/internal/lsh"
)

// Validate ensures the configuration is usable. Input paths are not required
// here because commands such as `tune` never read the corpus; see ValidateInput.
func (c *Config) Validate() error {
	if err := c.validateLSH(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLSH() error {
	if c.LSH.ShingleSize <= 0 {
		return &lsh.ConfigError{Field: "lsh.shingle_size", Err: lsh.ErrNonPositive}
	}
	if _, err := lsh.NewBander(c.LSH.SignatureSize, c.LSH.NumBands, nil); err != nil {
		return err
	}
	if _, err := lsh.NewHasher(c.LSH.Hash); err != nil {
		return err
	}
	if n := len(c.LSH.Seeds); n != 0 && n != c.LSH.SignatureSize {
		return &lsh.ConfigError{
			Field: "lsh.seeds",
			Err:   fmt.Errorf("got %d seeds, signature_size is %d", n, c.LSH.SignatureSize),
		}
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.Workers < 0 {
		return errors.New("engine.workers must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB <= 0 {
		return errors.New("logging.max_size_mb must be positive")
	}
	if c.Logging.MaxBackups < 0 {
		return errors.New("logging.max_backups must not be negative")
	}
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must not be negative")
	}
	return nil
}

// ValidateInput ensures both input files are configured.
func (c *Config) ValidateInput() error {
	if c.Input.QuestionsPath == "" {
		return errors.New("input.questions_path is required (set it in the config, LSHSIM_QUESTIONS, or --questions)")
	}
	if c.Input.GoldPath == "" {
		return errors.New("input.gold_path is required (set it in the config, LSHSIM_GOLD, or --gold)")
	}
	return nil
}
