package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeInput(); err != nil {
		return err
	}
	if err := c.normalizeMetrics(); err != nil {
		return err
	}
	c.normalizeLSH()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeInput() error {
	if value, ok := os.LookupEnv("LSHSIM_QUESTIONS"); ok && strings.TrimSpace(value) != "" {
		c.Input.QuestionsPath = value
	}
	if value, ok := os.LookupEnv("LSHSIM_GOLD"); ok && strings.TrimSpace(value) != "" {
		c.Input.GoldPath = value
	}
	return c.ExpandInputPaths()
}

// ExpandInputPaths expands the input paths after they were overridden, for
// example by command line flags.
func (c *Config) ExpandInputPaths() error {
	var err error
	if c.Input.QuestionsPath, err = expandPath(strings.TrimSpace(c.Input.QuestionsPath)); err != nil {
		return fmt.Errorf("input.questions_path: %w", err)
	}
	if c.Input.GoldPath, err = expandPath(strings.TrimSpace(c.Input.GoldPath)); err != nil {
		return fmt.Errorf("input.gold_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeMetrics() error {
	var err error
	if c.Metrics.Textfile, err = expandPath(strings.TrimSpace(c.Metrics.Textfile)); err != nil {
		return fmt.Errorf("metrics.textfile: %w", err)
	}
	return nil
}

func (c *Config) normalizeLSH() {
	c.LSH.Hash = strings.ToLower(strings.TrimSpace(c.LSH.Hash))
	if c.LSH.Hash == "" {
		c.LSH.Hash = defaultHash
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
}
