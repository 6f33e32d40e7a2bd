package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lshsim/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	dataDir    string
	configPath string
}

const testQuestions = `id,question
1,"How do I learn Go quickly?"
2,How do I learn Go quickly
3,"What is the capital of France?"
4,abc
5,xy
`

const testGold = `qid1,qid2,is_duplicate
1,2,1
4,5,0
1,3,0
1,99,1
`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("LSHSIM_QUESTIONS", "")
	t.Setenv("LSHSIM_GOLD", "")

	questions := testsupport.WriteFile(t, filepath.Join(base, "input", "questions.csv"), testQuestions)
	gold := testsupport.WriteFile(t, filepath.Join(base, "input", "gold.csv"), testGold)
	dataDir := filepath.Join(base, "data")

	configPath := filepath.Join(homeDir, ".config", "lshsim", "config.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = ""

[input]
questions_path = %q
gold_path = %q

[lsh]
random_seed = 7

[engine]
workers = 2

[logging]
level = "error"
`, dataDir, questions, gold)
	testsupport.WriteFile(t, configPath, content)

	return &cliTestEnv{baseDir: base, dataDir: dataDir, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
