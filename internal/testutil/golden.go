// Package testutil provides shared test helpers: node builders for
// hand-assembled trees and golden file testing.
package testutil

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// Golden file names inside a case directory.
const (
	InputFile    = "input.json"
	ConfigFile   = "config.yml"
	ExpectedFile = "expected.css"
)

// FormatFunc processes the tree JSON in input with the config file at
// configPath and returns the written stylesheet. configPath is empty when
// the case has no config file.
type FormatFunc func(t *testing.T, input []byte, configPath string) string

// Case is one golden directory.
type Case struct {
	Dir        string
	Input      []byte
	ConfigPath string
}

// ExpectedPath is where the case's expected output lives.
func (c *Case) ExpectedPath() string {
	return filepath.Join(c.Dir, ExpectedFile)
}

// LoadCase reads the input of the case in dir. The config file is optional.
func LoadCase(dir string) (*Case, error) {
	input, err := os.ReadFile(filepath.Join(dir, InputFile))
	if err != nil {
		return nil, err
	}

	c := &Case{Dir: dir, Input: input, ConfigPath: filepath.Join(dir, ConfigFile)}
	if _, err := os.Stat(c.ConfigPath); errors.Is(err, fs.ErrNotExist) {
		c.ConfigPath = ""
	}
	return c, nil
}

// RunGolden runs the golden case in dir: formatFn's output must equal
// expected.css, or replaces it when -update is set.
func RunGolden(t *testing.T, dir string, formatFn FormatFunc) {
	t.Helper()

	c, err := LoadCase(dir)
	if err != nil {
		t.Fatalf("loading golden case: %v", err)
	}

	actual := formatFn(t, c.Input, c.ConfigPath)

	if *Update {
		if err := os.WriteFile(c.ExpectedPath(), []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", c.ExpectedPath(), err)
		}
		t.Logf("updated golden file: %s", c.ExpectedPath())
		return
	}

	expected, err := os.ReadFile(c.ExpectedPath())
	if err != nil {
		t.Fatalf("failed to read %s: %v", c.ExpectedPath(), err)
	}
	if actual != string(expected) {
		t.Errorf("output mismatch for %s:\n--- expected\n%q\n--- actual\n%q", dir, expected, actual)
	}
}

// RunGoldenDir runs every case directory under testdataDir as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, formatFn FormatFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(testdataDir, entry.Name())
		t.Run(entry.Name(), func(t *testing.T) {
			RunGolden(t, dir, formatFn)
		})
	}
}
