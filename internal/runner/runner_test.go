package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/donaldgifford/stylecomb/internal/rules" // Register rules via init().
	tu "github.com/donaldgifford/stylecomb/internal/testutil"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

const (
	orderConfig = "sort-order:\n  - [position]\n  - [color]\n"
	sortedText  = "a {\n  position: absolute;\n\n  color: red;\n}"
)

func unsortedTree() *tree.Node {
	return tu.Sheet(tree.SyntaxCSS, tu.Rule("a", tu.Block(
		tu.S("\n  "), tu.Decl("color", "red"), tu.Semi(),
		tu.S("\n  "), tu.Decl("position", "absolute"), tu.Semi(),
		tu.S("\n"),
	)))
}

func sortedTree() *tree.Node {
	return tu.Sheet(tree.SyntaxCSS, tu.Rule("a", tu.Block(
		tu.S("\n  "), tu.Decl("position", "absolute"), tu.Semi(),
		tu.S("\n\n  "), tu.Decl("color", "red"), tu.Semi(),
		tu.S("\n"),
	)))
}

func writeTree(t *testing.T, path string, ast *tree.Node) {
	t.Helper()
	var buf bytes.Buffer
	if err := tree.Encode(&buf, ast); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// setup writes the order config and the given trees into a temp dir and
// returns the config path and the tree paths.
func setup(t *testing.T, trees map[string]*tree.Node) (string, map[string]string) {
	t.Helper()
	dir := t.TempDir()

	configPath := filepath.Join(dir, "stylecomb.yml")
	if err := os.WriteFile(configPath, []byte(orderConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	paths := make(map[string]string, len(trees))
	for name, ast := range trees {
		paths[name] = filepath.Join(dir, name)
		writeTree(t, paths[name], ast)
	}
	return configPath, paths
}

func TestRunFormatToStdout(t *testing.T) {
	configPath, paths := setup(t, map[string]*tree.Node{"a.json": unsortedTree()})

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{paths["a.json"]},
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d (stderr: %s)", code, ExitOK, stderr.String())
	}
	if stdout.String() != sortedText {
		t.Errorf("stdout: got %q, want %q", stdout.String(), sortedText)
	}
}

func TestRunCheck(t *testing.T) {
	configPath, paths := setup(t, map[string]*tree.Node{
		"bad.json":  unsortedTree(),
		"good.json": sortedTree(),
	})

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{paths["bad.json"]},
		Check:      true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("check unsorted: got %d, want %d", code, ExitFormatDiff)
	}
	if !strings.Contains(stderr.String(), "bad.json") {
		t.Errorf("check should name the file on stderr, got: %s", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = Run(&Options{
		Files:      []string{paths["good.json"]},
		Check:      true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitOK {
		t.Errorf("check sorted: got %d, want %d (stderr: %s)", code, ExitOK, stderr.String())
	}
}

func TestRunDiff(t *testing.T) {
	configPath, paths := setup(t, map[string]*tree.Node{"a.json": unsortedTree()})

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{paths["a.json"]},
		Diff:       true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}
	if !strings.Contains(stdout.String(), "-  color: red;\n") {
		t.Errorf("diff missing old line:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "+  color: red;\n") {
		t.Errorf("diff missing new line:\n%s", stdout.String())
	}
}

func TestRunWrite(t *testing.T) {
	configPath, paths := setup(t, map[string]*tree.Node{"a.json": unsortedTree()})

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{paths["a.json"]},
		Write:      true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d (stderr: %s)", code, ExitOK, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("write mode should not print, got: %s", stdout.String())
	}

	stdout.Reset()
	code = Run(&Options{
		Files:      []string{paths["a.json"]},
		Check:      true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})
	if code != ExitOK {
		t.Errorf("rewritten tree should be sorted, check got %d", code)
	}
}

func TestRunLint(t *testing.T) {
	configPath, paths := setup(t, map[string]*tree.Node{
		"bad.json":  unsortedTree(),
		"good.json": sortedTree(),
	})

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{paths["bad.json"], paths["good.json"]},
		Lint:       true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}
	want := paths["bad.json"] + ":0:0: Declarations are out of order: position (sort-order)\n"
	if stdout.String() != want {
		t.Errorf("lint output: got %q, want %q", stdout.String(), want)
	}
}

func TestRunDetect(t *testing.T) {
	ast := tu.Sheet(tree.SyntaxCSS, tu.Rule("a", tu.Block(
		tu.DeclValue("color", tu.Color("FFF")), tu.Semi(),
	)))
	configPath, paths := setup(t, map[string]*tree.Node{"a.json": ast})

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{paths["a.json"]},
		Detect:     true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d (stderr: %s)", code, ExitOK, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"color-case": "upper"`) {
		t.Errorf("detect output missing color-case:\n%s", stdout.String())
	}
}

func TestRunStdin(t *testing.T) {
	configPath, _ := setup(t, nil)

	var in, stdout, stderr bytes.Buffer
	if err := tree.Encode(&in, unsortedTree()); err != nil {
		t.Fatal(err)
	}

	code := Run(&Options{
		ConfigPath: configPath,
		Stdin:      &in,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d (stderr: %s)", code, ExitOK, stderr.String())
	}
	if stdout.String() != sortedText {
		t.Errorf("stdout: got %q, want %q", stdout.String(), sortedText)
	}
}

func TestRunGlobAndExclude(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := orderConfig + "exclude:\n  - \"src/vendor/**\"\n"
	if err := os.WriteFile("stylecomb.yml", []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join("src", "vendor"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTree(t, filepath.Join("src", "good.json"), sortedTree())
	writeTree(t, filepath.Join("src", "vendor", "bad.json"), unsortedTree())

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:   []string{"src/**/*.json"},
		Check:   true,
		Verbose: true,
		Stdout:  &stdout,
		Stderr:  &stderr,
	})

	if code != ExitOK {
		t.Errorf("excluded tree should not be checked, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "excluded src/vendor/bad.json") {
		t.Errorf("expected the exclusion to be logged, got: %s", stderr.String())
	}
}

func TestRunUnknownOptionWarns(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "stylecomb.yml")
	if err := os.WriteFile(configPath, []byte("colour-case: lower\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var in, stdout, stderr bytes.Buffer
	if err := tree.Encode(&in, sortedTree()); err != nil {
		t.Fatal(err)
	}

	code := Run(&Options{
		ConfigPath: configPath,
		Stdin:      &in,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}
	if !strings.Contains(stderr.String(), `did you mean "color-case"?`) {
		t.Errorf("expected a suggestion on stderr, got: %s", stderr.String())
	}
}

func TestRunInvalidOption(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "stylecomb.yml")
	if err := os.WriteFile(configPath, []byte("color-case: sideways\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		ConfigPath: configPath,
		Stdin:      strings.NewReader("{}"),
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr.String(), "color-case") {
		t.Errorf("error should name the option, got: %s", stderr.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{"/nonexistent/path/a.json"},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
}

func TestRunMultipleFiles(t *testing.T) {
	configPath, paths := setup(t, map[string]*tree.Node{
		"bad.json":  unsortedTree(),
		"good.json": sortedTree(),
	})

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{paths["good.json"], paths["bad.json"]},
		Check:      true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	// One tree needs sorting, so exit code should be 1.
	if code != ExitFormatDiff {
		t.Errorf("exit code: got %d, want %d", code, ExitFormatDiff)
	}
}

func TestRunVerbose(t *testing.T) {
	configPath, paths := setup(t, map[string]*tree.Node{"a.json": sortedTree()})

	var stdout, stderr bytes.Buffer
	_ = Run(&Options{
		Files:      []string{paths["a.json"]},
		Verbose:    true,
		ConfigPath: configPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})

	if !strings.Contains(stderr.String(), "a.json (css)") {
		t.Errorf("verbose mode should log the file to stderr, got: %s", stderr.String())
	}
}
