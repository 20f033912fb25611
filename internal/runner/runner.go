// Package runner orchestrates the decode -> process -> output pipeline.
package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/donaldgifford/stylecomb/internal/config"
	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/log"
	"github.com/donaldgifford/stylecomb/internal/rules"
	"github.com/donaldgifford/stylecomb/internal/tree"
	"github.com/donaldgifford/stylecomb/pkg/diff"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

const stdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	// Files holds tree JSON paths or doublestar glob patterns.
	Files      []string
	Check      bool
	Diff       bool
	Write      bool
	Lint       bool
	Detect     bool
	ConfigPath string
	Quiet      bool
	Verbose    bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

type session struct {
	opts   *Options
	cfg    *config.Config
	engine *formatter.Engine
}

// Run executes the pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	log.SetOutput(opts.Stderr)
	switch {
	case opts.Verbose:
		log.SetLevel(log.LevelDebug)
	case opts.Quiet:
		log.SetLevel(log.LevelError)
	default:
		log.SetLevel(log.LevelInfo)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "stylecomb: %v\n", err)
		return ExitError
	}

	known := append(rules.Names(), config.Settings...)
	for _, u := range config.Unknown(cfg, known) {
		log.Warn("%s", u)
	}

	engine, err := formatter.NewEngine(rules.All(), cfg.Options)
	if err != nil {
		writeErr(opts.Stderr, "stylecomb: %v\n", err)
		return ExitError
	}
	s := &session{opts: opts, cfg: cfg, engine: engine}

	if len(opts.Files) == 0 {
		return s.runStdin()
	}

	paths, err := s.expand(opts.Files)
	if err != nil {
		writeErr(opts.Stderr, "stylecomb: %v\n", err)
		return ExitError
	}

	if opts.Detect {
		return s.detect(paths)
	}

	exitCode := ExitOK
	for _, path := range paths {
		code := s.runFile(path)
		if code > exitCode {
			exitCode = code
		}
	}
	return exitCode
}

// expand resolves glob patterns and drops excluded paths. Plain paths are
// kept as given so a missing file is reported when it is read.
func (s *session) expand(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches := []string{pattern}
		if strings.ContainsAny(pattern, "*?[{") {
			var err error
			matches, err = doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, fmt.Errorf("expanding %q: %w", pattern, err)
			}
		}

		for _, path := range matches {
			if s.cfg.Excluded(path) {
				log.Debug("excluded %s", path)
				continue
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func (s *session) runStdin() int {
	src, err := io.ReadAll(s.opts.Stdin)
	if err != nil {
		writeErr(s.opts.Stderr, "stylecomb: reading stdin: %v\n", err)
		return ExitError
	}

	ast, err := tree.Decode(bytes.NewReader(src))
	if err != nil {
		writeErr(s.opts.Stderr, "stylecomb: %s: %v\n", stdinName, err)
		return ExitError
	}

	if s.opts.Detect {
		return s.printDetected(ast)
	}
	if s.opts.Lint {
		return s.lint(stdinName, ast)
	}

	input := formatter.Write(ast)
	s.engine.Process(ast)
	output := formatter.Write(ast)

	switch {
	case s.opts.Check:
		if input != output {
			return ExitFormatDiff
		}
		return ExitOK

	case s.opts.Diff:
		if d := diff.Unified(stdinName, input, output); d != "" {
			writeOut(s.opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK

	case s.opts.Write:
		if err := tree.Encode(s.opts.Stdout, ast); err != nil {
			writeErr(s.opts.Stderr, "stylecomb: %s: %v\n", stdinName, err)
			return ExitError
		}
		return ExitOK
	}

	writeOut(s.opts.Stdout, output)
	return ExitOK
}

func (s *session) runFile(path string) int {
	ast, err := readTree(path)
	if err != nil {
		writeErr(s.opts.Stderr, "stylecomb: %v\n", err)
		return ExitError
	}

	log.Debug("%s (%s)", path, ast.Syntax)

	if s.opts.Lint {
		return s.lint(path, ast)
	}

	input := formatter.Write(ast)
	s.engine.Process(ast)
	output := formatter.Write(ast)

	if s.opts.Check {
		if input != output {
			if !s.opts.Quiet {
				writeErr(s.opts.Stderr, "%s\n", path)
			}
			return ExitFormatDiff
		}
		return ExitOK
	}

	if s.opts.Diff {
		if d := diff.Unified(path, input, output); d != "" {
			writeOut(s.opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK
	}

	if !s.opts.Write {
		writeOut(s.opts.Stdout, output)
		return ExitOK
	}

	if input == output {
		return ExitOK
	}

	var buf bytes.Buffer
	if err := tree.Encode(&buf, ast); err != nil {
		writeErr(s.opts.Stderr, "stylecomb: encoding %s: %v\n", path, err)
		return ExitError
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		writeErr(s.opts.Stderr, "stylecomb: writing %s: %v\n", path, err)
		return ExitError
	}
	return ExitOK
}

func (s *session) lint(name string, ast *tree.Node) int {
	issues := s.engine.Lint(ast)
	for _, issue := range issues {
		writeOut(s.opts.Stdout, fmt.Sprintf("%s:%d:%d: %s (%s)\n",
			name, issue.Line, issue.Column, issue.Message, issue.Rule))
	}
	if len(issues) > 0 {
		return ExitFormatDiff
	}
	return ExitOK
}

func (s *session) detect(paths []string) int {
	asts := make([]*tree.Node, 0, len(paths))
	for _, path := range paths {
		ast, err := readTree(path)
		if err != nil {
			writeErr(s.opts.Stderr, "stylecomb: %v\n", err)
			return ExitError
		}
		asts = append(asts, ast)
	}
	return s.printDetected(asts...)
}

func (s *session) printDetected(asts ...*tree.Node) int {
	detected := formatter.Detect(rules.All(), asts...)

	out, err := json.MarshalIndent(detected, "", "  ")
	if err != nil {
		writeErr(s.opts.Stderr, "stylecomb: %v\n", err)
		return ExitError
	}
	writeOut(s.opts.Stdout, string(out)+"\n")
	return ExitOK
}

func readTree(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ast, err := tree.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ast, nil
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
