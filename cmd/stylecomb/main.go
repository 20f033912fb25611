// Package main is the entry point for stylecomb.
package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/donaldgifford/stylecomb/internal/rules" // Register rules via init().
	"github.com/donaldgifford/stylecomb/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	check := flag.Bool("check", false, "exit 1 if any stylesheet would change")
	diffFlag := flag.Bool("diff", false, "print unified diff of changes")
	write := flag.Bool("w", false, "write the processed tree back to its file")
	lint := flag.Bool("lint", false, "report violations instead of fixing them")
	detect := flag.Bool("detect", false, "print the options inferred from the inputs")
	configPath := flag.String("config", "", "path to config file")
	quiet := flag.Bool("q", false, "suppress informational output")
	verbose := flag.Bool("v", false, "print files as they are processed")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("stylecomb %s (%s) %s\n", version, commit, date)
		return
	}

	opts := &runner.Options{
		Files:      flag.Args(),
		Check:      *check,
		Diff:       *diffFlag,
		Write:      *write,
		Lint:       *lint,
		Detect:     *detect,
		ConfigPath: *configPath,
		Quiet:      *quiet,
		Verbose:    *verbose,
	}

	os.Exit(runner.Run(opts))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: stylecomb [flags] [trees...]

Rewrite stylesheet syntax trees (JSON, one per file) and print the result.
Arguments may be glob patterns such as "src/**/*.json". With no arguments,
a tree is read from stdin.

Flags:
`)
	flag.PrintDefaults()
}
