package formatter

import (
	"slices"

	"github.com/donaldgifford/stylecomb/internal/tree"
)

// Rule is a single formatting option. Rules are applied in registered order
// (adjusted by RunBefore hints).
type Rule interface {
	// Name returns the config key for this rule (e.g., "sort-order").
	Name() string

	// Syntaxes lists the dialects the rule applies to.
	Syntaxes() []tree.Syntax

	// Accepts describes the configuration values the rule takes.
	Accepts() Accepts

	// Configure validates and stores the configured value. It is called
	// before any tree is processed.
	Configure(value any) error

	// Process rewrites the tree in place.
	Process(ast *tree.Node, settings Settings)
}

// Detector is implemented by rules that can infer their value from an
// existing tree.
type Detector interface {
	Detect(ast *tree.Node) []any
}

// Linter is implemented by rules that can report violations without
// rewriting the tree.
type Linter interface {
	Lint(ast *tree.Node, settings Settings) []Issue
}

// Ordered is implemented by rules that must run before another rule.
type Ordered interface {
	// RunBefore names the rule this one must precede.
	RunBefore() string
}

// Issue is a single lint violation.
type Issue struct {
	Rule    string
	Message string
	Line    int
	Column  int
}

// Supports reports whether r applies to syntax s.
func Supports(r Rule, s tree.Syntax) bool {
	return slices.Contains(r.Syntaxes(), s)
}
