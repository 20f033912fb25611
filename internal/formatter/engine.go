package formatter

import (
	"github.com/donaldgifford/stylecomb/internal/log"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// Run applies each rule in order to the tree, skipping rules that do not
// support the tree's syntax.
func Run(ast *tree.Node, settings Settings, rules []Rule) {
	for _, rule := range rules {
		if !Supports(rule, ast.Syntax) {
			log.Debug("skipping %s: not available for %s", rule.Name(), ast.Syntax)
			continue
		}
		rule.Process(ast, settings)
	}
}

// Engine holds the rules selected and configured from a set of option
// values.
type Engine struct {
	rules    []Rule
	settings Settings
}

// NewEngine configures every rule in available that has a value in options.
// Rules keep the order of available. All values are validated before the
// engine is returned, so a bad value never leaves a half-processed tree.
func NewEngine(available []Rule, options map[string]any) (*Engine, error) {
	e := &Engine{settings: Settings(options)}

	for _, rule := range available {
		value, ok := options[rule.Name()]
		if !ok {
			continue
		}
		if err := rule.Configure(value); err != nil {
			return nil, &ConfigError{Option: rule.Name(), Err: err}
		}
		e.rules = append(e.rules, rule)
	}

	return e, nil
}

// Rules returns the configured rules in execution order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Settings returns the configuration the rules read from.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Process rewrites the tree in place.
func (e *Engine) Process(ast *tree.Node) {
	Run(ast, e.settings, e.rules)
}

// Lint reports the violations found by every configured rule that can lint.
func (e *Engine) Lint(ast *tree.Node) []Issue {
	var issues []Issue
	for _, rule := range e.rules {
		linter, ok := rule.(Linter)
		if !ok || !Supports(rule, ast.Syntax) {
			continue
		}
		issues = append(issues, linter.Lint(ast, e.settings)...)
	}
	return issues
}

// Detect infers option values from existing trees. For each rule that can
// detect, the most frequent value across all trees wins; ties go to the
// value seen first. Rules with nothing to report are omitted.
func Detect(rules []Rule, asts ...*tree.Node) map[string]any {
	detected := make(map[string]any)

	for _, rule := range rules {
		detector, ok := rule.(Detector)
		if !ok {
			continue
		}

		var values []any
		for _, ast := range asts {
			if Supports(rule, ast.Syntax) {
				values = append(values, detector.Detect(ast)...)
			}
		}

		if v, ok := mostFrequent(values); ok {
			detected[rule.Name()] = v
		}
	}

	return detected
}

func mostFrequent(values []any) (any, bool) {
	if len(values) == 0 {
		return nil, false
	}

	counts := make(map[any]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := values[0], 0
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, true
}
