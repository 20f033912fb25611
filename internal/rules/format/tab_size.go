package format

import (
	"strings"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// TabSize replaces a tab in each whitespace node with spaces.
type TabSize struct {
	value string
}

// Name returns the config key for this rule.
func (r *TabSize) Name() string {
	return "tab-size"
}

// Syntaxes lists every dialect.
func (r *TabSize) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts returns the accepted values: a number of spaces.
func (r *TabSize) Accepts() formatter.Accepts {
	return formatter.Accepts{Number: true}
}

// Configure stores the value.
func (r *TabSize) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.value = v.(string)
	return nil
}

// RunBefore names the rule that must run after this one.
func (r *TabSize) RunBefore() string {
	return "vendor-prefix-align"
}

// Process replaces the first tab of every whitespace node.
func (r *TabSize) Process(ast *tree.Node, _ formatter.Settings) {
	ast.TraverseByType(tree.TypeSpace, func(n *tree.Node, _ int, _ *tree.Node) {
		n.Content = strings.Replace(n.Content, "\t", r.value, 1)
	})
}
