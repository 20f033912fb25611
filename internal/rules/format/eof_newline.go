package format

import (
	"strings"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// EOFNewline adds or removes the line break at the end of the file.
type EOFNewline struct {
	value bool
}

// Name returns the config key for this rule.
func (r *EOFNewline) Name() string {
	return "eof-newline"
}

// Syntaxes lists every dialect.
func (r *EOFNewline) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts returns the accepted values: true or false.
func (r *EOFNewline) Accepts() formatter.Accepts {
	return formatter.Accepts{Bools: []bool{true, false}}
}

// Configure stores the value.
func (r *EOFNewline) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.value = v.(bool)
	return nil
}

// Process rewrites the whitespace at the end of the stylesheet. Only one
// trailing line break is replaced; blank lines before it are kept.
func (r *EOFNewline) Process(ast *tree.Node, _ formatter.Settings) {
	last := ast.Last()
	if !last.Is(tree.TypeSpace) {
		last = tree.NewLeaf(tree.TypeSpace, "")
		last.Syntax = ast.Syntax
		ast.Append(last)
	}

	last.Content = strings.TrimSuffix(last.Content, "\n")
	if r.value {
		last.Content += "\n"
	}
}

// Detect reports whether the stylesheet ends with a line break.
func (r *EOFNewline) Detect(ast *tree.Node) []any {
	last := ast.Last()
	return []any{last.Is(tree.TypeSpace) && strings.Contains(last.Content, "\n")}
}
