package format

import (
	"regexp"
	"strings"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

var whitespaceValue = regexp.MustCompile(`^[ \t\n]*$`)

// SpaceBeforeClosingBrace sets the whitespace in front of `}`.
type SpaceBeforeClosingBrace struct {
	value string
}

// Name returns the config key for this rule.
func (r *SpaceBeforeClosingBrace) Name() string {
	return "space-before-closing-brace"
}

// Syntaxes lists the dialects with braces.
func (r *SpaceBeforeClosingBrace) Syntaxes() []tree.Syntax {
	return []tree.Syntax{tree.SyntaxCSS, tree.SyntaxLESS, tree.SyntaxSCSS}
}

// Accepts returns the accepted values: a number of spaces or whitespace.
func (r *SpaceBeforeClosingBrace) Accepts() formatter.Accepts {
	return formatter.Accepts{Number: true, Pattern: whitespaceValue}
}

// Configure stores the value.
func (r *SpaceBeforeClosingBrace) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.value = v.(string)
	return nil
}

// RunBefore names the rule that must run after this one.
func (r *SpaceBeforeClosingBrace) RunBefore() string {
	return "tab-size"
}

// Process sets the trailing whitespace of every block. A value with a line
// break is followed by one block-indent per nesting level above the first.
func (r *SpaceBeforeClosingBrace) Process(ast *tree.Node, settings formatter.Settings) {
	r.processBlock(ast, 0, settings.Whitespace("block-indent"))
}

func (r *SpaceBeforeClosingBrace) processBlock(x *tree.Node, level int, indent string) {
	x.ForEach("", func(_ int, n *tree.Node) {
		if !n.IsAny(tree.TypeBlock, tree.TypeAtrulers) {
			r.processBlock(n, level, indent)
			return
		}

		level++

		value := r.value
		if strings.Contains(value, "\n") && indent != "" {
			value += strings.Repeat(indent, level-1)
		}

		if ws := lastWhitespace(n); ws != nil {
			ws.Content = value
		} else if value != "" {
			space := tree.NewLeaf(tree.TypeSpace, value)
			space.Syntax = n.Syntax
			n.Append(space)
		}

		r.processBlock(n, level, indent)
	})
}

// Detect reports the whitespace each block ends with.
func (r *SpaceBeforeClosingBrace) Detect(ast *tree.Node) []any {
	var values []any
	ast.TraverseByTypes([]tree.Type{tree.TypeBlock, tree.TypeAtrulers}, func(n *tree.Node, _ int, _ *tree.Node) {
		if ws := lastWhitespace(n); ws != nil {
			values = append(values, ws.Content)
		} else {
			values = append(values, "")
		}
	})
	return values
}

// lastWhitespace follows last children down from n to a whitespace node. It
// stops at a nested block or an empty node.
func lastWhitespace(n *tree.Node) *tree.Node {
	for {
		last := n.Last()
		if last == nil || last.IsLeaf() && last.Content == "" || last.Is(tree.TypeBlock) {
			return nil
		}
		if last.Is(tree.TypeSpace) {
			return last
		}
		n = last
	}
}
