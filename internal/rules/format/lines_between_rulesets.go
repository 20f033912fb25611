package format

import (
	"fmt"
	"slices"
	"strings"

	"github.com/donaldgifford/stylecomb/internal/dialect"
	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// LinesBetweenRulesets puts a fixed number of blank lines between sibling
// rulesets and at-rules.
type LinesBetweenRulesets struct {
	lines int

	newlines string
	dialect  dialect.Dialect
}

// Name returns the config key for this rule.
func (r *LinesBetweenRulesets) Name() string {
	return "lines-between-rulesets"
}

// Syntaxes lists every dialect.
func (r *LinesBetweenRulesets) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts returns the accepted values: a number of blank lines.
func (r *LinesBetweenRulesets) Accepts() formatter.Accepts {
	return formatter.Accepts{Number: true}
}

// Configure stores the value. It is kept as a count rather than converted
// to spaces.
func (r *LinesBetweenRulesets) Configure(value any) error {
	n, ok := formatter.AsInt(value)
	if !ok {
		return fmt.Errorf("%w: value must be a number, got %v (%T)", formatter.ErrInvalidValue, value, value)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative number %d", formatter.ErrInvalidValue, n)
	}
	r.lines = n
	return nil
}

// RunBefore names the rule that must run after this one.
func (r *LinesBetweenRulesets) RunBefore() string {
	return "block-indent"
}

// Process rewrites the whitespace in front of every ruleset and at-rule that
// is not the first member of its parent.
func (r *LinesBetweenRulesets) Process(ast *tree.Node, _ formatter.Settings) {
	r.dialect = dialect.For(ast.Syntax)

	// Indented syntax ends the previous line with a delimiter of its own.
	count := r.lines + 1
	if r.dialect.UsesIndentationDelimiter {
		count = r.lines
	}
	r.newlines = strings.Repeat("\n", count)

	if ast.Is(tree.TypeStylesheet) {
		r.processMembers(ast)
	}
	r.processBlock(ast)
}

func (r *LinesBetweenRulesets) processBlock(x *tree.Node) {
	x.ForEach("", func(_ int, n *tree.Node) {
		if n.Is(tree.TypeBlock) {
			r.processMembers(n)
		}
		r.processBlock(n)
	})
}

// processMembers handles at-rules before rulesets, matching the order the
// two kinds are looked up in.
func (r *LinesBetweenRulesets) processMembers(parent *tree.Node) {
	for _, t := range []tree.Type{tree.TypeAtrule, tree.TypeRuleset} {
		var members []*tree.Node
		parent.ForEach(t, func(_ int, n *tree.Node) {
			members = append(members, n)
		})
		for _, m := range members {
			r.insertNewlines(parent, slices.Index(parent.Children, m))
		}
	}
}

func (r *LinesBetweenRulesets) insertNewlines(parent *tree.Node, index int) {
	prev := parent.Get(index - 1)
	if prev == nil || !hasContentBefore(parent, index) {
		return
	}

	if r.prevLineIsComment(parent, index) || prev.IsComment() {
		prev = parent.Get(r.latestNonComment(parent, index))
		if prev == nil {
			return
		}
	}

	if prev.Is(tree.TypeSpace) {
		content := prev.Content
		if lb := strings.LastIndexByte(content, '\n'); lb >= 0 {
			content = content[lb+1:]
		}
		prev.Content = r.newlines + content
		return
	}

	space := tree.NewLeaf(tree.TypeSpace, r.newlines)
	space.Syntax = parent.Syntax
	if prev.IsLeaf() {
		parent.Insert(slices.Index(parent.Children, prev)+1, space)
		return
	}
	prev.Append(space)
}

// hasContentBefore reports whether anything but whitespace precedes index.
func hasContentBefore(parent *tree.Node, index int) bool {
	for i := 0; i < index; i++ {
		if !parent.Get(i).Is(tree.TypeSpace) {
			return true
		}
	}
	return false
}

// prevLineIsComment reports whether the line above the member at index is a
// comment.
func (r *LinesBetweenRulesets) prevLineIsComment(parent *tree.Node, index int) bool {
	if index < r.dialect.CommentLookback() {
		return false
	}
	prev := parent.Get(index - 1)
	if r.dialect.UsesIndentationDelimiter {
		return parent.Get(index-3).IsComment() &&
			parent.Get(index-2).Content == "\n" &&
			prev.Is(tree.TypeSpace)
	}
	return parent.Get(index-2).IsComment() && prev.Is(tree.TypeSpace)
}

// latestNonComment walks back over comment lines and returns the index of
// the node before them, or -1.
func (r *LinesBetweenRulesets) latestNonComment(parent *tree.Node, index int) int {
	jump := r.dialect.CommentLookback()
	for i := index; i >= 0; {
		if r.prevLineIsComment(parent, i) {
			i -= jump
			continue
		}
		if !parent.Get(i - 1).IsComment() {
			return i - 1
		}
		i--
	}
	return -1
}
