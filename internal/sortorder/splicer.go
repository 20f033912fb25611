package sortorder

import (
	"regexp"
	"strings"

	"github.com/donaldgifford/stylecomb/internal/dialect"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

var emptyLines = regexp.MustCompile(`\n\s*\n`)

// Splicer rebuilds a block's children from sorted units.
type Splicer struct {
	dialect dialect.Dialect
}

// NewSplicer returns a splicer for trees of dialect d.
func NewSplicer(d dialect.Dialect) Splicer {
	return Splicer{dialect: d}
}

// Splice replaces the children of block with units in the given order
// followed by rest. Blank lines inside unit trivia are collapsed and a blank
// line is opened wherever the group changes. A declaration or extend that
// moved away from the end gains a delimiter if it had none.
func (s Splicer) Splice(block *tree.Node, units []*Unit, rest []*tree.Node) {
	if s.dialect.UsesIndentationDelimiter && onlyNewlines(rest) {
		rest = nil
	}

	out := make([]*tree.Node, 0, len(block.Children)+len(units))
	for i, u := range units {
		collapse(u.SpacesBeforeNode)
		collapse(u.SpacesBeforeDelimiter)
		collapse(u.SpacesAfterDelimiter)

		if i > 0 && u.Group > units[i-1].Group {
			s.openGroup(u)
		}

		out = append(out, u.SpacesBeforeNode...)
		out = append(out, u.Node)
		out = append(out, u.SpacesBeforeDelimiter...)
		switch {
		case u.Delim != nil:
			out = append(out, u.Delim)
		case i < len(units)-1 && u.Node.IsAny(tree.TypeDeclaration, tree.TypeExtend):
			out = append(out, s.delimiter(u.Node))
		}
		out = append(out, u.SpacesAfterDelimiter...)
	}
	out = append(out, rest...)

	block.Children = out
}

func (s Splicer) openGroup(u *Unit) {
	if len(u.SpacesBeforeNode) == 0 {
		return
	}
	first := u.SpacesBeforeNode[0]
	if !first.Is(tree.TypeSpace) {
		return
	}
	breaks := strings.Count(first.Content, "\n")
	if s.dialect.GroupBlankLine {
		breaks++
	}
	if breaks == 1 {
		first.Content = "\n" + first.Content
	}
}

func (s Splicer) delimiter(from *tree.Node) *tree.Node {
	n := tree.NewLeaf(tree.TypeDeclarationDelimiter, s.dialect.Delimiter())
	n.Syntax = from.Syntax
	return n
}

func collapse(trivia []*tree.Node) {
	for _, n := range trivia {
		if n.Is(tree.TypeSpace) {
			n.Content = replaceFirst(emptyLines, n.Content, "\n")
		}
	}
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

// onlyNewlines reports whether every node is a space holding a single line
// break.
func onlyNewlines(nodes []*tree.Node) bool {
	for _, n := range nodes {
		if !n.Is(tree.TypeSpace) || n.Content != "\n" {
			return false
		}
	}
	return true
}
