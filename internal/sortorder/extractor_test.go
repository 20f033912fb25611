package sortorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stylecomb/internal/dialect"
	tu "github.com/donaldgifford/stylecomb/internal/testutil"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

func texts(nodes []*tree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text())
	}
	return out
}

func TestExtractTrivia(t *testing.T) {
	children := []*tree.Node{
		tu.S("\n  "), tu.Comment(" box "), tu.S("\n  "),
		tu.Decl("margin", "0"), tu.S(" "), tu.Semi(), tu.S(" "), tu.Comment(" same line "),
		tu.S("\n  "),
		tu.Decl("color", "red"),
		tu.S("\n"),
	}

	units, rest := NewExtractor(TableOf(nil), dialect.For(tree.SyntaxCSS)).Extract(children)
	require.Len(t, units, 2)

	margin := units[0]
	assert.Equal(t, "margin", margin.Key)
	assert.Equal(t, 3, margin.Index)
	assert.Equal(t, []string{"\n  ", " box ", "\n  "}, texts(margin.SpacesBeforeNode))
	assert.Equal(t, []string{" "}, texts(margin.SpacesBeforeDelimiter))
	assert.Same(t, children[5], margin.Delim)
	assert.Equal(t, []string{" ", " same line "}, texts(margin.SpacesAfterDelimiter))
	assert.Equal(t, 7, margin.EndIndex)

	color := units[1]
	assert.Equal(t, []string{"\n  "}, texts(color.SpacesBeforeNode))
	assert.Nil(t, color.Delim)
	assert.Equal(t, 9, color.EndIndex)

	assert.Equal(t, []string{"\n"}, texts(rest))
}

func TestExtractSplitsWhitespaceAtLineBreak(t *testing.T) {
	gap := tu.S(" \t\n  ")
	children := []*tree.Node{
		tu.S("\n  "), tu.Decl("margin", "0"), tu.Semi(), gap, tu.Decl("color", "red"), tu.Semi(),
	}

	units, rest := NewExtractor(TableOf(nil), dialect.For(tree.SyntaxCSS)).Extract(children)
	require.Len(t, units, 2)

	assert.Equal(t, []string{" \t"}, texts(units[0].SpacesAfterDelimiter))
	assert.Equal(t, 2, units[0].EndIndex)
	assert.Equal(t, []string{"\n  "}, texts(units[1].SpacesBeforeNode))
	assert.Empty(t, rest)

	assert.Equal(t, " \t\n  ", gap.Content, "input nodes are not modified")
	assert.Same(t, gap, children[3], "input slice is not modified")
}

func TestExtractSkipsUnsortable(t *testing.T) {
	media := tu.AtRule("media", tu.Ident("print"), tu.S(" "), tu.Block())
	nested := tu.Rule("b", tu.Block())
	children := []*tree.Node{
		tu.S("\n  "), tu.Decl("color", "red"), tu.Semi(),
		tu.S("\n  "), media,
		tu.S("\n  "), nested,
		tu.S("\n  "), tu.Decl("top", "0"), tu.Semi(),
		tu.S("\n"),
	}

	units, rest := NewExtractor(TableOf(nil), dialect.For(tree.SyntaxCSS)).Extract(children)
	require.Len(t, units, 2)
	assert.Equal(t, "color", units[0].Key)
	assert.Equal(t, "top", units[1].Key)

	require.Len(t, rest, 5)
	assert.Same(t, media, rest[1])
	assert.Same(t, nested, rest[3])
}

func TestExtractIndentedDelimiter(t *testing.T) {
	children := []*tree.Node{
		tu.S("  "), tu.Decl("margin", "0"), tu.Newline(),
		tu.S("  "), tu.Decl("color", "red"), tu.Newline(),
	}

	units, rest := NewExtractor(TableOf(nil), dialect.For(tree.SyntaxSASS)).Extract(children)
	require.Len(t, units, 2)
	assert.Equal(t, "\n", units[0].Delim.Content)
	assert.Empty(t, units[0].SpacesAfterDelimiter, "the indentation belongs to the next line")
	assert.Equal(t, []string{"  "}, texts(units[1].SpacesBeforeNode))
	assert.Empty(t, rest)
}

func TestExtractOnlyTrivia(t *testing.T) {
	children := []*tree.Node{tu.S("\n  "), tu.Comment(" empty ")}

	units, rest := NewExtractor(TableOf(nil), dialect.For(tree.SyntaxCSS)).Extract(children)
	assert.Empty(t, units)
	assert.Equal(t, children, rest)
}

func TestExtractClaimsEachChildOnce(t *testing.T) {
	children := []*tree.Node{
		tu.S("\n  "), tu.Decl("a", "1"), tu.Semi(), tu.S(" \n"), tu.S("  "), tu.Comment("c"),
		tu.S("\n  "), tu.Extend("x"), tu.Semi(), tu.S("\n  "), tu.Include("y"), tu.Semi(),
		tu.S("\n  "), tu.Rule("p", tu.Block()), tu.S("\n"),
	}

	units, rest := NewExtractor(TableOf(nil), dialect.For(tree.SyntaxSCSS)).Extract(children)

	var total string
	claimed := 0
	for _, u := range units {
		claimed += len(u.SpacesBeforeNode) + 1 + len(u.SpacesBeforeDelimiter) + len(u.SpacesAfterDelimiter)
		if u.Delim != nil {
			claimed++
		}
	}
	for _, n := range rest {
		total += n.Text()
	}

	assert.Len(t, units, 3)
	// The split of " \n" adds one node.
	assert.Equal(t, len(children)+1, claimed+len(rest))
	assert.Contains(t, total, "p")
}
