package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() *Node {
	return NewContainer(TypeStylesheet,
		NewContainer(TypeRuleset,
			NewContainer(TypeSelector, NewLeaf(TypeIdent, "a")),
			NewContainer(TypeBlock,
				NewLeaf(TypeSpace, " "),
				NewContainer(TypeRuleset,
					NewContainer(TypeBlock, NewLeaf(TypeMultilineComment, "x")),
				),
			),
		),
	)
}

func TestTraversePreOrder(t *testing.T) {
	var got []Type
	sample().Traverse(func(n *Node, _ int, _ *Node) {
		got = append(got, n.Type)
	})

	want := []Type{
		TypeRuleset, TypeSelector, TypeIdent, TypeBlock, TypeSpace,
		TypeRuleset, TypeBlock, TypeMultilineComment,
	}
	assert.Equal(t, want, got)
}

func TestTraverseSeesRewrittenChildren(t *testing.T) {
	root := sample()

	var comments int
	root.Traverse(func(n *Node, _ int, _ *Node) {
		if n.Is(TypeBlock) && n.Len() == 1 {
			n.Children = []*Node{NewLeaf(TypeMultilineComment, "a"), NewLeaf(TypeMultilineComment, "b")}
		}
		if n.IsComment() {
			comments++
		}
	})
	assert.Equal(t, 2, comments)
}

func TestTraverseByType(t *testing.T) {
	root := sample()

	var indexes []int
	var parents []Type
	root.TraverseByType(TypeRuleset, func(_ *Node, i int, parent *Node) {
		indexes = append(indexes, i)
		parents = append(parents, parent.Type)
	})
	assert.Equal(t, []int{0, 1}, indexes)
	assert.Equal(t, []Type{TypeStylesheet, TypeBlock}, parents)

	var count int
	root.TraverseByTypes([]Type{TypeSelector, TypeSpace}, func(*Node, int, *Node) { count++ })
	assert.Equal(t, 2, count)
}

func TestForEachAndEachReverse(t *testing.T) {
	n := NewContainer(TypeBlock,
		NewLeaf(TypeSpace, " "),
		NewLeaf(TypeIdent, "a"),
		NewLeaf(TypeSpace, "\n"),
		NewLeaf(TypeIdent, "b"),
	)

	var spaces []int
	n.ForEach(TypeSpace, func(i int, _ *Node) { spaces = append(spaces, i) })
	assert.Equal(t, []int{0, 2}, spaces)

	var all int
	n.ForEach("", func(int, *Node) { all++ })
	assert.Equal(t, 4, all)

	var seen []int
	n.EachReverse(func(i int, child *Node) bool {
		seen = append(seen, i)
		return child.Is(TypeIdent)
	})
	assert.Equal(t, []int{3, 2}, seen)
}

func TestTriviaPredicates(t *testing.T) {
	assert.True(t, NewLeaf(TypeSpace, " ").IsSpaceOrComment())
	assert.True(t, NewLeaf(TypeSinglelineComment, "x").IsComment())
	assert.False(t, NewLeaf(TypeSpace, " ").IsComment())
	assert.False(t, NewLeaf(TypeIdent, "x").IsSpaceOrComment())
}
