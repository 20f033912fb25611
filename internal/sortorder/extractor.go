package sortorder

import (
	"slices"
	"strings"

	"github.com/donaldgifford/stylecomb/internal/dialect"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// Unit is a sortable node together with the trivia that travels with it.
type Unit struct {
	// Index is the node's position among the block's children. Equal
	// priorities keep this order.
	Index int

	Node *tree.Node
	Key  string
	Resolved

	SpacesBeforeNode      []*tree.Node
	SpacesBeforeDelimiter []*tree.Node
	Delim                 *tree.Node
	SpacesAfterDelimiter  []*tree.Node

	// EndIndex is the last child position claimed by the unit.
	EndIndex int
}

// Name is the text the alphabetical fallback compares.
func (u *Unit) Name() string {
	return u.Node.First().First().Text()
}

// Extractor cuts a block's children into units.
type Extractor struct {
	classifier Classifier
	table      *Table
	dialect    dialect.Dialect
}

// NewExtractor returns an extractor that keys units against table.
func NewExtractor(table *Table, d dialect.Dialect) Extractor {
	return Extractor{
		classifier: NewClassifier(table, d),
		table:      table,
		dialect:    d,
	}
}

// Extract returns the units of children in source order and every child no
// unit claimed, also in order. children is left untouched: a whitespace node
// that has to be split between two units is replaced by fresh nodes in the
// returned slices.
func (e Extractor) Extract(children []*tree.Node) ([]*Unit, []*tree.Node) {
	view := slices.Clone(children)
	claimed := make([]bool, len(view))

	var units []*Unit
	for i := 0; i < len(view); i++ {
		if !startsUnit(view[i]) {
			continue
		}

		j := leadingEnd(view, i)
		if j == len(view) {
			// Only trivia remains.
			break
		}

		key, ok := e.classifier.Key(view[j])
		if !ok {
			i = j
			continue
		}

		u := &Unit{
			Index:            j,
			Node:             view[j],
			Key:              key,
			Resolved:         e.table.Resolve(key),
			SpacesBeforeNode: slices.Clone(view[i:j]),
		}
		for k := i; k <= j; k++ {
			claimed[k] = true
		}

		k := j + 1
		u.SpacesBeforeDelimiter, k = trailing(view, claimed, k)
		if k < len(view) && view[k].Is(tree.TypeDeclarationDelimiter) {
			u.Delim = view[k]
			claimed[k] = true
			k++
			if !e.dialect.UsesIndentationDelimiter {
				u.SpacesAfterDelimiter, k = trailing(view, claimed, k)
			}
		}

		u.EndIndex = k - 1
		units = append(units, u)
		i = u.EndIndex
	}

	var rest []*tree.Node
	for i, n := range view {
		if !claimed[i] {
			rest = append(rest, n)
		}
	}
	return units, rest
}

// leadingEnd returns the index of the first non-trivia child at or after i.
func leadingEnd(view []*tree.Node, i int) int {
	for i < len(view) && view[i].IsSpaceOrComment() {
		i++
	}
	return i
}

// trailing claims the trivia that stays on the unit's line, starting at k.
// At the first line break it stops; whitespace before the break goes with
// the unit and the remainder is left in view for the next unit.
func trailing(view []*tree.Node, claimed []bool, k int) ([]*tree.Node, int) {
	var out []*tree.Node
	for ; k < len(view); k++ {
		n := view[k]
		if n.IsComment() {
			out = append(out, n)
			claimed[k] = true
			continue
		}
		if !n.Is(tree.TypeSpace) {
			break
		}

		lb := strings.IndexByte(n.Content, '\n')
		if lb < 0 {
			out = append(out, n)
			claimed[k] = true
			continue
		}
		if lb > 0 {
			out = append(out, splitSpace(n, n.Content[:lb]))
			view[k] = splitSpace(n, n.Content[lb:])
		}
		break
	}
	return out, k
}

func splitSpace(from *tree.Node, content string) *tree.Node {
	n := tree.NewLeaf(tree.TypeSpace, content)
	n.Syntax = from.Syntax
	return n
}
