// Package sortorder reorders the declarations and other sortable members of
// every block in a stylesheet tree against a configured priority table.
//
// A block is processed in four steps: its children are cut into units
// (Extractor), each unit is keyed and looked up in the table (Classifier and
// Table), the units are ordered (Sequencer) and the block is rebuilt from
// the ordered units (Splicer). Comments and whitespace move with the unit
// they belong to.
package sortorder

import (
	"github.com/donaldgifford/stylecomb/internal/dialect"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// Sorter applies one order table to whole trees.
type Sorter struct {
	table        *Table
	alphabetical bool
}

// New returns a sorter. When alphabetical is set, keys missing from the
// table are ordered by name.
func New(table *Table, alphabetical bool) *Sorter {
	return &Sorter{table: table, alphabetical: alphabetical}
}

// Table returns the order table in use.
func (s *Sorter) Table() *Table {
	return s.table
}

// Process sorts every block of ast in place.
func (s *Sorter) Process(ast *tree.Node) {
	d := dialect.For(ast.Syntax)
	ast.TraverseByType(tree.TypeBlock, func(block *tree.Node, _ int, _ *tree.Node) {
		s.SortBlock(block, d)
	})
}

// SortBlock sorts the direct children of one block. Nested blocks are not
// entered.
func (s *Sorter) SortBlock(block *tree.Node, d dialect.Dialect) {
	units, rest := NewExtractor(s.table, d).Extract(block.Children)
	if len(units) == 0 {
		return
	}
	NewSequencer(s.table, s.alphabetical).Sort(units)
	NewSplicer(d).Splice(block, units, rest)
}

// Misplaced returns the first unit of block that belongs before an earlier
// one, or nil when the block is already in order. The block is not changed.
func (s *Sorter) Misplaced(block *tree.Node, d dialect.Dialect) *Unit {
	units, _ := NewExtractor(s.table, d).Extract(block.Children)
	seq := NewSequencer(s.table, s.alphabetical)

	var highest *Unit
	for _, u := range units {
		if highest != nil && seq.Compare(u, highest) < 0 {
			return u
		}
		if highest == nil || seq.Compare(u, highest) > 0 {
			highest = u
		}
	}
	return nil
}
