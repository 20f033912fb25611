package sortorder

import (
	"github.com/donaldgifford/stylecomb/internal/dialect"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// Reserved keys for units that are not plain properties.
const (
	KeyExtend   = "$extend"
	KeyInclude  = "$include"
	KeyVariable = "$variable"
	KeyImport   = "$import"
)

// Classifier decides which nodes are units and under which key they sort.
type Classifier struct {
	table   *Table
	dialect dialect.Dialect
}

// NewClassifier returns a classifier for trees of dialect d.
func NewClassifier(table *Table, d dialect.Dialect) Classifier {
	return Classifier{table: table, dialect: d}
}

// Key returns the sort key of n, or false when n does not sort.
func (c Classifier) Key(n *tree.Node) (string, bool) {
	switch n.Type {
	case tree.TypeExtend:
		return KeyExtend, true

	case tree.TypeInclude:
		return c.includeKey(n), true

	case tree.TypeDeclaration:
		property := n.First(tree.TypeProperty).First()
		if property == nil {
			return "", false
		}
		if property.Is(tree.TypeVariable) {
			return KeyVariable, true
		}
		return property.Text(), true

	case tree.TypeAtrule:
		if n.First(tree.TypeAtkeyword).First().Text() == "import" {
			return KeyImport, true
		}
	}

	return "", false
}

// includeKey splits includes into the mixins the table names explicitly
// ("$include breakpoint") and everything else ("$include").
func (c Classifier) includeKey(n *tree.Node) string {
	if name := c.mixinName(n); name != "" {
		if key := KeyInclude + " " + name; c.table.Has(key) {
			return key
		}
	}
	return KeyInclude
}

func (c Classifier) mixinName(n *tree.Node) string {
	switch c.dialect.IncludeSigil {
	case dialect.IncludeClass:
		// `.name()`: the class holds the ident.
		return n.First().First().Text()
	case dialect.IncludePlus:
		// `+name`; indented syntax also allows `@include name`.
		if n.First().Text() == "+" {
			return n.Get(1).Text()
		}
	}
	// `@include name`: keyword, space, ident.
	return n.Get(2).Text()
}

// startsUnit reports whether n may begin a unit: a candidate node or the
// trivia that can precede one.
func startsUnit(n *tree.Node) bool {
	return n.IsAny(
		tree.TypeAtrule,
		tree.TypeDeclaration,
		tree.TypeExtend,
		tree.TypeInclude,
		tree.TypeMultilineComment,
		tree.TypeSinglelineComment,
		tree.TypeSpace,
	)
}
