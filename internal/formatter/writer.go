// Package formatter provides the rule contract, the engine that applies
// configured rules to a tree, and the tree writer.
package formatter

import (
	"strings"

	"github.com/donaldgifford/stylecomb/internal/tree"
)

// Write serializes a tree back into stylesheet text.
//
// Leaves emit their content verbatim. Containers emit their children in
// order, wrapped in whatever punctuation the parser strips from that node
// type (braces for blocks, `#` for colors, and so on).
func Write(n *tree.Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *tree.Node) {
	if n == nil {
		return
	}

	prefix, suffix := wrappers(n)
	b.WriteString(prefix)
	if n.IsLeaf() {
		b.WriteString(n.Content)
	} else {
		for _, c := range n.Children {
			writeNode(b, c)
		}
	}
	b.WriteString(suffix)
}

// wrappers returns the punctuation a node type loses during parsing.
func wrappers(n *tree.Node) (prefix, suffix string) {
	switch n.Type {
	case tree.TypeBlock:
		// Indented syntax has no braces.
		if n.Syntax == tree.SyntaxSASS {
			return "", ""
		}
		return "{", "}"

	case tree.TypeArguments, tree.TypeParentheses:
		return "(", ")"

	case tree.TypeAtkeyword:
		return "@", ""

	case tree.TypeClass:
		return ".", ""

	case tree.TypeColor, tree.TypeID:
		return "#", ""

	case tree.TypeCustomProperty:
		return "--", ""

	case tree.TypeVariable:
		if n.Syntax == tree.SyntaxLESS {
			return "@", ""
		}
		return "$", ""

	case tree.TypeMultilineComment:
		if n.Syntax == tree.SyntaxSASS {
			return "/*", ""
		}
		return "/*", "*/"

	case tree.TypeSinglelineComment:
		return "//", ""

	case tree.TypePseudoClass:
		return ":", ""

	case tree.TypePseudoElement:
		return "::", ""

	case tree.TypeImportant:
		return "!", ""

	case tree.TypeURI:
		return "url(", ")"
	}

	return "", ""
}
