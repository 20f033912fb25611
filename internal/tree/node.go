// Package tree provides the mutable stylesheet syntax tree that rules read
// and rewrite.
package tree

import "strings"

// Type tags a node. The set mirrors the node kinds emitted by the
// stylesheet parser.
type Type string

const (
	TypeStylesheet           Type = "stylesheet"
	TypeRuleset              Type = "ruleset"
	TypeSelector             Type = "selector"
	TypeTypeSelector         Type = "typeSelector"
	TypeBlock                Type = "block"
	TypeDeclaration          Type = "declaration"
	TypeDeclarationDelimiter Type = "declarationDelimiter"
	TypeProperty             Type = "property"
	TypePropertyDelimiter    Type = "propertyDelimiter"
	TypeValue                Type = "value"
	TypeVariable             Type = "variable"
	TypeCustomProperty       Type = "customProperty"
	TypeIdent                Type = "ident"
	TypeNumber               Type = "number"
	TypeString               Type = "string"
	TypeColor                Type = "color"
	TypeClass                Type = "class"
	TypeID                   Type = "id"
	TypeOperator             Type = "operator"
	TypeDelimiter            Type = "delimiter"
	TypeArguments            Type = "arguments"
	TypeParentheses          Type = "parentheses"
	TypeAtrule               Type = "atrule"
	TypeAtrulers             Type = "atrulers"
	TypeAtkeyword            Type = "atkeyword"
	TypeInclude              Type = "include"
	TypeExtend               Type = "extend"
	TypeSpace                Type = "space"
	TypeSinglelineComment    Type = "singlelineComment"
	TypeMultilineComment     Type = "multilineComment"
	TypeImportant            Type = "important"
	TypeDimension            Type = "dimension"
	TypePseudoClass          Type = "pseudoClass"
	TypePseudoElement        Type = "pseudoElement"
	TypeURI                  Type = "uri"
)

// Position is a 1-indexed line/column location in the source.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Node is a single element of the syntax tree.
//
// A leaf carries its text in Content and has a nil Children slice. A
// container has a non-nil Children slice (possibly empty) and no Content.
type Node struct {
	Type     Type
	Content  string
	Children []*Node
	Syntax   Syntax
	Start    Position
	End      Position
}

// NewLeaf returns a text node.
func NewLeaf(t Type, content string) *Node {
	return &Node{Type: t, Content: content}
}

// NewContainer returns a node holding the given children.
func NewContainer(t Type, children ...*Node) *Node {
	c := make([]*Node, 0, len(children))
	c = append(c, children...)
	return &Node{Type: t, Children: c}
}

// IsLeaf reports whether the node carries text rather than children.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Is reports whether n has type t. A nil node is never of any type.
func (n *Node) Is(t Type) bool {
	return n != nil && n.Type == t
}

// IsAny reports whether n has one of the given types.
func (n *Node) IsAny(types ...Type) bool {
	for _, t := range types {
		if n.Is(t) {
			return true
		}
	}
	return false
}

// Len returns the number of children.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Get returns the child at i, or nil when i is out of range. Like First and
// Last it is safe to call on a nil node, so lookups can be chained.
func (n *Node) Get(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// First returns the first child, or the first child of one of the given
// types when types are supplied.
func (n *Node) First(types ...Type) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if len(types) == 0 || c.IsAny(types...) {
			return c
		}
	}
	return nil
}

// Last returns the last child, or the last child of one of the given types.
func (n *Node) Last(types ...Type) *Node {
	if n == nil {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if len(types) == 0 || c.IsAny(types...) {
			return c
		}
	}
	return nil
}

// Insert places child at index i, shifting later children right. An index
// past the end appends.
func (n *Node) Insert(i int, child *Node) {
	if n.Children == nil {
		n.Children = []*Node{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(n.Children) {
		n.Children = append(n.Children, child)
		return
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

// Append adds child at the end.
func (n *Node) Append(child *Node) {
	n.Insert(len(n.Children), child)
}

// RemoveChild deletes and returns the child at i. It returns nil when i is
// out of range.
func (n *Node) RemoveChild(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	removed := n.Children[i]
	copy(n.Children[i:], n.Children[i+1:])
	n.Children[len(n.Children)-1] = nil
	n.Children = n.Children[:len(n.Children)-1]
	return removed
}

// Text concatenates the content of every leaf under n without any syntax
// decoration.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Content)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	clone := &Node{
		Type:    n.Type,
		Content: n.Content,
		Syntax:  n.Syntax,
		Start:   n.Start,
		End:     n.End,
	}

	if n.Children != nil {
		clone.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}

	return clone
}

// SetSyntax stamps s on n and every descendant.
func (n *Node) SetSyntax(s Syntax) {
	n.Syntax = s
	for _, c := range n.Children {
		c.SetSyntax(s)
	}
}
