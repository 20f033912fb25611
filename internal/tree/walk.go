package tree

// VisitFunc is called for each node during a traversal with the node's index
// in its parent and the parent itself.
type VisitFunc func(n *Node, i int, parent *Node)

// Traverse walks every descendant of n in depth-first pre-order. The parent's
// child slice is re-read after each callback, so a callback may rewrite the
// children of the node it receives (as long as it leaves the node itself in
// place) and the walk descends into the new children.
func (n *Node) Traverse(fn VisitFunc) {
	for i := 0; i < len(n.Children); i++ {
		child := n.Children[i]
		fn(child, i, n)
		child.Traverse(fn)
	}
}

// TraverseByType walks the tree calling fn only for nodes of type t.
func (n *Node) TraverseByType(t Type, fn VisitFunc) {
	n.Traverse(func(c *Node, i int, parent *Node) {
		if c.Is(t) {
			fn(c, i, parent)
		}
	})
}

// TraverseByTypes walks the tree calling fn for nodes of any of the types.
func (n *Node) TraverseByTypes(types []Type, fn VisitFunc) {
	n.Traverse(func(c *Node, i int, parent *Node) {
		if c.IsAny(types...) {
			fn(c, i, parent)
		}
	})
}

// ForEach calls fn for each direct child of type t, or every child when t is
// empty. The index passed is the child's position in n.
func (n *Node) ForEach(t Type, fn func(i int, child *Node)) {
	for i := 0; i < len(n.Children); i++ {
		child := n.Children[i]
		if t == "" || child.Is(t) {
			fn(i, child)
		}
	}
}

// EachReverse calls fn for each direct child from last to first until fn
// returns false.
func (n *Node) EachReverse(fn func(i int, child *Node) bool) {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if !fn(i, n.Children[i]) {
			return
		}
	}
}

// IsSpaceOrComment reports whether n is whitespace or a comment.
func (n *Node) IsSpaceOrComment() bool {
	return n.IsAny(TypeSpace, TypeSinglelineComment, TypeMultilineComment)
}

// IsComment reports whether n is a single- or multi-line comment.
func (n *Node) IsComment() bool {
	return n.IsAny(TypeSinglelineComment, TypeMultilineComment)
}
