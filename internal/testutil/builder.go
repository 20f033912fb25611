package testutil

import (
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// Sheet returns a stylesheet of the given syntax with every descendant
// stamped with that syntax.
func Sheet(syntax tree.Syntax, children ...*tree.Node) *tree.Node {
	n := tree.NewContainer(tree.TypeStylesheet, children...)
	n.SetSyntax(syntax)
	return n
}

// Rule returns `selector { ... }` with a single type selector.
func Rule(selector string, block *tree.Node) *tree.Node {
	return tree.NewContainer(tree.TypeRuleset,
		Selector(selector),
		S(" "),
		block,
	)
}

// Selector returns a selector made of one type selector.
func Selector(name string) *tree.Node {
	return tree.NewContainer(tree.TypeSelector,
		tree.NewContainer(tree.TypeTypeSelector, Ident(name)),
	)
}

// Block returns a block holding children.
func Block(children ...*tree.Node) *tree.Node {
	return tree.NewContainer(tree.TypeBlock, children...)
}

// S returns a whitespace node.
func S(content string) *tree.Node {
	return tree.NewLeaf(tree.TypeSpace, content)
}

// Ident returns an identifier.
func Ident(name string) *tree.Node {
	return tree.NewLeaf(tree.TypeIdent, name)
}

// Semi returns a `;` delimiter.
func Semi() *tree.Node {
	return tree.NewLeaf(tree.TypeDeclarationDelimiter, ";")
}

// Newline returns the line-break delimiter of indented syntax.
func Newline() *tree.Node {
	return tree.NewLeaf(tree.TypeDeclarationDelimiter, "\n")
}

// Comment returns a `/* text */` comment.
func Comment(text string) *tree.Node {
	return tree.NewLeaf(tree.TypeMultilineComment, text)
}

// LineComment returns a `// text` comment.
func LineComment(text string) *tree.Node {
	return tree.NewLeaf(tree.TypeSinglelineComment, text)
}

// Decl returns `prop: value` with value as a single identifier.
func Decl(prop, value string) *tree.Node {
	return DeclValue(prop, Ident(value))
}

// DeclValue returns `prop: <value nodes>`.
func DeclValue(prop string, value ...*tree.Node) *tree.Node {
	return tree.NewContainer(tree.TypeDeclaration,
		tree.NewContainer(tree.TypeProperty, Ident(prop)),
		tree.NewLeaf(tree.TypePropertyDelimiter, ":"),
		S(" "),
		tree.NewContainer(tree.TypeValue, value...),
	)
}

// VarDecl returns a variable declaration (`$name: value` in scss).
func VarDecl(name, value string) *tree.Node {
	return tree.NewContainer(tree.TypeDeclaration,
		tree.NewContainer(tree.TypeProperty,
			tree.NewContainer(tree.TypeVariable, Ident(name)),
		),
		tree.NewLeaf(tree.TypePropertyDelimiter, ":"),
		S(" "),
		tree.NewContainer(tree.TypeValue, Ident(value)),
	)
}

// Color returns a hex color without its leading `#`.
func Color(hex string) *tree.Node {
	return tree.NewLeaf(tree.TypeColor, hex)
}

// Include returns `@include name`.
func Include(name string) *tree.Node {
	return tree.NewContainer(tree.TypeInclude,
		tree.NewContainer(tree.TypeAtkeyword, Ident("include")),
		S(" "),
		Ident(name),
	)
}

// LessInclude returns the less mixin call `.name()`.
func LessInclude(name string) *tree.Node {
	return tree.NewContainer(tree.TypeInclude,
		tree.NewContainer(tree.TypeClass, Ident(name)),
		tree.NewContainer(tree.TypeArguments),
	)
}

// SassInclude returns the sass shorthand `+name`.
func SassInclude(name string) *tree.Node {
	return tree.NewContainer(tree.TypeInclude,
		tree.NewLeaf(tree.TypeOperator, "+"),
		Ident(name),
	)
}

// Extend returns `@extend .name`.
func Extend(name string) *tree.Node {
	return tree.NewContainer(tree.TypeExtend,
		tree.NewContainer(tree.TypeAtkeyword, Ident("extend")),
		S(" "),
		tree.NewContainer(tree.TypeSelector,
			tree.NewContainer(tree.TypeClass, Ident(name)),
		),
	)
}

// Import returns `@import 'path'`.
func Import(path string) *tree.Node {
	return AtRule("import", tree.NewLeaf(tree.TypeString, "'"+path+"'"))
}

// AtRule returns `@keyword rest...` with a space after the keyword.
func AtRule(keyword string, rest ...*tree.Node) *tree.Node {
	children := []*tree.Node{
		tree.NewContainer(tree.TypeAtkeyword, Ident(keyword)),
		S(" "),
	}
	return tree.NewContainer(tree.TypeAtrule, append(children, rest...)...)
}
