// Package dialect describes the behavioural differences between the
// supported stylesheet syntaxes.
package dialect

import "github.com/donaldgifford/stylecomb/internal/tree"

// IncludeSigil says how a mixin include names its mixin.
type IncludeSigil int

const (
	// IncludeKeyword is `@include name` (scss, css): the name is the third child.
	IncludeKeyword IncludeSigil = iota
	// IncludeClass is `.name();` (less): the name is the ident inside the class.
	IncludeClass
	// IncludePlus is `+name` (sass), falling back to the keyword form.
	IncludePlus
)

// Dialect is resolved once per tree and handed to the code that needs to
// branch on syntax.
type Dialect struct {
	Syntax tree.Syntax

	// UsesIndentationDelimiter is set when declarations end at a line break
	// instead of a semicolon.
	UsesIndentationDelimiter bool

	IncludeSigil IncludeSigil

	// GroupBlankLine is set when the delimiter ending the previous unit is
	// itself a line break, so a single break in the leading whitespace of
	// the next group already makes a blank line.
	GroupBlankLine bool
}

// For returns the dialect of syntax s. Unknown syntaxes behave like css.
func For(s tree.Syntax) Dialect {
	switch s {
	case tree.SyntaxSASS:
		return Dialect{
			Syntax:                   s,
			UsesIndentationDelimiter: true,
			IncludeSigil:             IncludePlus,
			GroupBlankLine:           true,
		}
	case tree.SyntaxLESS:
		return Dialect{Syntax: s, IncludeSigil: IncludeClass}
	case tree.SyntaxSCSS:
		return Dialect{Syntax: s, IncludeSigil: IncludeKeyword}
	default:
		return Dialect{Syntax: tree.SyntaxCSS, IncludeSigil: IncludeKeyword}
	}
}

// Delimiter is the text of a synthesized declaration delimiter.
func (d Dialect) Delimiter() string {
	if d.UsesIndentationDelimiter {
		return "\n"
	}
	return ";"
}

// CommentLookback is how many siblings back a comment line reaches before
// the node it annotates. Indentation syntax stores the line break between a
// comment and the next line as its own node, adding one.
func (d Dialect) CommentLookback() int {
	if d.UsesIndentationDelimiter {
		return 3
	}
	return 2
}
