package tree

import (
	"fmt"
	"strings"
)

// Syntax names the stylesheet dialect a tree was parsed from.
type Syntax string

const (
	SyntaxCSS  Syntax = "css"
	SyntaxLESS Syntax = "less"
	SyntaxSASS Syntax = "sass"
	SyntaxSCSS Syntax = "scss"
)

// Syntaxes lists every supported dialect.
var Syntaxes = []Syntax{SyntaxCSS, SyntaxLESS, SyntaxSASS, SyntaxSCSS}

// ParseSyntax converts a dialect name (case-insensitive) to a Syntax.
func ParseSyntax(s string) (Syntax, error) {
	switch syn := Syntax(strings.ToLower(s)); syn {
	case SyntaxCSS, SyntaxLESS, SyntaxSASS, SyntaxSCSS:
		return syn, nil
	default:
		return "", fmt.Errorf("unsupported syntax %q", s)
	}
}
