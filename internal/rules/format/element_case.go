package format

import (
	"regexp"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

var (
	lowerWord = regexp.MustCompile(`^[a-z]+$`)
	upperWord = regexp.MustCompile(`^[A-Z]+$`)
)

// ElementCase sets the letter case of element names in selectors.
type ElementCase struct {
	value string
}

// Name returns the config key for this rule.
func (r *ElementCase) Name() string {
	return "element-case"
}

// Syntaxes lists every dialect.
func (r *ElementCase) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts returns the accepted values: "lower" or "upper".
func (r *ElementCase) Accepts() formatter.Accepts {
	return formatter.Accepts{Pattern: caseValues}
}

// Configure stores the value.
func (r *ElementCase) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.value = v.(string)
	return nil
}

// Process recases the element names.
func (r *ElementCase) Process(ast *tree.Node, _ formatter.Settings) {
	eachElementName(ast, func(ident *tree.Node) {
		ident.Content = applyCase(r.value, ident.Content)
	})
}

// Detect reports the case of each element name.
func (r *ElementCase) Detect(ast *tree.Node) []any {
	var values []any
	eachElementName(ast, func(ident *tree.Node) {
		switch {
		case lowerWord.MatchString(ident.Content):
			values = append(values, "lower")
		case upperWord.MatchString(ident.Content):
			values = append(values, "upper")
		}
	})
	return values
}

// eachElementName calls fn for the idents of type selectors inside selectors
// and pseudo-class arguments such as `:not(a)`.
func eachElementName(ast *tree.Node, fn func(ident *tree.Node)) {
	scopes := []tree.Type{tree.TypeSelector, tree.TypeArguments}
	ast.TraverseByTypes(scopes, func(scope *tree.Node, _ int, _ *tree.Node) {
		scope.ForEach(tree.TypeTypeSelector, func(_ int, element *tree.Node) {
			element.ForEach(tree.TypeIdent, func(_ int, ident *tree.Node) {
				fn(ident)
			})
		})
	})
}
