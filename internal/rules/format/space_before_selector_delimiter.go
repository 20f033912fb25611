package format

import (
	"slices"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// SpaceBeforeSelectorDelimiter sets the whitespace in front of the comma
// between selectors.
type SpaceBeforeSelectorDelimiter struct {
	value string
}

// Name returns the config key for this rule.
func (r *SpaceBeforeSelectorDelimiter) Name() string {
	return "space-before-selector-delimiter"
}

// Syntaxes lists every dialect.
func (r *SpaceBeforeSelectorDelimiter) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts returns the accepted values: a number of spaces or whitespace.
func (r *SpaceBeforeSelectorDelimiter) Accepts() formatter.Accepts {
	return formatter.Accepts{Number: true, Pattern: whitespaceValue}
}

// Configure stores the value.
func (r *SpaceBeforeSelectorDelimiter) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.value = v.(string)
	return nil
}

// RunBefore names the rule that must run after this one.
func (r *SpaceBeforeSelectorDelimiter) RunBefore() string {
	return "block-indent"
}

type delimiterSite struct {
	delimiter *tree.Node
	parent    *tree.Node
}

// Process sets or inserts the whitespace before each selector delimiter.
// Delimiters inside arguments separate values, not selectors, and are left
// alone.
func (r *SpaceBeforeSelectorDelimiter) Process(ast *tree.Node, _ formatter.Settings) {
	for _, site := range selectorDelimiters(ast) {
		parent := site.parent
		i := slices.Index(parent.Children, site.delimiter)

		if prev := parent.Get(i - 1); prev.Is(tree.TypeSpace) {
			prev.Content = r.value
			continue
		}
		space := tree.NewLeaf(tree.TypeSpace, r.value)
		space.Syntax = parent.Syntax
		parent.Insert(i, space)
	}
}

// Detect reports the whitespace before each selector delimiter.
func (r *SpaceBeforeSelectorDelimiter) Detect(ast *tree.Node) []any {
	var values []any
	for _, site := range selectorDelimiters(ast) {
		prev := site.parent.Get(slices.Index(site.parent.Children, site.delimiter) - 1)
		if prev.Is(tree.TypeSpace) {
			values = append(values, prev.Content)
		} else {
			values = append(values, "")
		}
	}
	return values
}

// selectorDelimiters returns the delimiters outside arguments in tree order.
func selectorDelimiters(ast *tree.Node) []delimiterSite {
	var sites []delimiterSite
	ast.TraverseByType(tree.TypeDelimiter, func(n *tree.Node, _ int, parent *tree.Node) {
		if !parent.Is(tree.TypeArguments) {
			sites = append(sites, delimiterSite{delimiter: n, parent: parent})
		}
	})
	return sites
}
