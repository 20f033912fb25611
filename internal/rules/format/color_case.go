package format

import (
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

var (
	caseValues = regexp.MustCompile(`^(lower|upper)$`)

	lowerHex = regexp.MustCompile(`^[^A-F]*[a-f][^A-F]*$`)
	upperHex = regexp.MustCompile(`^[^a-f]*[A-F][^a-f]*$`)
)

// ColorCase sets the letter case of hex colors.
type ColorCase struct {
	value string
}

// Name returns the config key for this rule.
func (r *ColorCase) Name() string {
	return "color-case"
}

// Syntaxes lists every dialect.
func (r *ColorCase) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts returns the accepted values: "lower" or "upper".
func (r *ColorCase) Accepts() formatter.Accepts {
	return formatter.Accepts{Pattern: caseValues}
}

// Configure stores the value.
func (r *ColorCase) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.value = v.(string)
	return nil
}

// Process recases every color the tree holds. Text that does not parse as a
// color is left alone.
func (r *ColorCase) Process(ast *tree.Node, _ formatter.Settings) {
	ast.TraverseByType(tree.TypeColor, func(n *tree.Node, _ int, _ *tree.Node) {
		if !isHexColor(n.Content) {
			return
		}
		n.Content = applyCase(r.value, n.Content)
	})
}

// Detect reports the case of each color that has letters.
func (r *ColorCase) Detect(ast *tree.Node) []any {
	var values []any
	ast.TraverseByType(tree.TypeColor, func(n *tree.Node, _ int, _ *tree.Node) {
		switch {
		case lowerHex.MatchString(n.Content):
			values = append(values, "lower")
		case upperHex.MatchString(n.Content):
			values = append(values, "upper")
		}
	})
	return values
}

// isHexColor reports whether content, the text after `#`, is a color.
func isHexColor(content string) bool {
	_, err := csscolorparser.Parse("#" + content)
	return err == nil
}

func applyCase(mode, s string) string {
	if mode == "upper" {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}
