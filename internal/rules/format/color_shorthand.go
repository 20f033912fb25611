package format

import (
	"regexp"
	"strings"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

var threeWordChars = regexp.MustCompile(`^\w{3}$`)

// ColorShorthand shortens `#aabbcc` to `#abc` or expands `#abc` to
// `#aabbcc`.
type ColorShorthand struct {
	value bool
}

// Name returns the config key for this rule.
func (r *ColorShorthand) Name() string {
	return "color-shorthand"
}

// Syntaxes lists every dialect.
func (r *ColorShorthand) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts returns the accepted values: true or false.
func (r *ColorShorthand) Accepts() formatter.Accepts {
	return formatter.Accepts{Bools: []bool{true, false}}
}

// Configure stores the value.
func (r *ColorShorthand) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.value = v.(bool)
	return nil
}

// Process rewrites color lengths.
func (r *ColorShorthand) Process(ast *tree.Node, _ formatter.Settings) {
	ast.TraverseByType(tree.TypeColor, func(n *tree.Node, _ int, _ *tree.Node) {
		if r.value {
			n.Content = shortenColor(n.Content)
		} else {
			n.Content = expandColor(n.Content)
		}
	})
}

// Detect reports true for short colors and false for long colors that could
// have been short.
func (r *ColorShorthand) Detect(ast *tree.Node) []any {
	var values []any
	ast.TraverseByType(tree.TypeColor, func(n *tree.Node, _ int, _ *tree.Node) {
		switch {
		case threeWordChars.MatchString(n.Content):
			values = append(values, true)
		case isPairedColor(n.Content):
			values = append(values, false)
		}
	})
	return values
}

// shortenColor collapses the first run of three doubled hex digits.
// Doubles compare case-insensitively, and the first digit of each pair
// survives.
func shortenColor(s string) string {
	for i := 0; i+6 <= len(s); i++ {
		if hexPairs(s[i : i+6]) {
			return s[:i] + string([]byte{s[i], s[i+2], s[i+4]}) + s[i+6:]
		}
	}
	return s
}

func expandColor(s string) string {
	if !threeWordChars.MatchString(s) {
		return s
	}
	return string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
}

// isPairedColor reports a six-character color made of exact doubles.
func isPairedColor(s string) bool {
	return len(s) == 6 && wordPairs(s)
}

func hexPairs(s string) bool {
	for i := 0; i < 6; i += 2 {
		if !isHexDigit(s[i]) || !isHexDigit(s[i+1]) || !strings.EqualFold(s[i:i+1], s[i+1:i+2]) {
			return false
		}
	}
	return true
}

func wordPairs(s string) bool {
	for i := 0; i < 6; i += 2 {
		if !isWordChar(s[i]) || s[i] != s[i+1] {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isWordChar(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
