package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tu "github.com/donaldgifford/stylecomb/internal/testutil"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

func TestEOFNewline(t *testing.T) {
	tests := []struct {
		name  string
		value bool
		tail  []*tree.Node
		want  string
	}{
		{"adds newline", true, nil, "a {}\n"},
		{"keeps single newline", true, []*tree.Node{tu.S("\n")}, "a {}\n"},
		{"replaces only the last newline", true, []*tree.Node{tu.S("\n\n")}, "a {}\n\n"},
		{"keeps trailing spaces", true, []*tree.Node{tu.S("  ")}, "a {}  \n"},
		{"removes newline", false, []*tree.Node{tu.S("\n")}, "a {}"},
		{"nothing to remove", false, nil, "a {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := append([]*tree.Node{tu.Rule("a", tu.Block())}, tt.tail...)
			ast := tu.Sheet(tree.SyntaxCSS, children...)
			assert.Equal(t, tt.want, apply(t, &EOFNewline{}, tt.value, ast, nil))
		})
	}
}

func TestEOFNewlineDetect(t *testing.T) {
	r := &EOFNewline{}
	assert.Equal(t, []any{true}, r.Detect(tu.Sheet(tree.SyntaxCSS, tu.Rule("a", tu.Block()), tu.S("\n"))))
	assert.Equal(t, []any{false}, r.Detect(tu.Sheet(tree.SyntaxCSS, tu.Rule("a", tu.Block()), tu.S(" "))))
	assert.Equal(t, []any{false}, r.Detect(tu.Sheet(tree.SyntaxCSS, tu.Rule("a", tu.Block()))))
}
