package rules

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

type fakeRule struct {
	name   string
	before string
}

func (r *fakeRule) Name() string { return r.name }
func (r *fakeRule) Syntaxes() []tree.Syntax { return tree.Syntaxes }
func (r *fakeRule) Accepts() formatter.Accepts { return formatter.Accepts{} }
func (r *fakeRule) Configure(any) error { return nil }
func (r *fakeRule) Process(*tree.Node, formatter.Settings) {}
func (r *fakeRule) RunBefore() string { return r.before }

func names(rules []formatter.Rule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Name())
	}
	return out
}

func TestOrdered(t *testing.T) {
	tests := []struct {
		name  string
		rules []formatter.Rule
		want  []string
	}{
		{
			name:  "no hints",
			rules: []formatter.Rule{&fakeRule{name: "a"}, &fakeRule{name: "b"}},
			want:  []string{"a", "b"},
		},
		{
			name: "chain",
			rules: []formatter.Rule{
				&fakeRule{name: "tab"},
				&fakeRule{name: "brace", before: "tab"},
				&fakeRule{name: "sort", before: "brace"},
			},
			want: []string{"sort", "brace", "tab"},
		},
		{
			name: "unknown target ignored",
			rules: []formatter.Rule{
				&fakeRule{name: "a", before: "missing"},
				&fakeRule{name: "b"},
			},
			want: []string{"a", "b"},
		},
		{
			name: "already before",
			rules: []formatter.Rule{
				&fakeRule{name: "a", before: "c"},
				&fakeRule{name: "b"},
				&fakeRule{name: "c"},
			},
			want: []string{"a", "b", "c"},
		},
		{
			name: "cycle keeps every rule",
			rules: []formatter.Rule{
				&fakeRule{name: "a", before: "b"},
				&fakeRule{name: "b", before: "a"},
			},
			want: []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Ordered(tt.rules)))
		})
	}
}

func TestAllRunsBeforeHints(t *testing.T) {
	all := names(All())

	assert.ElementsMatch(t, Names(), all)
	assert.Less(t, slices.Index(all, "sort-order"), slices.Index(all, "always-semicolon"))
	assert.Less(t, slices.Index(all, "sort-order"), slices.Index(all, "space-before-closing-brace"))
	assert.Less(t, slices.Index(all, "space-before-closing-brace"), slices.Index(all, "tab-size"))
}

func TestAllReturnsFreshRules(t *testing.T) {
	first, second := All(), All()
	for i := range first {
		assert.NotSame(t, first[i], second[i])
	}
}
