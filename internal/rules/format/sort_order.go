package format

import (
	"fmt"

	"github.com/donaldgifford/stylecomb/internal/dialect"
	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/sortorder"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// SortOrder reorders the members of each block against the configured
// order table.
type SortOrder struct {
	table *sortorder.Table
}

// Name returns the config key for this rule.
func (r *SortOrder) Name() string {
	return "sort-order"
}

// Syntaxes lists every dialect.
func (r *SortOrder) Syntaxes() []tree.Syntax {
	return tree.Syntaxes
}

// Accepts is empty: the order table is a list and is checked by Configure.
func (r *SortOrder) Accepts() formatter.Accepts {
	return formatter.Accepts{}
}

// Configure builds the order table from a list of names or a list of
// groups of names.
func (r *SortOrder) Configure(value any) error {
	table, err := sortorder.NewTable(value)
	if err != nil {
		return fmt.Errorf("%w: %w", formatter.ErrInvalidValue, err)
	}
	r.table = table
	return nil
}

// RunBefore names the rule that must run after this one.
func (r *SortOrder) RunBefore() string {
	return "space-before-closing-brace"
}

// Process sorts every block. A truthy sort-order-fallback setting orders
// unlisted members by name.
func (r *SortOrder) Process(ast *tree.Node, settings formatter.Settings) {
	if r.table == nil {
		return
	}
	r.sorter(settings).Process(ast)
}

// Lint reports the first out-of-order member of each block.
func (r *SortOrder) Lint(ast *tree.Node, settings formatter.Settings) []formatter.Issue {
	if r.table == nil {
		return nil
	}

	s := r.sorter(settings)
	d := dialect.For(ast.Syntax)

	var issues []formatter.Issue
	ast.TraverseByType(tree.TypeBlock, func(block *tree.Node, _ int, _ *tree.Node) {
		u := s.Misplaced(block, d)
		if u == nil {
			return
		}
		issues = append(issues, formatter.Issue{
			Rule:    r.Name(),
			Message: fmt.Sprintf("Declarations are out of order: %s", u.Key),
			Line:    u.Node.Start.Line,
			Column:  u.Node.Start.Column,
		})
	})
	return issues
}

// Detect returns nothing: an order cannot be inferred from one stylesheet.
func (r *SortOrder) Detect(*tree.Node) []any {
	return nil
}

func (r *SortOrder) sorter(settings formatter.Settings) *sortorder.Sorter {
	return sortorder.New(r.table, settings.Enabled("sort-order-fallback"))
}
