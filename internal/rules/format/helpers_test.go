package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// apply configures rule with value, runs it over ast and returns the
// written result.
func apply(t *testing.T, rule formatter.Rule, value any, ast *tree.Node, settings formatter.Settings) string {
	t.Helper()
	require.NoError(t, rule.Configure(value))
	rule.Process(ast, settings)
	return formatter.Write(ast)
}

// at sets the start and end positions of n.
func at(n *tree.Node, startLine, startCol, endLine, endCol int) *tree.Node {
	n.Start = tree.Position{Line: startLine, Column: startCol}
	n.End = tree.Position{Line: endLine, Column: endCol}
	return n
}
