package format

import (
	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/tree"
)

// AlwaysSemicolon adds the optional semicolon after the last declaration of
// a block.
type AlwaysSemicolon struct {
	enabled bool
}

// Name returns the config key for this rule.
func (r *AlwaysSemicolon) Name() string {
	return "always-semicolon"
}

// Syntaxes lists the dialects with semicolon delimiters.
func (r *AlwaysSemicolon) Syntaxes() []tree.Syntax {
	return []tree.Syntax{tree.SyntaxCSS, tree.SyntaxLESS, tree.SyntaxSCSS}
}

// Accepts returns the accepted values: only true.
func (r *AlwaysSemicolon) Accepts() formatter.Accepts {
	return formatter.Accepts{Bools: []bool{true}}
}

// Configure stores the value.
func (r *AlwaysSemicolon) Configure(value any) error {
	v, err := formatter.Normalize(r.Accepts(), value)
	if err != nil {
		return err
	}
	r.enabled = v.(bool)
	return nil
}

// Process inserts the missing semicolons.
func (r *AlwaysSemicolon) Process(ast *tree.Node, _ formatter.Settings) {
	if !r.enabled {
		return
	}
	ast.TraverseByType(tree.TypeBlock, func(block *tree.Node, _ int, _ *tree.Node) {
		target, at := missingSemicolon(block)
		if target == nil {
			return
		}
		semi := tree.NewLeaf(tree.TypeDeclarationDelimiter, ";")
		semi.Syntax = block.Syntax
		target.Insert(at, semi)
	})
}

// Lint reports blocks whose last declaration has no semicolon.
func (r *AlwaysSemicolon) Lint(ast *tree.Node, _ formatter.Settings) []formatter.Issue {
	var issues []formatter.Issue
	ast.TraverseByType(tree.TypeBlock, func(block *tree.Node, _ int, _ *tree.Node) {
		target, _ := missingSemicolon(block)
		if target == nil {
			return
		}
		issues = append(issues, formatter.Issue{
			Rule:    r.Name(),
			Message: "Missing semicolon",
			Line:    target.End.Line,
			Column:  target.End.Column + 1,
		})
	})
	return issues
}

// Detect reports true for a block whose last member ends with a semicolon
// and false for one that does not.
func (r *AlwaysSemicolon) Detect(ast *tree.Node) []any {
	var values []any
	ast.TraverseByType(tree.TypeBlock, func(block *tree.Node, _ int, _ *tree.Node) {
		block.EachReverse(func(_ int, child *tree.Node) bool {
			switch {
			case child.Is(tree.TypeDeclarationDelimiter):
				values = append(values, true)
				return false
			case child.IsAny(tree.TypeDeclaration, tree.TypeInclude, tree.TypeExtend):
				values = append(values, false)
				return false
			}
			return true
		})
	})
	return values
}

// missingSemicolon finds the node of block that should receive a semicolon
// and the child index to insert it at. The semicolon goes inside the last
// declaration's value, after its last meaningful child, so trailing
// whitespace and comments stay after it. It returns nil when the block is
// already terminated or ends with a nested block.
func missingSemicolon(block *tree.Node) (*tree.Node, int) {
	var target *tree.Node
	block.EachReverse(func(_ int, child *tree.Node) bool {
		switch {
		case child.Is(tree.TypeDeclarationDelimiter):
			return false
		case child.IsAny(tree.TypeInclude, tree.TypeExtend):
			target = child
			return false
		case child.Is(tree.TypeDeclaration):
			target = child.Last(tree.TypeValue)
			return false
		}
		return true
	})
	if target == nil {
		return nil, 0
	}

	at := -1
	for j := len(target.Children) - 1; j >= 0; j-- {
		child := target.Children[j]
		if child.Is(tree.TypeBlock) {
			return nil, 0
		}
		if !child.IsSpaceOrComment() {
			at = j + 1
			break
		}
	}
	if at < 0 {
		at = 0
	}
	return target, at
}
