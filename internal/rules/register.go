package rules

import (
	"github.com/donaldgifford/stylecomb/internal/formatter"
	"github.com/donaldgifford/stylecomb/internal/rules/format"
)

func init() {
	// Rules are registered in execution order; RunBefore hints only move
	// a rule earlier. sort-order comes before always-semicolon so a block
	// is terminated once, after its members have settled.
	Register(func() formatter.Rule { return &format.SortOrder{} })
	Register(func() formatter.Rule { return &format.AlwaysSemicolon{} })

	// Values and selectors.
	Register(func() formatter.Rule { return &format.ColorCase{} })
	Register(func() formatter.Rule { return &format.ColorShorthand{} })
	Register(func() formatter.Rule { return &format.ElementCase{} })

	// Whitespace.
	Register(func() formatter.Rule { return &format.SpaceBeforeSelectorDelimiter{} })
	Register(func() formatter.Rule { return &format.SpaceBeforeClosingBrace{} })
	Register(func() formatter.Rule { return &format.LinesBetweenRulesets{} })
	Register(func() formatter.Rule { return &format.TabSize{} })
	Register(func() formatter.Rule { return &format.EOFNewline{} })
}
