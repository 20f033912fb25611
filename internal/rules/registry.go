// Package rules manages registration of the formatting options.
package rules

import (
	"github.com/donaldgifford/stylecomb/internal/formatter"
)

// Factory returns a fresh, unconfigured rule.
type Factory func() formatter.Rule

var factories []Factory

// Register adds a rule to the registry. Rules are applied in registration
// order, adjusted so that each rule runs before the one it names in
// RunBefore.
func Register(f Factory) {
	factories = append(factories, f)
}

// All returns a new instance of every registered rule in execution order.
func All() []formatter.Rule {
	all := make([]formatter.Rule, 0, len(factories))
	for _, f := range factories {
		all = append(all, f())
	}
	return Ordered(all)
}

// Names returns the config keys of every registered rule.
func Names() []string {
	names := make([]string, 0, len(factories))
	for _, f := range factories {
		names = append(names, f().Name())
	}
	return names
}

// Ordered returns rules reordered so that every rule implementing
// formatter.Ordered comes before the rule it names. Rules keep their relative
// order otherwise; a RunBefore naming an absent rule is ignored.
func Ordered(rules []formatter.Rule) []formatter.Rule {
	out := make([]formatter.Rule, 0, len(rules))
	placed := make(map[string]bool, len(rules))
	byName := make(map[string]formatter.Rule, len(rules))
	before := make(map[string][]formatter.Rule)

	for _, r := range rules {
		byName[r.Name()] = r
	}
	for _, r := range rules {
		if o, ok := r.(formatter.Ordered); ok {
			if _, exists := byName[o.RunBefore()]; exists && o.RunBefore() != r.Name() {
				before[o.RunBefore()] = append(before[o.RunBefore()], r)
			}
		}
	}

	var place func(r formatter.Rule)
	place = func(r formatter.Rule) {
		if placed[r.Name()] {
			return
		}
		placed[r.Name()] = true
		for _, dep := range before[r.Name()] {
			place(dep)
		}
		out = append(out, r)
	}

	for _, r := range rules {
		place(r)
	}
	return out
}
