package sortorder

import (
	"cmp"
	"slices"
	"strings"
)

// vendorPrefixes in the order prefixed variants of one property are kept.
// The unprefixed property sorts after all of them.
var vendorPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-"}

// Sequencer orders units by priority.
type Sequencer struct {
	fallbackGroup int

	// alphabetical orders every unit of the fallback group by name.
	alphabetical bool
}

// NewSequencer returns a sequencer for units resolved against table.
func NewSequencer(table *Table, alphabetical bool) Sequencer {
	return Sequencer{fallbackGroup: table.FallbackGroup(), alphabetical: alphabetical}
}

// Sort orders units in place. The sort is stable: units of equal priority
// keep their source order.
func (s Sequencer) Sort(units []*Unit) {
	slices.SortStableFunc(units, func(a, b *Unit) int {
		if c := s.Compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
}

// Compare orders two units by priority alone, ignoring source position.
func (s Sequencer) Compare(a, b *Unit) int {
	if c := cmp.Compare(a.Group, b.Group); c != 0 {
		return c
	}
	if s.alphabetical && a.Group == s.fallbackGroup {
		if c := compareNames(a.Name(), b.Name()); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Prop, b.Prop)
}

// compareNames sorts by the name without its vendor prefix, then puts
// prefixed variants ahead of the plain property.
func compareNames(a, b string) int {
	ra, na := stripPrefix(a)
	rb, nb := stripPrefix(b)
	if c := strings.Compare(na, nb); c != 0 {
		return c
	}
	return cmp.Compare(ra, rb)
}

func stripPrefix(name string) (int, string) {
	for i, p := range vendorPrefixes {
		if rest, ok := strings.CutPrefix(name, p); ok {
			return i, rest
		}
	}
	return len(vendorPrefixes), name
}
