package sortorder

import (
	"errors"
	"fmt"
	"math"
)

// FallbackKey is the order-table entry standing for every key that is not
// listed explicitly.
const FallbackKey = "..."

// ErrInvalidOrder is returned for a sort order that is neither a list of
// names nor a list of lists of names.
var ErrInvalidOrder = errors.New("the option accepts only array of properties")

// Position is a key's place in the order table. A negative field means the
// key takes the fallback value for that dimension.
type Position struct {
	Group int
	Prop  int
}

// Resolved is the outcome of looking a key up in the table.
type Resolved struct {
	Group int
	Prop  int

	// Fallback is set when the key is not in the table at all.
	Fallback bool
}

// Table maps unit keys to their priority.
type Table struct {
	entries map[string]Position
}

// NewTable builds a table from a configured value: either a flat list of
// names (one group) or a list of groups of names. Decoded configuration
// arrives as []any, so both []any and the typed forms are accepted.
func NewTable(value any) (*Table, error) {
	groups, err := toGroups(value)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]Position)
	for g, group := range groups {
		for p, name := range group {
			entries[name] = Position{Group: g, Prop: p}
		}
	}
	return &Table{entries: entries}, nil
}

// TableOf builds a table from explicit positions.
func TableOf(entries map[string]Position) *Table {
	t := &Table{entries: make(map[string]Position, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

func toGroups(value any) ([][]string, error) {
	switch v := value.(type) {
	case []string:
		return [][]string{v}, nil
	case [][]string:
		return v, nil
	case []any:
		if len(v) == 0 {
			return nil, nil
		}
		if _, flat := v[0].(string); flat {
			names, err := toNames(v)
			if err != nil {
				return nil, err
			}
			return [][]string{names}, nil
		}
		groups := make([][]string, 0, len(v))
		for i, item := range v {
			names, err := toNames(item)
			if err != nil {
				return nil, fmt.Errorf("group %d: %w", i, err)
			}
			groups = append(groups, names)
		}
		return groups, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidOrder, value)
	}
}

func toNames(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %v (%T) is not a property name", ErrInvalidOrder, item, item)
			}
			names = append(names, name)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%w: %v (%T) is not a list of property names", ErrInvalidOrder, value, value)
	}
}

// Has reports whether key is listed.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// FallbackGroup is the group unlisted keys land in: the group of the "..."
// entry, or after every group when there is none.
func (t *Table) FallbackGroup() int {
	if p, ok := t.entries[FallbackKey]; ok && p.Group >= 0 {
		return p.Group
	}
	return math.MaxInt
}

// FallbackProp is the property position of unlisted keys.
func (t *Table) FallbackProp() int {
	if p, ok := t.entries[FallbackKey]; ok && p.Prop >= 0 {
		return p.Prop
	}
	return math.MaxInt
}

// Resolve returns the priority of key. Each dimension falls back on its own:
// a listed key with a negative group still keeps its property position.
func (t *Table) Resolve(key string) Resolved {
	p, ok := t.entries[key]
	if !ok {
		return Resolved{Group: t.FallbackGroup(), Prop: t.FallbackProp(), Fallback: true}
	}

	r := Resolved{Group: p.Group, Prop: p.Prop}
	if p.Group < 0 {
		r.Group = t.FallbackGroup()
	}
	if p.Prop < 0 {
		r.Prop = t.FallbackProp()
	}
	return r
}
