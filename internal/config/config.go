// Package config defines the configuration types and defaults for stylecomb.
package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ExcludeKey is the reserved key listing paths that are never processed.
const ExcludeKey = "exclude"

// Settings are keys that rules read but that are not rules themselves.
var Settings = []string{"block-indent", "sort-order-fallback"}

// maxSuggestionDistance is the largest edit distance offered as a "did you
// mean" suggestion.
const maxSuggestionDistance = 3

// Config is the top-level configuration.
type Config struct {
	// Options maps option and setting names to their raw values.
	Options map[string]any

	// Exclude holds doublestar patterns matched against input paths.
	Exclude []string
}

// DefaultConfig returns the preset used when no config file is found.
func DefaultConfig() *Config {
	return &Config{
		Options: map[string]any{
			"always-semicolon":                true,
			"block-indent":                    "    ",
			"color-case":                      "lower",
			"color-shorthand":                 true,
			"element-case":                    "lower",
			"eof-newline":                     true,
			"lines-between-rulesets":          1,
			"space-before-closing-brace":      "\n",
			"space-before-selector-delimiter": "",
			"sort-order":                      defaultSortOrder(),
		},
	}
}

func defaultSortOrder() []any {
	groups := [][]string{
		{"$variable", "$extend", "$include", "$import"},
		{"position", "z-index", "top", "right", "bottom", "left"},
		{
			"display", "visibility", "float", "clear", "overflow", "overflow-x", "overflow-y",
			"box-sizing", "width", "min-width", "max-width", "height", "min-height", "max-height",
			"margin", "margin-top", "margin-right", "margin-bottom", "margin-left",
			"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
		},
		{
			"font", "font-family", "font-size", "font-style", "font-weight", "line-height",
			"color", "text-align", "text-decoration", "text-transform", "white-space",
		},
		{
			"background", "background-color", "background-image", "background-repeat",
			"background-position", "border", "border-radius", "box-shadow", "opacity",
		},
		{"transition", "transform", "animation"},
	}

	order := make([]any, 0, len(groups))
	for _, g := range groups {
		group := make([]any, 0, len(g))
		for _, name := range g {
			group = append(group, name)
		}
		order = append(order, group)
	}
	return order
}

// Excluded reports whether path matches one of the exclude patterns.
// Patterns and paths are compared with forward slashes.
func (c *Config) Excluded(path string) bool {
	p := filepath.ToSlash(path)
	for _, pattern := range c.Exclude {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}

// UnknownKey is a configured key that no rule or setting reads.
type UnknownKey struct {
	Key string

	// Suggestion is the closest known key, or empty when none is close.
	Suggestion string
}

func (u UnknownKey) String() string {
	if u.Suggestion == "" {
		return fmt.Sprintf("unknown option %q", u.Key)
	}
	return fmt.Sprintf("unknown option %q (did you mean %q?)", u.Key, u.Suggestion)
}

// Unknown returns the keys of cfg that are neither in known nor settings,
// in sorted order.
func Unknown(cfg *Config, known []string) []UnknownKey {
	candidates := slices.Concat(known, Settings)

	var keys []string
	for key := range cfg.Options {
		if !slices.Contains(candidates, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	unknown := make([]UnknownKey, 0, len(keys))
	for _, key := range keys {
		unknown = append(unknown, UnknownKey{Key: key, Suggestion: closest(key, candidates)})
	}
	return unknown
}

func closest(key string, candidates []string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(key, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}
