package formatter

import "strings"

// Settings is the whole configuration as a rule sees it while processing.
// Rules read sibling keys (e.g., "block-indent") through it.
type Settings map[string]any

// Has reports whether key is configured.
func (s Settings) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Enabled reports whether key is configured with a truthy value: true, a
// non-empty string, or a non-zero number.
func (s Settings) Enabled(key string) bool {
	switch v := s[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	default:
		n, ok := AsInt(v)
		return ok && n != 0
	}
}

// Whitespace returns key as whitespace text. Numbers become that many
// spaces; anything that is not a string or number yields "".
func (s Settings) Whitespace(key string) string {
	switch v := s[key].(type) {
	case string:
		return v
	default:
		if n, ok := AsInt(v); ok && n > 0 {
			return strings.Repeat(" ", n)
		}
		return ""
	}
}
