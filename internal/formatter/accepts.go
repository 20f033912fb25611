package formatter

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

// ErrInvalidValue is wrapped by every configuration error.
var ErrInvalidValue = errors.New("invalid option value")

// ConfigError reports a configured value a rule refused.
type ConfigError struct {
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("option %s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Accepts describes the shape of the values a rule takes. A zero field means
// that kind of value is refused.
type Accepts struct {
	Bools   []bool
	Pattern *regexp.Regexp
	Number  bool
}

// Normalize checks value against a and returns it in canonical form: a bool,
// a string, or, for numbers, a string of that many spaces.
func Normalize(a Accepts, value any) (any, error) {
	switch v := value.(type) {
	case bool:
		if !slices.Contains(a.Bools, v) {
			return nil, fmt.Errorf("%w: boolean %v not accepted", ErrInvalidValue, v)
		}
		return v, nil

	case string:
		if a.Pattern == nil || !a.Pattern.MatchString(v) {
			return nil, fmt.Errorf("%w: string %q not accepted", ErrInvalidValue, v)
		}
		return v, nil
	}

	n, ok := AsInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidValue, value, value)
	}
	if !a.Number {
		return nil, fmt.Errorf("%w: number %d not accepted", ErrInvalidValue, n)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative number %d", ErrInvalidValue, n)
	}
	return strings.Repeat(" ", n), nil
}

// AsInt converts the numeric types produced by the YAML, JSON and TOML
// decoders to an int.
func AsInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(math.Round(v)), true
	default:
		return 0, false
	}
}
