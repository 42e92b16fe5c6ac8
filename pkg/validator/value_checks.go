package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// Value checks are Assertion factories usable as Constraint.Assertion.

// NotNil asserts the value is present (non-nil).
func NotNil() Assertion {
	return func(v any) bool { return v != nil }
}

// NotEmpty asserts the value is neither nil nor an empty string.
func NotEmpty() Assertion {
	return func(v any) bool {
		if v == nil {
			return false
		}
		s, ok := v.(string)
		return !ok || s != ""
	}
}

// In asserts the value's canonical string form is one of the given values.
// Comparison is on exact string form.
func In(values ...string) Assertion {
	set := make(map[string]struct{}, len(values))
	for _, s := range values {
		set[s] = struct{}{}
	}
	return func(v any) bool {
		_, ok := set[asString(v)]
		return ok
	}
}

// Matches asserts the value's string form matches the pattern.
func Matches(pattern *regexp.Regexp) Assertion {
	return func(v any) bool {
		return pattern.MatchString(asString(v))
	}
}

// Positive asserts the value is numeric and greater than zero.
func Positive() Assertion {
	return func(v any) bool {
		f, ok := asFloat(v)
		return ok && f > 0
	}
}

// NonNegative asserts the value is numeric and not less than zero.
func NonNegative() Assertion {
	return func(v any) bool {
		f, ok := asFloat(v)
		return ok && f >= 0
	}
}

// Between asserts the value is numeric and within [min, max].
func Between(min, max float64) Assertion {
	return func(v any) bool {
		f, ok := asFloat(v)
		return ok && f >= min && f <= max
	}
}

// MinLen asserts the value's string form has at least n bytes.
func MinLen(n int) Assertion {
	return func(v any) bool { return len(asString(v)) >= n }
}

// MaxLen asserts the value's string form has at most n bytes.
func MaxLen(n int) Assertion {
	return func(v any) bool { return len(asString(v)) <= n }
}

// And combines assertions; every one must hold.
func And(assertions ...Assertion) Assertion {
	return func(v any) bool {
		for _, a := range assertions {
			if !a(v) {
				return false
			}
		}
		return true
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
