package validator

import "github.com/dmitrymomot/tabcheck/pkg/tabular"

// Row checks judge whole rows. They are meant for constraints without a
// Field, whose target is the bound tabular.Record.

// NoneMissing asserts that no value in the row is nil.
func NoneMissing() Assertion {
	return func(v any) bool {
		for _, cell := range rowValues(v) {
			if cell == nil {
				return false
			}
		}
		return true
	}
}

// NoneEmpty asserts that no value in the row is nil or an empty string.
func NoneEmpty() Assertion {
	return func(v any) bool {
		for _, cell := range rowValues(v) {
			if cell == nil {
				return false
			}
			if s, ok := cell.(string); ok && s == "" {
				return false
			}
		}
		return true
	}
}

func rowValues(v any) tabular.Row {
	switch t := v.(type) {
	case tabular.Record:
		return t.Values()
	case tabular.Row:
		return t
	case []any:
		return t
	default:
		return tabular.Row{v}
	}
}
