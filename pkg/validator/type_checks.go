package validator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/tabcheck/pkg/tabular"
)

// Type checks are Test factories for the common cell shapes found in raw
// tabular feeds, where most values arrive as strings and typed values leak
// in from JSON or database sources.

// IsInt accepts integer-typed values, integral floats, and strings that
// parse as base-10 integers.
func IsInt() Test {
	return func(v any) error {
		switch t := v.(type) {
		case nil:
			return ErrMissingValue
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return nil
		case float64:
			if t == math.Trunc(t) {
				return nil
			}
			return fmt.Errorf("%w: %v", ErrNotInt, t)
		case float32:
			if float64(t) == math.Trunc(float64(t)) {
				return nil
			}
			return fmt.Errorf("%w: %v", ErrNotInt, t)
		case string:
			if _, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err != nil {
				return errors.Join(ErrNotInt, err)
			}
			return nil
		default:
			return fmt.Errorf("%w: type %T", ErrNotInt, v)
		}
	}
}

// IsFloat accepts any numeric value and strings that parse as numbers.
func IsFloat() Test {
	return func(v any) error {
		switch t := v.(type) {
		case nil:
			return ErrMissingValue
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			return nil
		case string:
			if _, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err != nil {
				return errors.Join(ErrNotFloat, err)
			}
			return nil
		default:
			return fmt.Errorf("%w: type %T", ErrNotFloat, v)
		}
	}
}

// Default truthy/falsy forms, matched case-insensitively.
var (
	defaultTruthy = map[string]struct{}{
		"1": {}, "t": {}, "true": {}, "yes": {}, "y": {},
	}
	defaultFalsy = map[string]struct{}{
		"0": {}, "f": {}, "false": {}, "no": {}, "n": {},
	}
)

// IsBool accepts bool values and strings in the default truthy/falsy sets.
func IsBool() Test {
	return IsBoolSets(nil, nil)
}

// IsBoolSets accepts bool values and strings found in the given truthy or
// falsy sets (case-insensitive). Nil sets fall back to the defaults.
func IsBoolSets(truthy, falsy []string) Test {
	truthySet := lowerSet(truthy, defaultTruthy)
	falsySet := lowerSet(falsy, defaultFalsy)
	return func(v any) error {
		switch t := v.(type) {
		case nil:
			return ErrMissingValue
		case bool:
			return nil
		case string:
			s := strings.ToLower(strings.TrimSpace(t))
			if _, ok := truthySet[s]; ok {
				return nil
			}
			if _, ok := falsySet[s]; ok {
				return nil
			}
			return fmt.Errorf("%w: %q", ErrNotBool, t)
		default:
			return fmt.Errorf("%w: type %T", ErrNotBool, v)
		}
	}
}

func lowerSet(values []string, fallback map[string]struct{}) map[string]struct{} {
	if len(values) == 0 {
		return fallback
	}
	set := make(map[string]struct{}, len(values))
	for _, s := range values {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// IsDate accepts time.Time values and strings parsing under any of the
// given layouts. With no layouts given, ISO 8601 date form is assumed.
func IsDate(layouts ...string) Test {
	if len(layouts) == 0 {
		layouts = []string{"2006-01-02"}
	}
	return func(v any) error {
		switch t := v.(type) {
		case nil:
			return ErrMissingValue
		case time.Time:
			return nil
		case string:
			s := strings.TrimSpace(t)
			for _, layout := range layouts {
				if _, err := time.Parse(layout, s); err == nil {
					return nil
				}
			}
			return fmt.Errorf("%w: %q (layouts %v)", ErrNotDate, t, layouts)
		default:
			return fmt.Errorf("%w: type %T", ErrNotDate, v)
		}
	}
}

// IsUUID accepts uuid.UUID values and strings in any format uuid.Parse
// understands.
func IsUUID() Test {
	return func(v any) error {
		switch t := v.(type) {
		case nil:
			return ErrMissingValue
		case uuid.UUID:
			return nil
		case string:
			if _, err := uuid.Parse(strings.TrimSpace(t)); err != nil {
				return errors.Join(ErrNotUUID, err)
			}
			return nil
		default:
			return fmt.Errorf("%w: type %T", ErrNotUUID, v)
		}
	}
}

// asString renders a target value in its canonical string form for
// comparison-based checks.
func asString(v any) string {
	return tabular.String(v)
}
