package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/tabcheck/pkg/tabular"
)

// Getter extracts the value a constraint inspects from a bound row.
type Getter func(tabular.Record) (any, error)

// Test judges a value by succeeding silently; a non-nil error (or a panic)
// signals invalidity and its category is retained in the problem record.
type Test func(any) error

// Assertion judges a value by returning true; a false return (or a panic)
// signals invalidity.
type Assertion func(any) bool

// Constraint is a named, declarative rule applied to every data row.
//
// Exactly one of Field and Fields may be set. When neither is set the
// constraint inspects the whole row: Test and Assertion receive the bound
// tabular.Record, and problems raised by the constraint carry no value.
// Getter is an escape hatch that pre-supplies the extraction step instead of
// having it derived from Field/Fields.
//
// A constraint may declare Test, Assertion, both, or neither with a bare
// Getter. In the last case it validates nothing but still reports a problem
// when extraction fails.
type Constraint struct {
	// Name tags every problem this constraint raises. Conventionally unique.
	Name string

	// Field names the single field this constraint inspects; its value is
	// the scalar handed to Test and Assertion.
	Field string

	// Fields names an ordered group of fields; their values are handed to
	// Test and Assertion as an ordered tabular.Row tuple.
	Fields []string

	// Optional drops the constraint from the pass entirely when the
	// referenced field is absent from the effective header, instead of
	// treating the absence as a configuration error.
	Optional bool

	Getter    Getter
	Test      Test
	Assertion Assertion
}

// check validates the declaration shape. Field resolution happens later,
// against the effective field list of a pass.
func (c Constraint) check() error {
	if c.Field != "" && len(c.Fields) > 0 {
		return fmt.Errorf("%w: %q declares both field and fields", ErrInvalidConstraint, c.Name)
	}
	return nil
}

// label is the value of the report's "field" column for this constraint.
func (c Constraint) label() string {
	if c.Field != "" {
		return c.Field
	}
	return strings.Join(c.Fields, ",")
}

// compiled is a constraint with its getter resolved against one specific
// field list. Compilation works on copies; the caller's Constraint values
// are never mutated.
type compiled struct {
	name      string
	field     string
	hasField  bool
	getter    Getter // nil means the bound record itself is the target
	test      Test
	assertion Assertion
}

// compileConstraints resolves every constraint against the pass's field
// index. Constraints marked optional whose field is absent are dropped.
// A non-optional reference to an absent field is a configuration error and
// fails the whole pass before any row is scanned.
func compileConstraints(constraints []Constraint, ix *tabular.Index) ([]compiled, error) {
	out := make([]compiled, 0, len(constraints))
	for _, c := range constraints {
		cc := compiled{
			name:      c.Name,
			field:     c.label(),
			hasField:  c.Field != "" || len(c.Fields) > 0,
			getter:    c.Getter,
			test:      c.Test,
			assertion: c.Assertion,
		}
		if cc.getter == nil && cc.hasField {
			getter, ok, err := resolveGetter(c, ix)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue // optional constraint on an absent field
			}
			cc.getter = getter
		}
		out = append(out, cc)
	}
	return out, nil
}

func resolveGetter(c Constraint, ix *tabular.Index) (Getter, bool, error) {
	if c.Field != "" {
		pos, ok := ix.Lookup(c.Field)
		if !ok {
			if c.Optional {
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("constraint %q: %w: %q", c.Name, tabular.ErrFieldNotFound, c.Field)
		}
		return func(r tabular.Record) (any, error) {
			return r.At(pos)
		}, true, nil
	}

	positions := make([]int, len(c.Fields))
	for i, name := range c.Fields {
		pos, ok := ix.Lookup(name)
		if !ok {
			if c.Optional {
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("constraint %q: %w: %q", c.Name, tabular.ErrFieldNotFound, name)
		}
		positions[i] = pos
	}
	return func(r tabular.Record) (any, error) {
		tuple := make(tabular.Row, len(positions))
		for i, pos := range positions {
			v, err := r.At(pos)
			if err != nil {
				return nil, err
			}
			tuple[i] = v
		}
		return tuple, nil
	}, true, nil
}

// extract produces the constraint's target value from a bound row. Panics
// from user getters are recovered and reported as extraction failures.
func (c *compiled) extract(rec tabular.Record) (target any, err error) {
	if c.getter == nil {
		return rec, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("getter panicked: %v", r)
		}
	}()
	return c.getter(rec)
}

// evaluate applies the constraint to one bound row, appending a problem per
// failure site. An extraction failure suppresses both Test and Assertion; a
// test failure does not short-circuit the assertion.
func (c *compiled) evaluate(rec tabular.Record, rowIdx int, out []Problem) []Problem {
	target, err := c.extract(rec)
	if err != nil {
		return append(out, Problem{
			Name:  c.name,
			Row:   rowIdx,
			Field: c.field,
			Kind:  KindExtractionFailure,
			Cause: err,
		})
	}

	// Whole-row constraints never surface a value.
	var value any
	if c.hasField {
		value = target
	}

	if c.test != nil {
		if err := runTest(c.test, target); err != nil {
			out = append(out, Problem{
				Name:  c.name,
				Row:   rowIdx,
				Field: c.field,
				Value: value,
				Kind:  KindTestFailure,
				Cause: err,
			})
		}
	}
	if c.assertion != nil {
		ok, err := runAssertion(c.assertion, target)
		if err != nil || !ok {
			out = append(out, Problem{
				Name:  c.name,
				Row:   rowIdx,
				Field: c.field,
				Value: value,
				Kind:  KindAssertionFailure,
				Cause: err,
			})
		}
	}
	return out
}

func runTest(t Test, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("test panicked: %v", r)
		}
	}()
	return t(v)
}

func runAssertion(a Assertion, v any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("assertion panicked: %v", r)
		}
	}()
	return a(v), nil
}
