package validator_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabcheck/pkg/tabular"
	"github.com/dmitrymomot/tabcheck/pkg/validator"
)

// stripped drops the Cause so problem lists can be compared directly.
func stripped(t *testing.T, p *validator.Problems) []validator.Problem {
	t.Helper()
	all, err := p.All()
	require.NoError(t, err)
	out := make([]validator.Problem, len(all))
	for i, pr := range all {
		pr.Cause = nil
		out[i] = pr
	}
	return out
}

func TestValidateStructuralOnly(t *testing.T) {
	t.Run("no constraints and no header yields zero problems", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a"},
			{2, "b"},
		}
		problems, err := validator.Validate(tbl, nil, nil)
		require.NoError(t, err)

		all, err := problems.All()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("row length mismatch against actual header", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a", "extra"},
			{2},
		}
		problems, err := validator.Validate(tbl, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: validator.LengthName, Row: 1, Value: 3, Kind: validator.KindRowLengthMismatch},
			{Name: validator.LengthName, Row: 2, Value: 1, Kind: validator.KindRowLengthMismatch},
		}, stripped(t, problems))
	})

	t.Run("empty table fails the pass", func(t *testing.T) {
		problems, err := validator.Validate(tabular.Slice{}, nil, nil)
		require.NoError(t, err)

		_, err = problems.All()
		assert.ErrorIs(t, err, validator.ErrEmptyTable)
	})
}

func TestValidateHeaderCheck(t *testing.T) {
	t.Run("match produces no header problem", func(t *testing.T) {
		tbl := tabular.Slice{
			{"a", "b"},
			{1, 2},
		}
		problems, err := validator.Validate(tbl, nil, []string{"a", "b"})
		require.NoError(t, err)

		all, err := problems.All()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("mismatch is reported once at row zero", func(t *testing.T) {
		tbl := tabular.Slice{
			{"a", "c"},
			{1, 2},
		}
		problems, err := validator.Validate(tbl, nil, []string{"a", "b"})
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: validator.HeaderName, Row: 0, Kind: validator.KindHeaderMismatch},
		}, stripped(t, problems))
	})

	t.Run("order and count differences both mismatch", func(t *testing.T) {
		for name, actual := range map[string][]any{
			"swapped order": {"b", "a"},
			"extra field":   {"a", "b", "c"},
			"fewer fields":  {"a"},
		} {
			t.Run(name, func(t *testing.T) {
				problems, err := validator.Validate(tabular.Slice{actual}, nil, []string{"a", "b"})
				require.NoError(t, err)

				all := stripped(t, problems)
				require.Len(t, all, 1)
				assert.Equal(t, validator.KindHeaderMismatch, all[0].Kind)
				assert.Equal(t, 0, all[0].Row)
			})
		}
	})

	t.Run("supplied header stays the effective field list on mismatch", func(t *testing.T) {
		tbl := tabular.Slice{
			{"a", "c"},
			{-1, "x"},
		}
		constraints := []validator.Constraint{
			{Name: "a_pos", Field: "a", Assertion: validator.Positive()},
		}
		problems, err := validator.Validate(tbl, constraints, []string{"a", "b"})
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: validator.HeaderName, Row: 0, Kind: validator.KindHeaderMismatch},
			{Name: "a_pos", Row: 1, Field: "a", Value: -1, Kind: validator.KindAssertionFailure},
		}, stripped(t, problems))
	})

	t.Run("non-string header cells compare in canonical string form", func(t *testing.T) {
		tbl := tabular.Slice{
			{1, 2},
			{"x", "y"},
		}
		problems, err := validator.Validate(tbl, nil, []string{"1", "2"})
		require.NoError(t, err)

		all, err := problems.All()
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestValidateConstraints(t *testing.T) {
	header := []string{"foo", "bar"}

	t.Run("assertion failure carries the extracted value", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a"},
			{-1, "b"},
			{2, "c", "extra"},
		}
		constraints := []validator.Constraint{
			{Name: "foo_pos", Field: "foo", Assertion: validator.Positive()},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: "foo_pos", Row: 2, Field: "foo", Value: -1, Kind: validator.KindAssertionFailure},
			{Name: validator.LengthName, Row: 3, Value: 3, Kind: validator.KindRowLengthMismatch},
		}, stripped(t, problems))
	})

	t.Run("optional constraint on absent field is silent", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{nil, nil},
		}
		constraints := []validator.Constraint{
			{Name: "x_int", Field: "x", Optional: true, Test: validator.IsInt()},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		all, err := problems.All()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("non-optional absent field is a configuration error", func(t *testing.T) {
		_, err := validator.Validate(tabular.Slice{}, []validator.Constraint{
			{Name: "x_int", Field: "x", Test: validator.IsInt()},
		}, header)
		assert.ErrorIs(t, err, tabular.ErrFieldNotFound)
	})

	t.Run("absent field against table header surfaces before rows", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a"},
		}
		problems, err := validator.Validate(tbl, []validator.Constraint{
			{Name: "x_int", Field: "x", Test: validator.IsInt()},
		}, nil)
		require.NoError(t, err)

		err = problems.Each(func(validator.Problem) bool {
			t.Fatal("no problem should be produced")
			return false
		})
		assert.ErrorIs(t, err, tabular.ErrFieldNotFound)
	})

	t.Run("test failure does not short-circuit the assertion", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{"oops", "b"},
		}
		constraints := []validator.Constraint{
			{
				Name:      "foo_int_pos",
				Field:     "foo",
				Test:      validator.IsInt(),
				Assertion: validator.Positive(),
			},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: "foo_int_pos", Row: 1, Field: "foo", Value: "oops", Kind: validator.KindTestFailure},
			{Name: "foo_int_pos", Row: 1, Field: "foo", Value: "oops", Kind: validator.KindAssertionFailure},
		}, stripped(t, problems))
	})

	t.Run("extraction failure suppresses test and assertion", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1}, // bar is unreachable
		}
		constraints := []validator.Constraint{
			{Name: "bar_int", Field: "bar", Test: validator.IsInt(), Assertion: validator.NotNil()},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: validator.LengthName, Row: 1, Value: 1, Kind: validator.KindRowLengthMismatch},
			{Name: "bar_int", Row: 1, Field: "bar", Kind: validator.KindExtractionFailure},
		}, stripped(t, problems))
	})

	t.Run("panicking callables are recovered and classified", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a"},
		}
		constraints := []validator.Constraint{
			{Name: "panicky_test", Field: "foo", Test: func(any) error { panic("boom") }},
			{Name: "panicky_assert", Field: "foo", Assertion: func(any) bool { panic("boom") }},
			{Name: "panicky_getter", Getter: func(tabular.Record) (any, error) { panic("boom") }},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		all, err := problems.All()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, validator.KindTestFailure, all[0].Kind)
		assert.Equal(t, validator.KindAssertionFailure, all[1].Kind)
		assert.Equal(t, validator.KindExtractionFailure, all[2].Kind)
		for _, pr := range all {
			assert.ErrorContains(t, pr.Cause, "boom")
		}
	})

	t.Run("whole-row constraint surfaces no value", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, nil},
		}
		constraints := []validator.Constraint{
			{Name: "not_none", Assertion: validator.NoneMissing()},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: "not_none", Row: 1, Kind: validator.KindAssertionFailure},
		}, stripped(t, problems))
	})

	t.Run("multi-field constraint receives an ordered tuple", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{2, 1},
			{1, 2},
		}
		ascending := func(v any) bool {
			tuple := v.(tabular.Row)
			return tuple[0].(int) < tuple[1].(int)
		}
		constraints := []validator.Constraint{
			{Name: "foo_lt_bar", Fields: []string{"foo", "bar"}, Assertion: ascending},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		all := stripped(t, problems)
		require.Len(t, all, 1)
		assert.Equal(t, "foo_lt_bar", all[0].Name)
		assert.Equal(t, 1, all[0].Row)
		assert.Equal(t, "foo,bar", all[0].Field)
		assert.Equal(t, tabular.Row{2, 1}, all[0].Value)
	})

	t.Run("pre-supplied getter bypasses field resolution", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a"},
		}
		constraints := []validator.Constraint{
			{
				Name:   "via_getter",
				Field:  "bar",
				Getter: func(r tabular.Record) (any, error) { return r.Get("bar") },
				Assertion: func(v any) bool {
					return v == "z"
				},
			},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		assert.Equal(t, []validator.Problem{
			{Name: "via_getter", Row: 1, Field: "bar", Value: "a", Kind: validator.KindAssertionFailure},
		}, stripped(t, problems))
	})

	t.Run("bare getter validates nothing but reports extraction failures", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a"},
			{2, "b"},
		}
		calls := 0
		constraints := []validator.Constraint{
			{
				Name:  "probe",
				Field: "foo",
				Getter: func(r tabular.Record) (any, error) {
					calls++
					if calls == 2 {
						return nil, errors.New("sensor offline")
					}
					return r.Get("foo")
				},
			},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)

		all := stripped(t, problems)
		require.Len(t, all, 1)
		assert.Equal(t, validator.Problem{
			Name: "probe", Row: 2, Field: "foo", Kind: validator.KindExtractionFailure,
		}, all[0])
	})

	t.Run("declaring both field and fields is rejected", func(t *testing.T) {
		_, err := validator.Validate(tabular.Slice{}, []validator.Constraint{
			{Name: "bad", Field: "a", Fields: []string{"b"}},
		}, nil)
		assert.ErrorIs(t, err, validator.ErrInvalidConstraint)
	})

	t.Run("caller's constraints are never mutated", func(t *testing.T) {
		tbl := tabular.Slice{
			{"foo", "bar"},
			{1, "a"},
		}
		constraints := []validator.Constraint{
			{Name: "foo_int", Field: "foo", Test: validator.IsInt()},
		}
		problems, err := validator.Validate(tbl, constraints, header)
		require.NoError(t, err)
		_, err = problems.All()
		require.NoError(t, err)

		assert.Nil(t, constraints[0].Getter)
	})
}

func TestValidateEndToEnd(t *testing.T) {
	// Mixed audit: expected header differs from the actual one, typed and
	// string cells, short and long rows.
	tbl := tabular.Slice{
		{"foo", "bar", "bazzz"},
		{1, "2000-01-01", "Y"},
		{"x", "2010-10-10", "N"},
		{2, "2000/01/01", "Y"},
		{3, "2015-12-12", "x"},
		{4, nil, "N"},
		{"y", "1999-99-99", "z"},
		{6, "2000-01-01"},
		{7, "2001-02-02", "N", true},
	}
	constraints := []validator.Constraint{
		{Name: "foo_int", Field: "foo", Test: validator.IsInt()},
		{Name: "bar_date", Field: "bar", Test: validator.IsDate("2006-01-02")},
		{Name: "baz_enum", Field: "baz", Assertion: validator.In("Y", "N")},
		{Name: "not_none", Assertion: validator.NoneMissing()},
	}

	problems, err := validator.Validate(tbl, constraints, []string{"foo", "bar", "baz"})
	require.NoError(t, err)

	want := []validator.Problem{
		{Name: validator.HeaderName, Row: 0, Kind: validator.KindHeaderMismatch},
		{Name: "foo_int", Row: 2, Field: "foo", Value: "x", Kind: validator.KindTestFailure},
		{Name: "bar_date", Row: 3, Field: "bar", Value: "2000/01/01", Kind: validator.KindTestFailure},
		{Name: "baz_enum", Row: 4, Field: "baz", Value: "x", Kind: validator.KindAssertionFailure},
		{Name: "bar_date", Row: 5, Field: "bar", Value: nil, Kind: validator.KindTestFailure},
		{Name: "not_none", Row: 5, Kind: validator.KindAssertionFailure},
		{Name: "foo_int", Row: 6, Field: "foo", Value: "y", Kind: validator.KindTestFailure},
		{Name: "bar_date", Row: 6, Field: "bar", Value: "1999-99-99", Kind: validator.KindTestFailure},
		{Name: "baz_enum", Row: 6, Field: "baz", Value: "z", Kind: validator.KindAssertionFailure},
		{Name: validator.LengthName, Row: 7, Value: 2, Kind: validator.KindRowLengthMismatch},
		{Name: "baz_enum", Row: 7, Field: "baz", Kind: validator.KindExtractionFailure},
		{Name: validator.LengthName, Row: 8, Value: 4, Kind: validator.KindRowLengthMismatch},
	}
	assert.Equal(t, want, stripped(t, problems))

	t.Run("iterating twice is idempotent", func(t *testing.T) {
		assert.Equal(t, stripped(t, problems), stripped(t, problems))
	})
}

func TestProblemsAsTable(t *testing.T) {
	tbl := tabular.Slice{
		{"a", "c"},
		{-1, "x"},
	}
	constraints := []validator.Constraint{
		{Name: "a_pos", Field: "a", Assertion: validator.Positive()},
	}
	problems, err := validator.Validate(tbl, constraints, []string{"a", "b"})
	require.NoError(t, err)

	rd, err := problems.Rows()
	require.NoError(t, err)
	defer rd.Close()

	var rows []tabular.Row
	for {
		row, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}

	require.Len(t, rows, 3)
	assert.Equal(t, tabular.Row{"name", "row", "field", "value", "error"}, rows[0])
	assert.Equal(t, tabular.Row{validator.HeaderName, 0, nil, nil, "HeaderMismatch"}, rows[1])
	assert.Equal(t, tabular.Row{"a_pos", 1, "a", -1, "AssertionFailure"}, rows[2])
}

// countingTable tracks how many data rows a pass has pulled.
type countingTable struct {
	tbl   tabular.Table
	reads int
}

func (c *countingTable) Rows() (tabular.RowReader, error) {
	rd, err := c.tbl.Rows()
	if err != nil {
		return nil, err
	}
	return &countingReader{rd: rd, reads: &c.reads}, nil
}

type countingReader struct {
	rd    tabular.RowReader
	reads *int
}

func (r *countingReader) Next() (tabular.Row, error) {
	row, err := r.rd.Next()
	if err == nil {
		*r.reads++
	}
	return row, err
}

func (r *countingReader) Close() error { return r.rd.Close() }

func TestValidateLaziness(t *testing.T) {
	src := tabular.Slice{
		{"foo"},
		{"bad"},
		{1},
		{2},
		{"also bad"},
	}
	counting := &countingTable{tbl: src}
	constraints := []validator.Constraint{
		{Name: "foo_int", Field: "foo", Test: validator.IsInt()},
	}
	problems, err := validator.Validate(counting, constraints, nil)
	require.NoError(t, err)

	err = problems.Each(func(p validator.Problem) bool {
		return false // stop after the first problem
	})
	require.NoError(t, err)

	// Header plus the single row that produced the first problem.
	assert.Equal(t, 2, counting.reads)
}
