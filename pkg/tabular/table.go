package tabular

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Row is one ordered, fixed-size sequence of values. The first row produced
// by any RowReader is the header and holds field names.
type Row []any

// RowReader iterates one pass over a table. Next returns io.EOF once the
// table is exhausted; any other error is a source failure. Close releases
// underlying resources and is safe to call after io.EOF.
type RowReader interface {
	Next() (Row, error)
	Close() error
}

// Table is anything that can be iterated more than once, each time from the
// start. Every Rows call must return a fresh, independent reader positioned
// at the header row. Sources that can only be consumed a single time must
// document that limitation and fail the second pass explicitly.
type Table interface {
	Rows() (RowReader, error)
}

// Slice is an in-memory table. The first element is the header.
type Slice [][]any

func (s Slice) Rows() (RowReader, error) {
	return &sliceReader{rows: s}, nil
}

type sliceReader struct {
	rows [][]any
	pos  int
}

func (r *sliceReader) Next() (Row, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := Row(r.rows[r.pos])
	r.pos++
	return row, nil
}

func (r *sliceReader) Close() error { return nil }

// FromFunc adapts a reader factory to the Table contract. The factory is
// invoked once per pass and carries the multi-pass burden.
func FromFunc(open func() (RowReader, error)) Table {
	return funcTable{open: open}
}

type funcTable struct {
	open func() (RowReader, error)
}

func (t funcTable) Rows() (RowReader, error) { return t.open() }

// Strings renders every cell of a row in its canonical string form. Headers
// are compared and indexed through this normalization so that a table whose
// header cells are not strings still resolves field names predictably.
func Strings(row Row) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = String(v)
	}
	return out
}

// String converts a single cell to its canonical string form without the
// overhead of fmt.Sprint for the common scalar types.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
