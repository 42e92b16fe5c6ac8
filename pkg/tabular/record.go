package tabular

import "fmt"

// Index resolves field names to row positions. It is built once per pass
// from the effective header and shared read-only by every Record of that
// pass.
type Index struct {
	fields []string
	pos    map[string]int
}

// NewIndex builds an index over the given field list. When the same name
// appears more than once, the first occurrence wins.
func NewIndex(fields []string) *Index {
	pos := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, ok := pos[f]; !ok {
			pos[f] = i
		}
	}
	return &Index{fields: fields, pos: pos}
}

// Fields returns the indexed field list in order. The returned slice is
// shared and must not be modified.
func (ix *Index) Fields() []string { return ix.fields }

// Len returns the number of indexed fields.
func (ix *Index) Len() int { return len(ix.fields) }

// Lookup returns the position of a field name.
func (ix *Index) Lookup(name string) (int, bool) {
	i, ok := ix.pos[name]
	return i, ok
}

// Bind wraps a row in a Record addressable by name and by position. The row
// is referenced, not copied.
func (ix *Index) Bind(row Row) Record {
	return Record{row: row, ix: ix}
}

// FieldIndex resolves a single field name against a field list.
func FieldIndex(fields []string, name string) (int, error) {
	for i, f := range fields {
		if f == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// FieldIndices resolves an ordered collection of field names against a field
// list, preserving the order the names were given.
func FieldIndices(fields []string, names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		ix, err := FieldIndex(fields, name)
		if err != nil {
			return nil, err
		}
		out[i] = ix
	}
	return out, nil
}

// Record is a positional row bound to a field index. A Record is a small
// value; copying it never copies row data.
type Record struct {
	row Row
	ix  *Index
}

// Len returns the number of values in the underlying row.
func (r Record) Len() int { return len(r.row) }

// Values returns the underlying row.
func (r Record) Values() Row { return r.row }

// At returns the value at a position. A row shorter than the header makes
// trailing positions unreachable and reports ErrPositionOutOfRange.
func (r Record) At(i int) (any, error) {
	if i < 0 || i >= len(r.row) {
		return nil, fmt.Errorf("%w: %d (row has %d values)", ErrPositionOutOfRange, i, len(r.row))
	}
	return r.row[i], nil
}

// Get returns the value of a named field.
func (r Record) Get(name string) (any, error) {
	i, ok := r.ix.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return r.At(i)
}
