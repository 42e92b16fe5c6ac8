// Package tabular defines the minimal table contract shared by every data
// source and consumer in tabcheck: an ordered stream of rows whose first row
// is the header, re-iterable from the start on demand.
//
// # Architecture
//
// The package is deliberately tiny and dependency-free. Three ideas:
//
//   - Table – anything that can hand out a fresh RowReader on every Rows()
//     call. Multi-pass iteration is part of the contract: consumers such as
//     the validator re-run whole passes and expect each pass to start from
//     the header again.
//   - RowReader – a pull-based iterator over rows, terminated with io.EOF.
//   - Index/Record – a per-pass field-name index plus a lightweight view
//     that makes a positional row addressable by field name as well as by
//     position. The index is built once per pass and shared by reference
//     across every row; Record itself is a two-word value and is free to
//     copy.
//
// Slice adapts an in-memory [][]any to the Table contract and is the
// workhorse for tests. FromFunc adapts any reader factory.
//
// # Usage
//
//	tbl := tabular.Slice{
//	    {"foo", "bar"},
//	    {1, "a"},
//	    {2, "b"},
//	}
//
//	rd, err := tbl.Rows()
//	if err != nil {
//	    return err
//	}
//	defer rd.Close()
//
//	hdr, _ := rd.Next() // header row
//	ix := tabular.NewIndex(tabular.Strings(hdr))
//	for {
//	    row, err := rd.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    rec := ix.Bind(row)
//	    v, _ := rec.Get("foo")
//	    _ = v
//	}
//
// # Error Handling
//
// Sentinel errors can be tested with errors.Is:
//
//   - ErrFieldNotFound – a referenced field name is absent from the index.
//   - ErrPositionOutOfRange – a positional access is beyond the row's length.
//
// # Performance Considerations
//
// Binding a Record makes no copy of row data; the name-to-position map is
// built once in NewIndex and read concurrently without locking. Rows are
// never retained by this package.
package tabular
