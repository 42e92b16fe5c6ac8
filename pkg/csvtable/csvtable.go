package csvtable

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/text/transform"

	"github.com/dmitrymomot/tabcheck/pkg/tabular"
)

const utf8BOM = "\ufeff"

// Open returns a table backed by a csv file on disk. Every pass reopens the
// file, which makes the table safely multi-pass.
func Open(path string, opts ...Option) tabular.Table {
	return FromOpener(func() (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Join(ErrFailedToOpenSource, err)
		}
		return f, nil
	}, opts...)
}

// FromOpener returns a table that invokes open once per pass. The opener
// carries the multi-pass burden: any source that can be re-fetched (a file,
// an object store key, an HTTP resource) fits this shape.
func FromOpener(open func() (io.ReadCloser, error), opts ...Option) tabular.Table {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &openerTable{open: open, opts: o}
}

// FromString returns a multi-pass table over an in-memory csv document.
func FromString(s string, opts ...Option) tabular.Table {
	return FromOpener(func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	}, opts...)
}

// FromReader wraps a single reader. The first pass consumes it; any further
// pass fails with ErrConsumed. This is a deliberate limitation for sources
// that genuinely cannot be replayed, such as a live network stream.
func FromReader(r io.Reader, opts ...Option) tabular.Table {
	var consumed atomic.Bool
	return FromOpener(func() (io.ReadCloser, error) {
		if !consumed.CompareAndSwap(false, true) {
			return nil, ErrConsumed
		}
		return io.NopCloser(r), nil
	}, opts...)
}

type openerTable struct {
	open func() (io.ReadCloser, error)
	opts options
}

func (t *openerTable) Rows() (tabular.RowReader, error) {
	src, err := t.open()
	if err != nil {
		return nil, err
	}

	var r io.Reader = src
	if t.opts.encoding != nil {
		r = transform.NewReader(src, t.opts.encoding.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.Comma = t.opts.comma
	cr.LazyQuotes = t.opts.lazyQuotes
	cr.TrimLeadingSpace = t.opts.trimLeadingSpace
	// Ragged rows must reach the consumer; row-length policy is not the
	// parser's call here.
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	return &csvReader{src: src, cr: cr, first: true}, nil
}

type csvReader struct {
	src   io.ReadCloser
	cr    *csv.Reader
	first bool
}

func (r *csvReader) Next() (tabular.Row, error) {
	rec, err := r.cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if r.first {
		r.first = false
		rec = stripBOM(rec)
	}
	row := make(tabular.Row, len(rec))
	for i, cell := range rec {
		row[i] = cell
	}
	return row, nil
}

func (r *csvReader) Close() error { return r.src.Close() }

// stripBOM removes a UTF-8 BOM from the first header cell if present.
func stripBOM(rec []string) []string {
	if len(rec) > 0 {
		rec[0] = strings.TrimPrefix(rec[0], utf8BOM)
	}
	return rec
}
