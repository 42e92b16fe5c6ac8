package validator

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrymomot/tabcheck/pkg/tabular"
)

// Validate audits a table against a set of constraints and an expected
// header, returning a lazy, re-iterable problem report. Nothing is scanned
// until the report is iterated; each iteration drives one fresh pass over
// the table.
//
// constraints may be nil for structural-only validation. header may be nil,
// in which case the table's own header becomes the effective field list and
// no header check is performed. When header is supplied it is always the
// effective field list, even when it does not match the table.
//
// The only eager work is declaration checking, plus field resolution when
// the expected header is already known: a non-optional constraint naming a
// field absent from a supplied header is a configuration error reported
// here, before any pass starts. With a nil header the same error surfaces
// from the first pass instead, still before any row is scanned.
func Validate(t tabular.Table, constraints []Constraint, header []string) (*Problems, error) {
	for _, c := range constraints {
		if err := c.check(); err != nil {
			return nil, err
		}
	}
	if header != nil {
		if _, err := compileConstraints(constraints, tabular.NewIndex(header)); err != nil {
			return nil, err
		}
	}
	return &Problems{
		table:       t,
		constraints: slices.Clone(constraints),
		header:      slices.Clone(header),
	}, nil
}

// Problems is the lazy validation report. It is a view, not a materialized
// list: every iteration re-runs the whole pass against a fresh pass over the
// table, so results are order-stable and repeatable as long as the table is.
//
// Problems itself satisfies tabular.Table; read as a table it produces
// ReportHeader first and then one row per problem.
type Problems struct {
	table       tabular.Table
	constraints []Constraint
	header      []string
}

// Each runs one pass, invoking fn for every problem in order: the header
// problem (if any) first, then per row the length problem followed by
// constraint problems in declaration order. fn returning false stops the
// pass early and releases the source without completing the scan.
func (p *Problems) Each(fn func(Problem) bool) error {
	it, err := p.start()
	if err != nil {
		return err
	}
	defer it.Close()
	for {
		pr, err := it.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !fn(pr) {
			return nil
		}
	}
}

// All runs one pass and materializes every problem. A table with no
// problems yields an empty slice.
func (p *Problems) All() ([]Problem, error) {
	out := []Problem{}
	err := p.Each(func(pr Problem) bool {
		out = append(out, pr)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Rows starts one pass and returns the report in table form: ReportHeader
// first, then one row per problem. The header row of the source table is
// pulled and the constraints are compiled here; row scanning stays lazy.
func (p *Problems) Rows() (tabular.RowReader, error) {
	it, err := p.start()
	if err != nil {
		return nil, err
	}
	return &reportReader{it: it}, nil
}

// start opens a fresh pass: pull the header, settle the effective field
// list, run the header check, compile the constraints.
func (p *Problems) start() (*passIter, error) {
	rd, err := p.table.Rows()
	if err != nil {
		return nil, err
	}

	actual, err := rd.Next()
	if err != nil {
		_ = rd.Close()
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, err
	}

	var fields []string
	var queue []Problem
	if p.header == nil {
		fields = tabular.Strings(actual)
	} else {
		fields = p.header
		got := tabular.Strings(actual)
		if !slices.Equal(fields, got) {
			queue = append(queue, Problem{
				Name:  HeaderName,
				Row:   0,
				Kind:  KindHeaderMismatch,
				Cause: fmt.Errorf("expected header %v, got %v", fields, got),
			})
		}
	}

	ix := tabular.NewIndex(fields)
	cc, err := compileConstraints(p.constraints, ix)
	if err != nil {
		_ = rd.Close()
		return nil, err
	}

	return &passIter{
		rd:       rd,
		ix:       ix,
		compiled: cc,
		queue:    queue,
	}, nil
}

// passIter drives one pass. Rows are pulled strictly on demand; problems of
// the current row are queued and handed out one at a time so a consumer that
// stops after N problems scans no further than the row that produced them.
type passIter struct {
	rd       tabular.RowReader
	ix       *tabular.Index
	compiled []compiled
	rowIdx   int
	queue    []Problem
	qpos     int
}

func (it *passIter) next() (Problem, error) {
	for {
		if it.qpos < len(it.queue) {
			pr := it.queue[it.qpos]
			it.qpos++
			return pr, nil
		}

		row, err := it.rd.Next()
		if err != nil {
			return Problem{}, err // io.EOF ends the report; source errors abort the pass
		}
		it.rowIdx++
		it.queue = it.evaluateRow(row)
		it.qpos = 0
	}
}

// evaluateRow performs the length check and applies every compiled
// constraint, in declaration order, to one data row.
func (it *passIter) evaluateRow(row tabular.Row) []Problem {
	var out []Problem
	if len(row) != it.ix.Len() {
		out = append(out, Problem{
			Name:  LengthName,
			Row:   it.rowIdx,
			Value: len(row),
			Kind:  KindRowLengthMismatch,
			Cause: fmt.Errorf("expected %d values, got %d", it.ix.Len(), len(row)),
		})
	}
	rec := it.ix.Bind(row)
	for i := range it.compiled {
		out = it.compiled[i].evaluate(rec, it.rowIdx, out)
	}
	return out
}

func (it *passIter) Close() error { return it.rd.Close() }

// reportReader adapts a pass to the tabular contract, prepending the fixed
// report header row.
type reportReader struct {
	it     *passIter
	opened bool
}

func (r *reportReader) Next() (tabular.Row, error) {
	if !r.opened {
		r.opened = true
		hdr := make(tabular.Row, len(ReportHeader))
		for i, name := range ReportHeader {
			hdr[i] = name
		}
		return hdr, nil
	}
	pr, err := r.it.next()
	if err != nil {
		return nil, err
	}
	return pr.row(), nil
}

func (r *reportReader) Close() error { return r.it.Close() }
