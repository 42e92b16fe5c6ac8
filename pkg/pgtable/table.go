package pgtable

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/tabcheck/pkg/tabular"
)

// Querier is the subset of pgxpool.Pool this package needs. It exists so
// tests can substitute a fake without a live database.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Option configures a query-backed table.
type Option func(*queryTable)

// WithLogger enables per-pass debug logging of query execution.
func WithLogger(l *slog.Logger) Option {
	return func(t *queryTable) { t.log = l }
}

// WithArgs supplies positional arguments for the query.
func WithArgs(args ...any) Option {
	return func(t *queryTable) { t.args = args }
}

// New adapts a query to the tabular.Table contract. Every pass re-executes
// the query, so the table is multi-pass as long as the query is repeatable;
// the header is taken from the statement's field descriptions. The context
// is captured for the lifetime of the table because passes are started by
// consumers that know nothing about the source.
func New(ctx context.Context, q Querier, sql string, opts ...Option) tabular.Table {
	t := &queryTable{ctx: ctx, q: q, sql: sql}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type queryTable struct {
	ctx  context.Context
	q    Querier
	sql  string
	args []any
	log  *slog.Logger
}

func (t *queryTable) Rows() (tabular.RowReader, error) {
	if t.log != nil {
		t.log.DebugContext(t.ctx, "starting audit query pass", slog.String("query", t.sql))
	}
	rows, err := t.q.Query(t.ctx, t.sql, t.args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	header := make(tabular.Row, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		header = append(header, fd.Name)
	}
	return &pgReader{rows: rows, header: header}, nil
}

type pgReader struct {
	rows   pgx.Rows
	header tabular.Row
	sent   bool
}

func (r *pgReader) Next() (tabular.Row, error) {
	if !r.sent {
		r.sent = true
		return r.header, nil
	}
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}
		return nil, io.EOF
	}
	values, err := r.rows.Values()
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	return tabular.Row(values), nil
}

func (r *pgReader) Close() error {
	r.rows.Close()
	return nil
}
