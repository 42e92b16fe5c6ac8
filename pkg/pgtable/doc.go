// Package pgtable exposes a PostgreSQL query result as a tabular.Table, so
// database rows can be audited with the same validator pass as csv feeds.
//
// # Architecture
//
// New captures a query (arguments go through WithArgs); every Rows call
// re-executes the
// query through a Querier (satisfied by *pgxpool.Pool), which is what makes
// the table multi-pass. The header row is derived from the statement's
// field descriptions, data rows come straight from pgx row values with
// their driver types intact.
//
// Connect and Healthcheck carry the connection lifecycle: linear-backoff
// retries at startup, ping-based health checking, env-tagged Config for use
// with the config package.
//
// # Usage
//
//	var cfg pgtable.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pgtable.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	tbl := pgtable.New(ctx, pool, "SELECT id, amount, status FROM payments ORDER BY id")
//	problems, err := validator.Validate(tbl, constraints, nil)
//
// Audited queries should carry a deterministic ORDER BY: re-iterating the
// problems view re-runs the query, and only a stable order keeps row
// indices in the report meaningful across passes.
//
// # Error Handling
//
// Failures wrap package sentinels (ErrQueryFailed, ErrReadFailed,
// ErrFailedToOpenDBConnection, ...) together with the pgx cause and match
// with errors.Is.
package pgtable
