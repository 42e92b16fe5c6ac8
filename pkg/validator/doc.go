// Package validator audits a stream of tabular rows against declared
// constraints and an expected header, producing a lazy report of every row
// and field that fails, without ever aborting on the first failure.
//
// It is the core of tabcheck: structural checks (header shape, row length)
// and semantic checks (type tests, value assertions, cross-field
// invariants) run uniformly over a potentially unbounded stream of rows,
// and every failure becomes data in the report instead of control flow.
//
// # Architecture
//
// A validation run has two stages, evaluated in dependency order:
//
//   - Constraint compilation: once per pass, each constraint's field
//     reference(s) are resolved to positions in the effective field list
//     and turned into a directly-callable getter. Optional constraints on
//     absent fields are dropped; non-optional ones are a configuration
//     error that fails the run before any row is scanned.
//   - Streaming evaluation: the table's reader is consumed lazily. The
//     header gets one structural comparison (problem name "__header__",
//     row 0); every data row gets a length check (problem name "__len__")
//     and then every compiled constraint in declaration order, each step
//     independently fault-isolated. Panics from user callables are
//     recovered and classified, never propagated.
//
// Per constraint and row the protocol is getter, then test, then
// assertion. A failed extraction suppresses both judges and reports one
// ExtractionFailure. A test failure does not short-circuit the assertion,
// so a single constraint can contribute a TestFailure and an
// AssertionFailure for the same row, both carrying the same value.
//
// The report is a Problems view: iterating it drives exactly one fresh
// pass over the source table, and iterating again re-runs everything. It
// also satisfies tabular.Table, producing the literal header row
// (name, row, field, value, error) followed by one row per problem.
//
// # Usage
//
//	constraints := []validator.Constraint{
//	    {Name: "foo_int", Field: "foo", Test: validator.IsInt()},
//	    {Name: "bar_date", Field: "bar", Test: validator.IsDate("2006-01-02")},
//	    {Name: "baz_enum", Field: "baz", Assertion: validator.In("Y", "N")},
//	    {Name: "not_none", Assertion: validator.NoneMissing()},
//	}
//
//	problems, err := validator.Validate(table, constraints, []string{"foo", "bar", "baz"})
//	if err != nil {
//	    return err // malformed constraint configuration
//	}
//
//	err = problems.Each(func(p validator.Problem) bool {
//	    log.Printf("%s row=%d field=%s value=%v kind=%s", p.Name, p.Row, p.Field, p.Value, p.Kind)
//	    return true
//	})
//
// # Error Handling
//
// Failures live on two levels. Configuration errors (a malformed
// declaration, a non-optional reference to an absent field) are returned to
// the caller as ordinary errors, wrapped around ErrInvalidConstraint or
// tabular.ErrFieldNotFound. Everything discovered per row becomes a Problem
// whose Kind is one of the stable symbolic categories (HeaderMismatch,
// RowLengthMismatch, ExtractionFailure, TestFailure, AssertionFailure) and
// whose Cause retains the specific underlying error, so consumers can group
// with errors.Is against the ErrNot* sentinels declared here.
//
// # Performance Considerations
//
// Evaluation is single-threaded, pull-based and fully lazy: a consumer that
// reads only the first N problems causes only the rows up to the Nth
// problem to be scanned, and stopping early releases the source without
// finishing the pass. Compilation happens once per pass, not once per row;
// rows are wrapped, never copied.
package validator
