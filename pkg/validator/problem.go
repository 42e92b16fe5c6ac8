package validator

import "github.com/dmitrymomot/tabcheck/pkg/tabular"

// Kind is a stable, serializable tag naming the category of a validation
// failure. Kinds are the values of the report's "error" column.
type Kind string

const (
	KindHeaderMismatch    Kind = "HeaderMismatch"
	KindRowLengthMismatch Kind = "RowLengthMismatch"
	KindExtractionFailure Kind = "ExtractionFailure"
	KindTestFailure       Kind = "TestFailure"
	KindAssertionFailure  Kind = "AssertionFailure"
)

// Reserved problem names for the two structural checks.
const (
	HeaderName = "__header__"
	LengthName = "__len__"
)

// ReportHeader is the fixed shape of the problem report, produced as the
// first row when the report is read as a table.
var ReportHeader = []string{"name", "row", "field", "value", "error"}

// Problem describes a single detected validation failure.
//
// Row is 1-based over data rows; 0 is reserved for the header check. Field
// is empty for whole-row constraints and for the structural checks. Value is
// the offending value, or nil when the constraint has no field or when
// extraction itself failed. Cause retains the specific underlying failure
// (nil for an assertion that simply returned false).
type Problem struct {
	Name  string
	Row   int
	Field string
	Value any
	Kind  Kind
	Cause error
}

// row renders the problem as a report row shaped like ReportHeader.
func (p Problem) row() tabular.Row {
	var field any
	if p.Field != "" {
		field = p.Field
	}
	return tabular.Row{p.Name, p.Row, field, p.Value, string(p.Kind)}
}
