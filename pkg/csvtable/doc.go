// Package csvtable adapts csv documents to the tabular.Table contract.
//
// # Architecture
//
// The multi-pass requirement of tabular.Table is satisfied by construction:
// a table holds an opener, not a reader, and invokes it once per pass. Open
// reopens a file per pass, FromString replays an in-memory document, and
// FromOpener accepts any re-fetchable source. FromReader is the single
// deliberate exception for genuinely one-shot streams and fails the second
// pass with ErrConsumed instead of silently returning an empty table.
//
// Cells are delivered as strings exactly as parsed; no coercion happens
// here. A UTF-8 BOM on the first header cell is stripped, and ragged rows
// are passed through untouched (FieldsPerRecord is disabled) so that
// row-length policy stays with the consumer.
//
// # Usage
//
//	tbl := csvtable.Open("accounts.csv",
//	    csvtable.WithComma(';'),
//	    csvtable.WithLazyQuotes(),
//	)
//
//	problems, err := validator.Validate(tbl, constraints, header)
//
// Legacy encodings are handled with golang.org/x/text:
//
//	tbl := csvtable.Open("legacy.csv", csvtable.WithEncoding(charmap.Windows1250))
//
// # Error Handling
//
//   - ErrFailedToOpenSource – the pass could not open the underlying source.
//   - ErrFailedToParse – the csv reader rejected the input mid-pass.
//   - ErrConsumed – a FromReader table was asked for a second pass.
//
// All are wrapped with the underlying cause and match with errors.Is.
package csvtable
