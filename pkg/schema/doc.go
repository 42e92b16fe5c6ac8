// Package schema loads declarative audit schemas from yaml and compiles
// them into validator constraints, so teams can keep data-quality rules in
// version-controlled config instead of code.
//
// # Architecture
//
// A schema is an expected header plus an ordered list of checks. Loading
// and compiling are separate steps: Load validates the document shape
// (unknown fields are rejected), Constraints turns checks into
// validator.Constraint values in declaration order. Each check can combine
// one value test (type) with any number of value assertions (required,
// enum, pattern); combined assertions are joined with validator.And.
//
// # Usage
//
//	s, err := schema.LoadFile("audit.yaml")
//	if err != nil {
//	    return err
//	}
//	constraints, err := s.Constraints()
//	if err != nil {
//	    return err
//	}
//	problems, err := validator.Validate(tbl, constraints, s.Header)
//
// With a document like:
//
//	version: 1
//	header: [id, amount, status, created_at]
//	checks:
//	  - name: id_uuid
//	    field: id
//	    type: uuid
//	  - name: amount_float
//	    field: amount
//	    type: float
//	  - name: status_enum
//	    field: status
//	    enum: [active, suspended, closed]
//	  - name: created_at_date
//	    field: created_at
//	    type: date
//	    layouts: ["2006-01-02", "2006-01-02 15:04:05"]
//	  - name: no_missing
//	    assertion: none_missing
//
// # Error Handling
//
// Load and Constraints return sentinel-wrapped errors (ErrFailedToParse,
// ErrUnknownType, ErrInvalidPattern, ...) that match with errors.Is. A
// schema that loads cleanly can still fail validator.Validate when a
// non-optional check names a field absent from the effective header; that
// is a configuration error of the run, not of the document.
package schema
