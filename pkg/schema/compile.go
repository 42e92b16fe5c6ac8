package schema

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/tabcheck/pkg/validator"
)

// Constraints compiles the schema's checks into validator constraints, in
// declaration order. The schema's Header (possibly nil) is the expected
// header to validate against.
func (s *Schema) Constraints() ([]validator.Constraint, error) {
	out := make([]validator.Constraint, 0, len(s.Checks))
	for _, c := range s.Checks {
		cc, err := c.constraint()
		if err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, nil
}

func (c Check) constraint() (validator.Constraint, error) {
	out := validator.Constraint{
		Name:     c.Name,
		Field:    c.Field,
		Fields:   c.Fields,
		Optional: c.Optional,
	}

	switch c.Type {
	case "int":
		out.Test = validator.IsInt()
	case "float":
		out.Test = validator.IsFloat()
	case "bool":
		out.Test = validator.IsBool()
	case "date":
		out.Test = validator.IsDate(c.Layouts...)
	case "uuid":
		out.Test = validator.IsUUID()
	}

	var assertions []validator.Assertion
	if c.Required {
		assertions = append(assertions, validator.NotEmpty())
	}
	if len(c.Enum) > 0 {
		assertions = append(assertions, validator.In(c.Enum...))
	}
	if c.Pattern != "" {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return validator.Constraint{}, fmt.Errorf("%w: check %q: %v", ErrInvalidPattern, c.Name, err)
		}
		assertions = append(assertions, validator.Matches(re))
	}
	switch c.Assertion {
	case "none_missing":
		assertions = append(assertions, validator.NoneMissing())
	case "none_empty":
		assertions = append(assertions, validator.NoneEmpty())
	}

	switch len(assertions) {
	case 0:
	case 1:
		out.Assertion = assertions[0]
	default:
		out.Assertion = validator.And(assertions...)
	}
	return out, nil
}
