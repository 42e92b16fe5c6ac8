package schema

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is a declarative audit description: an expected header plus a list
// of named checks, loaded from yaml and compiled into validator constraints.
type Schema struct {
	Version int      `yaml:"version"`
	Header  []string `yaml:"header,omitempty"`
	Checks  []Check  `yaml:"checks"`
}

// Check is one declared constraint. Field selects a single column, Fields an
// ordered group; with neither the check judges the whole row through a named
// row assertion.
type Check struct {
	Name     string   `yaml:"name"`
	Field    string   `yaml:"field,omitempty"`
	Fields   []string `yaml:"fields,omitempty"`
	Optional bool     `yaml:"optional,omitempty"`

	// Type is a value test: int, float, bool, date or uuid.
	Type    string   `yaml:"type,omitempty"`
	Layouts []string `yaml:"layouts,omitempty"` // date layouts, Go reference-time form

	// Value assertions, combinable on one check.
	Required bool     `yaml:"required,omitempty"`
	Enum     []string `yaml:"enum,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`

	// Assertion names a whole-row assertion: none_missing or none_empty.
	Assertion string `yaml:"assertion,omitempty"`
}

// Load decodes and validates a schema document.
func Load(r io.Reader) (*Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if s.Version > 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	for _, c := range s.Checks {
		if err := c.validate(); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// LoadFile reads a schema document from disk.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (c Check) validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if c.Field != "" && len(c.Fields) > 0 {
		return fmt.Errorf("%w: %q", ErrAmbiguousFields, c.Name)
	}
	switch c.Type {
	case "", "int", "float", "bool", "date", "uuid":
	default:
		return fmt.Errorf("%w: %q in check %q", ErrUnknownType, c.Type, c.Name)
	}
	switch c.Assertion {
	case "", "none_missing", "none_empty":
	default:
		return fmt.Errorf("%w: %q in check %q", ErrUnknownAssertion, c.Assertion, c.Name)
	}
	return nil
}
