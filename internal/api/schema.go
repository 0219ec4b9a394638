package api

import (
	"fmt"
	"strings"
)

// Param is one declared parameter of an API.
type Param struct {
	Name    string
	Default Literal
}

// P builds a Param, normalizing def with LiteralOf.
func P(name string, def any) Param {
	return Param{Name: name, Default: LiteralOf(def)}
}

// Schema is the ordered parameter list of one API.
type Schema struct {
	name   string
	params []Param
	index  map[string]int
}

// NewSchema creates a schema. Parameter names must be unique, and a
// catch-all parameter (name starting with "*") must be the only one.
func NewSchema(name string, params ...Param) (*Schema, error) {
	s := &Schema{
		name:   name,
		params: make([]Param, 0, len(params)),
		index:  make(map[string]int, len(params)),
	}

	for _, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: %s: empty parameter name", ErrSchema, name)
		}

		if _, dup := s.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate parameter %q", ErrSchema, name, p.Name)
		}

		if isCatchAll(p.Name) && len(params) != 1 {
			return nil, fmt.Errorf("%w: %s: catch-all parameter %q must be the only parameter",
				ErrSchema, name, p.Name)
		}

		s.index[p.Name] = len(s.params)
		s.params = append(s.params, p)
	}

	return s, nil
}

// MustSchema is like NewSchema but panics on error. Meant for static tables.
func MustSchema(name string, params ...Param) *Schema {
	s, err := NewSchema(name, params...)
	if err != nil {
		panic(err)
	}

	return s
}

func isCatchAll(name string) bool {
	return strings.HasPrefix(name, "*")
}

// Name returns the API name.
func (s *Schema) Name() string {
	return s.name
}

// Len returns the number of declared parameters.
func (s *Schema) Len() int {
	return len(s.params)
}

// Params returns a copy of the declared parameters in order.
func (s *Schema) Params() []Param {
	return append([]Param(nil), s.params...)
}

// Names returns the parameter names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}

	return names
}

// Lookup returns the default of a parameter.
func (s *Schema) Lookup(name string) (Literal, bool) {
	i, ok := s.index[name]
	if !ok {
		return Literal{}, false
	}

	return s.params[i].Default, true
}

// Has reports whether the schema declares the parameter.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// CatchAll returns the name of the sole catch-all parameter, if the schema
// is a catch-all schema.
func (s *Schema) CatchAll() (string, bool) {
	if len(s.params) == 1 && isCatchAll(s.params[0].Name) {
		return s.params[0].Name, true
	}

	return "", false
}

// String renders the schema as a signature, e.g. "F.relu(input=REQUIRED)".
func (s *Schema) String() string {
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		parts[i] = p.Name + "=" + p.Default.String()
	}

	return s.name + "(" + strings.Join(parts, ", ") + ")"
}
