// Package schema implements the registry of extraction schemas: typed field
// descriptors built once via Define, treated as immutable values, and shared
// across concurrent requests without locking. A Schema knows how to render
// itself for each extraction mode and how to validate a parsed value.
package schema

import (
	"encoding/json"
	"fmt"
)

// FieldType enumerates the declared type of a schema field.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
	TypeEnum    FieldType = "enum"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

var knownTypes = map[FieldType]bool{
	TypeString:  true,
	TypeNumber:  true,
	TypeInteger: true,
	TypeBoolean: true,
	TypeEnum:    true,
	TypeArray:   true,
	TypeObject:  true,
}

// Constraints bound the values a field accepts beyond its declared type.
// Min/Max are an inclusive numeric range; MinLength/MaxLength bound string
// length; Format names a string shape ("email" is the only recognized one).
type Constraints struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MinLength *int     `json:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty"`
	Format    string   `json:"format,omitempty"`
}

func (c Constraints) empty() bool {
	return c.Min == nil && c.Max == nil && c.MinLength == nil && c.MaxLength == nil && c.Format == ""
}

// FieldDef declares one field of a schema: name, type, optional constraints,
// a human description injected into prompts and tool declarations, and
// whether the field must be present in extracted output.
type FieldDef struct {
	Name        string      `json:"name"`
	Type        FieldType   `json:"type"`
	Description string      `json:"description,omitempty"`
	Required    bool        `json:"required"`
	Enum        []string    `json:"enum,omitempty"`
	Constraints Constraints `json:"constraints,omitempty"`
	Items       *FieldDef   `json:"items,omitempty"`
	Fields      []FieldDef  `json:"fields,omitempty"`
}

// Schema is an immutable, ordered set of field definitions. Construct via
// Define; never mutate after construction.
type Schema struct {
	fields []FieldDef
}

// InvalidSchemaError reports a malformed schema definition: a caller bug
// detected before any backend call is made.
type InvalidSchemaError struct {
	Field  string
	Reason string
}

func (e *InvalidSchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid schema: %s", e.Reason)
	}
	return fmt.Sprintf("invalid schema: field %q: %s", e.Field, e.Reason)
}

// Define builds a Schema from field definitions. It fails with
// *InvalidSchemaError if a field name is duplicated at any nesting level, a
// constraint is inconsistent with its declared type, an enum has zero
// variants, or an array field lacks an element definition.
func Define(fields []FieldDef) (*Schema, error) {
	if err := checkFields("", fields); err != nil {
		return nil, err
	}
	copied := make([]FieldDef, len(fields))
	copy(copied, fields)
	return &Schema{fields: copied}, nil
}

// DefineFromJSON unmarshals a stored field list and builds a Schema from it.
func DefineFromJSON(raw json.RawMessage) (*Schema, error) {
	var fields []FieldDef
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &InvalidSchemaError{Reason: fmt.Sprintf("unmarshal field definitions: %v", err)}
	}
	return Define(fields)
}

// Fields returns a copy of the field definitions in declaration order.
func (s *Schema) Fields() []FieldDef {
	out := make([]FieldDef, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len reports the number of top-level fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

func checkFields(path string, fields []FieldDef) error {
	seen := make(map[string]bool, len(fields))
	for i := range fields {
		f := &fields[i]
		fieldPath := joinPath(path, f.Name)
		if f.Name == "" {
			return &InvalidSchemaError{Field: path, Reason: "field name is empty"}
		}
		if seen[f.Name] {
			return &InvalidSchemaError{Field: fieldPath, Reason: "duplicate field name"}
		}
		seen[f.Name] = true
		if err := checkDef(fieldPath, f); err != nil {
			return err
		}
	}
	return nil
}

func checkDef(path string, f *FieldDef) error {
	if !knownTypes[f.Type] {
		return &InvalidSchemaError{Field: path, Reason: fmt.Sprintf("unknown field type %q", f.Type)}
	}
	if f.Type == TypeEnum && len(f.Enum) == 0 {
		return &InvalidSchemaError{Field: path, Reason: "enum has zero variants"}
	}
	if f.Type != TypeEnum && len(f.Enum) > 0 {
		return &InvalidSchemaError{Field: path, Reason: fmt.Sprintf("enum variants on %s field", f.Type)}
	}
	if err := checkConstraints(path, f); err != nil {
		return err
	}
	switch f.Type {
	case TypeArray:
		if f.Items == nil {
			return &InvalidSchemaError{Field: path, Reason: "array field missing element definition"}
		}
		if err := checkDef(path+"[]", f.Items); err != nil {
			return err
		}
	case TypeObject:
		if err := checkFields(path, f.Fields); err != nil {
			return err
		}
	}
	return nil
}

func checkConstraints(path string, f *FieldDef) error {
	c := f.Constraints
	if c.empty() {
		return nil
	}
	numeric := f.Type == TypeNumber || f.Type == TypeInteger
	if (c.Min != nil || c.Max != nil) && !numeric {
		return &InvalidSchemaError{Field: path, Reason: fmt.Sprintf("numeric range on %s field", f.Type)}
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		return &InvalidSchemaError{Field: path, Reason: "min exceeds max"}
	}
	if (c.MinLength != nil || c.MaxLength != nil) && f.Type != TypeString {
		return &InvalidSchemaError{Field: path, Reason: fmt.Sprintf("length bounds on %s field", f.Type)}
	}
	if c.MinLength != nil && *c.MinLength < 0 {
		return &InvalidSchemaError{Field: path, Reason: "negative min length"}
	}
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return &InvalidSchemaError{Field: path, Reason: "min length exceeds max length"}
	}
	if c.Format != "" {
		if f.Type != TypeString {
			return &InvalidSchemaError{Field: path, Reason: fmt.Sprintf("format constraint on %s field", f.Type)}
		}
		if c.Format != FormatEmail {
			return &InvalidSchemaError{Field: path, Reason: fmt.Sprintf("unknown format %q", c.Format)}
		}
	}
	return nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
