package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FormatEmail is the only recognized string format constraint.
const FormatEmail = "email"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError reports a per-field mismatch between a parsed value and the
// schema, carrying the path of the offending field ("a.b[2].c" notation).
type ValidationError struct {
	FieldPath string
	Message   string
}

func (e *ValidationError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("value does not match schema: %s", e.Message)
	}
	return fmt.Sprintf("field %q: %s", e.FieldPath, e.Message)
}

// Validate walks the schema field-by-field against a parsed value. Every
// required field must be present, every runtime type must match the declared
// type after the two supported coercions (numeric strings for numeric fields,
// case-insensitive enum tokens), and every constraint must hold. It returns
// the normalized value, holding the declared fields only with coercions
// applied, or a *ValidationError naming the first offending field. Missing
// optional fields stay absent; they are never substituted with defaults.
func (s *Schema) Validate(value map[string]any) (map[string]any, error) {
	return validateFields("", s.fields, value)
}

func validateFields(path string, fields []FieldDef, value map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(fields))
	for i := range fields {
		f := &fields[i]
		fieldPath := joinPath(path, f.Name)
		raw, ok := value[f.Name]
		if !ok || raw == nil {
			if f.Required {
				return nil, &ValidationError{FieldPath: fieldPath, Message: "required field missing"}
			}
			continue
		}
		coerced, err := coerceValue(fieldPath, f, raw)
		if err != nil {
			return nil, err
		}
		normalized[f.Name] = coerced
	}
	return normalized, nil
}

func coerceValue(path string, f *FieldDef, raw any) (any, error) {
	switch f.Type {
	case TypeString:
		v, ok := raw.(string)
		if !ok {
			return nil, typeMismatch(path, "string", raw)
		}
		if err := checkStringConstraints(path, f, v); err != nil {
			return nil, err
		}
		return v, nil

	case TypeNumber, TypeInteger:
		n, err := coerceNumber(path, raw)
		if err != nil {
			return nil, err
		}
		if f.Type == TypeInteger && n != math.Trunc(n) {
			return nil, &ValidationError{FieldPath: path, Message: fmt.Sprintf("expected integer, got %v", n)}
		}
		if c := f.Constraints; c.Min != nil && n < *c.Min {
			return nil, &ValidationError{FieldPath: path, Message: fmt.Sprintf("value %v below minimum %v", n, *c.Min)}
		}
		if c := f.Constraints; c.Max != nil && n > *c.Max {
			return nil, &ValidationError{FieldPath: path, Message: fmt.Sprintf("value %v above maximum %v", n, *c.Max)}
		}
		return n, nil

	case TypeBoolean:
		v, ok := raw.(bool)
		if !ok {
			return nil, typeMismatch(path, "boolean", raw)
		}
		return v, nil

	case TypeEnum:
		v, ok := raw.(string)
		if !ok {
			return nil, typeMismatch(path, "enum string", raw)
		}
		for _, variant := range f.Enum {
			if strings.EqualFold(variant, v) {
				return variant, nil
			}
		}
		return nil, &ValidationError{
			FieldPath: path,
			Message:   fmt.Sprintf("value %q not one of [%s]", v, strings.Join(f.Enum, ", ")),
		}

	case TypeArray:
		items, ok := raw.([]any)
		if !ok {
			return nil, typeMismatch(path, "array", raw)
		}
		out := make([]any, 0, len(items))
		for i, item := range items {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if item == nil {
				return nil, &ValidationError{FieldPath: elemPath, Message: "array element is null"}
			}
			coerced, err := coerceValue(elemPath, f.Items, item)
			if err != nil {
				return nil, err
			}
			out = append(out, coerced)
		}
		return out, nil

	case TypeObject:
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, typeMismatch(path, "object", raw)
		}
		if len(f.Fields) == 0 {
			out := make(map[string]any, len(obj))
			for k, v := range obj {
				out[k] = v
			}
			return out, nil
		}
		return validateFields(path, f.Fields, obj)
	}
	return nil, &ValidationError{FieldPath: path, Message: fmt.Sprintf("unknown field type %q", f.Type)}
}

func coerceNumber(path string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &ValidationError{FieldPath: path, Message: fmt.Sprintf("value %q is not numeric", v)}
		}
		return n, nil
	}
	return 0, typeMismatch(path, "number", raw)
}

func checkStringConstraints(path string, f *FieldDef, v string) error {
	c := f.Constraints
	if c.MinLength != nil && len(v) < *c.MinLength {
		return &ValidationError{FieldPath: path, Message: fmt.Sprintf("length %d below minimum %d", len(v), *c.MinLength)}
	}
	if c.MaxLength != nil && len(v) > *c.MaxLength {
		return &ValidationError{FieldPath: path, Message: fmt.Sprintf("length %d above maximum %d", len(v), *c.MaxLength)}
	}
	if c.Format == FormatEmail && !emailPattern.MatchString(v) {
		return &ValidationError{FieldPath: path, Message: fmt.Sprintf("value %q is not a valid email", v)}
	}
	return nil
}

func typeMismatch(path, want string, got any) *ValidationError {
	return &ValidationError{FieldPath: path, Message: fmt.Sprintf("expected %s, got %s", want, jsonTypeName(got))}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
