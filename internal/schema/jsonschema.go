package schema

import "encoding/json"

// JSONSchema renders the schema as a JSON-Schema object suitable for a tool
// parameter declaration. Map keys marshal in sorted order, so the rendering
// is deterministic for a given schema.
func (s *Schema) JSONSchema() json.RawMessage {
	raw, err := json.Marshal(objectSchema(s.fields))
	if err != nil {
		// fields contain only marshalable types
		panic("schema: marshal JSON schema: " + err.Error())
	}
	return raw
}

func objectSchema(fields []FieldDef) map[string]any {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for i := range fields {
		f := &fields[i]
		properties[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	out := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func fieldSchema(f *FieldDef) map[string]any {
	var out map[string]any
	switch f.Type {
	case TypeString:
		out = map[string]any{"type": "string"}
		if f.Constraints.MinLength != nil {
			out["minLength"] = *f.Constraints.MinLength
		}
		if f.Constraints.MaxLength != nil {
			out["maxLength"] = *f.Constraints.MaxLength
		}
		if f.Constraints.Format != "" {
			out["format"] = f.Constraints.Format
		}
	case TypeNumber, TypeInteger:
		out = map[string]any{"type": string(f.Type)}
		if f.Constraints.Min != nil {
			out["minimum"] = *f.Constraints.Min
		}
		if f.Constraints.Max != nil {
			out["maximum"] = *f.Constraints.Max
		}
	case TypeBoolean:
		out = map[string]any{"type": "boolean"}
	case TypeEnum:
		variants := make([]any, len(f.Enum))
		for i, v := range f.Enum {
			variants[i] = v
		}
		out = map[string]any{"type": "string", "enum": variants}
	case TypeArray:
		out = map[string]any{"type": "array", "items": fieldSchema(f.Items)}
	case TypeObject:
		out = objectSchema(f.Fields)
	default:
		out = map[string]any{}
	}
	if f.Description != "" {
		out["description"] = f.Description
	}
	return out
}
