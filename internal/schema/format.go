package schema

import (
	"fmt"
	"strings"
)

// FormatSpec renders the schema into the deterministic, human-readable format
// specification injected ahead of the user context by the instruction-guided
// strategy: one line per field in declaration order, plus an example object.
func (s *Schema) FormatSpec() string {
	var b strings.Builder
	b.WriteString("Return ONLY a single strict JSON object. No markdown formatting, no code fences, no commentary.\n")
	if len(s.fields) == 0 {
		b.WriteString("The object has no fields: return exactly {}\n")
		return b.String()
	}
	b.WriteString("Fields:\n")
	for i := range s.fields {
		writeFieldLine(&b, "", &s.fields[i])
	}
	b.WriteString("Example:\n")
	b.WriteString(exampleObject(s.fields))
	b.WriteString("\n")
	return b.String()
}

func writeFieldLine(b *strings.Builder, indent string, f *FieldDef) {
	requirement := "optional"
	if f.Required {
		requirement = "required"
	}
	b.WriteString(fmt.Sprintf("%s- %s (%s, %s)", indent, f.Name, typeLabel(f), requirement))
	if f.Description != "" {
		b.WriteString(": " + f.Description)
	}
	b.WriteString("\n")
	switch f.Type {
	case TypeObject:
		for i := range f.Fields {
			writeFieldLine(b, indent+"  ", &f.Fields[i])
		}
	case TypeArray:
		if f.Items.Type == TypeObject {
			for i := range f.Items.Fields {
				writeFieldLine(b, indent+"  ", &f.Items.Fields[i])
			}
		}
	}
}

func typeLabel(f *FieldDef) string {
	switch f.Type {
	case TypeEnum:
		return "one of [" + strings.Join(f.Enum, "|") + "]"
	case TypeArray:
		return "array of " + typeLabel(f.Items)
	default:
		return string(f.Type)
	}
}

func exampleObject(fields []FieldDef) string {
	var b strings.Builder
	b.WriteString("{")
	for i := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%q: %s", fields[i].Name, exampleValue(&fields[i])))
	}
	b.WriteString("}")
	return b.String()
}

func exampleValue(f *FieldDef) string {
	switch f.Type {
	case TypeString:
		if f.Constraints.Format == FormatEmail {
			return `"user@example.com"`
		}
		return `"text"`
	case TypeNumber:
		return "1.5"
	case TypeInteger:
		return "42"
	case TypeBoolean:
		return "true"
	case TypeEnum:
		return fmt.Sprintf("%q", f.Enum[0])
	case TypeArray:
		return "[" + exampleValue(f.Items) + "]"
	case TypeObject:
		return exampleObject(f.Fields)
	}
	return "null"
}
