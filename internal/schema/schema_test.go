package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skema/internal/schema"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func levelFields() []schema.FieldDef {
	return []schema.FieldDef{
		{Name: "errorCount", Type: schema.TypeNumber, Description: "how many errors occurred", Required: true},
		{Name: "errorLevel", Type: schema.TypeEnum, Enum: []string{"error", "warning", "info"}, Required: true},
	}
}

func TestDefine_Valid(t *testing.T) {
	s, err := schema.Define(levelFields())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Len())
}

func TestDefine_ZeroFields(t *testing.T) {
	s, err := schema.Define(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestDefine_DuplicateFieldName(t *testing.T) {
	_, err := schema.Define([]schema.FieldDef{
		{Name: "count", Type: schema.TypeNumber},
		{Name: "count", Type: schema.TypeString},
	})
	require.Error(t, err)
	var ise *schema.InvalidSchemaError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "count", ise.Field)
	assert.Contains(t, ise.Reason, "duplicate")
}

func TestDefine_DuplicateNestedFieldName(t *testing.T) {
	_, err := schema.Define([]schema.FieldDef{
		{Name: "meta", Type: schema.TypeObject, Fields: []schema.FieldDef{
			{Name: "source", Type: schema.TypeString},
			{Name: "source", Type: schema.TypeString},
		}},
	})
	var ise *schema.InvalidSchemaError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "meta.source", ise.Field)
}

func TestDefine_EmptyEnum(t *testing.T) {
	_, err := schema.Define([]schema.FieldDef{
		{Name: "level", Type: schema.TypeEnum},
	})
	var ise *schema.InvalidSchemaError
	require.ErrorAs(t, err, &ise)
	assert.Contains(t, ise.Reason, "zero variants")
}

func TestDefine_ConstraintTypeMismatches(t *testing.T) {
	cases := []struct {
		name  string
		field schema.FieldDef
	}{
		{"numeric_range_on_string", schema.FieldDef{
			Name: "title", Type: schema.TypeString,
			Constraints: schema.Constraints{Min: f64(0)},
		}},
		{"length_bounds_on_number", schema.FieldDef{
			Name: "count", Type: schema.TypeNumber,
			Constraints: schema.Constraints{MaxLength: intp(10)},
		}},
		{"format_on_boolean", schema.FieldDef{
			Name: "ok", Type: schema.TypeBoolean,
			Constraints: schema.Constraints{Format: schema.FormatEmail},
		}},
		{"min_exceeds_max", schema.FieldDef{
			Name: "count", Type: schema.TypeNumber,
			Constraints: schema.Constraints{Min: f64(10), Max: f64(1)},
		}},
		{"enum_variants_on_string", schema.FieldDef{
			Name: "level", Type: schema.TypeString, Enum: []string{"a"},
		}},
		{"unknown_format", schema.FieldDef{
			Name: "code", Type: schema.TypeString,
			Constraints: schema.Constraints{Format: "uuid"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.Define([]schema.FieldDef{tc.field})
			var ise *schema.InvalidSchemaError
			require.ErrorAs(t, err, &ise)
		})
	}
}

func TestDefine_UnknownType(t *testing.T) {
	_, err := schema.Define([]schema.FieldDef{{Name: "x", Type: "timestamp"}})
	var ise *schema.InvalidSchemaError
	require.ErrorAs(t, err, &ise)
	assert.Contains(t, ise.Reason, "unknown field type")
}

func TestDefine_ArrayWithoutItems(t *testing.T) {
	_, err := schema.Define([]schema.FieldDef{{Name: "tags", Type: schema.TypeArray}})
	var ise *schema.InvalidSchemaError
	require.ErrorAs(t, err, &ise)
	assert.Contains(t, ise.Reason, "element definition")
}

func TestDefine_EmptyFieldName(t *testing.T) {
	_, err := schema.Define([]schema.FieldDef{{Name: "", Type: schema.TypeString}})
	var ise *schema.InvalidSchemaError
	require.ErrorAs(t, err, &ise)
}

func TestDefine_CopiesInput(t *testing.T) {
	fields := levelFields()
	s, err := schema.Define(fields)
	require.NoError(t, err)

	fields[0].Name = "mutated"
	assert.Equal(t, "errorCount", s.Fields()[0].Name)
}

func TestDefineFromJSON(t *testing.T) {
	raw := []byte(`[
		{"name":"errorCount","type":"number","required":true},
		{"name":"errorLevel","type":"enum","enum":["error","warning","info"],"required":true}
	]`)
	s, err := schema.DefineFromJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestDefineFromJSON_Malformed(t *testing.T) {
	_, err := schema.DefineFromJSON([]byte(`{"not":"a list"}`))
	var ise *schema.InvalidSchemaError
	require.ErrorAs(t, err, &ise)
}
