package docs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/schemagen/pkg/model"
)

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		schema   *model.Schema
		expected string
	}{
		{nil, "any"},
		{&model.Schema{Kind: model.KindString}, "string"},
		{&model.Schema{Kind: model.KindInteger, Format: "int64"}, "integer (int64)"},
		{&model.Schema{Kind: model.KindString, Format: "date-time", Nullable: true}, "string (date-time), nullable"},
		{model.Ref("LineItem"), "[LineItem](#line-item)"},
		{&model.Schema{Kind: model.KindArray}, "array"},
		{&model.Schema{Kind: model.KindArray, Items: model.Ref("Address")}, "array of [Address](#address)"},
		{&model.Schema{Kind: model.KindObject, AdditionalProperties: &model.Schema{Kind: model.KindBoolean}}, "map of boolean"},
		{&model.Schema{Kind: model.KindObject}, "object"},
		{&model.Schema{Kind: model.KindString, Enum: []any{"a", "b"}}, "string enum: `a`, `b`"},
		{&model.Schema{Kind: model.KindUnknown}, "any"},
	}

	for _, test := range tests {
		if got := TypeLabel(test.schema); got != test.expected {
			t.Errorf("TypeLabel(%+v) = %q, expected %q", test.schema, got, test.expected)
		}
	}
}

func TestRender(t *testing.T) {
	models := []*model.Model{
		{ID: "Address", Description: "A postal address.", Properties: []model.Property{
			{Name: "street", Schema: &model.Schema{Kind: model.KindString}, Description: "street\nand number | suite"},
			{Name: "zip", Schema: &model.Schema{Kind: model.KindInteger, Format: "int32"}},
		}, Required: []string{"zip"}},
		{ID: "Empty", Properties: []model.Property{}, Required: []string{}},
		{ID: "Person", Properties: []model.Property{
			{Name: "address", Schema: &model.Schema{Kind: model.KindRef, Ref: "Address", Nullable: true}},
		}, Required: []string{}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "People API", models))
	out := buf.String()

	assert.Contains(t, out, "# People API\n")
	assert.Contains(t, out, "- [Address](#address)")
	assert.Contains(t, out, "## Address\n")
	assert.Contains(t, out, "A postal address.")
	assert.Contains(t, out, "| `street` | string | no | street and number \\| suite |")
	assert.Contains(t, out, "| `zip` | integer (int32) | yes |  |")
	assert.Contains(t, out, "No properties.")
	assert.Contains(t, out, "| `address` | [Address](#address), nullable | no |")
}
