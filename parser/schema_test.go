package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/yaml/v4"
)

func TestSchemaUnmarshal_ItemsNormalization(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		check func(t *testing.T, s *Schema)
	}{
		{
			name: "items as schema",
			doc:  "type: array\nitems:\n  type: string\n",
			check: func(t *testing.T, s *Schema) {
				items := s.ItemsSchema()
				require.NotNil(t, items)
				assert.Equal(t, "string", items.PrimaryType())
			},
		},
		{
			name: "items as boolean",
			doc:  "type: array\nitems: true\n",
			check: func(t *testing.T, s *Schema) {
				assert.Equal(t, true, s.Items)
				assert.Nil(t, s.ItemsSchema())
			},
		},
		{
			name: "additionalProperties as schema",
			doc:  "type: object\nadditionalProperties:\n  type: integer\n",
			check: func(t *testing.T, s *Schema) {
				ap, ok := s.AdditionalProperties.(*Schema)
				require.True(t, ok)
				assert.Equal(t, "integer", ap.PrimaryType())
			},
		},
		{
			name: "additionalProperties as boolean",
			doc:  "type: object\nadditionalProperties: false\n",
			check: func(t *testing.T, s *Schema) {
				assert.Equal(t, false, s.AdditionalProperties)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Schema
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &s))
			tt.check(t, &s)
		})
	}
}

func TestSchemaTypes(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		types   []string
		primary string
	}{
		{"nil schema", nil, nil, ""},
		{"no type", &Schema{}, nil, ""},
		{"string type", &Schema{Type: "object"}, []string{"object"}, "object"},
		{
			"type list with null first",
			&Schema{Type: []any{"null", "string"}},
			[]string{"null", "string"},
			"string",
		},
		{"all null", &Schema{Type: []any{"null"}}, []string{"null"}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.types, tt.schema.Types())
			assert.Equal(t, tt.primary, tt.schema.PrimaryType())
		})
	}
}

func TestSchemaIsReference(t *testing.T) {
	assert.True(t, (&Schema{Ref: "#/components/schemas/Pet"}).IsReference())
	assert.False(t, (&Schema{Type: "object"}).IsReference())
	assert.False(t, (*Schema)(nil).IsReference())
}

func TestSchemaExtraCapture(t *testing.T) {
	doc := "type: string\nx-internal: true\ndiscriminator:\n  propertyName: kind\n"
	var s Schema
	require.NoError(t, yaml.Unmarshal([]byte(doc), &s))
	assert.Equal(t, true, s.Extra["x-internal"])
	assert.Contains(t, s.Extra, "discriminator")
}

func TestDocumentDeepCopy(t *testing.T) {
	result, err := New().ParseBytes([]byte(petstoreYAML), "petstore.yaml")
	require.NoError(t, err)

	original := result.Document
	cp := original.DeepCopy()

	// Mutating the copy must not leak into the original.
	cp.Info.Title = "Changed"
	cp.Paths["/pets"].Get.OperationID = "renamed"
	items := cp.Paths["/pets"].Get.Responses.Codes["200"].
		Content["application/json"].Schema.ItemsSchema()
	items.Properties["id"].Type = "string"

	assert.Equal(t, "Petstore", original.Info.Title)
	assert.Equal(t, "listPets", original.Paths["/pets"].Get.OperationID)
	origItems := original.Paths["/pets"].Get.Responses.Codes["200"].
		Content["application/json"].Schema.ItemsSchema()
	assert.Equal(t, "integer", origItems.Properties["id"].PrimaryType())
}

func TestSchemaDeepCopy_PointerConstraints(t *testing.T) {
	maxLen := 10
	s := &Schema{
		Type:      "string",
		MaxLength: &maxLen,
		Enum:      []any{"a", "b"},
		Required:  []string{"a"},
	}
	cp := s.DeepCopy()
	*cp.MaxLength = 99
	cp.Enum[0] = "z"
	cp.Required[0] = "z"

	assert.Equal(t, 10, *s.MaxLength)
	assert.Equal(t, "a", s.Enum[0])
	assert.Equal(t, "a", s.Required[0])
}
