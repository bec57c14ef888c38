package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreYAML = `
openapi: 3.0.0
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  type: object
                  properties:
                    id:
                      type: integer
                    name:
                      type: string
`

func TestParseBytes_YAML(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(petstoreYAML), "petstore.yaml")
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "3.0.0", result.Version)
	require.NotNil(t, result.Document)
	assert.Equal(t, "Petstore", result.Document.Info.Title)

	op := result.Document.Paths["/pets"].Get
	require.NotNil(t, op)
	assert.Equal(t, "listPets", op.OperationID)

	resp := op.Responses.Codes["200"]
	require.NotNil(t, resp)
	schema := resp.Content["application/json"].Schema
	require.NotNil(t, schema)
	assert.Equal(t, "array", schema.PrimaryType())
	items := schema.ItemsSchema()
	require.NotNil(t, items)
	assert.Equal(t, "object", items.PrimaryType())
	assert.Len(t, items.Properties, 2)
}

func TestParseBytes_JSON(t *testing.T) {
	doc := `{
  "openapi": "3.1.0",
  "info": {"title": "Minimal", "version": "2.0.0"},
  "paths": {}
}`
	p := New()
	result, err := p.ParseBytes([]byte(doc), "")
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "3.1.0", result.Version)
	assert.Equal(t, "Minimal", result.Document.Info.Title)
}

func TestParseBytes_VersionValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing openapi field",
			doc:     "info:\n  title: X\n  version: 1.0.0\n",
			wantErr: "missing required openapi version",
		},
		{
			name:    "swagger 2.0 rejected",
			doc:     "openapi: 2.0.0\ninfo:\n  title: X\n  version: 1.0.0\n",
			wantErr: "unsupported OpenAPI version",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.doc), "api.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseBytes_ExtraRoundTrip(t *testing.T) {
	doc := `
openapi: 3.0.0
info:
  title: Extended
  version: 1.0.0
  x-audience: internal
servers:
  - url: https://api.example.com
paths: {}
`
	result, err := New().ParseBytes([]byte(doc), "api.yaml")
	require.NoError(t, err)
	assert.Equal(t, "internal", result.Document.Info.Extra["x-audience"])
	assert.Contains(t, result.Document.Extra, "servers")

	out, err := Marshal(result.Document, SourceFormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "x-audience: internal")
	assert.Contains(t, string(out), "https://api.example.com")
}

func TestMarshal_JSON(t *testing.T) {
	result, err := New().ParseBytes([]byte(petstoreYAML), "petstore.yaml")
	require.NoError(t, err)

	out, err := Marshal(result.Document, SourceFormatJSON)
	require.NoError(t, err)

	reparsed, err := New().ParseBytes(out, "petstore.json")
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, reparsed.SourceFormat)
	assert.Equal(t, "listPets", reparsed.Document.Paths["/pets"].Get.OperationID)
	assert.NotNil(t, reparsed.Document.Paths["/pets"].Get.Responses.Codes["200"])
}

func TestResponses_InvalidStatusCode(t *testing.T) {
	doc := `
openapi: 3.0.0
info:
  title: Bad
  version: 1.0.0
paths:
  /x:
    get:
      responses:
        "999":
          description: nope
`
	_, err := New().ParseBytes([]byte(doc), "api.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status code")
}

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"200", true},
		{"404", true},
		{"599", true},
		{"2XX", true},
		{"x-custom", true},
		{"999", false},
		{"20", false},
		{"2000", false},
		{"abc", false},
		{"2Xx", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidateStatusCode(tt.key), "key %q", tt.key)
	}
}

func TestOrderedOperations(t *testing.T) {
	item := &PathItem{
		Post:  &Operation{OperationID: "create"},
		Get:   &Operation{OperationID: "read"},
		Trace: &Operation{OperationID: "trace"},
	}
	ops := item.OrderedOperations()
	require.Len(t, ops, 3)
	assert.Equal(t, MethodGet, ops[0].Method)
	assert.Equal(t, MethodPost, ops[1].Method)
	assert.Equal(t, MethodTrace, ops[2].Method)
}

func TestSchemaRefHelpers(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet", SchemaRef("Pet"))
	assert.Equal(t, "Pet", SchemaNameFromRef("#/components/schemas/Pet"))
	assert.Equal(t, "", SchemaNameFromRef("#/components/responses/Err"))
	assert.Equal(t, "", SchemaNameFromRef(""))
}
