package parser

import (
	"go.yaml.in/yaml/v4"
)

// Schema represents a JSON Schema as used by OAS 3.0 and 3.1 documents.
// Fields that the specification allows to be either a schema or a boolean
// (items, additionalProperties) are typed any and normalized to *Schema or
// bool during unmarshaling.
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Type validation
	Type   any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const  any    `yaml:"const,omitempty" json:"const,omitempty"` // OAS 3.1+
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in OAS 3.0, number in 3.1+
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"` // bool in OAS 3.0, number in 3.1+

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       any  `yaml:"items,omitempty" json:"items,omitempty"` // *Schema or bool (OAS 3.1+)
	MaxItems    *int `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties        *int               `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int               `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific extensions
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	// and schema keywords outside the lifter's scope.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsReference reports whether the schema is a reference node rather than a
// concrete definition.
func (s *Schema) IsReference() bool {
	return s != nil && s.Ref != ""
}

// UnmarshalYAML implements custom unmarshaling for Schema. It normalizes the
// polymorphic items and additionalProperties fields: mapping values become
// *Schema, boolean values stay bool.
func (s *Schema) UnmarshalYAML(unmarshal func(any) error) error {
	type alias Schema // avoids recursing into this method
	var a alias
	if err := unmarshal(&a); err != nil {
		return err
	}

	items, err := normalizeSchemaOrBool(a.Items)
	if err != nil {
		return err
	}
	a.Items = items

	addProps, err := normalizeSchemaOrBool(a.AdditionalProperties)
	if err != nil {
		return err
	}
	a.AdditionalProperties = addProps

	*s = Schema(a)
	return nil
}

// normalizeSchemaOrBool converts a raw unmarshaled value into *Schema or bool.
// Mappings are re-unmarshaled into a typed Schema; booleans pass through.
func normalizeSchemaOrBool(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case *Schema:
		return t, nil
	default:
		raw, err := yaml.Marshal(v)
		if err != nil {
			return nil, err
		}
		var schema Schema
		if err := yaml.Unmarshal(raw, &schema); err != nil {
			return nil, err
		}
		return &schema, nil
	}
}

// ItemsSchema returns the items field as a typed schema, or nil if items is
// absent or a boolean.
func (s *Schema) ItemsSchema() *Schema {
	if s == nil {
		return nil
	}
	if items, ok := s.Items.(*Schema); ok {
		return items
	}
	return nil
}

// Types returns the type(s) from a schema, handling both string (OAS 3.0)
// and list (OAS 3.1+) representations.
func (s *Schema) Types() []string {
	if s == nil {
		return nil
	}
	switch t := s.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if str, ok := v.(string); ok {
				result = append(result, str)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// PrimaryType returns the first non-null type from a schema.
// Returns an empty string if the schema is nil or has no types.
func (s *Schema) PrimaryType() string {
	types := s.Types()
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return ""
}
