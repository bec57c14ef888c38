package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string     `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters  []any      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	// and fields outside the lifter's scope (servers).
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string       `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []any        `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *Responses   `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool         `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	// and fields outside the lifter's scope (security, servers, callbacks).
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses is a container for the expected responses of an operation
type Responses struct {
	Default *Response            `yaml:"default,omitempty" json:"default,omitempty"`
	Codes   map[string]*Response `yaml:",inline" json:"-"` // Handled by custom marshaler
}

// UnmarshalYAML implements custom unmarshaling for Responses to validate status
// codes during parsing. This prevents invalid fields from being captured in the
// Codes map and provides clearer error messages.
func (r *Responses) UnmarshalYAML(unmarshal func(any) error) error {
	// First unmarshal into a raw map to inspect all fields
	var raw map[string]any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	r.Codes = make(map[string]*Response)

	for key, value := range raw {
		valueBytes, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal response for %q: %w", key, err)
		}
		if key == "default" {
			var defaultResp Response
			if err := yaml.Unmarshal(valueBytes, &defaultResp); err != nil {
				return fmt.Errorf("failed to unmarshal default response: %w", err)
			}
			r.Default = &defaultResp
			continue
		}
		if !ValidateStatusCode(key) {
			return fmt.Errorf("invalid status code '%s' in responses: must be a valid HTTP status code (e.g., \"200\", \"404\"), wildcard pattern (e.g., \"2XX\"), or extension field (e.g., \"x-custom\")", key)
		}
		var resp Response
		if err := yaml.Unmarshal(valueBytes, &resp); err != nil {
			return fmt.Errorf("failed to unmarshal response for status code %s: %w", key, err)
		}
		r.Codes[key] = &resp
	}

	return nil
}

// ValidateStatusCode reports whether key is usable as a responses map key:
// a three-digit HTTP status code (100-599), a wildcard pattern such as "2XX",
// or a specification extension ("x-" prefix).
func ValidateStatusCode(key string) bool {
	if len(key) > 2 && key[0] == 'x' && key[1] == '-' {
		return true
	}
	if len(key) != 3 {
		return false
	}
	if key[0] < '1' || key[0] > '5' {
		return false
	}
	if key[1] == 'X' && key[2] == 'X' {
		return true
	}
	return isDigit(key[1]) && isDigit(key[2])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Response describes a single response from an API Operation
type Response struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Description uses omitempty because responses can be defined via $ref.
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]any        `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	// and fields outside the lifter's scope (links).
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides the schema and examples for a media type (OAS 3.0+)
type MediaType struct {
	Schema   *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any            `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]any `yaml:"examples,omitempty" json:"examples,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
