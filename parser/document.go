package parser

// Document represents an OpenAPI Specification 3.x document.
// Only the sections the lifter operates on (paths, operations, bodies, and
// components/schemas) are modeled as typed structures; everything else is
// captured in the inline Extra map and round-trips unchanged.
//
// References:
// - OAS 3.0.0: https://spec.openapis.org/oas/v3.0.0.html
// - OAS 3.1.0: https://spec.openapis.org/oas/v3.1.0.html
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"` // Required: "3.0.x" or "3.1.x"
	Info       *Info       `yaml:"info" json:"info"`       // Required
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`

	// Extra captures all other top-level fields (servers, tags, security,
	// webhooks, specification extensions) as raw values.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS (OAS 3.0+).
// Only the schemas table is typed; other component kinds pass through Extra.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`

	// Extra captures other component kinds (responses, parameters, headers,
	// securitySchemes, ...) and specification extensions as raw values.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `yaml:"title" json:"title"`     // Required
	Version     string `yaml:"version" json:"version"` // Required
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaRefPrefix is the JSON Pointer prefix for schema references in
// OAS 3.x documents.
const SchemaRefPrefix = "#/components/schemas/"

// SchemaRef builds a full reference string for a component schema name.
func SchemaRef(name string) string {
	return SchemaRefPrefix + name
}

// SchemaNameFromRef extracts the component schema name from a reference
// string. Returns empty string if ref is not a component schema reference.
func SchemaNameFromRef(ref string) string {
	if len(ref) > len(SchemaRefPrefix) && ref[:len(SchemaRefPrefix)] == SchemaRefPrefix {
		return ref[len(SchemaRefPrefix):]
	}
	return ""
}
