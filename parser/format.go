package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"go.yaml.in/yaml/v4"
)

// SourceFormat represents the format of a source OpenAPI document.
type SourceFormat string

const (
	// SourceFormatYAML indicates a YAML document
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates a JSON document
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// detectFormatFromPath detects the source format from a file extension.
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent detects the format from the content bytes.
// JSON documents start with '{'; anything else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// Marshal serializes a document in the given format. SourceFormatUnknown
// falls back to YAML.
func Marshal(doc *Document, format SourceFormat) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("cannot marshal nil document")
	}
	switch format {
	case SourceFormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case SourceFormatYAML, SourceFormatUnknown:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
