package parser

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Parser parses OpenAPI 3.x documents from YAML or JSON sources.
// The zero value is usable; Logger defaults to a no-op logger.
type Parser struct {
	// Logger receives structured diagnostics during parsing.
	Logger Logger
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{Logger: NopLogger{}}
}

// ParseResult contains the parsed document together with provenance
// information about how it was loaded.
type ParseResult struct {
	// SourcePath is the path the document was loaded from, or the label
	// supplied to ParseBytes.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML).
	SourceFormat SourceFormat
	// Version is the value of the document's openapi field.
	Version string
	// Document is the parsed document model.
	Document *Document
}

// Parse reads and parses the OpenAPI document at path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.ParseBytes(data, path)
}

// ParseBytes parses an OpenAPI document from raw bytes. sourcePath is used
// for format detection and diagnostics; it may be empty.
//
// JSON is a subset of YAML, so both formats decode through the YAML
// unmarshaler; the detected format is recorded so output can match the input.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	logger := p.logger()

	format := detectFormatFromPath(sourcePath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	if format == SourceFormatUnknown {
		return nil, fmt.Errorf("unable to detect document format for %q", sourcePath)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if doc.OpenAPI == "" {
		return nil, fmt.Errorf("missing required openapi version field")
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version %q: only 3.x documents are supported", doc.OpenAPI)
	}

	logger.Debug("parsed document",
		"path", sourcePath,
		"format", string(format),
		"version", doc.OpenAPI,
		"paths", len(doc.Paths))

	return &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      doc.OpenAPI,
		Document:     &doc,
	}, nil
}

func (p *Parser) logger() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}
