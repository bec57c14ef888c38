package lifter

import (
	"github.com/erraggy/schemalift/lifterrors"
	"github.com/erraggy/schemalift/parser"
)

// LiftOption configures a lift operation.
type LiftOption func(*liftOptions)

type liftOptions struct {
	filePath string
	data     []byte
	dataPath string
	parsed   *parser.ParseResult
	logger   parser.Logger
}

// WithFilePath lifts the document at the given file path.
func WithFilePath(path string) LiftOption {
	return func(o *liftOptions) {
		o.filePath = path
	}
}

// WithBytes lifts a document from raw bytes. sourcePath labels the input for
// format detection and diagnostics; it may be empty for YAML content.
func WithBytes(data []byte, sourcePath string) LiftOption {
	return func(o *liftOptions) {
		o.data = data
		o.dataPath = sourcePath
	}
}

// WithParsed lifts an already-parsed document. The parse result is not
// modified; the lifter works on a deep copy.
func WithParsed(result *parser.ParseResult) LiftOption {
	return func(o *liftOptions) {
		o.parsed = result
	}
}

// WithLogger sets the logger for structured diagnostics during lifting.
// Defaults to a no-op logger.
func WithLogger(logger parser.Logger) LiftOption {
	return func(o *liftOptions) {
		o.logger = logger
	}
}

// RegisteredSchema reports one registry entry produced by the lift, with
// every context that referenced it in occurrence order.
type RegisteredSchema struct {
	// Name is the final canonical name, after any shortening.
	Name string `json:"name"`
	// Contexts renders each usage context, starting with the one that
	// created the entry.
	Contexts []string `json:"contexts"`
}

// LiftResult contains the rewritten document and an account of what the
// transformation did.
type LiftResult struct {
	// Document is the rewritten document. The input document is untouched.
	Document *parser.Document
	// SourcePath is where the input came from, when known.
	SourcePath string
	// SourceFormat is the detected input format, so callers can serialize
	// the output to match.
	SourceFormat parser.SourceFormat
	// Registered lists every schema hoisted by this lift, in registration
	// order, under its final name.
	Registered []RegisteredSchema
	// Renames lists the shortening renames that were applied.
	Renames []Rename
}

// Lift parses the document at path and lifts its inline schemas.
func Lift(path string) (*LiftResult, error) {
	return LiftWithOptions(WithFilePath(path))
}

// LiftParsed lifts an already-parsed document.
func LiftParsed(result *parser.ParseResult) (*LiftResult, error) {
	return LiftWithOptions(WithParsed(result))
}

// LiftWithOptions lifts a document configured by the given options. Exactly
// one input source (WithFilePath, WithBytes, or WithParsed) must be set.
func LiftWithOptions(opts ...LiftOption) (*LiftResult, error) {
	var o liftOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = parser.NopLogger{}
	}

	sources := 0
	if o.filePath != "" {
		sources++
	}
	if o.data != nil {
		sources++
	}
	if o.parsed != nil {
		sources++
	}
	if sources == 0 {
		return nil, &lifterrors.ConfigError{Reason: "no input source provided: use WithFilePath, WithBytes, or WithParsed"}
	}
	if sources > 1 {
		return nil, &lifterrors.ConfigError{Reason: "multiple input sources provided: use exactly one of WithFilePath, WithBytes, or WithParsed"}
	}

	parsed := o.parsed
	if parsed == nil {
		p := &parser.Parser{Logger: o.logger}
		var err error
		if o.filePath != "" {
			parsed, err = p.Parse(o.filePath)
		} else {
			parsed, err = p.ParseBytes(o.data, o.dataPath)
		}
		if err != nil {
			return nil, err
		}
	}
	if parsed.Document == nil {
		return nil, &lifterrors.ConfigError{Reason: "parse result has no document"}
	}

	doc := parsed.Document.DeepCopy()

	var existing map[string]*parser.Schema
	if doc.Components != nil {
		existing = doc.Components.Schemas
	}
	st := newLiftState(existing, o.logger)

	if err := st.walkDocument(doc); err != nil {
		return nil, err
	}
	renames, err := st.shorten()
	if err != nil {
		return nil, err
	}

	if len(st.names) > 0 {
		if doc.Components == nil {
			doc.Components = &parser.Components{}
		}
		if doc.Components.Schemas == nil {
			doc.Components.Schemas = make(map[string]*parser.Schema, len(st.names))
		}
		for _, name := range st.names {
			doc.Components.Schemas[name] = st.registry[name]
		}
	}

	registered := make([]RegisteredSchema, 0, len(st.names))
	for _, name := range st.names {
		contexts := make([]string, 0, len(st.ledger[name]))
		for _, ctx := range st.ledger[name] {
			contexts = append(contexts, ctx.String())
		}
		registered = append(registered, RegisteredSchema{Name: name, Contexts: contexts})
	}

	o.logger.Info("lift complete",
		"source", parsed.SourcePath,
		"registered", len(registered),
		"renamed", len(renames))

	return &LiftResult{
		Document:     doc,
		SourcePath:   parsed.SourcePath,
		SourceFormat: parsed.SourceFormat,
		Registered:   registered,
		Renames:      renames,
	}, nil
}
