package lifter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/minio/highwayhash"

	"github.com/erraggy/schemalift/parser"
)

// Fingerprint is a 128-bit structural identity key for a schema. Two schemas
// with the same fingerprint are treated as the same logical type; the wide
// hash plus the EqualShape fallback in the registry rules out accidental
// collisions.
type Fingerprint [16]byte

// fingerprintKey is the fixed 256-bit HighwayHash key. Fingerprints are
// compared only within a single transformation, so the key just has to be
// constant.
var fingerprintKey = []byte("schemalift/fingerprint/v1/32byte")

// String renders the fingerprint as hex for logs and diagnostics.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%x", f[:])
}

// fingerprintSchema hashes a canonical serialization of the schema's current
// shape. Children that have already been hoisted contribute their reference
// string, not their expanded structure, so the fingerprint is defined over
// the post-hoist form.
func fingerprintSchema(s *parser.Schema) (Fingerprint, error) {
	h, err := highwayhash.New128(fingerprintKey)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("failed to initialize fingerprint hash: %w", err)
	}
	writeSchema(h, s)
	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp, nil
}

// writeSchema emits a canonical, unambiguous serialization of the schema.
// Map-valued fields are visited in sorted key order and order-insensitive
// lists (type, required) are sorted, matching the semantics of
// parser.EqualShape. Metadata fields (title, description, example, default)
// and specification extensions are excluded.
func writeSchema(w io.Writer, s *parser.Schema) {
	if s == nil {
		io.WriteString(w, "nil;")
		return
	}
	if s.Ref != "" {
		fmt.Fprintf(w, "ref=%s;", s.Ref)
		return
	}

	types := append([]string(nil), s.Types()...)
	sort.Strings(types)
	fmt.Fprintf(w, "type=%s;", strings.Join(types, ","))

	if s.Format != "" {
		fmt.Fprintf(w, "format=%s;", s.Format)
	}
	if s.Pattern != "" {
		fmt.Fprintf(w, "pattern=%s;", s.Pattern)
	}
	if s.Nullable || s.ReadOnly || s.WriteOnly {
		fmt.Fprintf(w, "flags=%t,%t,%t;", s.Nullable, s.ReadOnly, s.WriteOnly)
	}

	if len(s.Enum) > 0 {
		io.WriteString(w, "enum=")
		for _, v := range s.Enum {
			fmt.Fprintf(w, "%v,", v)
		}
		io.WriteString(w, ";")
	}
	if s.Const != nil {
		fmt.Fprintf(w, "const=%v;", s.Const)
	}

	writeConstraints(w, s)

	if len(s.Required) > 0 {
		required := append([]string(nil), s.Required...)
		sort.Strings(required)
		fmt.Fprintf(w, "required=%s;", strings.Join(required, ","))
	}
	if len(s.Properties) > 0 {
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		io.WriteString(w, "properties={")
		for _, name := range names {
			fmt.Fprintf(w, "%s:", name)
			writeSchema(w, s.Properties[name])
		}
		io.WriteString(w, "};")
	}

	writeSchemaOrBool(w, "items", s.Items)
	writeSchemaOrBool(w, "additionalProperties", s.AdditionalProperties)

	writeSchemaList(w, "allOf", s.AllOf)
	writeSchemaList(w, "anyOf", s.AnyOf)
	writeSchemaList(w, "oneOf", s.OneOf)
	if s.Not != nil {
		io.WriteString(w, "not=")
		writeSchema(w, s.Not)
	}
}

func writeConstraints(w io.Writer, s *parser.Schema) {
	if s.MultipleOf != nil {
		fmt.Fprintf(w, "multipleOf=%v;", *s.MultipleOf)
	}
	if s.Maximum != nil {
		fmt.Fprintf(w, "maximum=%v;", *s.Maximum)
	}
	if s.Minimum != nil {
		fmt.Fprintf(w, "minimum=%v;", *s.Minimum)
	}
	if s.ExclusiveMaximum != nil {
		fmt.Fprintf(w, "exclusiveMaximum=%v;", s.ExclusiveMaximum)
	}
	if s.ExclusiveMinimum != nil {
		fmt.Fprintf(w, "exclusiveMinimum=%v;", s.ExclusiveMinimum)
	}
	if s.MaxLength != nil {
		fmt.Fprintf(w, "maxLength=%d;", *s.MaxLength)
	}
	if s.MinLength != nil {
		fmt.Fprintf(w, "minLength=%d;", *s.MinLength)
	}
	if s.MaxItems != nil {
		fmt.Fprintf(w, "maxItems=%d;", *s.MaxItems)
	}
	if s.MinItems != nil {
		fmt.Fprintf(w, "minItems=%d;", *s.MinItems)
	}
	if s.UniqueItems {
		io.WriteString(w, "uniqueItems;")
	}
	if s.MaxProperties != nil {
		fmt.Fprintf(w, "maxProperties=%d;", *s.MaxProperties)
	}
	if s.MinProperties != nil {
		fmt.Fprintf(w, "minProperties=%d;", *s.MinProperties)
	}
}

func writeSchemaOrBool(w io.Writer, label string, v any) {
	switch t := v.(type) {
	case nil:
	case bool:
		fmt.Fprintf(w, "%s=%t;", label, t)
	case *parser.Schema:
		fmt.Fprintf(w, "%s=", label)
		writeSchema(w, t)
	}
}

func writeSchemaList(w io.Writer, label string, schemas []*parser.Schema) {
	if len(schemas) == 0 {
		return
	}
	fmt.Fprintf(w, "%s=[", label)
	for _, s := range schemas {
		writeSchema(w, s)
	}
	io.WriteString(w, "];")
}
