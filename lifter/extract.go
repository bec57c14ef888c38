package lifter

import (
	"sort"

	"github.com/erraggy/schemalift/parser"
)

// extract decides, bottom-up, whether node should be hoisted into the
// registry. It returns either the node unchanged (ineligible leaf), a fresh
// array wrapper with an extracted item schema, or a reference to a registry
// entry. Reference nodes are never reprocessed, which is what makes the
// whole transformation idempotent.
func (st *liftState) extract(node *parser.Schema, ctx Context) (*parser.Schema, error) {
	if node == nil {
		return nil, nil
	}
	if node.IsReference() {
		return node, nil
	}

	// Arrays: extract the item schema, rebuild the wrapper around the
	// result, and keep the wrapper inline. Naming trivial array wrappers
	// as top-level types adds no value and multiplies names.
	if isArraySchema(node) {
		item := node.ItemsSchema()
		if item == nil {
			return node, nil
		}
		extracted, err := st.extract(item, ctx.Child(ArrayItemSegment))
		if err != nil {
			return nil, err
		}
		wrapper := *node
		wrapper.Items = extracted
		return &wrapper, nil
	}

	// Objects: extract every property first so the node's fingerprint is
	// computed over its children-as-references form. Properties that are
	// already references are left alone.
	if isObjectSchema(node) {
		for _, name := range sortedPropertyNames(node) {
			prop := node.Properties[name]
			if prop == nil || prop.IsReference() {
				continue
			}
			extracted, err := st.extract(prop, ctx.Child(name))
			if err != nil {
				return nil, err
			}
			node.Properties[name] = extracted
		}
	} else if !eligibleNonObject(node) {
		// Scalar leaves without enumerated values stay inline.
		return node, nil
	}

	fp, err := fingerprintSchema(node)
	if err != nil {
		return nil, err
	}

	if name, ok := st.lookup(fp, node); ok {
		if err := st.recordUse(name, ctx); err != nil {
			return nil, err
		}
		return st.newReference(name), nil
	}

	name := synthesizeName(ctx)
	if err := st.register(name, node, fp, ctx); err != nil {
		return nil, err
	}
	return st.newReference(name), nil
}

// isObjectSchema reports whether the node is object-typed. Schemas that
// declare properties without a type keyword are treated as objects.
func isObjectSchema(s *parser.Schema) bool {
	if s.PrimaryType() == "object" {
		return true
	}
	return s.PrimaryType() == "" && len(s.Properties) > 0
}

func isArraySchema(s *parser.Schema) bool {
	return s.PrimaryType() == "array"
}

// eligibleNonObject reports whether a non-object node is still worth
// hoisting: enumerated scalars and composition schemas carry real shape,
// plain scalar leaves do not.
func eligibleNonObject(s *parser.Schema) bool {
	if len(s.Enum) > 0 {
		return true
	}
	return len(s.AllOf) > 0 || len(s.AnyOf) > 0 || len(s.OneOf) > 0 || s.Not != nil
}

func sortedPropertyNames(s *parser.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
