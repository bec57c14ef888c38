package parser

import (
	"fmt"
	"sort"
)

// EqualShape reports whether two schemas are structurally equal.
//
// Structural equality covers the fields that define a schema's semantic
// meaning: type, format, enum/const, constraints, properties, items, and
// composition. Metadata (title, description, example, default) and
// specification extensions are ignored. Reference nodes compare by their
// reference string, so the comparison is over the post-hoist shape: two
// parents are equal only if their already-lifted children carry the same
// reference name.
func EqualShape(left, right *Schema) bool {
	if left == nil || right == nil {
		return left == right
	}
	if left.Ref != "" || right.Ref != "" {
		return left.Ref == right.Ref
	}

	if !equalTypes(left, right) {
		return false
	}
	if left.Format != right.Format || left.Pattern != right.Pattern {
		return false
	}
	if left.Nullable != right.Nullable ||
		left.ReadOnly != right.ReadOnly ||
		left.WriteOnly != right.WriteOnly {
		return false
	}
	if !equalAnySlices(left.Enum, right.Enum) {
		return false
	}
	if !equalAnyValues(left.Const, right.Const) {
		return false
	}
	if !equalRequired(left.Required, right.Required) {
		return false
	}
	if !equalConstraints(left, right) {
		return false
	}
	if !equalProperties(left.Properties, right.Properties) {
		return false
	}
	if !equalSchemaOrBool(left.Items, right.Items) {
		return false
	}
	if !equalSchemaOrBool(left.AdditionalProperties, right.AdditionalProperties) {
		return false
	}
	if !equalSchemaSlices(left.AllOf, right.AllOf) ||
		!equalSchemaSlices(left.AnyOf, right.AnyOf) ||
		!equalSchemaSlices(left.OneOf, right.OneOf) {
		return false
	}
	return EqualShape(left.Not, right.Not)
}

// equalTypes compares type discriminants order-insensitively, since
// ["string", "null"] and ["null", "string"] mean the same thing.
func equalTypes(left, right *Schema) bool {
	lt, rt := left.Types(), right.Types()
	if len(lt) != len(rt) {
		return false
	}
	sortedLeft := append([]string(nil), lt...)
	sortedRight := append([]string(nil), rt...)
	sort.Strings(sortedLeft)
	sort.Strings(sortedRight)
	for i := range sortedLeft {
		if sortedLeft[i] != sortedRight[i] {
			return false
		}
	}
	return true
}

// equalRequired compares required lists order-insensitively.
func equalRequired(left, right []string) bool {
	if len(left) != len(right) {
		return false
	}
	sortedLeft := append([]string(nil), left...)
	sortedRight := append([]string(nil), right...)
	sort.Strings(sortedLeft)
	sort.Strings(sortedRight)
	for i := range sortedLeft {
		if sortedLeft[i] != sortedRight[i] {
			return false
		}
	}
	return true
}

func equalConstraints(left, right *Schema) bool {
	return equalFloatPtr(left.MultipleOf, right.MultipleOf) &&
		equalFloatPtr(left.Maximum, right.Maximum) &&
		equalFloatPtr(left.Minimum, right.Minimum) &&
		equalAnyValues(left.ExclusiveMaximum, right.ExclusiveMaximum) &&
		equalAnyValues(left.ExclusiveMinimum, right.ExclusiveMinimum) &&
		equalIntPtr(left.MaxLength, right.MaxLength) &&
		equalIntPtr(left.MinLength, right.MinLength) &&
		equalIntPtr(left.MaxItems, right.MaxItems) &&
		equalIntPtr(left.MinItems, right.MinItems) &&
		left.UniqueItems == right.UniqueItems &&
		equalIntPtr(left.MaxProperties, right.MaxProperties) &&
		equalIntPtr(left.MinProperties, right.MinProperties)
}

func equalProperties(left, right map[string]*Schema) bool {
	if len(left) != len(right) {
		return false
	}
	for name, leftProp := range left {
		rightProp, ok := right[name]
		if !ok || !EqualShape(leftProp, rightProp) {
			return false
		}
	}
	return true
}

func equalSchemaOrBool(left, right any) bool {
	switch l := left.(type) {
	case nil:
		return right == nil
	case bool:
		r, ok := right.(bool)
		return ok && l == r
	case *Schema:
		r, ok := right.(*Schema)
		return ok && EqualShape(l, r)
	default:
		return false
	}
}

func equalSchemaSlices(left, right []*Schema) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !EqualShape(left[i], right[i]) {
			return false
		}
	}
	return true
}

func equalAnySlices(left, right []any) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !equalAnyValues(left[i], right[i]) {
			return false
		}
	}
	return true
}

// equalAnyValues compares scalar values from unmarshaled documents.
// Rendering through fmt normalizes numeric representations (int vs float64)
// that differ between YAML and JSON decoding.
func equalAnyValues(left, right any) bool {
	if left == nil || right == nil {
		return left == right
	}
	return fmt.Sprintf("%v", left) == fmt.Sprintf("%v", right)
}

func equalFloatPtr(left, right *float64) bool {
	if left == nil || right == nil {
		return left == right
	}
	return *left == *right
}

func equalIntPtr(left, right *int) bool {
	if left == nil || right == nil {
		return left == right
	}
	return *left == *right
}
