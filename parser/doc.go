// Package parser provides parsing and serialization for OpenAPI 3.x documents.
//
// The parser supports both JSON and YAML input and preserves the source format
// in the ParseResult.SourceFormat field, allowing tools to maintain format
// consistency when writing output. Specification extensions (fields starting
// with "x-") and document sections outside the lifter's scope are captured in
// inline Extra maps so they survive a parse/serialize round trip.
//
// # Quick Start
//
// Parse a specification file:
//
//	p := parser.New()
//	result, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s\n", result.Version)
//
// Parse from memory:
//
//	result, err := parser.New().ParseBytes(data, "openapi.yaml")
//
// # Related Packages
//
//   - [github.com/erraggy/schemalift/lifter] - Lift inline schemas into components
package parser
