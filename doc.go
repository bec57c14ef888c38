// Package schemalift rewrites OpenAPI 3.x documents by lifting inline request
// and response schemas into named entries under components/schemas, replacing
// each occurrence with a $ref to the lifted definition.
//
// Code generators and documentation tools work best with stable, human-readable
// type names. Hand-written and machine-generated specifications often inline
// the same schema at every usage site instead, producing anonymous duplicated
// structures. schemalift walks every operation body, recognizes structurally
// identical subtrees, registers each logical type once under a deterministic
// dotted name derived from where it was found, and shortens the name of any
// schema reused at multiple sites.
//
// # Packages
//
//   - parser: parse and serialize OpenAPI 3.x documents
//   - lifter: the extraction, deduplication, and naming engine
//   - lifterrors: structured error types for programmatic handling
//
// # Quick Start
//
// Lift a specification file:
//
//	import "github.com/erraggy/schemalift/lifter"
//
//	result, err := lifter.LiftWithOptions(
//		lifter.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Lifted %d schemas\n", len(result.Registered))
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/schemalift
package schemalift
