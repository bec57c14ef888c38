// Package lifter rewrites OpenAPI documents by lifting inline request and
// response schemas into the components/schemas registry, replacing each
// occurrence with a "#/components/schemas/<Name>" reference.
//
// The transformation runs in two passes. The first pass walks every
// operation's JSON request and response bodies bottom-up, hoisting eligible
// subtrees (objects and enumerated scalars) into the registry under names
// synthesized from their structural context, and deduplicating structurally
// equal subtrees behind a single name. The second pass renames any schema
// referenced from multiple contexts to the shorter name derived from its
// shallowest context, atomically rewriting every reference.
//
// # Quick Start
//
//	result, err := lifter.Lift("api.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := parser.Marshal(result.Document, result.SourceFormat)
//
// Use LiftWithOptions for structured logging or pre-parsed input:
//
//	result, err := lifter.LiftWithOptions(
//	    lifter.WithParsed(parseResult),
//	    lifter.WithLogger(parser.NewSlogAdapter(slog.Default())),
//	)
package lifter
