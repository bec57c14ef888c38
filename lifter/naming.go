package lifter

import (
	"strings"

	"github.com/erraggy/schemalift/internal/naming"
)

// payloadSegment marks request body schemas in synthesized names.
const payloadSegment = "Payload"

// synthesizeName maps a context to its canonical dotted name. The function
// is pure: identical contexts always yield identical names, independent of
// registry state.
//
// Segments, in order, each present only when applicable:
//  1. the operation identity, verbatim
//  2. the literal "Payload" for request bodies
//  3. the status code, for non-2xx responses only
//  4. every non-empty context path element, title-cased
//
// After joining, any segment past the first that ends in "Id" is replaced
// with "One", so per-instance path segments such as "{jobId}" read as
// "One" instead of "JobId".
func synthesizeName(ctx Context) string {
	segments := make([]string, 0, len(ctx.Path)+3)
	if ctx.Operation != "" {
		segments = append(segments, ctx.Operation)
	}
	if ctx.Payload {
		segments = append(segments, payloadSegment)
	}
	if ctx.Status != "" && ctx.Status[0] != '2' {
		segments = append(segments, naming.TitleSegment(ctx.Status))
	}
	for _, elem := range ctx.Path {
		if elem == "" {
			continue
		}
		if titled := naming.TitleSegment(elem); titled != "" {
			segments = append(segments, titled)
		}
	}
	if len(segments) == 0 {
		return "UnnamedSchema"
	}
	for i, seg := range segments {
		if i > 0 && strings.HasSuffix(seg, "Id") {
			segments[i] = "One"
		}
	}
	return strings.Join(segments, ".")
}
