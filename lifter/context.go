package lifter

import "strings"

// ArrayItemSegment is the synthetic path segment recorded when extraction
// descends into an array's item schema.
const ArrayItemSegment = "array-item"

// Context is the structural location of a schema occurrence: the ordered
// path to it (URL path elements, then nested property names and array-item
// markers), the operation it belongs to, the response status it was found
// under, and whether it is a request payload.
//
// Contexts are value types. Child returns a fresh context and never aliases
// the receiver's path slice, so recorded contexts stay stable while
// extraction continues to descend.
type Context struct {
	// Path holds the URL path elements of the operation followed by the
	// property names and array-item markers walked to reach the schema.
	Path []string
	// Operation identifies the operation: its operationId, or the HTTP
	// method when no operationId is declared.
	Operation string
	// Status is the response status code the schema was found under.
	// Empty for request bodies.
	Status string
	// Payload marks a request body occurrence.
	Payload bool
}

// Child returns a copy of the context extended with one more path segment.
func (c Context) Child(segment string) Context {
	path := make([]string, 0, len(c.Path)+1)
	path = append(path, c.Path...)
	path = append(path, segment)
	c.Path = path
	return c
}

// Depth is the number of path segments. The reference shortener prefers the
// context with the smallest depth.
func (c Context) Depth() int {
	return len(c.Path)
}

// String renders the context for diagnostics and error messages.
func (c Context) String() string {
	var b strings.Builder
	b.WriteString(c.Operation)
	if c.Payload {
		b.WriteString(" payload")
	}
	if c.Status != "" {
		b.WriteString(" ")
		b.WriteString(c.Status)
	}
	b.WriteString(" /")
	b.WriteString(strings.Join(c.Path, "/"))
	return b.String()
}
