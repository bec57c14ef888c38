package parser

// HTTP methods as they appear as path item fields in OAS documents.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// MethodOperation pairs an operation with the HTTP method it is bound to.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// OrderedOperations returns the path item's operations in the fixed method
// order get, put, post, delete, options, head, patch, trace. Absent methods
// are skipped. The fixed order keeps document traversal deterministic.
func (p *PathItem) OrderedOperations() []MethodOperation {
	if p == nil {
		return nil
	}
	all := []MethodOperation{
		{MethodGet, p.Get},
		{MethodPut, p.Put},
		{MethodPost, p.Post},
		{MethodDelete, p.Delete},
		{MethodOptions, p.Options},
		{MethodHead, p.Head},
		{MethodPatch, p.Patch},
		{MethodTrace, p.Trace},
	}
	result := make([]MethodOperation, 0, len(all))
	for _, mo := range all {
		if mo.Operation != nil {
			result = append(result, mo)
		}
	}
	return result
}
