package lifter

import (
	"sort"
	"strings"

	"github.com/erraggy/schemalift/parser"
)

// jsonMediaType is the only content type the lifter visits.
const jsonMediaType = "application/json"

// defaultResponseKey is the context status recorded for default responses.
const defaultResponseKey = "default"

// walkDocument visits every operation's JSON request and response schemas
// and replaces each with the extractor's result. Paths are visited in sorted
// order, methods in the fixed order of OrderedOperations, and response codes
// in sorted order with the default response last, so registration order is
// deterministic for a given document.
func (st *liftState) walkDocument(doc *parser.Document) error {
	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		item := doc.Paths[p]
		if item == nil {
			continue
		}
		segments := splitPathSegments(p)
		for _, mo := range item.OrderedOperations() {
			if err := st.walkOperation(segments, mo.Method, mo.Operation); err != nil {
				return err
			}
		}
	}
	return nil
}

func (st *liftState) walkOperation(pathSegments []string, method string, op *parser.Operation) error {
	identity := op.OperationID
	if identity == "" {
		identity = method
	}

	if body := op.RequestBody; body != nil {
		if mt := body.Content[jsonMediaType]; mt != nil && mt.Schema != nil {
			ctx := Context{Path: pathSegments, Operation: identity, Payload: true}
			extracted, err := st.extract(mt.Schema, ctx)
			if err != nil {
				return err
			}
			mt.Schema = extracted
		}
	}

	if op.Responses == nil {
		return nil
	}
	codes := make([]string, 0, len(op.Responses.Codes))
	for code := range op.Responses.Codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if err := st.walkResponse(pathSegments, identity, code, op.Responses.Codes[code]); err != nil {
			return err
		}
	}
	return st.walkResponse(pathSegments, identity, defaultResponseKey, op.Responses.Default)
}

func (st *liftState) walkResponse(pathSegments []string, identity, status string, resp *parser.Response) error {
	if resp == nil {
		return nil
	}
	mt := resp.Content[jsonMediaType]
	if mt == nil || mt.Schema == nil {
		return nil
	}
	ctx := Context{Path: pathSegments, Operation: identity, Status: status}
	extracted, err := st.extract(mt.Schema, ctx)
	if err != nil {
		return err
	}
	mt.Schema = extracted
	return nil
}

// splitPathSegments breaks a URL path into its non-empty elements:
// "/v1/drafts/{id}" becomes ["v1", "drafts", "{id}"].
func splitPathSegments(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
