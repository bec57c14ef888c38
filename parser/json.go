package parser

import "encoding/json"

// This file carries the JSON marshalers for model types with inline Extra
// maps. encoding/json has no equivalent of yaml:",inline", so each marshaler
// flattens Extra into the top-level JSON object.

// marshalWithExtra marshals v and merges extra fields into the resulting
// top-level object.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	for k, val := range extra {
		m[k] = val
	}
	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return marshalWithExtra((*alias)(d), d.Extra)
}

// MarshalJSON implements custom JSON marshaling for Components.
func (c *Components) MarshalJSON() ([]byte, error) {
	type alias Components
	return marshalWithExtra((*alias)(c), c.Extra)
}

// MarshalJSON implements custom JSON marshaling for Info.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return marshalWithExtra((*alias)(i), i.Extra)
}

// MarshalJSON implements custom JSON marshaling for PathItem.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	return marshalWithExtra((*alias)(p), p.Extra)
}

// MarshalJSON implements custom JSON marshaling for Operation.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return marshalWithExtra((*alias)(o), o.Extra)
}

// MarshalJSON implements custom JSON marshaling for Responses. The Codes map
// is flattened so each status code becomes a direct field next to "default".
func (r *Responses) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 1+len(r.Codes))
	if r.Default != nil {
		m["default"] = r.Default
	}
	for code, response := range r.Codes {
		m[code] = response
	}
	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Response.
func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return marshalWithExtra((*alias)(r), r.Extra)
}

// MarshalJSON implements custom JSON marshaling for MediaType.
func (m *MediaType) MarshalJSON() ([]byte, error) {
	type alias MediaType
	return marshalWithExtra((*alias)(m), m.Extra)
}

// MarshalJSON implements custom JSON marshaling for RequestBody.
func (r *RequestBody) MarshalJSON() ([]byte, error) {
	type alias RequestBody
	return marshalWithExtra((*alias)(r), r.Extra)
}

// MarshalJSON implements custom JSON marshaling for Schema.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	return marshalWithExtra((*alias)(s), s.Extra)
}
