package parser

// This file contains deep copy support for the document model. The lifter
// mutates documents while extracting schemas, so it always works on a copy
// and never touches the caller's parse result.

// DeepCopy returns a deep copy of the document.
func (d *Document) DeepCopy() *Document {
	if d == nil {
		return nil
	}
	cp := &Document{
		OpenAPI: d.OpenAPI,
		Info:    d.Info.DeepCopy(),
		Extra:   deepCopyAnyMap(d.Extra),
	}
	if d.Paths != nil {
		cp.Paths = make(Paths, len(d.Paths))
		for key, item := range d.Paths {
			cp.Paths[key] = item.DeepCopy()
		}
	}
	if d.Components != nil {
		cp.Components = &Components{Extra: deepCopyAnyMap(d.Components.Extra)}
		if d.Components.Schemas != nil {
			cp.Components.Schemas = make(map[string]*Schema, len(d.Components.Schemas))
			for name, schema := range d.Components.Schemas {
				cp.Components.Schemas[name] = schema.DeepCopy()
			}
		}
	}
	return cp
}

// DeepCopy returns a deep copy of the info object.
func (i *Info) DeepCopy() *Info {
	if i == nil {
		return nil
	}
	return &Info{
		Title:       i.Title,
		Version:     i.Version,
		Description: i.Description,
		Extra:       deepCopyAnyMap(i.Extra),
	}
}

// DeepCopy returns a deep copy of the path item and its operations.
func (p *PathItem) DeepCopy() *PathItem {
	if p == nil {
		return nil
	}
	return &PathItem{
		Ref:         p.Ref,
		Summary:     p.Summary,
		Description: p.Description,
		Get:         p.Get.DeepCopy(),
		Put:         p.Put.DeepCopy(),
		Post:        p.Post.DeepCopy(),
		Delete:      p.Delete.DeepCopy(),
		Options:     p.Options.DeepCopy(),
		Head:        p.Head.DeepCopy(),
		Patch:       p.Patch.DeepCopy(),
		Trace:       p.Trace.DeepCopy(),
		Parameters:  deepCopyAnySlice(p.Parameters),
		Extra:       deepCopyAnyMap(p.Extra),
	}
}

// DeepCopy returns a deep copy of the operation.
func (o *Operation) DeepCopy() *Operation {
	if o == nil {
		return nil
	}
	cp := &Operation{
		Summary:     o.Summary,
		Description: o.Description,
		OperationID: o.OperationID,
		Parameters:  deepCopyAnySlice(o.Parameters),
		RequestBody: o.RequestBody.DeepCopy(),
		Deprecated:  o.Deprecated,
		Extra:       deepCopyAnyMap(o.Extra),
	}
	if o.Tags != nil {
		cp.Tags = make([]string, len(o.Tags))
		copy(cp.Tags, o.Tags)
	}
	if o.Responses != nil {
		cp.Responses = &Responses{Default: o.Responses.Default.DeepCopy()}
		if o.Responses.Codes != nil {
			cp.Responses.Codes = make(map[string]*Response, len(o.Responses.Codes))
			for code, resp := range o.Responses.Codes {
				cp.Responses.Codes[code] = resp.DeepCopy()
			}
		}
	}
	return cp
}

// DeepCopy returns a deep copy of the response.
func (r *Response) DeepCopy() *Response {
	if r == nil {
		return nil
	}
	return &Response{
		Ref:         r.Ref,
		Description: r.Description,
		Headers:     deepCopyAnyMap(r.Headers),
		Content:     deepCopyContent(r.Content),
		Extra:       deepCopyAnyMap(r.Extra),
	}
}

// DeepCopy returns a deep copy of the request body.
func (r *RequestBody) DeepCopy() *RequestBody {
	if r == nil {
		return nil
	}
	return &RequestBody{
		Ref:         r.Ref,
		Description: r.Description,
		Required:    r.Required,
		Content:     deepCopyContent(r.Content),
		Extra:       deepCopyAnyMap(r.Extra),
	}
}

// DeepCopy returns a deep copy of the media type.
func (m *MediaType) DeepCopy() *MediaType {
	if m == nil {
		return nil
	}
	return &MediaType{
		Schema:   m.Schema.DeepCopy(),
		Example:  deepCopyValue(m.Example),
		Examples: deepCopyAnyMap(m.Examples),
		Extra:    deepCopyAnyMap(m.Extra),
	}
}

// DeepCopy returns a deep copy of the schema and all nested schemas.
func (s *Schema) DeepCopy() *Schema {
	if s == nil {
		return nil
	}
	cp := &Schema{
		Ref:              s.Ref,
		Title:            s.Title,
		Description:      s.Description,
		Default:          deepCopyValue(s.Default),
		Example:          deepCopyValue(s.Example),
		Type:             deepCopySchemaType(s.Type),
		Const:            deepCopyValue(s.Const),
		Format:           s.Format,
		MultipleOf:       deepCopyFloat(s.MultipleOf),
		Maximum:          deepCopyFloat(s.Maximum),
		ExclusiveMaximum: deepCopyValue(s.ExclusiveMaximum),
		Minimum:          deepCopyFloat(s.Minimum),
		ExclusiveMinimum: deepCopyValue(s.ExclusiveMinimum),
		MaxLength:        deepCopyInt(s.MaxLength),
		MinLength:        deepCopyInt(s.MinLength),
		Pattern:          s.Pattern,
		Items:            deepCopySchemaOrBool(s.Items),
		MaxItems:         deepCopyInt(s.MaxItems),
		MinItems:         deepCopyInt(s.MinItems),
		UniqueItems:      s.UniqueItems,
		MaxProperties:    deepCopyInt(s.MaxProperties),
		MinProperties:    deepCopyInt(s.MinProperties),
		Not:              s.Not.DeepCopy(),
		Nullable:         s.Nullable,
		ReadOnly:         s.ReadOnly,
		WriteOnly:        s.WriteOnly,
		Deprecated:       s.Deprecated,
		Extra:            deepCopyAnyMap(s.Extra),
	}
	cp.AdditionalProperties = deepCopySchemaOrBool(s.AdditionalProperties)
	if s.Enum != nil {
		cp.Enum = deepCopyAnySlice(s.Enum)
	}
	if s.Required != nil {
		cp.Required = make([]string, len(s.Required))
		copy(cp.Required, s.Required)
	}
	if s.Properties != nil {
		cp.Properties = make(map[string]*Schema, len(s.Properties))
		for name, prop := range s.Properties {
			cp.Properties[name] = prop.DeepCopy()
		}
	}
	cp.AllOf = deepCopySchemaSlice(s.AllOf)
	cp.AnyOf = deepCopySchemaSlice(s.AnyOf)
	cp.OneOf = deepCopySchemaSlice(s.OneOf)
	return cp
}

// deepCopySchemaType handles Schema.Type which can be a string or a list of
// strings (OAS 3.1+ type arrays like ["string", "null"]).
func deepCopySchemaType(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return t // strings are immutable
	case []string:
		cp := make([]string, len(t))
		copy(cp, t)
		return cp
	case []any:
		return deepCopyAnySlice(t)
	default:
		return v
	}
}

// deepCopySchemaOrBool handles fields that can be *Schema or bool
// (items, additionalProperties).
func deepCopySchemaOrBool(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return t
	case *Schema:
		return t.DeepCopy()
	default:
		return v
	}
}

func deepCopySchemaSlice(schemas []*Schema) []*Schema {
	if schemas == nil {
		return nil
	}
	cp := make([]*Schema, len(schemas))
	for i, s := range schemas {
		cp[i] = s.DeepCopy()
	}
	return cp
}

func deepCopyContent(content map[string]*MediaType) map[string]*MediaType {
	if content == nil {
		return nil
	}
	cp := make(map[string]*MediaType, len(content))
	for mediaType, mt := range content {
		cp[mediaType] = mt.DeepCopy()
	}
	return cp
}

func deepCopyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func deepCopyInt(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// deepCopyValue copies an arbitrary unmarshaled value. Maps and slices are
// copied recursively; scalars are returned as-is.
func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyAnyMap(t)
	case []any:
		return deepCopyAnySlice(t)
	default:
		return v
	}
}

func deepCopyAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = deepCopyValue(v)
	}
	return cp
}

func deepCopyAnySlice(s []any) []any {
	if s == nil {
		return nil
	}
	cp := make([]any, len(s))
	for i, v := range s {
		cp[i] = deepCopyValue(v)
	}
	return cp
}
