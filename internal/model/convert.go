package model

// AsDict copies an instance into a plain map, recursively converting nested
// instances. No validation runs; the instance is valid by construction.
// Secret values are NOT obscured here — AsDict stays lossless so that
// FromDict(AsDict(x)) reconstructs x; only the byte codecs obscure secrets.
func AsDict(in *Instance) map[string]any {
	out := make(map[string]any, len(in.values))
	for i := range in.model.fields {
		out[in.model.fields[i].Name] = convertOut(in.values[i], false)
	}
	return out
}

// AsTuple copies an instance into an ordered slice following field
// declaration order. Nested instances convert to nested tuples.
func AsTuple(in *Instance) []any {
	out := make([]any, len(in.values))
	for i := range in.values {
		out[i] = convertOut(in.values[i], true)
	}
	return out
}

func convertOut(v any, positional bool) any {
	switch val := v.(type) {
	case *Instance:
		if positional {
			return AsTuple(val)
		}
		return AsDict(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = convertOut(elem, positional)
		}
		return out
	default:
		return v
	}
}

// FromDict builds an instance from untyped data. This is the coercive path:
// nested maps convert into nested instances, wire representations (RFC 3339
// times, UUID strings, JSON numbers) normalize for every field, and fields
// marked Coerce additionally accept lenient scalar conversion. Missing
// required keys fail with ParseError; unknown keys fail too unless the model
// was built with AllowUnknown.
func (m *ModelType) FromDict(data map[string]any) (*Instance, error) {
	if !m.allowUnknown {
		for key := range data {
			if _, ok := m.index[key]; !ok {
				return nil, &ParseError{Model: m.name, Field: key, Reason: "unknown key"}
			}
		}
	}

	fields := make(map[string]any, len(m.fields))
	for i := range m.fields {
		spec := &m.fields[i]
		raw, ok := data[spec.Name]
		if !ok {
			if spec.Required() {
				return nil, &ParseError{Model: m.name, Field: spec.Name, Reason: "missing required key"}
			}
			continue
		}
		coerced, err := m.coerceValue(spec, raw)
		if err != nil {
			return nil, err
		}
		fields[spec.Name] = coerced
	}

	inst, err := m.New(fields)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// FromTuple builds an instance from values zipped against the declared field
// order. A longer tuple than the model fails with ParseError; a shorter one
// is allowed only when the omitted trailing fields carry defaults. Nested
// model values may be maps (converted via FromDict) or tuples (converted via
// FromTuple).
func (m *ModelType) FromTuple(values []any) (*Instance, error) {
	if len(values) > len(m.fields) {
		return nil, &ParseError{
			Model:  m.name,
			Reason: "tuple length mismatch",
		}
	}

	fields := make(map[string]any, len(values))
	for i, raw := range values {
		spec := &m.fields[i]
		coerced, err := m.coerceValue(spec, raw)
		if err != nil {
			return nil, err
		}
		fields[spec.Name] = coerced
	}

	for i := len(values); i < len(m.fields); i++ {
		if m.fields[i].Required() {
			return nil, &ParseError{
				Model:  m.name,
				Field:  m.fields[i].Name,
				Reason: "tuple length mismatch",
			}
		}
	}

	inst, err := m.New(fields)
	if err != nil {
		return nil, err
	}
	return inst, nil
}
