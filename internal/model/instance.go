package model

import (
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-spectic/pkg/secret"
)

// Instance is a value of a ModelType. Instances only come out of the
// constructor, so every reachable instance has already passed its model's
// constraints and rules. Instances are immutable; use Replace to derive a
// changed copy.
type Instance struct {
	model  *ModelType
	values []any
}

// Model returns the owning model type.
func (in *Instance) Model() *ModelType {
	return in.model
}

// Get returns the named field's value.
func (in *Instance) Get(name string) (any, bool) {
	i, ok := in.model.index[name]
	if !ok {
		return nil, false
	}
	return in.values[i], true
}

// MustGet returns the named field's value and panics on an undeclared name.
func (in *Instance) MustGet(name string) any {
	v, ok := in.Get(name)
	if !ok {
		panic(&ConfigurationError{Model: in.model.name, Field: name, Reason: "no such field"})
	}
	return v
}

// New strictly constructs an instance from named values. Missing fields fall
// back to their default or fail with MissingFieldError; values of the wrong
// type fail with TypeMismatchError — in particular, a raw map where a nested
// model is expected is rejected (use FromDict for that). After assignment the
// constraints and rules run in declaration order.
func (m *ModelType) New(fields map[string]any) (*Instance, error) {
	for name := range fields {
		if _, ok := m.index[name]; !ok {
			return nil, &TypeMismatchError{Model: m.name, Field: name, Want: "", Got: fields[name]}
		}
	}

	values := make([]any, len(m.fields))
	for i := range m.fields {
		spec := &m.fields[i]
		v, supplied := fields[spec.Name]
		if !supplied {
			var ok bool
			v, ok = spec.defaultValue()
			if !ok {
				return nil, &MissingFieldError{Model: m.name, Field: spec.Name}
			}
		}
		normalized, err := checkStrict(m.name, spec, v)
		if err != nil {
			return nil, err
		}
		values[i] = normalized
	}

	inst := &Instance{model: m, values: values}
	if err := m.validate(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// NewPositional strictly constructs an instance from values in declaration
// order. Trailing fields may be omitted when they carry defaults.
func (m *ModelType) NewPositional(values ...any) (*Instance, error) {
	if len(values) > len(m.fields) {
		return nil, &TypeMismatchError{Model: m.name, Field: "", Want: "", Got: values[len(m.fields)]}
	}
	fields := make(map[string]any, len(values))
	for i, v := range values {
		fields[m.fields[i].Name] = v
	}
	return m.New(fields)
}

// Replace derives a new instance from in with the given fields overridden,
// re-running full construction. The receiver is untouched even when the
// replacement fails validation.
func Replace(in *Instance, changes map[string]any) (*Instance, error) {
	fields := make(map[string]any, len(in.values))
	for i := range in.model.fields {
		fields[in.model.fields[i].Name] = in.values[i]
	}
	for name, v := range changes {
		fields[name] = v
	}
	return in.model.New(fields)
}

// checkStrict verifies that v matches the field's declared type with no
// coercion beyond value-preserving numeric widening, returning the
// canonical runtime representation (int64, float64, ...).
func checkStrict(model string, spec *FieldSpec, v any) (any, error) {
	mismatch := func() error {
		return &TypeMismatchError{Model: model, Field: spec.Name, Want: spec.Type, Got: v}
	}
	if v == nil {
		return nil, mismatch()
	}

	switch spec.Type {
	case FieldTypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case FieldTypeInt:
		if n, ok := normalizeInt(v); ok {
			return n, nil
		}
	case FieldTypeFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		}
		if n, ok := normalizeInt(v); ok {
			return float64(n), nil
		}
	case FieldTypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case FieldTypeBytes:
		if b, ok := v.([]byte); ok {
			return b, nil
		}
	case FieldTypeTime:
		if t, ok := v.(time.Time); ok {
			return t, nil
		}
	case FieldTypeUUID:
		if id, ok := v.(uuid.UUID); ok {
			return id, nil
		}
	case FieldTypeSecret:
		switch s := v.(type) {
		case secret.Str:
			return s, nil
		case string:
			// Wrapping a literal is value-preserving, not a coercion.
			return secret.NewStr(s), nil
		}
	case FieldTypeModel:
		if nested, ok := v.(*Instance); ok {
			if nested.model != spec.Model {
				return nil, mismatch()
			}
			return nested, nil
		}
	case FieldTypeList:
		return checkStrictList(model, spec, v)
	}
	return nil, mismatch()
}

func checkStrictList(model string, spec *FieldSpec, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, &TypeMismatchError{Model: model, Field: spec.Name, Want: spec.Type, Got: v}
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := checkStrict(model, spec.Elem, rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = elem
	}
	return out, nil
}

// normalizeInt folds every Go integer width into int64. Unsigned values
// outside the int64 range do not fit and are rejected.
func normalizeInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), true
		}
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}
