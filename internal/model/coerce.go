package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-spectic/pkg/secret"
)

// coerceValue converts raw parsed data into the field's typed value.
//
// Two tiers apply. Wire-representation normalization runs for every field,
// because byte codecs cannot express the richer types: RFC 3339 strings for
// times, canonical strings for UUIDs, base64 for bytes, json.Number and
// integral floats for ints, and maps/tuples for nested models. Lenient scalar
// conversion (string to int, bool, float and back) runs only for fields
// declared with Coerce.
func (m *ModelType) coerceValue(spec *FieldSpec, v any) (any, error) {
	parseErr := func(cause error, reason string) error {
		return &ParseError{Model: m.name, Field: spec.Name, Reason: reason, Cause: cause}
	}
	mismatch := func() error {
		return parseErr(nil, fmt.Sprintf("cannot convert %T to %s", v, spec.Type))
	}
	if v == nil {
		return nil, mismatch()
	}

	switch spec.Type {
	case FieldTypeModel:
		switch data := v.(type) {
		case *Instance:
			return data, nil
		case map[string]any:
			nested, err := spec.Model.FromDict(data)
			if err != nil {
				return nil, err
			}
			return nested, nil
		case []any:
			nested, err := spec.Model.FromTuple(data)
			if err != nil {
				return nil, err
			}
			return nested, nil
		}
		return nil, mismatch()

	case FieldTypeList:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return nil, mismatch()
		}
		out := make([]any, rv.Len())
		elem := *spec.Elem
		elem.Coerce = spec.Coerce
		for i := 0; i < rv.Len(); i++ {
			converted, err := m.coerceValue(&elem, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	case FieldTypeInt:
		if n, ok := normalizeInt(v); ok {
			return n, nil
		}
		switch n := v.(type) {
		case json.Number:
			parsed, err := n.Int64()
			if err != nil {
				return nil, parseErr(err, "invalid integer")
			}
			return parsed, nil
		case float64:
			if n == math.Trunc(n) {
				return int64(n), nil
			}
			return nil, parseErr(nil, fmt.Sprintf("%v is not an integer", n))
		case float32:
			f := float64(n)
			if f == math.Trunc(f) {
				return int64(f), nil
			}
			return nil, parseErr(nil, fmt.Sprintf("%v is not an integer", n))
		case string:
			if spec.Coerce {
				parsed, err := strconv.ParseInt(n, 10, 64)
				if err != nil {
					return nil, parseErr(err, "invalid integer")
				}
				return parsed, nil
			}
		}
		return nil, mismatch()

	case FieldTypeFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case json.Number:
			parsed, err := n.Float64()
			if err != nil {
				return nil, parseErr(err, "invalid number")
			}
			return parsed, nil
		case string:
			if spec.Coerce {
				parsed, err := strconv.ParseFloat(n, 64)
				if err != nil {
					return nil, parseErr(err, "invalid number")
				}
				return parsed, nil
			}
		}
		if n, ok := normalizeInt(v); ok {
			return float64(n), nil
		}
		return nil, mismatch()

	case FieldTypeBool:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			if spec.Coerce {
				parsed, err := strconv.ParseBool(b)
				if err != nil {
					return nil, parseErr(err, "invalid boolean")
				}
				return parsed, nil
			}
		}
		return nil, mismatch()

	case FieldTypeString:
		switch s := v.(type) {
		case string:
			return s, nil
		case json.Number:
			if spec.Coerce {
				return s.String(), nil
			}
		case float64:
			if spec.Coerce {
				return strconv.FormatFloat(s, 'f', -1, 64), nil
			}
		case bool:
			if spec.Coerce {
				return strconv.FormatBool(s), nil
			}
		}
		if spec.Coerce {
			if n, ok := normalizeInt(v); ok {
				return strconv.FormatInt(n, 10), nil
			}
		}
		return nil, mismatch()

	case FieldTypeTime:
		switch t := v.(type) {
		case time.Time:
			return t, nil
		case string:
			parsed, err := time.Parse(time.RFC3339Nano, t)
			if err != nil {
				return nil, parseErr(err, "invalid timestamp")
			}
			return parsed, nil
		}
		return nil, mismatch()

	case FieldTypeUUID:
		switch id := v.(type) {
		case uuid.UUID:
			return id, nil
		case string:
			parsed, err := uuid.Parse(id)
			if err != nil {
				return nil, parseErr(err, "invalid uuid")
			}
			return parsed, nil
		}
		return nil, mismatch()

	case FieldTypeBytes:
		switch b := v.(type) {
		case []byte:
			return b, nil
		case string:
			decoded, err := base64.StdEncoding.DecodeString(b)
			if err != nil {
				return nil, parseErr(err, "invalid base64")
			}
			return decoded, nil
		}
		return nil, mismatch()

	case FieldTypeSecret:
		switch s := v.(type) {
		case secret.Str:
			return s, nil
		case string:
			return secret.NewStr(s), nil
		}
		return nil, mismatch()
	}

	return nil, mismatch()
}

// ValidateValue validates a standalone value against a single field spec,
// outside of any model. It backs the function-call validator: the value is
// strictly checked (or coerced first when coerce is set), then run through
// the spec's constraints and bound rule. The returned value is the canonical
// typed representation.
func ValidateValue(spec FieldSpec, v any, coerce bool) (any, error) {
	// Standalone specs go through the same build validation as model fields
	// so misdeclared constraints fail loudly.
	if err := finalizeField("<arg>", &spec); err != nil {
		return nil, err
	}

	var (
		typed any
		err   error
	)
	if coerce {
		scratch := &ModelType{name: "<arg>", index: map[string]int{spec.Name: 0}}
		scratch.fields = []FieldSpec{spec}
		withCoerce := spec
		withCoerce.Coerce = true
		typed, err = scratch.coerceValue(&withCoerce, v)
	} else {
		typed, err = checkStrict("<arg>", &spec, v)
	}
	if err != nil {
		return nil, err
	}

	if err := checkConstraints("<arg>", &spec, typed); err != nil {
		return nil, err
	}
	if spec.Rule != nil {
		scratch := &ModelType{name: "<arg>", index: map[string]int{spec.Name: 0}}
		scratch.fields = []FieldSpec{spec}
		inst := &Instance{model: scratch, values: []any{typed}}
		if err := spec.Rule.run(inst); err != nil {
			return nil, err
		}
	}
	return typed, nil
}

// SpecOf extracts the FieldSpec from a field item, validating it the same way
// New would. It lets callers reuse field declarations outside a model, e.g.
// as function parameter specs.
func SpecOf(item Item) (FieldSpec, error) {
	fi, ok := item.(fieldItem)
	if !ok {
		return FieldSpec{}, &ConfigurationError{Model: "<arg>", Reason: fmt.Sprintf("item %T is not a field", item)}
	}
	spec := fi.spec
	if err := finalizeField("<arg>", &spec); err != nil {
		return FieldSpec{}, err
	}
	return spec, nil
}
