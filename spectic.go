// Package spectic is a declarative data-modeling layer. Model types are
// declared at runtime from ordered field descriptors with constraints and
// cross-field rules; instances only exist once every check has passed, and
// they round-trip losslessly through dict, tuple, JSON, YAML, and Msgpack
// representations.
//
// This package is the convenience facade: it re-exports the core types and
// hosts the serialization entry points. The full declaration API lives in
// pkg/model, constrained field presets in pkg/types, and the function-call
// validator in pkg/check.
package spectic

import (
	"github.com/goliatone/go-spectic/internal/codec"
	"github.com/goliatone/go-spectic/pkg/model"
)

// Core types re-exported for callers that only need the facade.
type ModelType = model.ModelType
type Instance = model.Instance
type FieldSpec = model.FieldSpec
type Item = model.Item
type FieldOption = model.FieldOption

// New builds a frozen model type; see pkg/model.New.
func New(name string, items ...Item) (*ModelType, error) {
	return model.New(name, items...)
}

// MustNew is New for package-level declarations; it panics on error.
func MustNew(name string, items ...Item) *ModelType {
	return model.MustNew(name, items...)
}

// AsDict copies an instance into a plain map, nested instances included.
func AsDict(in *Instance) map[string]any {
	return model.AsDict(in)
}

// AsTuple copies an instance into a slice in field declaration order.
func AsTuple(in *Instance) []any {
	return model.AsTuple(in)
}

// Replace derives a new instance with fields overridden, re-running full
// validation; the original instance is untouched on failure.
func Replace(in *Instance, changes map[string]any) (*Instance, error) {
	return model.Replace(in, changes)
}

// FromDict builds an instance from untyped data through the coercive path.
func FromDict(mt *ModelType, data map[string]any) (*Instance, error) {
	return mt.FromDict(data)
}

// FromTuple builds an instance from positional values zipped against the
// declared field order.
func FromTuple(mt *ModelType, values []any) (*Instance, error) {
	return mt.FromTuple(values)
}

// AsJSON serializes an instance to JSON with fields in declaration order.
func AsJSON(in *Instance) ([]byte, error) {
	return codec.EncodeJSON(in, "")
}

// AsJSONIndent serializes an instance to indented JSON.
func AsJSONIndent(in *Instance, indent string) ([]byte, error) {
	return codec.EncodeJSON(in, indent)
}

// FromJSON parses JSON bytes into an instance of mt.
func FromJSON(mt *ModelType, data []byte) (*Instance, error) {
	return codec.DecodeJSON(mt, data)
}

// AsYAML serializes an instance to YAML with fields in declaration order.
func AsYAML(in *Instance) ([]byte, error) {
	return codec.EncodeYAML(in)
}

// FromYAML parses YAML bytes into an instance of mt.
func FromYAML(mt *ModelType, data []byte) (*Instance, error) {
	return codec.DecodeYAML(mt, data)
}

// AsMsgpack serializes an instance to the Msgpack map format with fields in
// declaration order.
func AsMsgpack(in *Instance) ([]byte, error) {
	return codec.EncodeMsgpack(in)
}

// FromMsgpack parses Msgpack bytes into an instance of mt.
func FromMsgpack(mt *ModelType, data []byte) (*Instance, error) {
	return codec.DecodeMsgpack(mt, data)
}

// ValidateValue validates a standalone value against a field spec; see
// pkg/model.ValidateValue.
func ValidateValue(spec FieldSpec, v any, coerce bool) (any, error) {
	return model.ValidateValue(spec, v, coerce)
}
