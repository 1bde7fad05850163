package model

import internalmodel "github.com/goliatone/go-spectic/internal/model"

// AsDict copies an instance into a plain map, recursively converting nested
// instances. Lossless: FromDict on the result reconstructs an equal instance.
func AsDict(in *Instance) map[string]any {
	return internalmodel.AsDict(in)
}

// AsTuple copies an instance into a slice following field declaration order,
// nested instances converting to nested tuples.
func AsTuple(in *Instance) []any {
	return internalmodel.AsTuple(in)
}

// Replace derives a new instance with the given fields overridden, running
// full construction again. The original is untouched even on failure.
func Replace(in *Instance, changes map[string]any) (*Instance, error) {
	return internalmodel.Replace(in, changes)
}

// SpecOf extracts and validates the FieldSpec behind a field item, for reuse
// outside a model declaration (function parameter specs, ad hoc checks).
func SpecOf(item Item) (FieldSpec, error) {
	return internalmodel.SpecOf(item)
}

// ValidateValue validates a standalone value against a field spec: strict
// type check (or coercion when coerce is set), then constraints and the
// spec's bound rule. Returns the canonical typed value.
func ValidateValue(spec FieldSpec, v any, coerce bool) (any, error) {
	return internalmodel.ValidateValue(spec, v, coerce)
}
