// Package types bundles commonly used constrained field declarations so
// models can reuse them instead of repeating raw constraint options:
//
//	user := model.MustNew("User",
//		types.NonEmptyStr("name"),
//		types.PositiveInt("age"),
//	)
//
// Every helper returns a regular model.Item; extra options append after the
// preset constraints.
package types

import "github.com/goliatone/go-spectic/pkg/model"

func withPreset(preset []model.FieldOption, opts []model.FieldOption) []model.FieldOption {
	return append(preset, opts...)
}

// Numeric presets.

// PositiveInt declares an int field constrained to > 0.
func PositiveInt(name string, opts ...model.FieldOption) model.Item {
	return model.Int(name, withPreset([]model.FieldOption{model.GT(0)}, opts)...)
}

// NonNegativeInt declares an int field constrained to >= 0.
func NonNegativeInt(name string, opts ...model.FieldOption) model.Item {
	return model.Int(name, withPreset([]model.FieldOption{model.GE(0)}, opts)...)
}

// NegativeInt declares an int field constrained to < 0.
func NegativeInt(name string, opts ...model.FieldOption) model.Item {
	return model.Int(name, withPreset([]model.FieldOption{model.LT(0)}, opts)...)
}

// NonPositiveInt declares an int field constrained to <= 0.
func NonPositiveInt(name string, opts ...model.FieldOption) model.Item {
	return model.Int(name, withPreset([]model.FieldOption{model.LE(0)}, opts)...)
}

// PositiveFloat declares a float field constrained to > 0.
func PositiveFloat(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.GT(0)}, opts)...)
}

// NonNegativeFloat declares a float field constrained to >= 0.
func NonNegativeFloat(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.GE(0)}, opts)...)
}

// NegativeFloat declares a float field constrained to < 0.
func NegativeFloat(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.LT(0)}, opts)...)
}

// NonPositiveFloat declares a float field constrained to <= 0.
func NonPositiveFloat(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.LE(0)}, opts)...)
}

// Unit interval presets.

// ClosedUnitInterval declares a float field constrained to [0, 1].
func ClosedUnitInterval(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.GE(0), model.LE(1)}, opts)...)
}

// OpenUnitInterval declares a float field constrained to (0, 1).
func OpenUnitInterval(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.GT(0), model.LT(1)}, opts)...)
}

// LeftOpenUnitInterval declares a float field constrained to (0, 1].
func LeftOpenUnitInterval(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.GT(0), model.LE(1)}, opts)...)
}

// RightOpenUnitInterval declares a float field constrained to [0, 1).
func RightOpenUnitInterval(name string, opts ...model.FieldOption) model.Item {
	return model.Float(name, withPreset([]model.FieldOption{model.GE(0), model.LT(1)}, opts)...)
}

// String presets.

// NonEmptyStr declares a string field that must contain at least one
// non-space character.
func NonEmptyStr(name string, opts ...model.FieldOption) model.Item {
	return model.String(name, withPreset([]model.FieldOption{model.Pattern(`^.*[^ ].*$`)}, opts)...)
}

// EmailStr declares a string field constrained to a minimal email shape.
func EmailStr(name string, opts ...model.FieldOption) model.Item {
	return model.String(name, withPreset([]model.FieldOption{model.Pattern(`^[^@ ]+@[^@ ]+\.[^@ ]+$`)}, opts)...)
}

// HexStr declares a string field of hexadecimal digits.
func HexStr(name string, opts ...model.FieldOption) model.Item {
	return model.String(name, withPreset([]model.FieldOption{model.Pattern(`^[0-9A-Fa-f]+$`)}, opts)...)
}
