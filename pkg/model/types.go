package model

import internalmodel "github.com/goliatone/go-spectic/internal/model"

// FieldType re-exports the internal field type enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString = internalmodel.FieldTypeString
	FieldTypeInt    = internalmodel.FieldTypeInt
	FieldTypeFloat  = internalmodel.FieldTypeFloat
	FieldTypeBool   = internalmodel.FieldTypeBool
	FieldTypeBytes  = internalmodel.FieldTypeBytes
	FieldTypeTime   = internalmodel.FieldTypeTime
	FieldTypeUUID   = internalmodel.FieldTypeUUID
	FieldTypeSecret = internalmodel.FieldTypeSecret
	FieldTypeModel  = internalmodel.FieldTypeModel
	FieldTypeList   = internalmodel.FieldTypeList
)

// Canonical constraint identifiers, as reported by ConstraintError.
const (
	ConstraintGT         = internalmodel.ConstraintGT
	ConstraintGE         = internalmodel.ConstraintGE
	ConstraintLT         = internalmodel.ConstraintLT
	ConstraintLE         = internalmodel.ConstraintLE
	ConstraintMultipleOf = internalmodel.ConstraintMultipleOf
	ConstraintPattern    = internalmodel.ConstraintPattern
	ConstraintMinLength  = internalmodel.ConstraintMinLength
	ConstraintMaxLength  = internalmodel.ConstraintMaxLength
	ConstraintTZ         = internalmodel.ConstraintTZ
)

type Constraints = internalmodel.Constraints
type FieldSpec = internalmodel.FieldSpec
type Rule = internalmodel.Rule
type ModelType = internalmodel.ModelType
type Instance = internalmodel.Instance
type Item = internalmodel.Item
type FieldOption = internalmodel.FieldOption

// Error kinds. All are concrete structs matchable with errors.As.
type ConfigurationError = internalmodel.ConfigurationError
type MissingFieldError = internalmodel.MissingFieldError
type TypeMismatchError = internalmodel.TypeMismatchError
type ConstraintError = internalmodel.ConstraintError
type RuleError = internalmodel.RuleError
type ParseError = internalmodel.ParseError
type ArgumentError = internalmodel.ArgumentError
type AggregateError = internalmodel.AggregateError
