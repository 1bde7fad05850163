package model

import "regexp"

// FieldType is the closed set of value kinds a field can declare.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "int"
	FieldTypeFloat  FieldType = "float"
	FieldTypeBool   FieldType = "bool"
	FieldTypeBytes  FieldType = "bytes"
	FieldTypeTime   FieldType = "time"
	FieldTypeUUID   FieldType = "uuid"
	FieldTypeSecret FieldType = "secret"
	FieldTypeModel  FieldType = "model"
	FieldTypeList   FieldType = "list"
)

// Canonical constraint names used in ConstraintError and the OpenAPI export.
const (
	ConstraintGT         = "gt"
	ConstraintGE         = "ge"
	ConstraintLT         = "lt"
	ConstraintLE         = "le"
	ConstraintMultipleOf = "multipleOf"
	ConstraintPattern    = "pattern"
	ConstraintMinLength  = "minLength"
	ConstraintMaxLength  = "maxLength"
	ConstraintTZ         = "tz"
)

// Constraints is the per-field constraint set. Unset constraints stay nil.
// Which members are legal depends on the field type and is checked once at
// model build time.
type Constraints struct {
	GT         *float64
	GE         *float64
	LT         *float64
	LE         *float64
	MultipleOf *float64
	Pattern    string
	MinLength  *int
	MaxLength  *int
	TZ         *bool

	compiled *regexp.Regexp
}

func (c *Constraints) empty() bool {
	return c.GT == nil && c.GE == nil && c.LT == nil && c.LE == nil &&
		c.MultipleOf == nil && c.Pattern == "" &&
		c.MinLength == nil && c.MaxLength == nil && c.TZ == nil
}

func (c *Constraints) numeric() bool {
	return c.GT != nil || c.GE != nil || c.LT != nil || c.LE != nil || c.MultipleOf != nil
}

func (c *Constraints) textual() bool {
	return c.Pattern != "" || c.MinLength != nil || c.MaxLength != nil
}

func (c *Constraints) lengths() bool {
	return c.MinLength != nil || c.MaxLength != nil
}

// FieldSpec declares a single field of a model: its type, default, constraint
// set, optional bound rule, and whether the coercive parse path may convert
// raw scalars for it. Specs are immutable once the owning model is built.
type FieldSpec struct {
	Name           string
	Type           FieldType
	Model          *ModelType
	Elem           *FieldSpec
	Default        any
	HasDefault     bool
	DefaultFactory func() any
	Constraints    Constraints
	Rule           *Rule
	Coerce         bool
	Description    string
}

// defaultValue resolves the field default, preferring the factory.
func (f *FieldSpec) defaultValue() (any, bool) {
	if f.DefaultFactory != nil {
		return f.DefaultFactory(), true
	}
	if f.HasDefault {
		return f.Default, true
	}
	return nil, false
}

// Required reports whether the field must be supplied to the constructor.
func (f *FieldSpec) Required() bool {
	return !f.HasDefault && f.DefaultFactory == nil
}

// ModelType is a frozen model: an ordered field sequence, the model-bound
// rules, and the per-model parse policies. Built once by New; never mutated
// afterwards.
type ModelType struct {
	name         string
	fields       []FieldSpec
	index        map[string]int
	rules        []Rule
	allowUnknown bool
	aggregate    bool
}

// Name returns the model name.
func (m *ModelType) Name() string {
	return m.name
}

// Fields returns the field specs in declaration order. The slice is a copy;
// the specs themselves are shared and must not be mutated.
func (m *ModelType) Fields() []FieldSpec {
	out := make([]FieldSpec, len(m.fields))
	copy(out, m.fields)
	return out
}

// Field looks up a field spec by name.
func (m *ModelType) Field(name string) (FieldSpec, bool) {
	i, ok := m.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return m.fields[i], true
}

// NumFields returns the number of declared fields.
func (m *ModelType) NumFields() int {
	return len(m.fields)
}

// Rules returns the model-bound rules in registration order.
func (m *ModelType) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// AllowsUnknown reports whether FromDict ignores undeclared keys.
func (m *ModelType) AllowsUnknown() bool {
	return m.allowUnknown
}

// Aggregates reports whether construction collects every violation instead
// of stopping at the first.
func (m *ModelType) Aggregates() bool {
	return m.aggregate
}
