package model

// Item is a declaration accepted by New: a field, a rule, or a model policy.
// Items are produced by the field constructors (String, Int, Nested, ...),
// the rule registrars (RuleItem, CheckItem, ...), and the policy options
// (AllowUnknown, AggregateErrors).
type Item interface {
	modelItem()
}

type fieldItem struct {
	spec FieldSpec
}

func (fieldItem) modelItem() {}

type ruleItem struct {
	rule Rule
}

func (ruleItem) modelItem() {}

type policyItem struct {
	apply func(*ModelType)
}

func (policyItem) modelItem() {}

// FieldOption configures a single field declaration.
type FieldOption func(*FieldSpec)

func newField(name string, typ FieldType, opts []FieldOption) Item {
	spec := FieldSpec{Name: name, Type: typ}
	for _, opt := range opts {
		opt(&spec)
	}
	return fieldItem{spec: spec}
}

// String declares a string field.
func String(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeString, opts)
}

// Int declares an integer field. Values normalize to int64.
func Int(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeInt, opts)
}

// Float declares a floating point field. Values normalize to float64;
// integers widen without loss.
func Float(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeFloat, opts)
}

// Bool declares a boolean field.
func Bool(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeBool, opts)
}

// Bytes declares a byte slice field.
func Bytes(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeBytes, opts)
}

// Time declares a time.Time field. Combine with TZ to constrain zone
// handling.
func Time(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeTime, opts)
}

// UUID declares a uuid.UUID field. The parse path accepts the canonical
// string form.
func UUID(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeUUID, opts)
}

// Secret declares a secret.Str field. Serialization always emits the
// obscured form.
func Secret(name string, opts ...FieldOption) Item {
	return newField(name, FieldTypeSecret, opts)
}

// Nested declares a field holding an instance of another model. Strict
// construction requires a ready *Instance; only the parse path converts raw
// mappings.
func Nested(name string, mt *ModelType, opts ...FieldOption) Item {
	item := newField(name, FieldTypeModel, opts).(fieldItem)
	item.spec.Model = mt
	return item
}

// List declares a list field with scalar elements of the given type.
func List(name string, elem FieldType, opts ...FieldOption) Item {
	item := newField(name, FieldTypeList, opts).(fieldItem)
	item.spec.Elem = &FieldSpec{Name: name + "[]", Type: elem}
	return item
}

// ListOf declares a list field whose elements are instances of mt.
func ListOf(name string, mt *ModelType, opts ...FieldOption) Item {
	item := newField(name, FieldTypeList, opts).(fieldItem)
	item.spec.Elem = &FieldSpec{Name: name + "[]", Type: FieldTypeModel, Model: mt}
	return item
}

// Default sets the field default. Mutually exclusive with DefaultFactory;
// the conflict is reported at build time.
func Default(v any) FieldOption {
	return func(f *FieldSpec) {
		f.Default = v
		f.HasDefault = true
	}
}

// DefaultFactory sets a zero-argument producer invoked per construction when
// the field is absent. Use it for mutable defaults such as lists.
func DefaultFactory(fn func() any) FieldOption {
	return func(f *FieldSpec) {
		f.DefaultFactory = fn
	}
}

// Coerce marks the field for scalar coercion on the parse path. The strict
// constructor ignores this flag.
func Coerce() FieldOption {
	return func(f *FieldSpec) {
		f.Coerce = true
	}
}

// Description attaches human-readable documentation, surfaced by the OpenAPI
// export.
func Description(text string) FieldOption {
	return func(f *FieldSpec) {
		f.Description = text
	}
}

// GT requires numeric values strictly greater than bound.
func GT(bound float64) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.GT = &bound
	}
}

// GE requires numeric values greater than or equal to bound.
func GE(bound float64) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.GE = &bound
	}
}

// LT requires numeric values strictly less than bound.
func LT(bound float64) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.LT = &bound
	}
}

// LE requires numeric values less than or equal to bound.
func LE(bound float64) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.LE = &bound
	}
}

// MultipleOf requires numeric values to be an exact multiple of base.
func MultipleOf(base float64) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.MultipleOf = &base
	}
}

// Pattern requires string values to match the regular expression. The
// expression compiles at build time; a bad pattern is a ConfigurationError.
func Pattern(expr string) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.Pattern = expr
	}
}

// MinLength bounds the length of strings (in runes), byte slices, and lists.
func MinLength(n int) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.MinLength = &n
	}
}

// MaxLength bounds the length of strings (in runes), byte slices, and lists.
func MaxLength(n int) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.MaxLength = &n
	}
}

// TZ constrains time zone handling: true requires an explicitly assigned
// zone (anything but time.Local), false requires UTC. Go times always carry a
// location, so this is the closest analogue to aware-versus-naive.
func TZ(aware bool) FieldOption {
	return func(f *FieldSpec) {
		f.Constraints.TZ = &aware
	}
}

// FieldRule attaches a predicate over the field's value, with an optional
// failure message.
func FieldRule(predicate func(any) bool, message string) FieldOption {
	origin := callerOrigin()
	return func(f *FieldSpec) {
		f.Rule = &Rule{
			Bind:      f.Name,
			Message:   message,
			Origin:    origin,
			predicate: predicate,
		}
	}
}

// FieldCheck attaches a raising rule over the field's value.
func FieldCheck(check func(any) error) FieldOption {
	origin := callerOrigin()
	return func(f *FieldSpec) {
		f.Rule = &Rule{
			Bind:   f.Name,
			Origin: origin,
			check:  check,
		}
	}
}

// RuleItem registers a model-level predicate rule in declaration position.
func RuleItem(predicate func(*Instance) bool, message string) Item {
	return ruleItem{rule: NewRule(predicate, message)}
}

// CheckItem registers a model-level raising rule in declaration position.
func CheckItem(check func(*Instance) error) Item {
	return ruleItem{rule: NewCheckRule(check)}
}

// BoundRuleItem registers a predicate rule scoped to one field's value.
func BoundRuleItem(field string, predicate func(any) bool, message string) Item {
	return ruleItem{rule: NewBoundRule(field, predicate, message)}
}

// BoundCheckItem registers a raising rule scoped to one field's value.
func BoundCheckItem(field string, check func(any) error) Item {
	return ruleItem{rule: NewBoundCheckRule(field, check)}
}

// AllowUnknown makes FromDict ignore undeclared keys instead of failing.
func AllowUnknown() Item {
	return policyItem{apply: func(m *ModelType) {
		m.allowUnknown = true
	}}
}

// AggregateErrors makes construction collect every constraint and rule
// violation into a single AggregateError instead of stopping at the first.
func AggregateErrors() Item {
	return policyItem{apply: func(m *ModelType) {
		m.aggregate = true
	}}
}
