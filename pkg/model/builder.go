package model

import internalmodel "github.com/goliatone/go-spectic/internal/model"

// New builds a frozen ModelType from the declared items; misdeclarations
// (duplicate fields, incompatible constraints, rules bound to undeclared
// fields, conflicting defaults) fail here with a ConfigurationError rather
// than at construction time.
func New(name string, items ...Item) (*ModelType, error) {
	return internalmodel.New(name, items...)
}

// MustNew is New for package-level declarations; it panics on error.
func MustNew(name string, items ...Item) *ModelType {
	return internalmodel.MustNew(name, items...)
}

// Field constructors. Each declares one field in declaration order.

func String(name string, opts ...FieldOption) Item { return internalmodel.String(name, opts...) }
func Int(name string, opts ...FieldOption) Item    { return internalmodel.Int(name, opts...) }
func Float(name string, opts ...FieldOption) Item  { return internalmodel.Float(name, opts...) }
func Bool(name string, opts ...FieldOption) Item   { return internalmodel.Bool(name, opts...) }
func Bytes(name string, opts ...FieldOption) Item  { return internalmodel.Bytes(name, opts...) }
func Time(name string, opts ...FieldOption) Item   { return internalmodel.Time(name, opts...) }
func UUID(name string, opts ...FieldOption) Item   { return internalmodel.UUID(name, opts...) }
func Secret(name string, opts ...FieldOption) Item { return internalmodel.Secret(name, opts...) }

// Nested declares a field holding an instance of another model.
func Nested(name string, mt *ModelType, opts ...FieldOption) Item {
	return internalmodel.Nested(name, mt, opts...)
}

// List declares a list field with scalar elements of the given type.
func List(name string, elem FieldType, opts ...FieldOption) Item {
	return internalmodel.List(name, elem, opts...)
}

// ListOf declares a list field whose elements are instances of mt.
func ListOf(name string, mt *ModelType, opts ...FieldOption) Item {
	return internalmodel.ListOf(name, mt, opts...)
}

// Field options.

func Default(v any) FieldOption                { return internalmodel.Default(v) }
func DefaultFactory(fn func() any) FieldOption { return internalmodel.DefaultFactory(fn) }
func Coerce() FieldOption                      { return internalmodel.Coerce() }
func Description(text string) FieldOption      { return internalmodel.Description(text) }
func GT(bound float64) FieldOption             { return internalmodel.GT(bound) }
func GE(bound float64) FieldOption             { return internalmodel.GE(bound) }
func LT(bound float64) FieldOption             { return internalmodel.LT(bound) }
func LE(bound float64) FieldOption             { return internalmodel.LE(bound) }
func MultipleOf(base float64) FieldOption      { return internalmodel.MultipleOf(base) }
func Pattern(expr string) FieldOption          { return internalmodel.Pattern(expr) }
func MinLength(n int) FieldOption              { return internalmodel.MinLength(n) }
func MaxLength(n int) FieldOption              { return internalmodel.MaxLength(n) }
func TZ(aware bool) FieldOption                { return internalmodel.TZ(aware) }

// FieldRule attaches a predicate over the field's value with an optional
// failure message; FieldCheck attaches a raising rule instead.

func FieldRule(predicate func(any) bool, message string) FieldOption {
	return internalmodel.FieldRule(predicate, message)
}

func FieldCheck(check func(any) error) FieldOption {
	return internalmodel.FieldCheck(check)
}

// Rule registrars. Rules fire in registration order after all field
// constraints pass: predicates report failure by returning false, checks by
// returning an error. The Bound variants scope the callback to a single
// field's value instead of the whole instance.

func Predicate(predicate func(*Instance) bool, message string) Item {
	return internalmodel.RuleItem(predicate, message)
}

func Check(check func(*Instance) error) Item {
	return internalmodel.CheckItem(check)
}

func BoundPredicate(field string, predicate func(any) bool, message string) Item {
	return internalmodel.BoundRuleItem(field, predicate, message)
}

func BoundCheck(field string, check func(any) error) Item {
	return internalmodel.BoundCheckItem(field, check)
}

// Model policies.

// AllowUnknown makes FromDict ignore undeclared keys instead of failing.
func AllowUnknown() Item { return internalmodel.AllowUnknown() }

// AggregateErrors collects every violation during construction into a single
// AggregateError instead of stopping at the first.
func AggregateErrors() Item { return internalmodel.AggregateErrors() }
