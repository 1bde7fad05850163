// Package check validates function arguments against declared parameter
// specs before the wrapped function runs. A failed argument returns an
// ArgumentError naming the parameter, and the function never executes, so
// no partial side effects leak.
//
//	area, err := check.Wrap(
//		func(args ...any) (any, error) {
//			return args[0].(int64) * args[1].(int64), nil
//		},
//		check.Param(types.PositiveInt("width")),
//		check.Param(types.PositiveInt("height")),
//	)
//	result, err := area.Call(5, 10)
//
// In Coerce mode arguments additionally pass through the same scalar and
// nested-map coercion as the parse path, so Call("5", "10") works for the
// wrapper above.
package check

import (
	"fmt"

	"github.com/goliatone/go-spectic/pkg/model"
)

// Func is the shape of a wrapped callable.
type Func func(args ...any) (any, error)

type paramKind int

const (
	paramField paramKind = iota
	paramModel
)

type paramSpec struct {
	kind  paramKind
	name  string
	field model.FieldSpec
	mt    *model.ModelType
}

// Option configures Wrap.
type Option interface {
	applyWrap(*Wrapped) error
}

type paramOption struct {
	spec paramSpec
	err  error
}

func (o paramOption) applyWrap(w *Wrapped) error {
	if o.err != nil {
		return o.err
	}
	w.params = append(w.params, o.spec)
	return nil
}

type coerceOption struct{}

func (coerceOption) applyWrap(w *Wrapped) error {
	w.coerce = true
	return nil
}

// Param declares the next positional parameter from a field item, reusing
// the item's name, constraints, and bound rule.
func Param(item model.Item) Option {
	spec, err := model.SpecOf(item)
	if err != nil {
		return paramOption{err: err}
	}
	return paramOption{spec: paramSpec{kind: paramField, name: spec.Name, field: spec}}
}

// ModelParam declares the next positional parameter as an instance of mt.
// Strict by default; with Coerce a raw map converts through FromDict first.
func ModelParam(name string, mt *model.ModelType) Option {
	return paramOption{spec: paramSpec{kind: paramModel, name: name, mt: mt}}
}

// Coerce enables argument coercion for every declared parameter.
func Coerce() Option {
	return coerceOption{}
}

// Wrapped is a callable with validated parameters.
type Wrapped struct {
	fn     Func
	params []paramSpec
	coerce bool
}

// Wrap builds a Wrapped callable. Declaration problems in the parameter
// specs surface here as ConfigurationError, mirroring model build time.
func Wrap(fn Func, opts ...Option) (*Wrapped, error) {
	if fn == nil {
		return nil, &model.ConfigurationError{Model: "<check>", Reason: "wrapped function is required"}
	}
	w := &Wrapped{fn: fn}
	for _, opt := range opts {
		if err := opt.applyWrap(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// MustWrap is Wrap for package-level declarations; it panics on error.
func MustWrap(fn Func, opts ...Option) *Wrapped {
	w, err := Wrap(fn, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Call validates every argument against its parameter spec and then invokes
// the wrapped function with the canonical typed values.
func (w *Wrapped) Call(args ...any) (any, error) {
	if len(args) != len(w.params) {
		return nil, &model.ArgumentError{
			Param: "",
			Cause: fmt.Errorf("expected %d arguments, got %d", len(w.params), len(args)),
		}
	}

	validated := make([]any, len(args))
	for i, arg := range args {
		param := w.params[i]
		typed, err := w.validateArg(param, arg)
		if err != nil {
			return nil, &model.ArgumentError{Param: param.name, Cause: err}
		}
		validated[i] = typed
	}

	return w.fn(validated...)
}

func (w *Wrapped) validateArg(param paramSpec, arg any) (any, error) {
	switch param.kind {
	case paramModel:
		if inst, ok := arg.(*model.Instance); ok {
			if inst.Model() != param.mt {
				return nil, fmt.Errorf("expected instance of %s, got %s", param.mt.Name(), inst.Model().Name())
			}
			return inst, nil
		}
		if w.coerce {
			if data, ok := arg.(map[string]any); ok {
				return param.mt.FromDict(data)
			}
		}
		return nil, fmt.Errorf("expected instance of %s, got %T", param.mt.Name(), arg)
	default:
		return model.ValidateValue(param.field, arg, w.coerce)
	}
}
