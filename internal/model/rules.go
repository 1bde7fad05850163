package model

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Rule is a cross-field or whole-instance validation check. Exactly one of
// the predicate and check callbacks is set: a predicate reports failure by
// returning false and carries a human-readable message, while a check reports
// failure by returning a non-nil error.
//
// The callback receives the whole *Instance, or the bound field's value when
// Bind names a field. Rules are immutable after registration and fire in
// registration order.
type Rule struct {
	Bind    string
	Message string
	Origin  string

	predicate func(any) bool
	check     func(any) error
}

// NewRule builds a predicate rule over the whole instance.
func NewRule(predicate func(*Instance) bool, message string) Rule {
	return Rule{
		Message: message,
		Origin:  callerOrigin(),
		predicate: func(v any) bool {
			return predicate(v.(*Instance))
		},
	}
}

// NewCheckRule builds a raising rule over the whole instance. The callback
// performs its own checks and signals failure by returning an error, which
// surfaces wrapped in a RuleError.
func NewCheckRule(check func(*Instance) error) Rule {
	return Rule{
		Origin: callerOrigin(),
		check: func(v any) error {
			return check(v.(*Instance))
		},
	}
}

// NewBoundRule builds a predicate rule over a single field's value.
func NewBoundRule(field string, predicate func(any) bool, message string) Rule {
	return Rule{
		Bind:      field,
		Message:   message,
		Origin:    callerOrigin(),
		predicate: predicate,
	}
}

// NewBoundCheckRule builds a raising rule over a single field's value.
func NewBoundCheckRule(field string, check func(any) error) Rule {
	return Rule{
		Bind:   field,
		Origin: callerOrigin(),
		check:  check,
	}
}

func (r *Rule) valid() error {
	if (r.predicate == nil) == (r.check == nil) {
		return fmt.Errorf("rule requires exactly one of predicate and check")
	}
	return nil
}

// run evaluates the rule against the instance, resolving the bound field
// value first when the rule is field-scoped.
func (r *Rule) run(inst *Instance) error {
	var subject any = inst
	if r.Bind != "" {
		v, ok := inst.Get(r.Bind)
		if !ok {
			// Bindings are checked at build time; this cannot happen for a
			// rule attached to a frozen model.
			return &RuleError{
				Model:  inst.model.name,
				Field:  r.Bind,
				Origin: r.Origin,
				Cause:  fmt.Errorf("bound field not present"),
			}
		}
		subject = v
	}

	if r.check != nil {
		if err := r.check(subject); err != nil {
			return &RuleError{
				Model:  inst.model.name,
				Field:  r.Bind,
				Origin: r.Origin,
				Cause:  err,
			}
		}
		return nil
	}

	if !r.predicate(subject) {
		return &RuleError{
			Model:   inst.model.name,
			Field:   r.Bind,
			Origin:  r.Origin,
			Message: r.Message,
		}
	}
	return nil
}

// callerOrigin records the declaration site of a rule for diagnostics,
// skipping frames inside this module's own model packages so facade wrappers
// report the caller, not the wrapper.
func callerOrigin() string {
	for skip := 1; skip < 8; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if strings.Contains(file, "go-spectic/internal/model") ||
			strings.Contains(file, "go-spectic/pkg/model") ||
			strings.HasSuffix(filepath.Dir(file), "go-spectic") {
			continue
		}
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return ""
}
