package model

import (
	"fmt"
	"math"
	"reflect"
	"time"
	"unicode/utf8"
)

// multipleOfEpsilon absorbs float representation noise when checking
// MultipleOf against floating point values.
const multipleOfEpsilon = 1e-9

// validate runs the full post-assignment pass: per-field constraints in
// declaration order, then field-bound rules, then model-bound rules in
// registration order. Fail-fast by default; with AggregateErrors every
// violation is collected into a single AggregateError.
func (m *ModelType) validate(inst *Instance) error {
	var errs []error
	fail := func(err error) error {
		if !m.aggregate {
			return err
		}
		errs = append(errs, err)
		return nil
	}

	for i := range m.fields {
		spec := &m.fields[i]
		if err := checkConstraints(m.name, spec, inst.values[i]); err != nil {
			if stop := fail(err); stop != nil {
				return stop
			}
		}
	}

	for i := range m.fields {
		spec := &m.fields[i]
		if spec.Rule == nil {
			continue
		}
		if err := spec.Rule.run(inst); err != nil {
			if stop := fail(err); stop != nil {
				return stop
			}
		}
	}

	for i := range m.rules {
		if err := m.rules[i].run(inst); err != nil {
			if stop := fail(err); stop != nil {
				return stop
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Model: m.name, Errs: errs}
	}
	return nil
}

// checkConstraints evaluates the field's constraint set against an assigned
// value. Values reach here already normalized by checkStrict.
func checkConstraints(model string, spec *FieldSpec, v any) error {
	c := &spec.Constraints
	if c.empty() {
		return nil
	}

	violation := func(constraint, detail string) error {
		return &ConstraintError{Model: model, Field: spec.Name, Constraint: constraint, Detail: detail}
	}

	if c.numeric() {
		n := asFloat(v)
		if c.GT != nil && !(n > *c.GT) {
			return violation(ConstraintGT, fmt.Sprintf("%v is not > %v", v, *c.GT))
		}
		if c.GE != nil && !(n >= *c.GE) {
			return violation(ConstraintGE, fmt.Sprintf("%v is not >= %v", v, *c.GE))
		}
		if c.LT != nil && !(n < *c.LT) {
			return violation(ConstraintLT, fmt.Sprintf("%v is not < %v", v, *c.LT))
		}
		if c.LE != nil && !(n <= *c.LE) {
			return violation(ConstraintLE, fmt.Sprintf("%v is not <= %v", v, *c.LE))
		}
		if c.MultipleOf != nil && !isMultipleOf(n, *c.MultipleOf) {
			return violation(ConstraintMultipleOf, fmt.Sprintf("%v is not a multiple of %v", v, *c.MultipleOf))
		}
	}

	if c.lengths() {
		length := valueLength(v)
		if c.MinLength != nil && length < *c.MinLength {
			return violation(ConstraintMinLength, fmt.Sprintf("length %d is below minimum %d", length, *c.MinLength))
		}
		if c.MaxLength != nil && length > *c.MaxLength {
			return violation(ConstraintMaxLength, fmt.Sprintf("length %d exceeds maximum %d", length, *c.MaxLength))
		}
	}

	if c.compiled != nil {
		s, _ := v.(string)
		if !c.compiled.MatchString(s) {
			return violation(ConstraintPattern, fmt.Sprintf("%q does not match %s", s, c.Pattern))
		}
	}

	if c.TZ != nil {
		t, _ := v.(time.Time)
		if *c.TZ {
			if t.Location() == time.Local {
				return violation(ConstraintTZ, "time must carry an explicitly assigned zone")
			}
		} else if t.Location() != time.UTC {
			return violation(ConstraintTZ, "time must be in UTC")
		}
	}

	return nil
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return math.NaN()
}

func isMultipleOf(n, base float64) bool {
	if base == 0 {
		return false
	}
	ratio := n / base
	return math.Abs(ratio-math.Round(ratio)) < multipleOfEpsilon
}

// valueLength measures strings in runes and everything slice-shaped in
// elements.
func valueLength(v any) int {
	switch s := v.(type) {
	case string:
		return utf8.RuneCountInString(s)
	case []byte:
		return len(s)
	case []any:
		return len(s)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		return rv.Len()
	}
	return 0
}
