package model

import (
	"fmt"
	"regexp"
)

// New builds a frozen ModelType from the declared items. Field order follows
// declaration order and is significant: positional construction, tuple
// conversion, and serialization all preserve it.
//
// The build step validates the whole declaration eagerly so misconfiguration
// surfaces here rather than at instance-construction time: duplicate or empty
// field names, conflicting defaults, constraints that do not apply to the
// field's type, patterns that do not compile, defaults of the wrong type, and
// rules bound to undeclared fields all return a ConfigurationError.
func New(name string, items ...Item) (*ModelType, error) {
	if name == "" {
		return nil, &ConfigurationError{Model: name, Reason: "model name is required"}
	}

	m := &ModelType{
		name:  name,
		index: make(map[string]int),
	}

	for _, item := range items {
		switch it := item.(type) {
		case fieldItem:
			spec := it.spec
			if spec.Name == "" {
				return nil, &ConfigurationError{Model: name, Reason: "field name is required"}
			}
			if _, dup := m.index[spec.Name]; dup {
				return nil, &ConfigurationError{Model: name, Field: spec.Name, Reason: "duplicate field"}
			}
			if err := finalizeField(name, &spec); err != nil {
				return nil, err
			}
			m.index[spec.Name] = len(m.fields)
			m.fields = append(m.fields, spec)
		case ruleItem:
			m.rules = append(m.rules, it.rule)
		case policyItem:
			it.apply(m)
		default:
			return nil, &ConfigurationError{Model: name, Reason: fmt.Sprintf("unsupported item %T", item)}
		}
	}

	for i := range m.rules {
		rule := &m.rules[i]
		if err := rule.valid(); err != nil {
			return nil, &ConfigurationError{Model: name, Reason: err.Error()}
		}
		if rule.Bind != "" {
			if _, ok := m.index[rule.Bind]; !ok {
				return nil, &ConfigurationError{
					Model:  name,
					Field:  rule.Bind,
					Reason: "rule bound to undeclared field",
				}
			}
		}
	}

	return m, nil
}

// MustNew is New for package-level model declarations; it panics on a
// ConfigurationError.
func MustNew(name string, items ...Item) *ModelType {
	m, err := New(name, items...)
	if err != nil {
		panic(err)
	}
	return m
}

// finalizeField validates a single field declaration and compiles what can be
// precompiled.
func finalizeField(model string, spec *FieldSpec) error {
	if spec.HasDefault && spec.DefaultFactory != nil {
		return &ConfigurationError{
			Model:  model,
			Field:  spec.Name,
			Reason: "default and default factory are mutually exclusive",
		}
	}

	if spec.Type == FieldTypeModel && spec.Model == nil {
		return &ConfigurationError{Model: model, Field: spec.Name, Reason: "nested field requires a model type"}
	}
	if spec.Type == FieldTypeList && spec.Elem == nil {
		return &ConfigurationError{Model: model, Field: spec.Name, Reason: "list field requires an element type"}
	}
	if spec.Type == FieldTypeList && spec.Elem.Type == FieldTypeList {
		return &ConfigurationError{Model: model, Field: spec.Name, Reason: "nested list elements are not supported"}
	}

	if err := checkConstraintSet(model, spec); err != nil {
		return err
	}

	if spec.Constraints.Pattern != "" {
		compiled, err := regexp.Compile(spec.Constraints.Pattern)
		if err != nil {
			return &ConfigurationError{
				Model:  model,
				Field:  spec.Name,
				Reason: fmt.Sprintf("invalid pattern %q: %v", spec.Constraints.Pattern, err),
			}
		}
		spec.Constraints.compiled = compiled
	}

	if spec.Rule != nil {
		spec.Rule.Bind = spec.Name
		if err := spec.Rule.valid(); err != nil {
			return &ConfigurationError{Model: model, Field: spec.Name, Reason: err.Error()}
		}
	}

	// A static default of the wrong type would otherwise fail on every
	// construction that relies on it; reject it here instead. Factory
	// results remain checked per construction.
	if spec.HasDefault && spec.Default != nil {
		normalized, err := checkStrict(model, spec, spec.Default)
		if err != nil {
			return &ConfigurationError{
				Model:  model,
				Field:  spec.Name,
				Reason: fmt.Sprintf("default value does not match field type: %v", err),
			}
		}
		spec.Default = normalized
	}

	return nil
}

// checkConstraintSet rejects constraints that do not apply to the field's
// declared type.
func checkConstraintSet(model string, spec *FieldSpec) error {
	c := &spec.Constraints
	if c.empty() {
		return nil
	}

	reject := func(reason string) error {
		return &ConfigurationError{Model: model, Field: spec.Name, Reason: reason}
	}

	switch spec.Type {
	case FieldTypeInt, FieldTypeFloat:
		if c.textual() {
			return reject(fmt.Sprintf("pattern and length constraints do not apply to %s fields", spec.Type))
		}
		if c.TZ != nil {
			return reject("tz constraint applies only to time fields")
		}
	case FieldTypeString:
		if c.numeric() {
			return reject("numeric bounds do not apply to string fields")
		}
		if c.TZ != nil {
			return reject("tz constraint applies only to time fields")
		}
	case FieldTypeBytes, FieldTypeList:
		if c.numeric() {
			return reject(fmt.Sprintf("numeric bounds do not apply to %s fields", spec.Type))
		}
		if c.Pattern != "" {
			return reject(fmt.Sprintf("pattern does not apply to %s fields", spec.Type))
		}
		if c.TZ != nil {
			return reject("tz constraint applies only to time fields")
		}
	case FieldTypeTime:
		if c.numeric() || c.textual() {
			return reject("time fields accept only the tz constraint")
		}
	default:
		return reject(fmt.Sprintf("%s fields accept no constraints", spec.Type))
	}
	return nil
}
