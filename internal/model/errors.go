package model

import (
	"fmt"
	"strings"
)

// ConfigurationError reports an invalid model, field, or rule declaration.
// It is raised by New at build time, never during instance construction.
type ConfigurationError struct {
	Model  string
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("model %s: field %q: %s", e.Model, e.Field, e.Reason)
	}
	return fmt.Sprintf("model %s: %s", e.Model, e.Reason)
}

// MissingFieldError reports a required field absent from the constructor
// input with no default to fall back on.
type MissingFieldError struct {
	Model string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model %s: missing required field %q", e.Model, e.Field)
}

// TypeMismatchError reports a value whose type does not match the declared
// field type under strict construction, or a field name the model does not
// declare (Want is empty in that case).
type TypeMismatchError struct {
	Model string
	Field string
	Want  FieldType
	Got   any
}

func (e *TypeMismatchError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("model %s: unexpected field %q", e.Model, e.Field)
	}
	return fmt.Sprintf("model %s: field %q: expected %s, got %T", e.Model, e.Field, e.Want, e.Got)
}

// ConstraintError reports a field value that violates one of its declared
// constraints. Constraint holds the canonical constraint name (gt, pattern,
// minLength, ...).
type ConstraintError struct {
	Model      string
	Field      string
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("model %s: field %q: constraint %s violated: %s", e.Model, e.Field, e.Constraint, e.Detail)
}

// RuleError reports a failed field-bound or model-bound rule. Message carries
// the text declared with the rule; Cause carries the error raised by a check
// rule. Origin points at the declaration site when it could be captured.
type RuleError struct {
	Model   string
	Field   string
	Message string
	Origin  string
	Cause   error
}

func (e *RuleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s", e.Model)
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": rule")
	if e.Origin != "" {
		fmt.Fprintf(&b, " (%s)", e.Origin)
	}
	b.WriteString(" failed")
	switch {
	case e.Message != "":
		fmt.Fprintf(&b, ": %s", e.Message)
	case e.Cause != nil:
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *RuleError) Unwrap() error {
	return e.Cause
}

// ParseError reports a structural or type failure on one of the coercive
// entry points (FromDict, FromTuple, and the byte codecs).
type ParseError struct {
	Model  string
	Field  string
	Reason string
	Cause  error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse %s", e.Model)
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ArgumentError reports an invalid argument handed to a check-wrapped
// function. The wrapped function has not executed when this is returned.
type ArgumentError struct {
	Param string
	Cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q: %v", e.Param, e.Cause)
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

// AggregateError collects every violation found during construction when the
// model opted into aggregation via AggregateErrors.
type AggregateError struct {
	Model string
	Errs  []error
}

func (e *AggregateError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("model %s: %d validation errors: %s", e.Model, len(e.Errs), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errs
}
