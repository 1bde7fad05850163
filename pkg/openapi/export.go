// Package openapi renders built model types as OpenAPI 3 schemas, so the
// same declaration that validates instances can document them. The mapping
// follows the usual conventions: numeric bounds become minimum/maximum with
// exclusivity flags, length bounds become minLength/maxLength (minItems and
// maxItems for lists), patterns carry over verbatim, and fields without a
// default are listed as required.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-spectic/pkg/model"
)

// SchemaFromModel converts a built model type into an OpenAPI object schema.
// Nested models expand recursively into nested object schemas.
func SchemaFromModel(mt *model.ModelType) *openapi3.Schema {
	schema := &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Title:      mt.Name(),
		Properties: make(openapi3.Schemas),
	}

	for _, field := range mt.Fields() {
		schema.Properties[field.Name] = openapi3.NewSchemaRef("", schemaFromField(&field))
		if field.Required() {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

func schemaFromField(field *model.FieldSpec) *openapi3.Schema {
	schema := &openapi3.Schema{Description: field.Description}

	switch field.Type {
	case model.FieldTypeString:
		schema.Type = &openapi3.Types{openapi3.TypeString}
	case model.FieldTypeInt:
		schema.Type = &openapi3.Types{openapi3.TypeInteger}
		schema.Format = "int64"
	case model.FieldTypeFloat:
		schema.Type = &openapi3.Types{openapi3.TypeNumber}
		schema.Format = "double"
	case model.FieldTypeBool:
		schema.Type = &openapi3.Types{openapi3.TypeBoolean}
	case model.FieldTypeBytes:
		schema.Type = &openapi3.Types{openapi3.TypeString}
		schema.Format = "byte"
	case model.FieldTypeTime:
		schema.Type = &openapi3.Types{openapi3.TypeString}
		schema.Format = "date-time"
	case model.FieldTypeUUID:
		schema.Type = &openapi3.Types{openapi3.TypeString}
		schema.Format = "uuid"
	case model.FieldTypeSecret:
		schema.Type = &openapi3.Types{openapi3.TypeString}
		schema.Format = "password"
	case model.FieldTypeModel:
		nested := SchemaFromModel(field.Model)
		nested.Description = field.Description
		return nested
	case model.FieldTypeList:
		schema.Type = &openapi3.Types{openapi3.TypeArray}
		schema.Items = openapi3.NewSchemaRef("", schemaFromField(field.Elem))
	}

	applyConstraints(schema, field)
	applyDefault(schema, field)
	return schema
}

func applyConstraints(schema *openapi3.Schema, field *model.FieldSpec) {
	c := field.Constraints

	// A field may carry both an exclusive and an inclusive bound on the same
	// side; export whichever is tighter. x > gt subsumes x >= ge when
	// ge <= gt, and x >= ge subsumes x > gt when ge > gt.
	switch {
	case c.GT != nil && (c.GE == nil || *c.GE <= *c.GT):
		schema.Min = c.GT
		schema.ExclusiveMin = true
	case c.GE != nil:
		schema.Min = c.GE
	}
	switch {
	case c.LT != nil && (c.LE == nil || *c.LE >= *c.LT):
		schema.Max = c.LT
		schema.ExclusiveMax = true
	case c.LE != nil:
		schema.Max = c.LE
	}
	if c.MultipleOf != nil {
		schema.MultipleOf = c.MultipleOf
	}
	if c.Pattern != "" {
		schema.Pattern = c.Pattern
	}

	lengthy := field.Type == model.FieldTypeBytes || field.Type == model.FieldTypeList
	if c.MinLength != nil {
		if lengthy {
			schema.MinItems = uint64(*c.MinLength)
		} else {
			schema.MinLength = uint64(*c.MinLength)
		}
	}
	if c.MaxLength != nil {
		bound := uint64(*c.MaxLength)
		if lengthy {
			schema.MaxItems = &bound
		} else {
			schema.MaxLength = &bound
		}
	}
}

func applyDefault(schema *openapi3.Schema, field *model.FieldSpec) {
	if !field.HasDefault || field.Default == nil {
		return
	}
	switch field.Type {
	case model.FieldTypeString, model.FieldTypeInt, model.FieldTypeFloat, model.FieldTypeBool:
		schema.Default = field.Default
	}
}
