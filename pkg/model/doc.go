// Package model is the public surface of the modeling engine. Model types
// are declared at runtime from ordered field descriptors plus rules:
//
//	user := model.MustNew("User",
//		model.String("name", model.MinLength(1)),
//		model.Int("age", model.GE(0)),
//	)
//
//	bob, err := user.New(map[string]any{"name": "bob", "age": 5})
//
// The constructor is strict: values must already carry the declared types,
// and every constraint and rule passes before an instance exists. FromDict
// and the codec entry points form the coercive path that converts raw
// mappings (and, for Coerce-marked fields, raw scalars) before handing off
// to the same strict constructor.
//
// Implementations live in internal/model; this package re-exports the types
// and constructors so external callers never import internal paths.
package model
