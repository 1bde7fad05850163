package check_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-spectic/pkg/check"
	"github.com/goliatone/go-spectic/pkg/model"
	"github.com/goliatone/go-spectic/pkg/types"
)

func areaFn(args ...any) (any, error) {
	return args[0].(int64) * args[1].(int64), nil
}

func TestCall_Valid(t *testing.T) {
	area, err := check.Wrap(areaFn,
		check.Param(types.PositiveInt("width")),
		check.Param(types.PositiveInt("height")),
	)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}

	got, err := area.Call(5, 10)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got != int64(50) {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestCall_InvalidArgument(t *testing.T) {
	area := check.MustWrap(areaFn,
		check.Param(types.PositiveInt("width")),
		check.Param(types.PositiveInt("height")),
	)

	_, err := area.Call(5, -10)
	var aerr *model.ArgumentError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if aerr.Param != "height" {
		t.Fatalf("expected error on height, got %q", aerr.Param)
	}
	var cerr *model.ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected wrapped ConstraintError, got %v", err)
	}
}

func TestCall_FunctionNeverRunsOnFailure(t *testing.T) {
	ran := false
	wrapped := check.MustWrap(func(args ...any) (any, error) {
		ran = true
		return nil, nil
	}, check.Param(types.PositiveInt("n")))

	if _, err := wrapped.Call(0); err == nil {
		t.Fatal("expected validation failure")
	}
	if ran {
		t.Fatal("wrapped function ran despite invalid argument")
	}
}

func TestCall_Arity(t *testing.T) {
	area := check.MustWrap(areaFn,
		check.Param(types.PositiveInt("width")),
		check.Param(types.PositiveInt("height")),
	)

	_, err := area.Call(5)
	var aerr *model.ArgumentError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if aerr.Param != "" {
		t.Fatalf("arity errors carry no parameter name, got %q", aerr.Param)
	}
}

func TestCall_StrictByDefault(t *testing.T) {
	area := check.MustWrap(areaFn,
		check.Param(types.PositiveInt("width")),
		check.Param(types.PositiveInt("height")),
	)

	_, err := area.Call("5", "10")
	var aerr *model.ArgumentError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected ArgumentError for string args, got %v", err)
	}
}

func TestCall_Coerce(t *testing.T) {
	area := check.MustWrap(areaFn,
		check.Param(types.PositiveInt("width")),
		check.Param(types.PositiveInt("height")),
		check.Coerce(),
	)

	got, err := area.Call("5", "10")
	if err != nil {
		t.Fatalf("coerced call: %v", err)
	}
	if got != int64(50) {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestCall_ModelParam(t *testing.T) {
	user := model.MustNew("User",
		types.NonEmptyStr("name"),
		types.NonNegativeInt("age"),
	)
	greet := check.MustWrap(func(args ...any) (any, error) {
		return "hello " + args[0].(*model.Instance).MustGet("name").(string), nil
	}, check.ModelParam("user", user))

	inst, err := user.New(map[string]any{"name": "ada", "age": 36})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	got, err := greet.Call(inst)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got != "hello ada" {
		t.Fatalf("got %v", got)
	}

	// Strict mode rejects a raw map.
	_, err = greet.Call(map[string]any{"name": "ada", "age": 36})
	var aerr *model.ArgumentError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected ArgumentError for map, got %v", err)
	}

	// An instance of a different model is rejected even with matching shape.
	other := model.MustNew("Visitor",
		types.NonEmptyStr("name"),
		types.NonNegativeInt("age"),
	)
	visitor, err := other.New(map[string]any{"name": "bob", "age": 20})
	if err != nil {
		t.Fatalf("construct visitor: %v", err)
	}
	if _, err := greet.Call(visitor); !errors.As(err, &aerr) {
		t.Fatalf("expected ArgumentError for foreign model, got %v", err)
	}
}

func TestCall_ModelParamCoerce(t *testing.T) {
	user := model.MustNew("User",
		types.NonEmptyStr("name"),
		types.NonNegativeInt("age"),
	)
	greet := check.MustWrap(func(args ...any) (any, error) {
		return args[0].(*model.Instance).MustGet("age"), nil
	}, check.ModelParam("user", user), check.Coerce())

	got, err := greet.Call(map[string]any{"name": "ada", "age": 36})
	if err != nil {
		t.Fatalf("coerced model call: %v", err)
	}
	if got != int64(36) {
		t.Fatalf("got %v", got)
	}

	// Validation still applies to the converted map.
	_, err = greet.Call(map[string]any{"name": "", "age": 36})
	var aerr *model.ArgumentError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
}

func TestWrap_BadParamSpec(t *testing.T) {
	_, err := check.Wrap(areaFn, check.Param(model.Int("n", model.Pattern("x"))))
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestWrap_NilFunction(t *testing.T) {
	_, err := check.Wrap(nil, check.Param(types.PositiveInt("n")))
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
