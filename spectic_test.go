package spectic_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	spectic "github.com/goliatone/go-spectic"
	"github.com/goliatone/go-spectic/pkg/model"
	"github.com/goliatone/go-spectic/pkg/testsupport"
	"github.com/goliatone/go-spectic/pkg/types"
)

func orderModel(t *testing.T) (*spectic.ModelType, *spectic.ModelType) {
	t.Helper()
	line := spectic.MustNew("Line",
		types.NonEmptyStr("sku"),
		types.PositiveInt("quantity"),
		types.PositiveFloat("unit_price"),
	)
	order := spectic.MustNew("Order",
		model.UUID("id"),
		model.Time("placed_at", model.TZ(false)),
		model.ListOf("lines", line, model.MinLength(1)),
		types.NonNegativeFloat("shipping", model.Default(0.0)),
	)
	return order, line
}

func sampleOrder(t *testing.T) *spectic.Instance {
	t.Helper()
	order, line := orderModel(t)

	first, err := line.New(map[string]any{"sku": "A-100", "quantity": 2, "unit_price": 9.5})
	if err != nil {
		t.Fatalf("construct line: %v", err)
	}
	second, err := line.New(map[string]any{"sku": "B-200", "quantity": 1, "unit_price": 24.0})
	if err != nil {
		t.Fatalf("construct line: %v", err)
	}

	inst, err := order.New(map[string]any{
		"id":        uuid.MustParse("0d9b6a2e-4b64-4fd5-9d54-6a3d9cbb8d61"),
		"placed_at": time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
		"lines":     []any{first, second},
	})
	if err != nil {
		t.Fatalf("construct order: %v", err)
	}
	return inst
}

func TestFacade_JSONGolden(t *testing.T) {
	inst := sampleOrder(t)

	data, err := spectic.AsJSONIndent(inst, "  ")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	golden := "testdata/order.golden.json"
	if testsupport.WriteGolden(t, golden, data) {
		t.Logf("updated %s", golden)
	}
	want := testsupport.MustReadGolden(t, golden)
	if diff := testsupport.CompareGolden(string(want), string(data)); diff != "" {
		t.Fatalf("golden mismatch:\n%s", diff)
	}
}

func TestFacade_RoundTrips(t *testing.T) {
	order, _ := orderModel(t)
	inst := sampleOrder(t)
	want := spectic.AsDict(inst)

	jsonData, err := spectic.AsJSON(inst)
	if err != nil {
		t.Fatalf("json encode: %v", err)
	}
	fromJSON, err := spectic.FromJSON(order, jsonData)
	if err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if diff := testsupport.CompareGolden(want, spectic.AsDict(fromJSON)); diff != "" {
		t.Fatalf("json round trip:\n%s", diff)
	}

	yamlData, err := spectic.AsYAML(inst)
	if err != nil {
		t.Fatalf("yaml encode: %v", err)
	}
	fromYAML, err := spectic.FromYAML(order, yamlData)
	if err != nil {
		t.Fatalf("yaml decode: %v", err)
	}
	if diff := testsupport.CompareGolden(want, spectic.AsDict(fromYAML)); diff != "" {
		t.Fatalf("yaml round trip:\n%s", diff)
	}

	packed, err := spectic.AsMsgpack(inst)
	if err != nil {
		t.Fatalf("msgpack encode: %v", err)
	}
	fromPack, err := spectic.FromMsgpack(order, packed)
	if err != nil {
		t.Fatalf("msgpack decode: %v", err)
	}
	if diff := testsupport.CompareGolden(want, spectic.AsDict(fromPack)); diff != "" {
		t.Fatalf("msgpack round trip:\n%s", diff)
	}
}

func TestFacade_DictAndTuple(t *testing.T) {
	order, _ := orderModel(t)
	inst := sampleOrder(t)

	back, err := spectic.FromDict(order, spectic.AsDict(inst))
	if err != nil {
		t.Fatalf("dict round trip: %v", err)
	}
	if diff := testsupport.CompareGolden(spectic.AsDict(inst), spectic.AsDict(back)); diff != "" {
		t.Fatalf("dict round trip:\n%s", diff)
	}

	back, err = spectic.FromTuple(order, spectic.AsTuple(inst))
	if err != nil {
		t.Fatalf("tuple round trip: %v", err)
	}
	if diff := testsupport.CompareGolden(spectic.AsTuple(inst), spectic.AsTuple(back)); diff != "" {
		t.Fatalf("tuple round trip:\n%s", diff)
	}
}

func TestFacade_ReplaceRevalidates(t *testing.T) {
	inst := sampleOrder(t)

	if _, err := spectic.Replace(inst, map[string]any{"shipping": -1.0}); err == nil {
		t.Fatal("expected replacement to fail validation")
	}
	updated, err := spectic.Replace(inst, map[string]any{"shipping": 4.5})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if updated.MustGet("shipping") != 4.5 {
		t.Fatalf("shipping: got %v", updated.MustGet("shipping"))
	}
}
