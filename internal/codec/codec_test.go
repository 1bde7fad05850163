package codec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-spectic/internal/codec"
	"github.com/goliatone/go-spectic/internal/model"
	"github.com/goliatone/go-spectic/pkg/secret"
)

func eventModel(t *testing.T) *model.ModelType {
	t.Helper()
	mt, err := model.New("Event",
		model.UUID("id"),
		model.String("kind", model.MinLength(1)),
		model.Time("at", model.TZ(false)),
		model.Int("seq", model.GE(0)),
		model.List("notes", model.FieldTypeString, model.Default([]any{})),
	)
	require.NoError(t, err)
	return mt
}

func sampleEvent(t *testing.T, mt *model.ModelType) *model.Instance {
	t.Helper()
	inst, err := mt.New(map[string]any{
		"id":    uuid.MustParse("8e296a06-7fd8-4d7d-bb62-f816442e0c4e"),
		"kind":  "deploy",
		"at":    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		"seq":   7,
		"notes": []string{"first", "second"},
	})
	require.NoError(t, err)
	return inst
}

func TestJSON_RoundTrip(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	data, err := codec.EncodeJSON(inst, "")
	require.NoError(t, err)

	back, err := codec.DecodeJSON(mt, data)
	require.NoError(t, err)
	assert.Equal(t, model.AsDict(inst), model.AsDict(back))
}

func TestJSON_FieldOrder(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	data, err := codec.EncodeJSON(inst, "")
	require.NoError(t, err)

	out := string(data)
	order := []string{`"id"`, `"kind"`, `"at"`, `"seq"`, `"notes"`}
	last := -1
	for _, key := range order {
		pos := strings.Index(out, key)
		require.Greaterf(t, pos, last, "key %s out of declaration order in %s", key, out)
		last = pos
	}
}

func TestJSON_Indent(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	data, err := codec.EncodeJSON(inst, "  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"id\""), "indented output: %s", data)

	back, err := codec.DecodeJSON(mt, data)
	require.NoError(t, err)
	assert.Equal(t, model.AsDict(inst), model.AsDict(back))
}

func TestJSON_WireScalars(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	data, err := codec.EncodeJSON(inst, "")
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"8e296a06-7fd8-4d7d-bb62-f816442e0c4e"`)
	assert.Contains(t, out, `"2026-08-30T12:00:00Z"`)
}

func TestJSON_SecretsObscured(t *testing.T) {
	mt, err := model.New("Credentials",
		model.String("user"),
		model.Secret("token"),
	)
	require.NoError(t, err)
	inst, err := mt.New(map[string]any{"user": "ada", "token": "hunter2"})
	require.NoError(t, err)

	data, err := codec.EncodeJSON(inst, "")
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, secret.Obscured)
}

func TestJSON_NestedInstances(t *testing.T) {
	address, err := model.New("Address",
		model.String("city"),
		model.String("zip"),
	)
	require.NoError(t, err)
	person, err := model.New("Person",
		model.String("name"),
		model.Nested("address", address),
	)
	require.NoError(t, err)

	addr, err := address.New(map[string]any{"city": "London", "zip": "12345"})
	require.NoError(t, err)
	inst, err := person.New(map[string]any{"name": "ada", "address": addr})
	require.NoError(t, err)

	data, err := codec.EncodeJSON(inst, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ada","address":{"city":"London","zip":"12345"}}`, string(data))

	back, err := codec.DecodeJSON(person, data)
	require.NoError(t, err)
	assert.Equal(t, model.AsDict(inst), model.AsDict(back))
}

func TestJSON_LargeIntPrecision(t *testing.T) {
	mt, err := model.New("Counter", model.Int("n"))
	require.NoError(t, err)

	// Above 2^53; a float64 decode path would corrupt it.
	inst, err := mt.New(map[string]any{"n": int64(9007199254740993)})
	require.NoError(t, err)

	data, err := codec.EncodeJSON(inst, "")
	require.NoError(t, err)

	back, err := codec.DecodeJSON(mt, data)
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), back.MustGet("n"))
}

func TestJSON_Malformed(t *testing.T) {
	mt := eventModel(t)

	_, err := codec.DecodeJSON(mt, []byte(`{"id": `))
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestJSON_DecodeValidates(t *testing.T) {
	mt := eventModel(t)

	_, err := codec.DecodeJSON(mt, []byte(`{"id":"8e296a06-7fd8-4d7d-bb62-f816442e0c4e","kind":"","at":"2026-08-30T12:00:00Z","seq":0}`))
	var cerr *model.ConstraintError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "kind", cerr.Field)
}

func TestYAML_RoundTrip(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	data, err := codec.EncodeYAML(inst)
	require.NoError(t, err)

	back, err := codec.DecodeYAML(mt, data)
	require.NoError(t, err)
	assert.Equal(t, model.AsDict(inst), model.AsDict(back))
}

func TestYAML_FieldOrder(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	data, err := codec.EncodeYAML(inst)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "id:"), "first line: %s", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "kind:"), "second line: %s", lines[1])
}

func TestYAML_BytesBinary(t *testing.T) {
	mt, err := model.New("Blob",
		model.String("name"),
		model.Bytes("payload"),
	)
	require.NoError(t, err)
	inst, err := mt.New(map[string]any{"name": "img", "payload": []byte{0x00, 0xff}})
	require.NoError(t, err)

	data, err := codec.EncodeYAML(inst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "!!binary")

	back, err := codec.DecodeYAML(mt, data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, back.MustGet("payload"))
	assert.Equal(t, model.AsDict(inst), model.AsDict(back))
}

func TestYAML_Malformed(t *testing.T) {
	mt := eventModel(t)

	_, err := codec.DecodeYAML(mt, []byte("kind: [unclosed"))
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestMsgpack_RoundTrip(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	data, err := codec.EncodeMsgpack(inst)
	require.NoError(t, err)

	back, err := codec.DecodeMsgpack(mt, data)
	require.NoError(t, err)
	assert.Equal(t, model.AsDict(inst), model.AsDict(back))
}

func TestMsgpack_BytesNative(t *testing.T) {
	mt, err := model.New("Blob",
		model.String("name"),
		model.Bytes("payload"),
	)
	require.NoError(t, err)
	inst, err := mt.New(map[string]any{"name": "img", "payload": []byte{0x00, 0x01, 0xff}})
	require.NoError(t, err)

	data, err := codec.EncodeMsgpack(inst)
	require.NoError(t, err)

	back, err := codec.DecodeMsgpack(mt, data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xff}, back.MustGet("payload"))
}

func TestMsgpack_Malformed(t *testing.T) {
	mt := eventModel(t)

	_, err := codec.DecodeMsgpack(mt, []byte{0xc1})
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestCrossFormat_Agreement(t *testing.T) {
	mt := eventModel(t)
	inst := sampleEvent(t, mt)

	jsonData, err := codec.EncodeJSON(inst, "")
	require.NoError(t, err)
	yamlData, err := codec.EncodeYAML(inst)
	require.NoError(t, err)
	packed, err := codec.EncodeMsgpack(inst)
	require.NoError(t, err)

	fromJSON, err := codec.DecodeJSON(mt, jsonData)
	require.NoError(t, err)
	fromYAML, err := codec.DecodeYAML(mt, yamlData)
	require.NoError(t, err)
	fromPack, err := codec.DecodeMsgpack(mt, packed)
	require.NoError(t, err)

	assert.Equal(t, model.AsDict(fromJSON), model.AsDict(fromYAML))
	assert.Equal(t, model.AsDict(fromJSON), model.AsDict(fromPack))
}
