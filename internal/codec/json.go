package codec

import (
	"bytes"
	"encoding/json"

	"github.com/goliatone/go-spectic/internal/model"
)

// EncodeJSON serializes an instance to JSON with fields in declaration
// order. A non-empty indent re-indents the output, mirroring
// json.MarshalIndent.
func EncodeJSON(in *model.Instance, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONInstance(&buf, in); err != nil {
		return nil, err
	}
	if indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, &model.ParseError{Model: in.Model().Name(), Reason: "indent json", Cause: err}
	}
	return out.Bytes(), nil
}

func writeJSONInstance(buf *bytes.Buffer, in *model.Instance) error {
	buf.WriteByte('{')
	for i, spec := range in.Model().Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(spec.Name)
		if err != nil {
			return &model.ParseError{Model: in.Model().Name(), Field: spec.Name, Reason: "encode key", Cause: err}
		}
		buf.Write(key)
		buf.WriteByte(':')
		v, _ := in.Get(spec.Name)
		if err := writeJSONValue(buf, in.Model().Name(), spec.Name, v); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, modelName, field string, v any) error {
	switch val := v.(type) {
	case *model.Instance:
		return writeJSONInstance(buf, val)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, modelName, field, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		encoded, err := json.Marshal(wireScalar(v))
		if err != nil {
			return &model.ParseError{Model: modelName, Field: field, Reason: "encode value", Cause: err}
		}
		buf.Write(encoded)
		return nil
	}
}

// DecodeJSON parses JSON bytes and builds an instance through the coercive
// FromDict path. Numbers decode as json.Number so integer precision
// survives the trip.
func DecodeJSON(mt *model.ModelType, data []byte) (*model.Instance, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &model.ParseError{Model: mt.Name(), Reason: "invalid json", Cause: err}
	}
	return mt.FromDict(raw)
}
