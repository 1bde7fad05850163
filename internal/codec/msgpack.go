package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/goliatone/go-spectic/internal/model"
)

// EncodeMsgpack serializes an instance to the Msgpack map format with fields
// in declaration order.
func EncodeMsgpack(in *model.Instance) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeMsgpackInstance(enc, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMsgpackInstance(enc *msgpack.Encoder, in *model.Instance) error {
	fields := in.Model().Fields()
	if err := enc.EncodeMapLen(len(fields)); err != nil {
		return &model.ParseError{Model: in.Model().Name(), Reason: "encode map header", Cause: err}
	}
	for _, spec := range fields {
		if err := enc.EncodeString(spec.Name); err != nil {
			return &model.ParseError{Model: in.Model().Name(), Field: spec.Name, Reason: "encode key", Cause: err}
		}
		v, _ := in.Get(spec.Name)
		if err := encodeMsgpackValue(enc, in.Model().Name(), spec.Name, v); err != nil {
			return err
		}
	}
	return nil
}

func encodeMsgpackValue(enc *msgpack.Encoder, modelName, field string, v any) error {
	switch val := v.(type) {
	case *model.Instance:
		return encodeMsgpackInstance(enc, val)
	case []any:
		if err := enc.EncodeArrayLen(len(val)); err != nil {
			return &model.ParseError{Model: modelName, Field: field, Reason: "encode array header", Cause: err}
		}
		for _, elem := range val {
			if err := encodeMsgpackValue(enc, modelName, field, elem); err != nil {
				return err
			}
		}
		return nil
	default:
		if err := enc.Encode(wireScalar(v)); err != nil {
			return &model.ParseError{Model: modelName, Field: field, Reason: "encode value", Cause: err}
		}
		return nil
	}
}

// DecodeMsgpack parses Msgpack bytes and builds an instance through the
// coercive FromDict path.
func DecodeMsgpack(mt *model.ModelType, data []byte) (*model.Instance, error) {
	var raw map[string]any
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, &model.ParseError{Model: mt.Name(), Reason: "invalid msgpack", Cause: err}
	}
	return mt.FromDict(raw)
}
