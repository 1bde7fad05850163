package codec

import (
	"encoding/base64"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-spectic/internal/model"
)

const yamlBinaryTag = "!!binary"

// EncodeYAML serializes an instance to YAML with fields in declaration
// order. Ordering is preserved by building the node tree by hand; a plain
// map marshal would sort keys.
func EncodeYAML(in *model.Instance) ([]byte, error) {
	node, err := yamlInstanceNode(in)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, &model.ParseError{Model: in.Model().Name(), Reason: "encode yaml", Cause: err}
	}
	return out, nil
}

func yamlInstanceNode(in *model.Instance) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, spec := range in.Model().Fields() {
		key := &yaml.Node{}
		key.SetString(spec.Name)
		v, _ := in.Get(spec.Name)
		value, err := yamlValueNode(in.Model().Name(), spec.Name, v)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

func yamlValueNode(modelName, field string, v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *model.Instance:
		return yamlInstanceNode(val)
	case []byte:
		// node.Encode would render a byte slice as a sequence of integers;
		// emit the binary scalar form instead.
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   yamlBinaryTag,
			Value: base64.StdEncoding.EncodeToString(val),
		}, nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, elem := range val {
			node, err := yamlValueNode(modelName, field, elem)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, node)
		}
		return seq, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(wireScalar(v)); err != nil {
			return nil, &model.ParseError{Model: modelName, Field: field, Reason: "encode value", Cause: err}
		}
		return node, nil
	}
}

// DecodeYAML parses YAML bytes and builds an instance through the coercive
// FromDict path. Decoding walks the node tree rather than unmarshalling into
// a plain map so binary scalars surface as byte slices instead of raw-byte
// strings.
func DecodeYAML(mt *model.ModelType, data []byte) (*model.Instance, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &model.ParseError{Model: mt.Name(), Reason: "invalid yaml", Cause: err}
	}
	raw, err := yamlNodeValue(mt.Name(), &root)
	if err != nil {
		return nil, err
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, &model.ParseError{Model: mt.Name(), Reason: "yaml document is not a mapping"}
	}
	return mt.FromDict(fields)
}

func yamlNodeValue(modelName string, n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, &model.ParseError{Model: modelName, Reason: "empty yaml document"}
		}
		return yamlNodeValue(modelName, n.Content[0])
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, &model.ParseError{Model: modelName, Reason: "decode key", Cause: err}
			}
			v, err := yamlNodeValue(modelName, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, elem := range n.Content {
			v, err := yamlNodeValue(modelName, elem)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.AliasNode:
		return yamlNodeValue(modelName, n.Alias)
	default:
		if n.Tag == yamlBinaryTag {
			// yaml.v3 cannot decode !!binary directly into []byte; decoding
			// into string yields the base64-decoded payload.
			var s string
			if err := n.Decode(&s); err != nil {
				return nil, &model.ParseError{Model: modelName, Reason: "decode binary scalar", Cause: err}
			}
			return []byte(s), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, &model.ParseError{Model: modelName, Reason: "decode scalar", Cause: err}
		}
		return v, nil
	}
}
