package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Fields.
// Field order follows the document. The `default` key is read from the node
// directly so that `default: null` stays distinguishable from no default.
func (fs *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of fields, got %v", node.Line, node.Kind)
	}

	out := make(Fields, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], resolveAlias(node.Content[i+1])

		if val.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: field %q: expected mapping, got %v", val.Line, key.Value, val.Kind)
		}

		var fd FieldDef
		if err := val.Decode(&fd); err != nil {
			return fmt.Errorf("field %q: %w", key.Value, err)
		}

		fd.Name = key.Value

		def, err := decodeDefault(val)
		if err != nil {
			return fmt.Errorf("field %q: %w", key.Value, err)
		}

		fd.Default = def
		out = append(out, &fd)
	}

	*fs = out

	return nil
}

func decodeDefault(field *yaml.Node) (DefaultValue, error) {
	for i := 0; i+1 < len(field.Content); i += 2 {
		if field.Content[i].Value != "default" {
			continue
		}

		var v any
		if err := resolveAlias(field.Content[i+1]).Decode(&v); err != nil {
			return DefaultValue{}, fmt.Errorf("invalid default: %w", err)
		}

		return DefaultValue{Set: true, Value: normalize(v)}, nil
	}

	return DefaultValue{}, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

// normalize turns YAML integers into float64 so defaults compare like JSON numbers.
func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalize(t[i])
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}

		return out
	default:
		return v
	}
}
