package expression

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes e as a mapping in field order, one sequence per field.
func (e Expression) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range e.Keys() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, token := range e[f] {
			seq.Content = append(seq.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: token,
				Style: yaml.DoubleQuotedStyle,
			})
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(f)},
			seq,
		)
	}
	return node, nil
}

// UnmarshalYAML accepts either the canonical string form
//
//	schedule: "0 0 * * MON,WED"
//
// or a mapping whose values are a sequence of tokens or a comma separated scalar.
// No content validation happens here.
func (e *Expression) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := Split(node.Value)
		if err != nil {
			return err
		}
		*e = parsed
		return nil

	case yaml.MappingNode:
		parsed := make(Expression, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			tokens, err := decodeTokens(val)
			if err != nil {
				return fmt.Errorf("field %q: %w", key.Value, err)
			}
			parsed[Field(key.Value)] = tokens
		}
		*e = parsed
		return nil
	}
	return fmt.Errorf("line %d: cannot decode %s into expression", node.Line, node.Tag)
}

func decodeTokens(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == Wildcard {
			return DefaultInterval(), nil
		}
		return strings.Split(node.Value, ","), nil
	case yaml.SequenceNode:
		var tokens []string
		if err := node.Decode(&tokens); err != nil {
			return nil, err
		}
		return tokens, nil
	}
	return nil, fmt.Errorf("line %d: expected a token or a list of tokens", node.Line)
}
