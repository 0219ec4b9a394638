package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"op-converter/internal/api"
	"op-converter/internal/common"
)

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// exprTag marks a default given as raw source text.
const exprTag = "!expr"

// requiredKeyword is the YAML spelling of the REQUIRED sentinel.
const requiredKeyword = "REQUIRED"

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- ParamList YAML methods ---

// ParamList is an ordered parameter list written as a YAML mapping.
type ParamList []api.Param

// UnmarshalYAML decodes a mapping node, keeping key order.
func (p *ParamList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		params := make(ParamList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var name string

			err := node.Content[i].Decode(&name)
			if err != nil {
				return fmt.Errorf("invalid parameter name: %w", err)
			}

			lit, err := decodeLiteral(node.Content[i+1])
			if err != nil {
				return fmt.Errorf("parameter %q: %w", name, err)
			}

			params = append(params, api.Param{Name: name, Default: lit})
		}

		*p = params

		return nil

	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*p = ParamList{}
			return nil
		}

		return fmt.Errorf("expected parameter mapping, got scalar %q", node.Value)

	default:
		return fmt.Errorf("expected parameter mapping, got %v", node.Kind)
	}
}

// MarshalYAML writes the list back as an ordered mapping. Non-sentinel
// defaults are tagged !expr so they reload as the same text.
func (p ParamList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, param := range p {
		value := &yaml.Node{Kind: yaml.ScalarNode, Value: requiredKeyword}
		if !param.Default.IsRequired() {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: exprTag, Value: param.Default.String()}
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: param.Name},
			value,
		)
	}

	return node, nil
}

// Names returns the parameter names in order.
func (p ParamList) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}

	return names
}

// Has reports whether a parameter is declared.
func (p ParamList) Has(name string) bool {
	return slices.ContainsFunc(p, func(param api.Param) bool { return param.Name == name })
}

// decodeLiteral turns a YAML value node into a parameter default.
func decodeLiteral(n *yaml.Node) (api.Literal, error) {
	if n.Tag == exprTag {
		if n.Kind != yaml.ScalarNode {
			return api.Literal{}, fmt.Errorf("%s must tag a scalar", exprTag)
		}

		return api.Text(n.Value), nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return decodeScalar(n)

	case yaml.SequenceNode:
		var items []any

		err := n.Decode(&items)
		if err != nil {
			return api.Literal{}, err
		}

		return api.LiteralOf(items), nil

	default:
		return api.Literal{}, fmt.Errorf("unsupported default of kind %v", n.Kind)
	}
}

func decodeScalar(n *yaml.Node) (api.Literal, error) {
	var (
		v   any
		err error
	)

	switch n.ShortTag() {
	case "!!str":
		if n.Value == requiredKeyword {
			return api.RequiredLiteral, nil
		}

		v = n.Value
	case "!!int":
		var i int64
		err = n.Decode(&i)
		v = i
	case "!!float":
		var f float64
		err = n.Decode(&f)
		v = f
	case "!!bool":
		var b bool
		err = n.Decode(&b)
		v = b
	case "!!null":
		v = nil
	default:
		v = n.Value
	}

	if err != nil {
		return api.Literal{}, err
	}

	return api.LiteralOf(v), nil
}
