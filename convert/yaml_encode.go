package convert

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/erraggy/yamlbridge/bridgeerrors"
	"go.yaml.in/yaml/v4"
)

// Style selects how collections are laid out in YAML output.
type Style int

const (
	// StyleBlock emits multi-line, indentation-based collections.
	StyleBlock Style = iota
	// StyleFlow emits bracketed collections on a single line: {a: 1, b: [x, y]}.
	StyleFlow
)

// String returns "block" or "flow".
func (s Style) String() string {
	if s == StyleFlow {
		return "flow"
	}
	return "block"
}

// StyleFromBlockFlag maps the C ABI style flag: nonzero selects block style.
func StyleFromBlockFlag(flag int) Style {
	if flag != 0 {
		return StyleBlock
	}
	return StyleFlow
}

// EncodeYAML serializes v as a single YAML document in the given style.
// Mapping keys are written in order; strings that would read back as another
// type are quoted by the YAML library.
func EncodeYAML(v *Value, style Style, opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", err
	}
	return cfg.encodeYAML(v, style)
}

func (c *config) encodeYAML(v *Value, style Style) (string, error) {
	root, err := yamlNode(v)
	if err != nil {
		return "", err
	}
	if style == StyleFlow && (root.Kind == yaml.MappingNode || root.Kind == yaml.SequenceNode) {
		root.Style = yaml.FlowStyle
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	// Unlimited width keeps flow output on one line and long scalars unfolded.
	var buf bytes.Buffer
	dumper, err := yaml.NewDumper(&buf, yaml.V3, yaml.WithIndent(c.yamlIndent), yaml.WithLineWidth(-1))
	if err != nil {
		return "", &bridgeerrors.SerializationError{Format: formatYAML, Cause: err}
	}
	if err := dumper.Dump(doc); err != nil {
		return "", &bridgeerrors.SerializationError{Format: formatYAML, Cause: err}
	}
	if err := dumper.Close(); err != nil {
		return "", &bridgeerrors.SerializationError{Format: formatYAML, Cause: err}
	}
	return buf.String(), nil
}

// yamlNode builds the yaml.Node tree for v using the standard core-schema tags.
func yamlNode(v *Value) (*yaml.Node, error) {
	if v == nil {
		return nullNode(), nil
	}
	switch v.Kind {
	case KindNull:
		return nullNode(), nil
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}, nil
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: v.Number}, nil
	case KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloatText(v.Number)}, nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str}, nil
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(v.Items))}
		for _, item := range v.Items {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: make([]*yaml.Node, 0, 2*len(v.Members))}
		for _, m := range v.Members {
			child, err := yamlNode(m.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key}
			n.Content = append(n.Content, key, child)
		}
		return n, nil
	}
	return nil, &bridgeerrors.SerializationError{Format: formatYAML, Message: fmt.Sprintf("unsupported value %s", v.Kind)}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// yamlFloatText spells non-finite floats the way the YAML core schema does.
func yamlFloatText(s string) string {
	switch s {
	case "NaN":
		return ".nan"
	case "+Inf":
		return ".inf"
	case "-Inf":
		return "-.inf"
	}
	return s
}
