package convert

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/yamlbridge/bridgeerrors"
	"go.yaml.in/yaml/v4"
)

const formatYAML = "YAML"

// ParseYAML parses a single YAML document into a Value.
//
// An empty stream yields null. Streams with more than one document, null or
// collection mapping keys, and duplicate keys are rejected with a
// *bridgeerrors.ParseError.
func ParseYAML(text string, opts ...Option) (*Value, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.parseYAML(text)
}

func (c *config) parseYAML(text string) (*Value, error) {
	if err := c.checkSize(formatYAML, len(text)); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(strings.NewReader(text))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Null(), nil
		}
		return nil, &bridgeerrors.ParseError{Format: formatYAML, Cause: err}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, &bridgeerrors.ParseError{Format: formatYAML, Cause: err}
		}
		return nil, &bridgeerrors.ParseError{
			Format:  formatYAML,
			Line:    extra.Line,
			Message: "deserializing from YAML containing more than one document is not supported",
		}
	}

	d := &yamlDecoder{cfg: c, active: make(map[*yaml.Node]bool)}
	v, err := d.decode(&doc, 0)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("decoded yaml", "nodes", d.nodes, "alias_nodes", d.expanded)
	return v, nil
}

// yamlDecoder walks a yaml.Node tree and builds the equivalent Value.
type yamlDecoder struct {
	cfg *config

	nodes    int
	expanded int

	// aliasDepth > 0 while walking the target of an alias
	aliasDepth int
	active     map[*yaml.Node]bool
}

func (d *yamlDecoder) decode(n *yaml.Node, depth int) (*Value, error) {
	if depth > d.cfg.maxDepth {
		return nil, d.cfg.depthError(formatYAML, depth)
	}
	d.nodes++
	if d.aliasDepth > 0 {
		d.expanded++
		if d.expanded > d.cfg.maxAliasExpansions {
			return nil, &bridgeerrors.ResourceLimitError{
				ResourceType: "alias_expansion",
				Limit:        int64(d.cfg.maxAliasExpansions),
				Message:      "YAML aliases expand to too many nodes",
			}
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return d.decode(n.Content[0], depth)

	case yaml.AliasNode:
		return d.alias(n, depth)

	case yaml.MappingNode:
		return d.mapping(n, depth)

	case yaml.SequenceNode:
		out := &Value{Kind: KindSequence, Items: make([]*Value, 0, len(n.Content))}
		for _, item := range n.Content {
			v, err := d.decode(item, depth+1)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, v)
		}
		return out, nil

	case yaml.ScalarNode:
		return scalarValue(n)

	case 0:
		return Null(), nil

	default:
		return nil, &bridgeerrors.ParseError{
			Format:  formatYAML,
			Line:    n.Line,
			Column:  n.Column,
			Message: fmt.Sprintf("unsupported node kind %d", n.Kind),
		}
	}
}

func (d *yamlDecoder) alias(n *yaml.Node, depth int) (*Value, error) {
	if n.Alias == nil {
		return nil, &bridgeerrors.ParseError{
			Format:  formatYAML,
			Line:    n.Line,
			Column:  n.Column,
			Message: fmt.Sprintf("unknown anchor %q referenced", n.Value),
		}
	}
	if d.active[n.Alias] {
		return nil, &bridgeerrors.ParseError{
			Format:  formatYAML,
			Line:    n.Line,
			Column:  n.Column,
			Message: fmt.Sprintf("anchor %q value contains itself", n.Value),
		}
	}
	d.active[n.Alias] = true
	d.aliasDepth++
	v, err := d.decode(n.Alias, depth)
	d.aliasDepth--
	delete(d.active, n.Alias)
	return v, err
}

func (d *yamlDecoder) mapping(n *yaml.Node, depth int) (*Value, error) {
	out := &Value{Kind: KindMapping, Members: make([]Member, 0, len(n.Content)/2)}
	seen := make(map[string]*yaml.Node, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		key, err := mappingKey(k)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[key]; dup {
			return nil, &bridgeerrors.ParseError{
				Format:  formatYAML,
				Line:    k.Line,
				Column:  k.Column,
				Message: fmt.Sprintf("duplicate mapping key %q (first defined at line %d, column %d)", key, first.Line, first.Column),
			}
		}
		seen[key] = k

		v, err := d.decode(n.Content[i+1], depth+1)
		if err != nil {
			return nil, err
		}
		out.Members = append(out.Members, Member{Key: key, Value: v})
	}
	return out, nil
}

// mappingKey returns the string form of a scalar mapping key.
func mappingKey(k *yaml.Node) (string, error) {
	if k.Kind == yaml.AliasNode && k.Alias != nil {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", &bridgeerrors.ParseError{
			Format:  formatYAML,
			Line:    k.Line,
			Column:  k.Column,
			Message: "mapping key must be a scalar; JSON object keys must be strings",
		}
	}
	if k.ShortTag() == "!!null" {
		return "", &bridgeerrors.ParseError{
			Format:  formatYAML,
			Line:    k.Line,
			Column:  k.Column,
			Message: "mapping key is null; JSON object keys must be strings",
		}
	}
	return k.Value, nil
}

// scalarValue resolves a scalar by its tag. Tags other than null, bool, int
// and float (including !!timestamp, !!binary and custom tags) yield strings.
func scalarValue(n *yaml.Node) (*Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, ok := parseYAMLBool(n.Value)
		if !ok {
			return nil, scalarError(n, "bool")
		}
		return Bool(b), nil
	case "!!int":
		v, ok := parseYAMLInt(n.Value)
		if !ok {
			return nil, scalarError(n, "int")
		}
		return v, nil
	case "!!float":
		v, ok := parseYAMLFloat(n.Value)
		if !ok {
			return nil, scalarError(n, "float")
		}
		return v, nil
	default:
		return String(n.Value), nil
	}
}

func scalarError(n *yaml.Node, kind string) error {
	return &bridgeerrors.ParseError{
		Format:  formatYAML,
		Line:    n.Line,
		Column:  n.Column,
		Message: fmt.Sprintf("cannot decode %q as %s", n.Value, kind),
	}
}

func parseYAMLBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "y", "yes", "on":
		return true, true
	case "false", "n", "no", "off":
		return false, true
	}
	return false, false
}

// parseYAMLInt accepts the integer forms the YAML resolver produces: decimal,
// 0x/0o/0b prefixes and '_' digit separators. Decimal text that does not fit
// in 64 bits stays an integer with its digits unchanged.
func parseYAMLInt(s string) (*Value, bool) {
	if isJSONInteger(s) {
		return Int(s), true
	}
	plain := strings.ReplaceAll(s, "_", "")
	if strings.HasPrefix(plain, "+") {
		plain = plain[1:]
	}
	if i, err := strconv.ParseInt(plain, 0, 64); err == nil {
		return Int(strconv.FormatInt(i, 10)), true
	}
	if u, err := strconv.ParseUint(plain, 0, 64); err == nil {
		return Int(strconv.FormatUint(u, 10)), true
	}
	if isJSONInteger(plain) {
		return Int(plain), true
	}
	return nil, false
}

// parseYAMLFloat keeps JSON-compatible float text verbatim and normalises the
// remaining YAML spellings (.inf, .nan, 1_000.5, 1.) through strconv.
func parseYAMLFloat(s string) (*Value, bool) {
	if isJSONNumber(s) {
		if strings.ContainsAny(s, ".eE") {
			return Float(s), true
		}
		// Integral text resolved as float only because it overflows 64 bits.
		return Int(s), true
	}
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return FloatFromGo(math.Inf(1)), true
	case "-.inf":
		return FloatFromGo(math.Inf(-1)), true
	case ".nan":
		return FloatFromGo(math.NaN()), true
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil {
		return nil, false
	}
	return FloatFromGo(f), true
}
