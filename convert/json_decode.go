package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/yamlbridge/bridgeerrors"
	"github.com/goccy/go-json"
)

const formatJSON = "JSON"

// ParseJSON parses a single strict JSON value into a Value, preserving object key order.
//
// Trailing tokens, unquoted keys and unterminated structures are rejected with
// a *bridgeerrors.ParseError. When an object repeats a key the last value wins
// and the key keeps its first position.
func ParseJSON(text string, opts ...Option) (*Value, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.parseJSON(text)
}

func (c *config) parseJSON(text string) (*Value, error) {
	if err := c.checkSize(formatJSON, len(text)); err != nil {
		return nil, err
	}
	data := []byte(text)

	// Bound nesting before handing the bytes to the decoder.
	if depth := maxJSONDepth(data); depth > c.maxDepth {
		return nil, c.depthError(formatJSON, depth)
	}

	if len(bytes.Trim(data, " \t\r\n")) == 0 {
		return nil, &bridgeerrors.ParseError{Format: formatJSON, Message: "unexpected end of JSON input"}
	}

	if !json.Valid(data) {
		var scratch any
		err := json.Unmarshal(data, &scratch)
		if err == nil {
			err = errors.New("invalid JSON text")
		}
		return nil, &bridgeerrors.ParseError{Format: formatJSON, Cause: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &jsonDecoder{dec: dec, cfg: c}

	tok, err := dec.Token()
	if err != nil {
		return nil, &bridgeerrors.ParseError{Format: formatJSON, Cause: err}
	}
	v, err := d.value(tok, 0)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, &bridgeerrors.ParseError{Format: formatJSON, Cause: err}
		}
		return nil, &bridgeerrors.ParseError{Format: formatJSON, Message: fmt.Sprintf("trailing token %v after top-level value", tok)}
	}
	c.logger.Debug("decoded json", "values", d.values)
	return v, nil
}

// jsonDecoder builds a Value from a go-json token stream.
type jsonDecoder struct {
	dec    *json.Decoder
	cfg    *config
	values int
}

func (d *jsonDecoder) value(tok json.Token, depth int) (*Value, error) {
	d.values++
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return d.object(depth + 1)
		case '[':
			return d.array(depth + 1)
		}
		return nil, d.unexpected(tok)
	case string:
		return String(t), nil
	case json.Number:
		s := string(t)
		if strings.ContainsAny(s, ".eE") {
			return Float(s), nil
		}
		return Int(s), nil
	case float64:
		return FloatFromGo(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, d.unexpected(tok)
}

func (d *jsonDecoder) object(depth int) (*Value, error) {
	if depth > d.cfg.maxDepth {
		return nil, d.cfg.depthError(formatJSON, depth)
	}
	out := &Value{Kind: KindMapping, Members: []Member{}}
	index := make(map[string]int)
	for {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return out, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, d.unexpected(tok)
		}
		tok, err = d.next()
		if err != nil {
			return nil, err
		}
		v, err := d.value(tok, depth)
		if err != nil {
			return nil, err
		}
		if i, dup := index[key]; dup {
			out.Members[i].Value = v
			continue
		}
		index[key] = len(out.Members)
		out.Members = append(out.Members, Member{Key: key, Value: v})
	}
}

func (d *jsonDecoder) array(depth int) (*Value, error) {
	if depth > d.cfg.maxDepth {
		return nil, d.cfg.depthError(formatJSON, depth)
	}
	out := &Value{Kind: KindSequence, Items: []*Value{}}
	for {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return out, nil
		}
		v, err := d.value(tok, depth)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, v)
	}
}

func (d *jsonDecoder) next() (json.Token, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &bridgeerrors.ParseError{Format: formatJSON, Cause: err}
	}
	return tok, nil
}

func (d *jsonDecoder) unexpected(tok json.Token) error {
	return &bridgeerrors.ParseError{Format: formatJSON, Message: fmt.Sprintf("unexpected token %v", tok)}
}

// maxJSONDepth returns the deepest bracket nesting in data, ignoring brackets
// inside string literals.
func maxJSONDepth(data []byte) int {
	depth, deepest := 0, 0
	inString, escaped := false, false
	for _, b := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > deepest {
				deepest = depth
			}
		case '}', ']':
			if depth > 0 {
				depth--
			}
		}
	}
	return deepest
}
