package convert

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/yamlbridge/bridgeerrors"
	"github.com/goccy/go-json"
)

// EncodeJSON serializes v as JSON text, compact unless WithJSONIndent is given.
// Mapping keys are written in order. Non-finite floats cannot be represented
// and yield a *bridgeerrors.SerializationError.
func EncodeJSON(v *Value, opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", err
	}
	return cfg.encodeJSON(v)
}

func (c *config) encodeJSON(v *Value) (string, error) {
	e := &jsonEncoder{}
	if err := e.write(v); err != nil {
		return "", err
	}
	if c.jsonIndent == "" {
		return e.buf.String(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, e.buf.Bytes(), "", c.jsonIndent); err != nil {
		return "", &bridgeerrors.SerializationError{Format: formatJSON, Cause: err}
	}
	return out.String(), nil
}

// jsonEncoder writes compact JSON and tracks the JSON Pointer of the value
// being written for error reporting.
type jsonEncoder struct {
	buf  bytes.Buffer
	path []string
}

func (e *jsonEncoder) write(v *Value) error {
	if v == nil {
		e.buf.WriteString("null")
		return nil
	}
	switch v.Kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		e.buf.WriteString(strconv.FormatBool(v.Bool))
	case KindInt, KindFloat:
		if !isJSONNumber(v.Number) {
			return e.fail(fmt.Sprintf("%s %s cannot be represented in JSON", v.Kind, v.Number))
		}
		e.buf.WriteString(v.Number)
	case KindString:
		return e.writeString(v.Str)
	case KindSequence:
		e.buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.path = append(e.path, strconv.Itoa(i))
			if err := e.write(item); err != nil {
				return err
			}
			e.path = e.path[:len(e.path)-1]
		}
		e.buf.WriteByte(']')
	case KindMapping:
		e.buf.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.writeString(m.Key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			e.path = append(e.path, m.Key)
			if err := e.write(m.Value); err != nil {
				return err
			}
			e.path = e.path[:len(e.path)-1]
		}
		e.buf.WriteByte('}')
	default:
		return e.fail(fmt.Sprintf("unsupported value %s", v.Kind))
	}
	return nil
}

func (e *jsonEncoder) writeString(s string) error {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		return &bridgeerrors.SerializationError{Format: formatJSON, Path: e.pointer(), Cause: err}
	}
	e.buf.Write(b)
	return nil
}

func (e *jsonEncoder) fail(msg string) error {
	return &bridgeerrors.SerializationError{Format: formatJSON, Path: e.pointer(), Message: msg}
}

// pointer renders the current path as an RFC 6901 JSON Pointer.
func (e *jsonEncoder) pointer() string {
	if len(e.path) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range e.path {
		b.WriteByte('/')
		seg = strings.ReplaceAll(seg, "~", "~0")
		b.WriteString(strings.ReplaceAll(seg, "/", "~1"))
	}
	return b.String()
}

// ErrorPayload renders msg as the JSON object {"error":"<msg>"}. The message
// is escaped as a JSON string, so embedded double quotes become \".
func ErrorPayload(msg string) string {
	e := &jsonEncoder{}
	e.buf.WriteString(`{"error":`)
	if err := e.writeString(msg); err != nil {
		e.buf.WriteString(`"` + strings.ReplaceAll(msg, `"`, `\"`) + `"`)
	}
	e.buf.WriteByte('}')
	return e.buf.String()
}
