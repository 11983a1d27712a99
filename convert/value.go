package convert

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

var kindNames = map[Kind]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the structured value both formats parse into and serialize from.
//
// Numbers keep their textual form in Number so that no precision is lost on
// the way through; Int and Float are distinct kinds. Mappings keep their keys
// in insertion order.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  string
	Str     string
	Items   []*Value
	Members []Member
}

// Member is a single key/value pair of a mapping.
type Member struct {
	Key   string
	Value *Value
}

// Null returns a null value.
func Null() *Value { return &Value{Kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// Int returns an integer value from its decimal text.
func Int(text string) *Value { return &Value{Kind: KindInt, Number: text} }

// Float returns a floating-point value from its text.
func Float(text string) *Value { return &Value{Kind: KindFloat, Number: text} }

// String returns a string value.
func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Sequence returns a sequence holding items in order.
func Sequence(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{Kind: KindSequence, Items: items}
}

// Mapping returns a mapping holding members in order.
// Later members with a key already present replace the earlier value in place.
func Mapping(members ...Member) *Value {
	v := &Value{Kind: KindMapping, Members: make([]Member, 0, len(members))}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return v
}

// FloatFromGo returns a float value for f. Finite values always carry a
// fraction or exponent so they do not read back as integers.
func FloatFromGo(f float64) *Value {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return Float(s)
}

// Get returns the value stored under key in a mapping.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindMapping {
		return nil, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set stores val under key, keeping the position of an existing key.
// It is a no-op on anything but a mapping.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.Kind != KindMapping {
		return
	}
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}

// Keys returns the mapping keys in order.
func (v *Value) Keys() []string {
	if v == nil || v.Kind != KindMapping {
		return nil
	}
	keys := make([]string, len(v.Members))
	for i, m := range v.Members {
		keys[i] = m.Key
	}
	return keys
}

// Equal reports whether v and o hold the same structured value. Numbers are
// compared by value, so "1e3" equals "1000.0" and "-0" equals "0". Mapping
// order is significant.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindInt:
		return intEqual(v.Number, o.Number)
	case KindFloat:
		return floatEqual(v.Number, o.Number)
	case KindString:
		return v.Str == o.Str
	case KindSequence:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.Members) != len(o.Members) {
			return false
		}
		for i := range v.Members {
			if v.Members[i].Key != o.Members[i].Key || !v.Members[i].Value.Equal(o.Members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

func intEqual(a, b string) bool {
	x, ok1 := new(big.Int).SetString(a, 10)
	y, ok2 := new(big.Int).SetString(b, 10)
	if !ok1 || !ok2 {
		return a == b
	}
	return x.Cmp(y) == 0
}

func floatEqual(a, b string) bool {
	x, err1 := strconv.ParseFloat(a, 64)
	y, err2 := strconv.ParseFloat(b, 64)
	if err1 != nil || err2 != nil {
		return a == b
	}
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	return x == y
}
