package convert

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/erraggy/yamlbridge/bridgeerrors"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Run("kinds", func(t *testing.T) {
		v, err := ParseJSON(`{"s":"x","i":7,"f":1.5,"e":1e3,"b":false,"n":null,"a":[1]}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"s", "i", "f", "e", "b", "n", "a"}, v.Keys())

		kinds := map[string]Kind{"s": KindString, "i": KindInt, "f": KindFloat, "e": KindFloat, "b": KindBool, "n": KindNull, "a": KindSequence}
		for key, kind := range kinds {
			got, ok := v.Get(key)
			require.True(t, ok, key)
			assert.Equal(t, kind, got.Kind, key)
		}
	})

	t.Run("numbers keep their text", func(t *testing.T) {
		v, err := ParseJSON(`[123456789012345678901234567890, 0.10, -0]`)
		require.NoError(t, err)
		assert.Equal(t, "123456789012345678901234567890", v.Items[0].Number)
		assert.Equal(t, "0.10", v.Items[1].Number)
		assert.Equal(t, "-0", v.Items[2].Number)
	})

	t.Run("duplicate key last wins first position kept", func(t *testing.T) {
		v, err := ParseJSON(`{"a":1,"b":2,"a":3}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v.Keys())
		a, _ := v.Get("a")
		assert.Equal(t, "3", a.Number)
	})

	t.Run("empty containers", func(t *testing.T) {
		v, err := ParseJSON(`{"o":{},"a":[]}`)
		require.NoError(t, err)
		o, _ := v.Get("o")
		assert.Equal(t, KindMapping, o.Kind)
		assert.Empty(t, o.Members)
		a, _ := v.Get("a")
		assert.Equal(t, KindSequence, a.Kind)
		assert.Empty(t, a.Items)
	})

	t.Run("brackets in strings do not count toward depth", func(t *testing.T) {
		_, err := ParseJSON(`{"s":"[[[[[[\"]]]"}`, WithMaxDepth(1))
		assert.NoError(t, err)
	})
}

func TestParseJSONEmptyInput(t *testing.T) {
	for _, input := range []string{"", "  \n", "\t\r\n"} {
		_, err := ParseJSON(input)
		require.Error(t, err)
		var pe *bridgeerrors.ParseError
		require.True(t, errors.As(err, &pe), "got %T: %v", err, err)
		assert.Equal(t, "unexpected end of JSON input", pe.Message)
		assert.Equal(t, "JSON parse error: unexpected end of JSON input", err.Error())
		assert.NotContains(t, err.Error(), `\u0000`)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"whitespace", "  \n"},
		{"unquoted key", `{a: 1}`},
		{"bare word in object", `{"key": "value", invalid_structure}`},
		{"unterminated object", `{"a": 1`},
		{"unterminated string", `"abc`},
		{"trailing comma", `[1,2,]`},
		{"trailing value", `1 2`},
		{"single quotes", `{'a': 1}`},
		{"leading zero", `01`},
		{"nan literal", `NaN`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(tt.input)
			require.Error(t, err)
			var pe *bridgeerrors.ParseError
			assert.True(t, errors.As(err, &pe), "got %T: %v", err, err)
			assert.Equal(t, "JSON", pe.Format)
		})
	}
}

func TestParseJSONLimits(t *testing.T) {
	t.Run("depth", func(t *testing.T) {
		deep := strings.Repeat("[", 20) + strings.Repeat("]", 20)
		_, err := ParseJSON(deep, WithMaxDepth(10))
		var rl *bridgeerrors.ResourceLimitError
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, "nesting_depth", rl.ResourceType)
		assert.Equal(t, int64(10), rl.Limit)
		assert.Equal(t, int64(20), rl.Actual)

		_, err = ParseJSON(deep, WithMaxDepth(20))
		assert.NoError(t, err)
	})

	t.Run("default depth", func(t *testing.T) {
		deep := strings.Repeat("[", DefaultMaxDepth+1) + strings.Repeat("]", DefaultMaxDepth+1)
		_, err := ParseJSON(deep)
		assert.ErrorIs(t, err, bridgeerrors.ErrResourceLimit)
	})

	t.Run("size", func(t *testing.T) {
		_, err := ParseJSON(`{"a":"bcdef"}`, WithMaxInputBytes(4))
		var rl *bridgeerrors.ResourceLimitError
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, "input_size", rl.ResourceType)
	})
}

func TestEncodeJSON(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		v := Mapping(
			Member{Key: "b", Value: Int("1")},
			Member{Key: "a", Value: Sequence(Bool(true), Null(), Float("2.5"))},
		)
		got, err := EncodeJSON(v)
		require.NoError(t, err)
		assert.Equal(t, `{"b":1,"a":[true,null,2.5]}`, got)
	})

	t.Run("indent", func(t *testing.T) {
		got, err := EncodeJSON(Mapping(Member{Key: "a", Value: Sequence(Int("1"))}), WithJSONIndent("  "))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", got)
	})

	t.Run("nil value is null", func(t *testing.T) {
		got, err := EncodeJSON(nil)
		require.NoError(t, err)
		assert.Equal(t, "null", got)
	})

	t.Run("string escaping", func(t *testing.T) {
		got, err := EncodeJSON(String("a\"b\\c\n<&>"))
		require.NoError(t, err)
		assert.Equal(t, `"a\"b\\c\n<&>"`, got)
		assert.True(t, json.Valid([]byte(got)))
	})

	t.Run("non-finite float", func(t *testing.T) {
		v := Mapping(Member{Key: "x/y", Value: Sequence(FloatFromGo(math.Inf(1)))})
		_, err := EncodeJSON(v)
		var se *bridgeerrors.SerializationError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "/x~1y/0", se.Path)
		assert.Contains(t, se.Error(), "+Inf")
	})

	t.Run("non-json integer text", func(t *testing.T) {
		_, err := EncodeJSON(Int("0x10"))
		assert.ErrorIs(t, err, bridgeerrors.ErrSerialization)
	})
}

func TestErrorPayload(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"Invalid UTF-8 in input", `{"error":"Invalid UTF-8 in input"}`},
		{`unexpected "quote"`, `{"error":"unexpected \"quote\""}`},
		{"line\nbreak", `{"error":"line\nbreak"}`},
		{`back\slash`, `{"error":"back\\slash"}`},
		{"", `{"error":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := ErrorPayload(tt.msg)
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)))

			var decoded map[string]string
			require.NoError(t, json.Unmarshal([]byte(got), &decoded))
			assert.Equal(t, tt.msg, decoded["error"])
		})
	}
}

func TestIsJSONNumber(t *testing.T) {
	valid := []string{"0", "-0", "1", "-12", "1.5", "0.0", "1e10", "1E+2", "-3.25e-7", "123456789012345678901234567890"}
	invalid := []string{"", "-", "01", "+1", "1.", ".5", "1e", "1e+", "0x10", "NaN", "+Inf", "1_000", " 1"}
	for _, s := range valid {
		assert.True(t, isJSONNumber(s), s)
	}
	for _, s := range invalid {
		assert.False(t, isJSONNumber(s), s)
	}

	assert.True(t, isJSONInteger("-42"))
	assert.False(t, isJSONInteger("4.2"))
	assert.False(t, isJSONInteger("4e2"))
	assert.False(t, isJSONInteger("x"))
}
