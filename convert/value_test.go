package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestFloatFromGo(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-2, "-2.0"},
		{0.25, "0.25"},
		{1e21, "1e+21"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		v := FloatFromGo(tt.in)
		assert.Equal(t, KindFloat, v.Kind)
		assert.Equal(t, tt.want, v.Number)
	}
}

func TestMappingAccessors(t *testing.T) {
	m := Mapping(Member{Key: "a", Value: Int("1")})
	m.Set("b", Int("2"))
	m.Set("a", Int("3"))
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	a, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", a.Number)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	seq := Sequence(Int("1"))
	seq.Set("x", Null())
	assert.Nil(t, seq.Keys())
	_, ok = seq.Get("x")
	assert.False(t, ok)

	var nilValue *Value
	assert.Nil(t, nilValue.Keys())
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *Value
		equal bool
	}{
		{"nulls", Null(), Null(), true},
		{"both nil", nil, nil, true},
		{"nil vs null", nil, Null(), false},
		{"ints by value", Int("10"), Int("010"), true},
		{"big ints", Int("123456789012345678901234567890"), Int("123456789012345678901234567890"), true},
		{"different ints", Int("1"), Int("2"), false},
		{"floats by value", Float("1e3"), Float("1000.0"), true},
		{"nan equals nan", Float("NaN"), Float("NaN"), true},
		{"int vs float", Int("1"), Float("1.0"), false},
		{"strings", String("a"), String("a"), true},
		{"bools", Bool(true), Bool(false), false},
		{"sequences", Sequence(Int("1"), String("x")), Sequence(Int("1"), String("x")), true},
		{"sequence lengths", Sequence(Int("1")), Sequence(), false},
		{"mapping order matters",
			Mapping(Member{Key: "a", Value: Null()}, Member{Key: "b", Value: Null()}),
			Mapping(Member{Key: "b", Value: Null()}, Member{Key: "a", Value: Null()}),
			false},
		{"mappings", Mapping(Member{Key: "a", Value: Int("1")}), Mapping(Member{Key: "a", Value: Int("1")}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}
