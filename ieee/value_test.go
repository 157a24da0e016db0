package ieee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueBinary(t *testing.T) {
	v := MustDecode(Float64, "1.0")
	assert.Equal(t, "0011111111110000000000000000000000000000000000000000000000000000", v.Binary())
	assert.Equal(t, "0x3FF0000000000000", v.Hex())

	v = MustDecode(Float32, "1.0")
	assert.Equal(t, "00111111100000000000000000000000", v.Binary())
	assert.Equal(t, "0x3F800000", v.Hex())

	v = MustDecode(Float16, "0")
	assert.Equal(t, strings.Repeat("0", 16), v.Binary())
	assert.Equal(t, "0x0000", v.Hex())
}

func TestValueFields(t *testing.T) {
	v := MustDecode(Float32, "-6.5") // -1.101b * 2^2
	assert.Equal(t, uint64(1), v.Field(Sign))
	assert.Equal(t, uint64(129), v.Field(Exponent))
	assert.Equal(t, uint64(0x500000), v.Field(Mantissa))
	assert.Equal(t, v.Field(Exponent), v.Exponent())
	assert.Equal(t, v.Field(Mantissa), v.Mantissa())
	assert.Equal(t, ClassNormal, v.Class())
}

func TestNewValueMasksToWidth(t *testing.T) {
	v := NewValue(Float16, 0x1_3C00)
	assert.Equal(t, uint64(0x3C00), v.Bits())

	v = NewValue(Float64, ^uint64(0))
	assert.Equal(t, ^uint64(0), v.Bits())
}

func TestValueClass(t *testing.T) {
	cases := []struct {
		input string
		want  Class
	}{
		{"0", ClassZero},
		{"1e-40", ClassSubnormal},
		{"1", ClassNormal},
		{"-inf", ClassInfinite},
		{"nan", ClassNaN},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			v := MustDecode(Float32, tc.input)
			assert.Equal(t, tc.want, v.Class())
			assert.Equal(t, tc.want.String(), v.Class().String())
		})
	}
}
