package ieee

import (
	"strconv"
	"strings"
)

// Class is the IEEE 754 category of a decoded value.
type Class uint8

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinite
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInfinite:
		return "infinite"
	default:
		return "nan"
	}
}

// Value is the raw bit pattern of a literal under one format. The zero
// value has no format and is not useful.
type Value struct {
	format *Format
	bits   uint64
}

// NewValue wraps bits as a value of format f. Bits above the format's
// width are dropped.
func NewValue(f *Format, bits uint64) Value {
	return Value{format: f, bits: bits & widthMask(f.TotalBits())}
}

// Format returns the layout of the value.
func (v Value) Format() *Format { return v.format }

// Bits returns the raw pattern.
func (v Value) Bits() uint64 { return v.bits }

// Binary returns the pattern as binary digits, zero-padded to TotalBits.
func (v Value) Binary() string {
	return zeroPad(strconv.FormatUint(v.bits, 2), v.format.TotalBits())
}

// Hex returns the pattern as 0x-prefixed upper-case hex, zero-padded to
// one digit per nibble of the format.
func (v Value) Hex() string {
	digits := strings.ToUpper(strconv.FormatUint(v.bits, 16))
	return "0x" + zeroPad(digits, (v.format.TotalBits()+3)/4)
}

// Field extracts the raw value of one field.
func (v Value) Field(k FieldKind) uint64 {
	for _, f := range v.format.Fields() {
		if f.Kind == k {
			return (v.bits >> uint(f.Shift(v.format.TotalBits()))) & f.Mask()
		}
	}
	return 0
}

// Sign returns the sign bit.
func (v Value) Sign() uint64 { return v.bits >> uint(v.format.SignShift()) & 1 }

// Exponent returns the biased exponent.
func (v Value) Exponent() uint64 { return v.bits >> uint(v.format.ExpShift()) & v.format.ExpMask() }

// Mantissa returns the fraction bits.
func (v Value) Mantissa() uint64 { return v.bits & v.format.MantMask() }

// Negative reports whether the sign bit is set. This is true for -0 and
// negative NaNs as well.
func (v Value) Negative() bool { return v.Sign() == 1 }

// Class reports the IEEE 754 category of the pattern.
func (v Value) Class() Class {
	exp, mant := v.Exponent(), v.Mantissa()
	switch exp {
	case 0:
		if mant == 0 {
			return ClassZero
		}
		return ClassSubnormal
	case v.format.ExpMask():
		if mant == 0 {
			return ClassInfinite
		}
		return ClassNaN
	default:
		return ClassNormal
	}
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
