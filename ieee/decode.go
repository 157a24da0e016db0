package ieee

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Decode parses text as a literal of format f and returns its raw bits.
//
// text is expected to be trimmed already. Decoding is pure: the same
// literal and format always yield the same bits. Literals whose magnitude
// overflows the format decode to the correctly signed infinity.
// Only the registered formats can decode; any other *Format reports
// ErrUnknownFormat.
func Decode(f *Format, text string) (Value, error) {
	if f == nil || f.parse == nil {
		name := ""
		if f != nil {
			name = f.Name
		}
		return Value{}, UnknownFormatError{Name: name}
	}
	bits, err := f.parse(text)
	if err != nil {
		return Value{}, &ParseError{Format: f.Name, Input: text, Err: err}
	}
	return NewValue(f, bits), nil
}

// MustDecode is like Decode but panics on error. It is meant for tests
// and fixed literals.
func MustDecode(f *Format, text string) Value {
	v, err := Decode(f, text)
	if err != nil {
		panic(err)
	}
	return v
}

// parseFloat wraps strconv.ParseFloat, keeping the ±Inf result of an
// overflowing literal instead of failing. Only decimal literals are
// accepted: Go's digit separators and hex floats are syntax errors.
func parseFloat(s string, bitSize int) (float64, error) {
	if !isDecimalLiteral(s) {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err == nil {
		return v, nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, numErr.Err
	}
	return 0, err
}

func parseFloat64(s string) (uint64, error) {
	v, err := parseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return math.Float64bits(v), nil
}

func parseFloat32(s string) (uint64, error) {
	v, err := parseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return uint64(math.Float32bits(float32(v))), nil
}

// The 16-bit formats parse as binary32 first and then narrow.

func parseFloat16(s string) (uint64, error) {
	v, err := parseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return uint64(float16Bits(float32(v))), nil
}

func parseBFloat16(s string) (uint64, error) {
	v, err := parseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return uint64(bfloat16Bits(float32(v))), nil
}

// isDecimalLiteral rejects the parts of Go's float grammar that are not
// plain decimal: '_' separators and a 0x/0X prefix after the sign.
func isDecimalLiteral(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}
