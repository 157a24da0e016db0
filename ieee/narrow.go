package ieee

import (
	"math"

	"github.com/x448/float16"
)

// float16Bits narrows a binary32 value to binary16, rounding to nearest
// even. NaN payloads keep their upper bits and stay quiet.
func float16Bits(f float32) uint16 {
	return float16.Fromfloat32(f).Bits()
}

// bfloat16Bits narrows a binary32 value to bfloat16 by keeping its upper
// half. The dropped half rounds to nearest even; NaNs get the quiet bit
// forced so truncation can never turn them into infinities.
func bfloat16Bits(f float32) uint16 {
	x := math.Float32bits(f)
	if x&float32ExpMask == float32ExpMask && x&float32MantMask != 0 {
		return uint16(x>>bfloat16Shift) | bfloat16QuietBit
	}
	if x&bfloat16RoundBit != 0 && x&(3*bfloat16RoundBit-1) != 0 {
		return uint16(x>>bfloat16Shift) + 1
	}
	return uint16(x >> bfloat16Shift)
}
