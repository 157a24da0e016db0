package ieee

import "math"

const (
	signBits = 1

	float16ExpBits  = 5
	float16MantBits = 10

	bfloat16ExpBits  = 8
	bfloat16MantBits = 7

	float32ExpBits  = 8
	float32MantBits = 23

	float64ExpBits  = 11
	float64MantBits = 52

	float32ExpMask  uint32 = math.MaxUint8 << float32MantBits
	float32MantMask uint32 = math.MaxUint32 >> (32 - float32MantBits)

	// bfloat16 keeps the upper half of a binary32 value.
	bfloat16Shift           = 32 - (signBits + bfloat16ExpBits + bfloat16MantBits)
	bfloat16RoundBit uint32 = 1 << (bfloat16Shift - 1)
	bfloat16QuietBit uint16 = 1 << (bfloat16MantBits - 1)
)

// widthMask returns a mask with the low w bits set.
func widthMask(w int) uint64 {
	if w >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(w) - 1
}
