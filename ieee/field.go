package ieee

// FieldKind identifies one of the fields of a floating-point layout.
type FieldKind uint8

const (
	Sign FieldKind = iota
	Exponent
	Mantissa
)

// Letter is the single-character code used in the field map line.
func (k FieldKind) Letter() byte {
	switch k {
	case Sign:
		return 'S'
	case Exponent:
		return 'E'
	default:
		return 'M'
	}
}

// Label is the human-readable field name used in description lines.
func (k FieldKind) Label() string {
	switch k {
	case Sign:
		return "Sign"
	case Exponent:
		return "Exponent"
	default:
		return "Fraction / Mantissa"
	}
}

func (k FieldKind) String() string {
	switch k {
	case Sign:
		return "sign"
	case Exponent:
		return "exponent"
	default:
		return "mantissa"
	}
}

// Field is a contiguous span of bits. Offset counts from the most
// significant bit, so the sign field always has offset 0.
type Field struct {
	Kind   FieldKind
	Width  int
	Offset int
}

// Shift returns how far the field must be shifted right to extract it
// from a pattern of total bits.
func (f Field) Shift(total int) int { return total - f.Offset - f.Width }

// Mask returns the mask of the field after shifting.
func (f Field) Mask() uint64 { return widthMask(f.Width) }
