package render

import (
	"github.com/fatih/color"

	"github.com/synadia-labs/bits.go/ieee"
)

// Color is the foreground color of a segment.
type Color uint8

const (
	None Color = iota
	Red
	Green
	Blue

	numColors
)

func (c Color) attribute() color.Attribute {
	switch c {
	case Red:
		return color.FgRed
	case Green:
		return color.FgGreen
	case Blue:
		return color.FgBlue
	default:
		return color.Reset
	}
}

// FieldColor is the color used for a field in every format.
func FieldColor(k ieee.FieldKind) Color {
	switch k {
	case ieee.Sign:
		return Red
	case ieee.Exponent:
		return Green
	default:
		return Blue
	}
}

// Segment is a run of text written with one color.
type Segment struct {
	Text  string
	Color Color
}

// Plain returns an uncolored segment.
func Plain(s string) Segment { return Segment{Text: s} }

// Colored returns a segment written in c.
func Colored(s string, c Color) Segment { return Segment{Text: s, Color: c} }
