package render

import (
	"strconv"
	"strings"

	"github.com/synadia-labs/bits.go/ieee"
)

// Line is one output line: Pad leading spaces followed by segments.
type Line struct {
	Pad      int
	Segments []Segment
}

// String returns the uncolored text of the line without a newline.
func (l Line) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", l.Pad))
	for _, s := range l.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// LabelWidth is the column where the bits start. It fits the longest
// registered format name plus ": ", so every block lines up.
func LabelWidth() int {
	width := 0
	for _, name := range ieee.Names() {
		width = max(width, len(name)+len(": "))
	}
	return width
}

// Block returns the lines describing v: the bits line, the field map line
// and one description line per field.
func Block(v ieee.Value) []Line {
	f := v.Format()
	fields := f.Fields()
	bits := v.Binary()
	pad := LabelWidth()

	bitsLine := Line{Segments: make([]Segment, 0, 1+len(fields))}
	bitsLine.Segments = append(bitsLine.Segments, Plain(padRight(f.Name+":", pad)))
	mapLine := Line{Pad: pad, Segments: make([]Segment, 0, len(fields))}
	for _, fd := range fields {
		c := FieldColor(fd.Kind)
		bitsLine.Segments = append(bitsLine.Segments, Colored(bits[fd.Offset:fd.Offset+fd.Width], c))
		mapLine.Segments = append(mapLine.Segments, Colored(strings.Repeat(string(fd.Kind.Letter()), fd.Width), c))
	}

	lines := make([]Line, 0, 2+len(fields))
	lines = append(lines, bitsLine, mapLine)
	for _, fd := range fields {
		lines = append(lines, Line{
			Pad:      pad,
			Segments: []Segment{Colored(Describe(fd), FieldColor(fd.Kind))},
		})
	}
	return lines
}

// Describe returns the description of a field, e.g. "E: Exponent (8 bits)".
func Describe(fd ieee.Field) string {
	unit := "bits"
	if fd.Width == 1 {
		unit = "bit"
	}
	return string(fd.Kind.Letter()) + ": " + fd.Kind.Label() + " (" + strconv.Itoa(fd.Width) + " " + unit + ")"
}

// WriteBlock writes the block for v line by line. A failed write does not
// stop the remaining lines; the number of failed lines is returned.
func WriteBlock(w *Writer, v ieee.Value) (failed int) {
	for _, l := range Block(v) {
		if err := w.Line(l.Pad, l.Segments...); err != nil {
			failed++
		}
	}
	return failed
}

// padRight pads s with spaces to width, always leaving at least one space.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
