package render

import (
	"io"

	"github.com/fatih/color"
)

// Writer writes lines of segments to an io.Writer, applying segment colors
// when enabled.
type Writer struct {
	w       io.Writer
	color   bool
	palette [numColors]*color.Color
}

// NewWriter constructs a Writer. When useColor is false every segment is
// written as plain text.
func NewWriter(w io.Writer, useColor bool) *Writer {
	wr := &Writer{w: w, color: useColor}
	for c := Red; c < numColors; c++ {
		cc := color.New(c.attribute())
		// Force the decision made by the caller; color.NoColor only
		// looks at os.Stdout.
		if useColor {
			cc.EnableColor()
		} else {
			cc.DisableColor()
		}
		wr.palette[c] = cc
	}
	return wr
}

// Color reports whether colored output is enabled.
func (w *Writer) Color() bool { return w.color }

// Line writes pad spaces, then each segment, then a newline, as a single
// write to the underlying writer.
func (w *Writer) Line(pad int, segs ...Segment) error {
	lb := getLineBuffer()
	defer putLineBuffer(lb)

	lb.Pad(pad)
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		if !w.color || s.Color == None {
			lb.WriteString(s.Text)
			continue
		}
		lb.WriteString(w.palette[s.Color].Sprint(s.Text))
	}
	lb.Newline()

	_, err := w.w.Write(lb.Bytes())
	return err
}
