package render

import (
	"io"
	"testing"

	"github.com/synadia-labs/bits.go/ieee"
)

func BenchmarkWriteBlock(b *testing.B) {
	v := ieee.MustDecode(ieee.Float64, "3.14159265358979")
	for _, useColor := range []bool{false, true} {
		name := "plain"
		if useColor {
			name = "color"
		}
		b.Run(name, func(b *testing.B) {
			w := NewWriter(io.Discard, useColor)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				WriteBlock(w, v)
			}
		})
	}
}
