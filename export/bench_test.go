package export

import (
	"testing"

	"github.com/synadia-labs/bits.go/ieee"
)

func BenchmarkMarshal(b *testing.B) {
	var rs Records
	for _, f := range ieee.Formats() {
		rs = append(rs, NewRecord("3.14159", ieee.MustDecode(f, "3.14159")))
	}
	for _, enc := range []Encoding{JSON, CBOR, MsgPack} {
		b.Run(enc.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Marshal(enc, rs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
