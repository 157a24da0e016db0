// Package export turns decoded values into machine-readable records and
// writes them as JSON, CBOR or MessagePack documents.
package export

import (
	"github.com/tinylib/msgp/msgp"

	"github.com/synadia-labs/bits.go/ieee"
)

// Field is one bit field of a record.
type Field struct {
	Name   string `json:"name" cbor:"name" msg:"name"`
	Letter string `json:"letter" cbor:"letter" msg:"letter"`
	Width  int    `json:"width" cbor:"width" msg:"width"`
	Value  uint64 `json:"value" cbor:"value" msg:"value"`
}

// Record describes one successfully decoded format.
type Record struct {
	Format string  `json:"format" cbor:"format" msg:"format"`
	Input  string  `json:"input" cbor:"input" msg:"input"`
	Bits   uint64  `json:"bits" cbor:"bits" msg:"bits"`
	Hex    string  `json:"hex" cbor:"hex" msg:"hex"`
	Binary string  `json:"binary" cbor:"binary" msg:"binary"`
	Class  string  `json:"class" cbor:"class" msg:"class"`
	Fields []Field `json:"fields" cbor:"fields" msg:"fields"`
}

// Records is the document written for one invocation, in format priority order.
type Records []Record

// NewRecord builds the record for v decoded from input.
func NewRecord(input string, v ieee.Value) Record {
	f := v.Format()
	fds := f.Fields()
	r := Record{
		Format: f.Name,
		Input:  input,
		Bits:   v.Bits(),
		Hex:    v.Hex(),
		Binary: v.Binary(),
		Class:  v.Class().String(),
		Fields: make([]Field, 0, len(fds)),
	}
	for _, fd := range fds {
		r.Fields = append(r.Fields, Field{
			Name:   fd.Kind.String(),
			Letter: string(fd.Kind.Letter()),
			Width:  fd.Width,
			Value:  v.Field(fd.Kind),
		})
	}
	return r
}

// MarshalMsg implements msgp.Marshaler
func (f Field) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendMapHeader(b, 4)
	b = msgp.AppendString(b, "name")
	b = msgp.AppendString(b, f.Name)
	b = msgp.AppendString(b, "letter")
	b = msgp.AppendString(b, f.Letter)
	b = msgp.AppendString(b, "width")
	b = msgp.AppendInt(b, f.Width)
	b = msgp.AppendString(b, "value")
	b = msgp.AppendUint64(b, f.Value)
	return b, nil
}

// UnmarshalMsg implements msgp.Unmarshaler. Unknown keys are skipped.
func (f *Field) UnmarshalMsg(b []byte) ([]byte, error) {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for i := uint32(0); i < sz; i++ {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return b, err
		}
		switch key {
		case "name":
			f.Name, b, err = msgp.ReadStringBytes(b)
		case "letter":
			f.Letter, b, err = msgp.ReadStringBytes(b)
		case "width":
			f.Width, b, err = msgp.ReadIntBytes(b)
		case "value":
			f.Value, b, err = msgp.ReadUint64Bytes(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return b, err
		}
	}
	return b, nil
}

// MarshalMsg implements msgp.Marshaler
func (r *Record) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendMapHeader(b, 7)
	b = msgp.AppendString(b, "format")
	b = msgp.AppendString(b, r.Format)
	b = msgp.AppendString(b, "input")
	b = msgp.AppendString(b, r.Input)
	b = msgp.AppendString(b, "bits")
	b = msgp.AppendUint64(b, r.Bits)
	b = msgp.AppendString(b, "hex")
	b = msgp.AppendString(b, r.Hex)
	b = msgp.AppendString(b, "binary")
	b = msgp.AppendString(b, r.Binary)
	b = msgp.AppendString(b, "class")
	b = msgp.AppendString(b, r.Class)
	b = msgp.AppendString(b, "fields")
	b = msgp.AppendArrayHeader(b, uint32(len(r.Fields)))
	var err error
	for _, f := range r.Fields {
		if b, err = f.MarshalMsg(b); err != nil {
			return b, err
		}
	}
	return b, nil
}

// UnmarshalMsg implements msgp.Unmarshaler. Unknown keys are skipped.
func (r *Record) UnmarshalMsg(b []byte) ([]byte, error) {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for i := uint32(0); i < sz; i++ {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return b, err
		}
		switch key {
		case "format":
			r.Format, b, err = msgp.ReadStringBytes(b)
		case "input":
			r.Input, b, err = msgp.ReadStringBytes(b)
		case "bits":
			r.Bits, b, err = msgp.ReadUint64Bytes(b)
		case "hex":
			r.Hex, b, err = msgp.ReadStringBytes(b)
		case "binary":
			r.Binary, b, err = msgp.ReadStringBytes(b)
		case "class":
			r.Class, b, err = msgp.ReadStringBytes(b)
		case "fields":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return b, err
			}
			r.Fields = make([]Field, n)
			for j := range r.Fields {
				if b, err = r.Fields[j].UnmarshalMsg(b); err != nil {
					return b, err
				}
			}
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return b, err
		}
	}
	return b, nil
}

// MarshalMsg implements msgp.Marshaler
func (rs Records) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, uint32(len(rs)))
	var err error
	for i := range rs {
		if b, err = rs[i].MarshalMsg(b); err != nil {
			return b, err
		}
	}
	return b, nil
}

// UnmarshalMsg implements msgp.Unmarshaler
func (rs *Records) UnmarshalMsg(b []byte) ([]byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, err
	}
	out := make(Records, n)
	for i := range out {
		if b, err = out[i].UnmarshalMsg(b); err != nil {
			return b, err
		}
	}
	*rs = out
	return b, nil
}

var (
	_ msgp.Marshaler   = Records(nil)
	_ msgp.Unmarshaler = (*Records)(nil)
)
