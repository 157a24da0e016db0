package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnknownEncoding is returned by ParseEncoding for unsupported names.
var ErrUnknownEncoding = errors.New("export: unknown encoding")

// Encoding selects the output representation.
type Encoding uint8

const (
	// Text is the colored human-readable layout. It is not handled by Encode.
	Text Encoding = iota
	JSON
	CBOR
	MsgPack
)

// Encodings lists the accepted spellings in declaration order.
var Encodings = []string{"text", "json", "cbor", "msgpack"}

// ParseEncoding parses one of Encodings. The empty string means Text.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "cbor":
		return CBOR, nil
	case "msgpack":
		return MsgPack, nil
	default:
		return Text, fmt.Errorf("%w %q (expected %s)", ErrUnknownEncoding, s, strings.Join(Encodings, "|"))
	}
}

func (e Encoding) String() string {
	if int(e) < len(Encodings) {
		return Encodings[e]
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// cborMode produces deterministic output so identical inputs always
// encode to identical bytes.
var cborMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Marshal encodes rs as one document. A nil or empty rs encodes as an
// empty array.
func Marshal(enc Encoding, rs Records) ([]byte, error) {
	if rs == nil {
		rs = Records{}
	}
	switch enc {
	case JSON:
		b, err := json.Marshal(rs)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case CBOR:
		return cborMode.Marshal(rs)
	case MsgPack:
		return rs.MarshalMsg(nil)
	default:
		return nil, fmt.Errorf("%w %q for records", ErrUnknownEncoding, enc.String())
	}
}

// Encode marshals rs and writes the document to w in one write.
func Encode(w io.Writer, enc Encoding, rs Records) error {
	b, err := Marshal(enc, rs)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
