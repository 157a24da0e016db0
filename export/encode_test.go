package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synadia-labs/bits.go/ieee"
)

func sampleRecords() Records {
	return Records{
		NewRecord("1.0", ieee.MustDecode(ieee.Float16, "1.0")),
		NewRecord("1.0", ieee.MustDecode(ieee.Float32, "1.0")),
	}
}

func TestParseEncoding(t *testing.T) {
	for i, s := range Encodings {
		e, err := ParseEncoding(s)
		require.NoError(t, err)
		assert.Equal(t, Encoding(i), e)
		assert.Equal(t, s, e.String())
	}

	e, err := ParseEncoding("")
	require.NoError(t, err)
	assert.Equal(t, Text, e)

	e, err = ParseEncoding(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, JSON, e)

	_, err = ParseEncoding("yaml")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
	assert.Contains(t, err.Error(), "text|json|cbor|msgpack")
}

func TestMarshalJSON(t *testing.T) {
	b, err := Marshal(JSON, sampleRecords()[:1])
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"format": "f16",
		"input": "1.0",
		"bits": 15360,
		"hex": "0x3C00",
		"binary": "0011110000000000",
		"class": "normal",
		"fields": [
			{"name": "sign", "letter": "S", "width": 1, "value": 0},
			{"name": "exponent", "letter": "E", "width": 5, "value": 15},
			{"name": "mantissa", "letter": "M", "width": 10, "value": 0}
		]
	}]`, string(b))
	assert.True(t, bytes.HasSuffix(b, []byte("\n")))
}

func TestMarshalEmpty(t *testing.T) {
	b, err := Marshal(JSON, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(b))

	b, err = Marshal(CBOR, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, b)

	b, err = Marshal(MsgPack, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x90}, b)
}

func TestMarshalCBORRoundTrip(t *testing.T) {
	rs := sampleRecords()
	b, err := Marshal(CBOR, rs)
	require.NoError(t, err)

	var got Records
	require.NoError(t, cbor.Unmarshal(b, &got))
	assert.Equal(t, rs, got)

	again, err := Marshal(CBOR, rs)
	require.NoError(t, err)
	assert.Equal(t, b, again, "deterministic encoding")
}

func TestMarshalFormatsAgree(t *testing.T) {
	rs := sampleRecords()

	jb, err := Marshal(JSON, rs)
	require.NoError(t, err)
	var fromJSON Records
	require.NoError(t, json.Unmarshal(jb, &fromJSON))

	mb, err := Marshal(MsgPack, rs)
	require.NoError(t, err)
	var fromMsgp Records
	_, err = fromMsgp.UnmarshalMsg(mb)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromMsgp)
}

func TestMarshalText(t *testing.T) {
	_, err := Marshal(Text, sampleRecords())
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, MsgPack, sampleRecords()))
	assert.NotZero(t, buf.Len())

	assert.EqualError(t, Encode(failWriter{}, JSON, sampleRecords()), "closed")
}
