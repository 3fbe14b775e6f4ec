package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestStringCodecsRoundTrip(t *testing.T) {
	codecs := map[string]Codec[string]{
		"string":      String{},
		"json":        JSON[string]{},
		"msgpack":     Msgpack[string]{},
		"cbor":        MustCBOR[string](false),
		"cbor-det":    MustCBOR[string](true),
		"protostring": ProtoString{},
		"limit":       Limit[string]{Inner: Msgpack[string]{}, MaxDecode: 64},
	}
	inputs := []string{"", "fooBar", "foo_bar", "ünïcödé", strings.Repeat("x", 40)}

	for name, c := range codecs {
		for _, in := range inputs {
			b, err := c.Encode(in)
			require.NoError(t, err, name)
			got, err := c.Decode(b)
			require.NoError(t, err, name)
			require.Equal(t, in, got, name)
		}
	}
}

func TestCBORDeterministicIsStable(t *testing.T) {
	c := MustCBOR[map[string]int](true)
	in := map[string]int{"b": 2, "a": 1, "c": 3}

	first, err := c.Encode(in)
	require.NoError(t, err)
	for range 10 {
		again, err := c.Encode(in)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestProtobufGeneric(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.Int64Value { return &wrapperspb.Int64Value{} })

	b, err := c.Encode(wrapperspb.Int64(42))
	require.NoError(t, err)
	got, err := c.Decode(b)
	require.NoError(t, err)
	require.EqualValues(t, 42, got.GetValue())
}

func TestProtoStringRejectsGarbage(t *testing.T) {
	_, err := ProtoString{}.Decode([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestLimitRejectsOversized(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}

	b, err := c.Encode("too long")
	require.NoError(t, err)
	_, err = c.Decode(b)
	require.ErrorIs(t, err, ErrPayloadTooLarge)

	got, err := c.Decode([]byte("ok"))
	require.NoError(t, err)
	require.Equal(t, "ok", got)

	unlimited := Limit[string]{Inner: String{}}
	got, err = unlimited.Decode(b)
	require.NoError(t, err)
	require.Equal(t, "too long", got)
}

func TestBytesIdentity(t *testing.T) {
	in := []byte{0, 1, 2}
	b, _ := Bytes{}.Encode(in)
	out, _ := Bytes{}.Decode(b)
	require.Equal(t, in, out)
}
