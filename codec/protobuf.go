package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Protobuf encodes a concrete message type. ctor returns a fresh message
// to decode into, e.g. func() *mypb.User { return &mypb.User{} }.
type Protobuf[T proto.Message] struct {
	new func() T
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// ProtoString carries plain strings as google.protobuf.StringValue so memo
// entries can share a provider with services that read protobuf.
type ProtoString struct{}

var _ Codec[string] = ProtoString{}

var stringValue = NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })

func (ProtoString) Encode(s string) ([]byte, error) {
	return stringValue.Encode(wrapperspb.String(s))
}

func (ProtoString) Decode(b []byte) (string, error) {
	m, err := stringValue.Decode(b)
	if err != nil {
		return "", err
	}
	return m.GetValue(), nil
}
