package marshal

import (
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/emoji256/codec"
)

// Array holds a fixed-size byte array that marshals as emoji256 text.
//
// Unmarshaling requires exactly len(A) symbols and fails with
// errs.ErrInvalidDestLength otherwise.
type Array[A codec.ByteArray] struct {
	Value A
}

// MarshalText implements encoding.TextMarshaler.
func (a Array[A]) MarshalText() ([]byte, error) {
	return []byte(codec.EncodeArray(codec.Default(), a.Value)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Array[A]) UnmarshalText(text []byte) error {
	v, err := codec.DecodeArray[A](codec.Default(), text)
	if err != nil {
		return wrapDecodeErr(err)
	}
	a.Value = v

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Array[A]) MarshalYAML() (any, error) {
	return codec.EncodeArray(codec.Default(), a.Value), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Array[A]) UnmarshalYAML(node *yaml.Node) error {
	s, err := scalarValue(node)
	if err != nil {
		return err
	}

	return a.UnmarshalText([]byte(s))
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (a Array[A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(codec.EncodeArray(codec.Default(), a.Value))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (a *Array[A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return a.UnmarshalText([]byte(s))
}
