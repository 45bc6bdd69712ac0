// Package marshal carries binary values as emoji256 text inside structured documents.
//
// Bytes and Array implement the marshaling hooks of encoding/json (through
// encoding.TextMarshaler), gopkg.in/yaml.v3 and github.com/vmihailenco/msgpack/v5.
// A field declared with one of these types is written as an emoji256 string and
// read back from one:
//
//	type Record struct {
//	    Key  marshal.Bytes           `json:"key" yaml:"key" msgpack:"key"`
//	    Hash marshal.Array[[32]byte] `json:"hash" yaml:"hash" msgpack:"hash"`
//	}
//
// Decoding failures are returned to the framework wrapped with the marshal
// prefix, so errors.Is and errors.As still reach the underlying errs values.
package marshal

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/emoji256/codec"
)

// Bytes is a byte slice that marshals as emoji256 text.
type Bytes []byte

var (
	_ msgpack.CustomEncoder = Bytes(nil)
	_ msgpack.CustomDecoder = (*Bytes)(nil)
	_ yaml.Marshaler        = Bytes(nil)
	_ yaml.Unmarshaler      = (*Bytes)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return codec.Default().AppendEncode(nil, b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(text []byte) error {
	out, err := codec.Default().Decode(text)
	if err != nil {
		return wrapDecodeErr(err)
	}
	*b = out

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Bytes) MarshalYAML() (any, error) {
	return codec.Default().EncodeToString(b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bytes) UnmarshalYAML(node *yaml.Node) error {
	s, err := scalarValue(node)
	if err != nil {
		return err
	}

	return b.UnmarshalText([]byte(s))
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (b Bytes) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(codec.Default().EncodeToString(b))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *Bytes) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return b.UnmarshalText([]byte(s))
}

// scalarValue returns the string value of a YAML scalar node.
func scalarValue(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("marshal: line %d: expected an emoji256 string, got YAML node kind %d",
			node.Line, node.Kind)
	}

	return node.Value, nil
}

func wrapDecodeErr(err error) error {
	return fmt.Errorf("marshal: invalid emoji256 string: %w", err)
}
