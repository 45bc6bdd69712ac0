// Package emoji256 encodes binary data as emoji, one emoji per byte.
//
// emoji256 is the moral equivalent of hexadecimal: each byte maps to one of 256
// fixed emoji instead of two hex digits. Every emoji is 4 bytes of UTF-8, so the
// encoded text is exactly 4× the length of the input.
//
// # Basic Usage
//
//	import "github.com/arloliu/emoji256"
//
//	s := emoji256.Encode("Hello world!")
//	// s == "👊💛💣💣💦🍻💸💦💩💣💚🍼"
//
//	b, err := emoji256.Decode(s)
//	// string(b) == "Hello world!"
//
// Encode and Decode accept any string or byte slice type. Caller-owned buffers
// avoid allocation:
//
//	buf := make([]byte, emoji256.EncodedLen(4))
//	err := emoji256.EncodeToSlice(buf, []byte("kiwi"))
//
//	out := make([]byte, 4)
//	err = emoji256.DecodeToSlice(out, buf)
//
// Fixed-size values decode straight into arrays:
//
//	sum, err := emoji256.DecodeArray[[32]byte](encodedSum)
//
// # Errors
//
// Decoding reports malformed input with the errors in this package, which alias
// the errs package. Use errors.Is to test the kind:
//
//	_, err := emoji256.Decode("💜💦66ag")
//	errors.Is(err, emoji256.ErrInvalidSymbol) // true
//
//	var se emoji256.InvalidSymbolError
//	errors.As(err, &se) // se.Index == 2, se.Char == '6'
//
// # Package Structure
//
// This package wraps the shared codec.Default codec. Use the codec package to
// configure limits or the legacy UTF-8 error index, the alphabet package to
// inspect the symbol table, and the marshal package to carry emoji256 text in
// JSON, YAML and MessagePack documents.
package emoji256

import (
	"github.com/arloliu/emoji256/codec"
	"github.com/arloliu/emoji256/errs"
	"github.com/arloliu/emoji256/internal/strview"
)

// ByteSeq is the set of inputs the package-level functions accept.
type ByteSeq interface {
	~string | ~[]byte
}

// Errors returned by the decode functions.
var (
	ErrInvalidUTF8       = errs.ErrInvalidUTF8
	ErrInvalidSymbol     = errs.ErrInvalidSymbol
	ErrInvalidSrcLength  = errs.ErrInvalidSrcLength
	ErrInvalidDestLength = errs.ErrInvalidDestLength
)

type (
	// InvalidUTF8Error reports encoded input that is not valid UTF-8.
	InvalidUTF8Error = errs.InvalidUTF8Error

	// InvalidSymbolError reports a character that is not an emoji256 symbol.
	InvalidSymbolError = errs.InvalidSymbolError
)

// EncodedLen returns the length in bytes of the encoding of n source bytes.
func EncodedLen(n int) int {
	return codec.EncodedLen(n)
}

// DecodedLen returns the number of bytes decoded from n bytes of encoded text.
func DecodedLen(n int) int {
	return codec.DecodedLen(n)
}

// Encode returns the emoji256 encoding of data.
func Encode[T ByteSeq](data T) string {
	return codec.Default().EncodeToString(view(data))
}

// EncodeToSlice writes the emoji256 encoding of data into dst, which must be
// exactly EncodedLen(len(data)) bytes long.
func EncodeToSlice[T ByteSeq](dst []byte, data T) error {
	return codec.Default().EncodeToSlice(dst, view(data))
}

// Decode returns the bytes represented by the emoji256 text data.
func Decode[T ByteSeq](data T) ([]byte, error) {
	return codec.Default().Decode(view(data))
}

// DecodeToSlice decodes data into dst, which must be exactly DecodedLen(len(data))
// bytes long.
func DecodeToSlice[T ByteSeq](dst []byte, data T) error {
	return codec.Default().DecodeToSlice(dst, view(data))
}

// DecodeArray decodes data into a fixed-size array. data must hold exactly
// len(A) symbols.
func DecodeArray[A codec.ByteArray, T ByteSeq](data T) (A, error) {
	return codec.DecodeArray[A](codec.Default(), view(data))
}

// view returns the bytes of data, without copying for string and []byte.
func view[T ByteSeq](data T) []byte {
	switch v := any(data).(type) {
	case []byte:
		return v
	case string:
		return strview.Bytes(v)
	}

	return []byte(data)
}
