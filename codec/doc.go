// Package codec implements the emoji256 encode and decode transforms.
//
// emoji256 maps every byte to one of 256 emoji, each exactly 4 bytes of UTF-8,
// so the encoded form is always 4× the length of the input. It is the moral
// equivalent of hexadecimal with a full byte per symbol instead of a nibble.
//
// # Basic Usage
//
//	c := codec.Default()
//
//	s := c.EncodeToString([]byte("kiwi")) // "💢💟💸💟"
//	b, err := c.DecodeString(s)           // []byte("kiwi"), nil
//
// Caller-owned buffers avoid allocation entirely. Their length must match exactly:
//
//	dst := make([]byte, codec.EncodedLen(4))
//	err := c.EncodeToSlice(dst, []byte("kiwi"))
//
//	out := make([]byte, codec.DecodedLen(len(dst)))
//	err = c.DecodeToSlice(out, dst)
//
// Fixed-size results are decoded with DecodeArray or, when the length is only
// known at run time, with DecodeN:
//
//	digest, err := codec.DecodeArray[[32]byte](c, encodedDigest)
//	key, err := c.DecodeN(encodedKey, keyLen)
//
// # Validation
//
// Every decode entry point validates its input in the same order and returns the
// first failure:
//
//  1. The encoded length must be a multiple of 4 (errs.ErrInvalidSrcLength).
//  2. The decoded size must not exceed the configured limit (errs.ErrDecodedTooLarge).
//  3. The input must be valid UTF-8 (errs.InvalidUTF8Error).
//  4. A caller-supplied destination must be exactly a quarter of the input
//     (errs.ErrInvalidDestLength).
//  5. Every character must be a table symbol (errs.InvalidSymbolError).
//
// Checks 1-4 happen before anything is written. A failure in step 5 leaves the
// bytes decoded before the offending character in the destination.
//
// # Configuration
//
// New accepts functional options:
//
//	c, err := codec.New(
//	    codec.WithMaxDecodedLen(1<<20),
//	    codec.WithLegacyUTF8Index(true),
//	)
//
// # Thread Safety
//
// A Codec is immutable after construction and safe for concurrent use. The
// encode and decode methods never retain the buffers passed to them.
package codec
