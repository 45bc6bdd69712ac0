package codec

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/emoji256/alphabet"
	"github.com/arloliu/emoji256/errs"
	"github.com/arloliu/emoji256/internal/options"
	"github.com/arloliu/emoji256/internal/strview"
)

// Codec encodes bytes to emoji256 text and decodes it back.
type Codec struct {
	table           *alphabet.Table
	legacyUTF8Index bool
	maxDecodedLen   int
}

var defaultCodec = &Codec{table: alphabet.Default()}

// Default returns the shared codec with default settings.
func Default() *Codec {
	return defaultCodec
}

// New creates a codec over the emoji256 alphabet.
//
// Parameters:
//   - opts: Optional configuration (WithLegacyUTF8Index, WithMaxDecodedLen)
//
// Returns:
//   - *Codec: The configured codec
//   - error: An error if any option is invalid
func New(opts ...Option) (*Codec, error) {
	c := &Codec{table: alphabet.Default()}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Table returns the symbol table used by the codec.
func (c *Codec) Table() *alphabet.Table {
	return c.table
}

// EncodedLen returns the length in bytes of the encoding of n source bytes.
func EncodedLen(n int) int {
	return n * alphabet.SymbolLen
}

// DecodedLen returns the number of bytes decoded from n bytes of well-formed encoded text.
func DecodedLen(n int) int {
	return n / alphabet.SymbolLen
}

// EncodeToString returns the emoji256 encoding of src.
//
// Encoding cannot fail; an empty src yields an empty string.
func (c *Codec) EncodeToString(src []byte) string {
	var sb strings.Builder
	sb.Grow(EncodedLen(len(src)))
	for _, b := range src {
		sym := c.table.Symbol(b)
		sb.Write(sym[:])
	}

	return sb.String()
}

// AppendEncode appends the emoji256 encoding of src to dst and returns the extended buffer.
func (c *Codec) AppendEncode(dst, src []byte) []byte {
	n := EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	c.encode(dst[len(dst):len(dst)+n], src)

	return dst[:len(dst)+n]
}

// EncodeToSlice writes the emoji256 encoding of src into dst without allocating.
//
// dst must be exactly EncodedLen(len(src)) bytes long, neither shorter nor longer.
// Otherwise errs.ErrInvalidDestLength is returned and dst is left untouched.
func (c *Codec) EncodeToSlice(dst, src []byte) error {
	if err := checkDestLen(len(dst), EncodedLen(len(src))); err != nil {
		return err
	}
	c.encode(dst, src)

	return nil
}

func (c *Codec) encode(dst, src []byte) {
	for i, b := range src {
		c.table.PutSymbol(dst[i*alphabet.SymbolLen:], b)
	}
}

// Decode returns the bytes represented by the emoji256 text src.
func (c *Codec) Decode(src []byte) ([]byte, error) {
	if err := c.validate(src); err != nil {
		return nil, err
	}

	dst := make([]byte, DecodedLen(len(src)))
	if err := c.decode(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeString returns the bytes represented by the emoji256 string s.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	return c.Decode(strview.Bytes(s))
}

// AppendDecode appends the bytes represented by src to dst and returns the extended buffer.
//
// On error, dst is returned with its original length; bytes past it may have been overwritten.
func (c *Codec) AppendDecode(dst, src []byte) ([]byte, error) {
	if err := c.validate(src); err != nil {
		return dst, err
	}

	n := DecodedLen(len(src))
	out := slices.Grow(dst, n)
	if err := c.decode(out[len(out):len(out)+n], src); err != nil {
		return dst, err
	}

	return out[:len(out)+n], nil
}

// DecodeToSlice decodes src into dst without allocating.
//
// dst must be exactly DecodedLen(len(src)) bytes long. Length and UTF-8 errors are
// reported before dst is touched. If src contains a character that is not a symbol,
// the bytes before it have already been written to dst when the error is returned.
func (c *Codec) DecodeToSlice(dst, src []byte) error {
	if err := c.validate(src); err != nil {
		return err
	}
	if err := checkDestLen(len(dst), DecodedLen(len(src))); err != nil {
		return err
	}

	return c.decode(dst, src)
}

// DecodeN decodes src into a new slice that must be exactly n bytes long.
//
// It is the run-time counterpart of DecodeArray, for fixed-size values such as keys
// or digests whose size is only known when the program runs.
func (c *Codec) DecodeN(src []byte, n int) ([]byte, error) {
	if err := c.validate(src); err != nil {
		return nil, err
	}
	if err := checkDestLen(n, DecodedLen(len(src))); err != nil {
		return nil, err
	}

	dst := make([]byte, n)
	if err := c.decode(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// validate runs the source checks shared by every decode entry point: length,
// size limit and UTF-8 well-formedness, in that order.
func (c *Codec) validate(src []byte) error {
	if len(src)%alphabet.SymbolLen != 0 {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidSrcLength, len(src))
	}

	if n := DecodedLen(len(src)); c.maxDecodedLen > 0 && n > c.maxDecodedLen {
		return fmt.Errorf("%w: %d bytes, limit %d", errs.ErrDecodedTooLarge, n, c.maxDecodedLen)
	}

	if valid := validPrefixLen(src); valid < len(src) {
		if c.legacyUTF8Index {
			valid++
		}

		return errs.InvalidUTF8Error{Index: valid}
	}

	return nil
}

// decode maps each symbol of src to its byte value. src must have passed validate
// and len(dst) must equal DecodedLen(len(src)).
//
// Every table symbol is SymbolLen bytes, so character i starts at byte i*SymbolLen
// until the first non-symbol, which is where decoding stops.
func (c *Codec) decode(dst, src []byte) error {
	for i := range dst {
		r, _ := utf8.DecodeRune(src[i*alphabet.SymbolLen:])
		b, ok := c.table.Lookup(r)
		if !ok {
			return errs.InvalidSymbolError{Index: i, Char: r}
		}
		dst[i] = b
	}

	return nil
}

// validPrefixLen returns the length of the longest prefix of p that is valid UTF-8.
func validPrefixLen(p []byte) int {
	if utf8.Valid(p) {
		return len(p)
	}

	i := 0
	for i < len(p) {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}

	return i
}

func checkDestLen(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: want %d bytes, got %d", errs.ErrInvalidDestLength, want, got)
	}

	return nil
}
