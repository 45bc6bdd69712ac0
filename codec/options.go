package codec

import (
	"fmt"

	"github.com/arloliu/emoji256/internal/options"
)

// Option configures a Codec built by New.
type Option = options.Option[*Codec]

// WithLegacyUTF8Index makes InvalidUTF8Error report one past the length of the
// longest valid UTF-8 prefix instead of the offset of the first invalid byte.
//
// The legacy arithmetic matches error payloads produced by earlier emoji256
// implementations. Leave it disabled unless you compare indexes with them.
func WithLegacyUTF8Index(enabled bool) Option {
	return options.NoError(func(c *Codec) {
		c.legacyUTF8Index = enabled
	})
}

// WithMaxDecodedLen bounds the number of bytes a single decode may produce.
//
// Inputs that would decode to more than n bytes are rejected with
// errs.ErrDecodedTooLarge before any UTF-8 validation or allocation. Zero
// disables the limit. A negative n is an error.
func WithMaxDecodedLen(n int) Option {
	return options.New(func(c *Codec) error {
		if n < 0 {
			return fmt.Errorf("invalid max decoded length: %d", n)
		}
		c.maxDecodedLen = n

		return nil
	})
}
