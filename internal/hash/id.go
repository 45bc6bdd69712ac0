package hash

import (
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64Runes computes the xxHash64 of the UTF-8 encoding of runes without
// materializing the concatenated string.
func Sum64Runes(runes []rune) uint64 {
	d := xxhash.New()
	var buf [utf8.UTFMax]byte
	for _, r := range runes {
		n := utf8.EncodeRune(buf[:], r)
		_, _ = d.Write(buf[:n])
	}

	return d.Sum64()
}
