// Package alphabet provides the emoji256 symbol table.
//
// The table maps each byte value to one emoji whose UTF-8 form is exactly
// SymbolLen bytes long, and maps those emoji back to byte values. It is built
// once at package initialization and never mutated, so a *Table is safe for
// concurrent use by any number of goroutines.
//
//	t := alphabet.Default()
//	r := t.Rune('k')        // '💢'
//	b, ok := t.Lookup('💢') // 'k', true
package alphabet

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/emoji256/errs"
	"github.com/arloliu/emoji256/internal/hash"
)

const (
	// Size is the number of symbols in the alphabet, one per byte value.
	Size = 256

	// SymbolLen is the length in bytes of the UTF-8 encoding of every symbol.
	SymbolLen = 4
)

// Table is an immutable, sorted, bijective mapping between byte values and symbols.
type Table struct {
	runes       [Size]rune
	symbols     [Size][SymbolLen]byte
	fingerprint uint64
}

var defaultTable = mustNewTable(emojiRunes)

// Default returns the emoji256 symbol table.
func Default() *Table {
	return defaultTable
}

// newTable validates runes and precomputes their UTF-8 forms.
//
// The runes must be strictly increasing, which also makes them distinct, and each
// must encode to exactly SymbolLen bytes.
func newTable(runes [Size]rune) (*Table, error) {
	t := &Table{runes: runes}

	for i, r := range runes {
		if n := utf8.RuneLen(r); n != SymbolLen {
			return nil, fmt.Errorf("%w: symbol %U at index %d encodes to %d bytes, want %d",
				errs.ErrInvalidAlphabet, r, i, n, SymbolLen)
		}
		if i > 0 && r <= runes[i-1] {
			return nil, fmt.Errorf("%w: symbol %U at index %d does not sort after %U",
				errs.ErrInvalidAlphabet, r, i, runes[i-1])
		}
		utf8.EncodeRune(t.symbols[i][:], r)
	}

	t.fingerprint = hash.Sum64Runes(t.runes[:])

	return t, nil
}

func mustNewTable(runes [Size]rune) *Table {
	t, err := newTable(runes)
	if err != nil {
		panic(err)
	}

	return t
}

// Rune returns the symbol for byte value b.
func (t *Table) Rune(b byte) rune {
	return t.runes[b]
}

// Symbol returns the UTF-8 encoding of the symbol for byte value b.
func (t *Table) Symbol(b byte) [SymbolLen]byte {
	return t.symbols[b]
}

// PutSymbol writes the UTF-8 encoding of the symbol for b into dst[:SymbolLen].
// It panics if dst is shorter than SymbolLen.
func (t *Table) PutSymbol(dst []byte, b byte) {
	sym := &t.symbols[b]
	_ = dst[SymbolLen-1] // bounds check hint to compiler
	dst[0] = sym[0]
	dst[1] = sym[1]
	dst[2] = sym[2]
	dst[3] = sym[3]
}

// AppendSymbol appends the UTF-8 encoding of the symbol for b to dst.
func (t *Table) AppendSymbol(dst []byte, b byte) []byte {
	return append(dst, t.symbols[b][:]...)
}

// Lookup returns the byte value whose symbol is r.
//
// It binary-searches the sorted table, taking at most 8 comparisons, and
// reports false when r is not a symbol.
func (t *Table) Lookup(r rune) (byte, bool) {
	lo, hi := 0, Size
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := t.runes[mid]; {
		case r < c:
			hi = mid
		case r > c:
			lo = mid + 1
		default:
			return byte(mid), true
		}
	}

	return 0, false
}

// Runes returns a copy of the symbols in byte-value order.
func (t *Table) Runes() [Size]rune {
	return t.runes
}

// Fingerprint returns the xxHash64 of the concatenated symbols.
//
// Two tables with the same fingerprint encode identically, which lets separate
// installations confirm they share an alphabet without comparing all 256 entries.
func (t *Table) Fingerprint() uint64 {
	return t.fingerprint
}

// String returns all symbols concatenated in byte-value order.
func (t *Table) String() string {
	var sb strings.Builder
	sb.Grow(Size * SymbolLen)
	for i := range t.symbols {
		sb.Write(t.symbols[i][:])
	}

	return sb.String()
}
