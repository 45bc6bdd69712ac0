// Package errs defines the errors returned by the emoji256 packages.
//
// Every failure is a leaf validation error. Callers test for a kind with errors.Is
// against the sentinels below, and use errors.As with InvalidUTF8Error or
// InvalidSymbolError when they need the offending position.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUTF8 is the kind of InvalidUTF8Error.
	ErrInvalidUTF8 = errors.New("encoded input is not valid utf-8")

	// ErrInvalidSymbol is the kind of InvalidSymbolError.
	ErrInvalidSymbol = errors.New("character is not an emoji256 symbol")

	// ErrInvalidSrcLength is returned when the encoded input is not a multiple of 4 bytes long.
	ErrInvalidSrcLength = errors.New("source buffer length is not a multiple of 4")

	// ErrInvalidDestLength is returned when a caller supplied buffer or fixed-size container
	// does not have exactly the required length.
	ErrInvalidDestLength = errors.New("destination buffer length does not match")

	// ErrDecodedTooLarge is returned when the decoded size would exceed the codec's configured limit.
	ErrDecodedTooLarge = errors.New("decoded size exceeds limit")

	// ErrInvalidAlphabet is returned when a symbol table fails validation.
	ErrInvalidAlphabet = errors.New("invalid emoji256 alphabet")
)

// InvalidUTF8Error reports encoded input that is not well-formed UTF-8.
//
// Index is a byte offset into the encoded input. By default it is the offset of the
// first invalid byte; codecs built with the legacy index option report that offset plus one.
type InvalidUTF8Error struct {
	Index int
}

func (e InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid character at position %d", e.Index)
}

// Is reports whether target is ErrInvalidUTF8.
func (e InvalidUTF8Error) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// InvalidSymbolError reports a decoded character that has no entry in the symbol table.
//
// Index counts characters, not bytes: an error at Index 2 means the third character
// of the input was rejected.
type InvalidSymbolError struct {
	Index int
	Char  rune
}

func (e InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Index)
}

// Is reports whether target is ErrInvalidSymbol.
func (e InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}
