// Package strview provides zero-copy byte views of strings.
package strview

import "unsafe"

// Bytes returns the bytes of s without copying.
//
// The returned slice aliases the string's memory and must never be written to.
func Bytes(s string) []byte {
	if s == "" {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}
