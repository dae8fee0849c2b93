// Package jsonutil holds small byte-level helpers for JSON text.
package jsonutil

import "bytes"

// TrimLeftWhitespace returns b without leading JSON whitespace.
func TrimLeftWhitespace(b []byte) []byte {
	return bytes.TrimLeft(b, " \t\n\r") // Trim space, tab, newline, and carriage return, see RFC 8259.
}

// IsObject reports whether the first non-whitespace byte of b opens a JSON object.
// It does not validate the rest of the text.
func IsObject(b []byte) bool {
	trimmed := TrimLeftWhitespace(b)

	return len(trimmed) > 0 && trimmed[0] == '{'
}
