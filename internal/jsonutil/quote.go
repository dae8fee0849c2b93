package jsonutil

import "bytes"

// StringContents returns the bytes between the quotes of a raw, already validated JSON string,
// and whether they contain escape sequences. When escaped is false the contents are the
// string's value and can be used in place, otherwise they must be unescaped first.
//
// raw must start and end with a double quote, it is returned unchanged if it doesn't.
func StringContents(raw []byte) (contents []byte, escaped bool) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return raw, false
	}

	contents = raw[1 : len(raw)-1]

	return contents, bytes.IndexByte(contents, '\\') >= 0
}
