package cursor

// Key is the name of an object member as seen by a [Map].
//
// The bytes of a Key are borrowed from the input itself when the name had no escape
// sequences, otherwise they are an owned, unescaped copy held in a
// scratch buffer that is reused for the next escaped name. Either way a Key is only
// valid until the next call on the [Map] that returned it, use [Key.String] to keep it.
type Key struct {
	b     []byte
	owned bool
}

// Bytes returns the unescaped name. The slice must not be modified nor retained.
func (k Key) Bytes() []byte {
	return k.b
}

// String returns a copy of the unescaped name.
func (k Key) String() string {
	return string(k.b)
}

// Borrowed reports whether the name is a view of the input that needed no unescaping.
func (k Key) Borrowed() bool {
	return !k.owned
}

// Len returns the length of the unescaped name in bytes.
func (k Key) Len() int {
	return len(k.b)
}
