// Package cursor provides a pull-style reader over the members of a single JSON object.
//
// The reader hands out member names one at a time through [Map.NextKey], and the caller
// decides, for each name, whether the paired value is consumed with [Map.NextValue] or
// discarded with [Map.SkipValue]. Nested values are traversed and validated by the
// cursor, callers never see their tokens.
//
// Duplicate member names are reported as they appear, deciding what a duplicate means is
// left to the caller.
//
// Example:
//
//	n, err := cursor.DecodeObject(data, "Point", []string{"x", "y"}, func(m cursor.Map) (int, error) {
//		var n int
//
//		for {
//			_, ok, err := m.NextKey()
//			if err != nil {
//				return 0, err
//			}
//
//			if !ok {
//				return n, nil
//			}
//
//			n++
//
//			if err := m.SkipValue(); err != nil {
//				return 0, err
//			}
//		}
//	})
package cursor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/kytnacode/jrpcdec/internal/jsonutil"
)

// maxScratch is the largest unescape buffer kept when a cursor is returned to the pool.
const maxScratch = 64 << 10

var (
	ErrValuePending   = errors.New("cursor: value of the previous key was not consumed") // NextKey called twice in a row.
	ErrNoPendingKey   = errors.New("cursor: no key pending a value")                     // NextValue or SkipValue without a key.
	ErrIncomplete     = errors.New("cursor: object was not read to the end")             // Visitor returned before the closing brace.
	ErrTrailingData   = errors.New("cursor: unexpected data after top-level object")     // More values after the object.
	ErrUnexpectedKind = errors.New("cursor: unexpected token inside object")             // A non-name token where a member name was expected.
)

// RawValue is the raw JSON text of a value, it is only valid until the next call on the [Map]
// that returned it.
type RawValue = jsontext.Value

// Map reads the members of one object. Calls must alternate between NextKey and one of
// NextValue or SkipValue.
type Map interface {
	// NextKey returns the name of the next member, ok is false once the object is exhausted.
	NextKey() (key Key, ok bool, err error)
	// NextValue consumes the value paired with the last key and returns its raw text.
	NextValue() (RawValue, error)
	// SkipValue consumes and discards the value paired with the last key.
	SkipValue() error
}

// TypeError is returned by [DecodeObject] when the top-level value is not an object.
type TypeError struct {
	Name   string   // Name of the expected shape, e.g. "Response".
	Fields []string // Fields the expected shape knows about.
	Got    string   // Kind of the value found instead.
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cursor: invalid type: %s, expected object %s with fields %q", e.Got, e.Name, e.Fields)
}

// decodeOptions lets duplicate names through, callers own their semantics.
var decodeOptions = jsontext.AllowDuplicateNames(true)

// object is the jsontext backed Map, it is pooled across DecodeObject calls.
type object struct {
	rd      bytes.Buffer // Handed to jsontext as *bytes.Buffer, which it reads in place.
	dec     *jsontext.Decoder
	scratch []byte // Unescaped names.
	pending bool   // A key was returned and its value not consumed yet.
	done    bool   // Closing brace was consumed.
}

var objectPool = sync.Pool{
	New: func() any {
		o := new(object)
		o.dec = jsontext.NewDecoder(&o.rd, decodeOptions)

		return o
	},
}

func getObject(data []byte) *object {
	o, _ := objectPool.Get().(*object) // Safe to convert.

	o.rd = *bytes.NewBuffer(data)
	o.dec.Reset(&o.rd, decodeOptions)
	o.pending = false
	o.done = false

	return o
}

func putObject(o *object) {
	o.rd = bytes.Buffer{} // Don't hold on to the input.
	o.dec.Reset(&o.rd, decodeOptions)

	if cap(o.scratch) > maxScratch {
		o.scratch = nil
	}

	objectPool.Put(o)
}

// DecodeObject checks that data holds exactly one JSON object and calls visit with a [Map]
// positioned before its first member. visit must read the object to the end.
//
// name and fields describe the expected shape, they are only used in error messages.
// Errors returned by visit are returned unchanged, syntax errors in data are returned as
// reported by jsontext.
func DecodeObject[T any](data []byte, name string, fields []string, visit func(m Map) (T, error)) (T, error) {
	var zero T

	o := getObject(data)
	defer putObject(o)

	switch kind := o.dec.PeekKind(); kind {
	case '{':
	case 0:
		return zero, o.readErr()
	default:
		return zero, &TypeError{Name: name, Fields: fields, Got: kindName(kind)}
	}

	if _, err := o.dec.ReadToken(); err != nil { // Begin object.
		return zero, err
	}

	v, err := visit(o)
	if err != nil {
		return zero, err
	}

	if !o.done {
		return zero, ErrIncomplete
	}

	// Only whitespace may follow the object.
	if _, err := o.dec.ReadToken(); err == nil {
		return zero, ErrTrailingData
	} else if !errors.Is(err, io.EOF) {
		return zero, err
	}

	return v, nil
}

// NextKey implements the Map interface.
func (o *object) NextKey() (Key, bool, error) {
	if o.pending {
		return Key{}, false, ErrValuePending
	}

	if o.done {
		return Key{}, false, nil
	}

	switch o.dec.PeekKind() {
	case '"':
	case '}':
		if _, err := o.dec.ReadToken(); err != nil { // End object.
			return Key{}, false, err
		}

		o.done = true

		return Key{}, false, nil
	default:
		return Key{}, false, o.readErr()
	}

	raw, err := o.dec.ReadValue()
	if err != nil {
		return Key{}, false, err
	}

	o.pending = true

	contents, escaped := jsonutil.StringContents(raw)
	if !escaped {
		return Key{b: contents}, true, nil
	}

	o.scratch, err = jsontext.AppendUnquote(o.scratch[:0], raw)
	if err != nil {
		return Key{}, false, err
	}

	return Key{b: o.scratch, owned: true}, true, nil
}

// NextValue implements the Map interface.
func (o *object) NextValue() (RawValue, error) {
	if !o.pending {
		return nil, ErrNoPendingKey
	}

	o.pending = false

	return o.dec.ReadValue()
}

// SkipValue implements the Map interface.
func (o *object) SkipValue() error {
	if !o.pending {
		return ErrNoPendingKey
	}

	o.pending = false

	return o.dec.SkipValue()
}

// readErr surfaces the error behind an invalid peek.
func (o *object) readErr() error {
	_, err := o.dec.ReadToken()

	switch {
	case errors.Is(err, io.EOF):
		return io.ErrUnexpectedEOF
	case err != nil:
		return err
	default:
		return ErrUnexpectedKind
	}
}

func kindName(k jsontext.Kind) string {
	switch k {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '"':
		return "string"
	case '0':
		return "number"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		return fmt.Sprintf("kind %q", byte(k))
	}
}
