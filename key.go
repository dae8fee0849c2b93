package jrpcdec

// Key is the role of an object member in a response.
type Key uint8

const (
	KeyUnknown Key = iota // Any other member, its value is skipped.
	KeyJSONRPC
	KeyID
	KeyResult
	KeyError
)

// String implements fmt.Stringer.
func (k Key) String() string {
	switch k {
	case KeyJSONRPC:
		return "jsonrpc"
	case KeyID:
		return "id"
	case KeyResult:
		return "result"
	case KeyError:
		return "error"
	default:
		return "unknown"
	}
}

// ClassifyKey returns the role of the member called name. Names are matched exactly,
// case and surrounding whitespace included, anything else is [KeyUnknown].
func ClassifyKey(name []byte) Key {
	switch string(name) { // No allocation, the conversion is only used for comparison.
	case "jsonrpc":
		return KeyJSONRPC
	case "id":
		return KeyID
	case "result":
		return KeyResult
	case "error":
		return KeyError
	default:
		return KeyUnknown
	}
}
