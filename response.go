package jrpcdec

// Marker records that a member was present in a response. Its content is not interpreted.
type Marker struct{}

// Payload is the outcome carried by a response, either [Success] or [Failure].
// The zero value is not a valid payload and is never part of a decoded [Response].
type Payload uint8

const (
	Success Payload = iota + 1 // The response had a "result" member.
	Failure                    // The response had an "error" member.
)

// String implements fmt.Stringer.
func (p Payload) String() string {
	switch p {
	case Success:
		return "result"
	case Failure:
		return "error"
	default:
		return "none"
	}
}

// Response is a decoded JSON-RPC 2.0 response object.
//
// Only the presence of members is recorded, their values are validated as JSON and then
// dropped, see [cursor.Map.NextValue] for reading them.
type Response struct {
	JSONRPC Marker  // The "jsonrpc" member.
	ID      Marker  // The "id" member.
	Payload Payload // Exactly one of the "result" or "error" members.
}

// IsSuccess reports whether the response carries a result.
func (r Response) IsSuccess() bool {
	return r.Payload == Success
}
