package jrpcdec

import "github.com/kytnacode/jrpcdec/cursor"

// accumulator collects the members of one response while its object is read.
// Both decoders share it, only the way they recognize keys differs.
type accumulator struct {
	jsonrpc bool
	id      bool
	payload Payload // Zero until result or error is seen.
}

// setJSONRPC consumes the jsonrpc value. A repeated member overwrites the previous one.
func (a *accumulator) setJSONRPC(m cursor.Map) error {
	if _, err := m.NextValue(); err != nil {
		return err
	}

	a.jsonrpc = true

	return nil
}

// setID consumes the id value. A repeated member overwrites the previous one.
func (a *accumulator) setID(m cursor.Map) error {
	if _, err := m.NextValue(); err != nil {
		return err
	}

	a.id = true

	return nil
}

// setPayload consumes a result or error value, the slot can only be filled once.
func (a *accumulator) setPayload(m cursor.Map, p Payload) error {
	if a.payload != 0 {
		return duplicateField(FieldPayload)
	}

	if _, err := m.NextValue(); err != nil {
		return err
	}

	a.payload = p

	return nil
}

// finish builds the response, or reports the first missing field in jsonrpc, id, result/error order.
func (a *accumulator) finish() (Response, error) {
	switch {
	case a.jsonrpc && a.id && a.payload != 0:
		return Response{Payload: a.payload}, nil
	case !a.jsonrpc && !a.id && a.payload == 0:
		return Response{}, ErrMissingFields
	case !a.jsonrpc:
		return Response{}, missingField(FieldJSONRPC)
	case !a.id:
		return Response{}, missingField(FieldID)
	default:
		return Response{}, missingField(FieldPayload)
	}
}
