package jrpcdec

import "github.com/kytnacode/jrpcdec/cursor"

const responseName = "Response"

// responseFields are the members a response knows about.
var responseFields = []string{FieldJSONRPC, FieldID, "result", "error"}

// DecodeEnum decodes a JSON-RPC 2.0 response, recognizing each member by first
// classifying its name with [ClassifyKey].
//
// Unknown members are skipped, "jsonrpc" and "id" may be repeated (the last one wins),
// "result" and "error" are mutually exclusive and may appear only once. On failure the
// returned [Response] is the zero value and err is one of [ErrMissingFields], a
// [*FieldError], or the error reported by the JSON reader.
func DecodeEnum(data []byte) (Response, error) {
	return cursor.DecodeObject(data, responseName, responseFields, visitEnum)
}

// DecodeStr decodes a JSON-RPC 2.0 response like [DecodeEnum], but matches member
// names directly against the known names without classifying them first.
func DecodeStr(data []byte) (Response, error) {
	return cursor.DecodeObject(data, responseName, responseFields, visitStr)
}

func visitEnum(m cursor.Map) (Response, error) {
	var acc accumulator

	for {
		key, ok, err := m.NextKey()
		if err != nil {
			return Response{}, err
		}

		if !ok {
			break
		}

		switch ClassifyKey(key.Bytes()) {
		case KeyJSONRPC:
			err = acc.setJSONRPC(m)
		case KeyID:
			err = acc.setID(m)
		case KeyResult:
			err = acc.setPayload(m, Success)
		case KeyError:
			err = acc.setPayload(m, Failure)
		default:
			err = m.SkipValue()
		}

		if err != nil {
			return Response{}, err
		}
	}

	return acc.finish()
}

func visitStr(m cursor.Map) (Response, error) {
	var acc accumulator

	for {
		key, ok, err := m.NextKey()
		if err != nil {
			return Response{}, err
		}

		if !ok {
			break
		}

		switch string(key.Bytes()) {
		case "jsonrpc":
			err = acc.setJSONRPC(m)
		case "id":
			err = acc.setID(m)
		case "result":
			err = acc.setPayload(m, Success)
		case "error":
			err = acc.setPayload(m, Failure)
		default:
			err = m.SkipValue()
		}

		if err != nil {
			return Response{}, err
		}
	}

	return acc.finish()
}
