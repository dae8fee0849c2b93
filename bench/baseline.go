package bench

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/kytnacode/jrpcdec"
)

// ErrNotObject is returned by DecodeJSONIter when the input is not a JSON object.
var ErrNotObject = errors.New("expected JSON-RPC 2.0 Response object")

// iterConfig unescapes member names, unlike jsoniter.ConfigFastest which requires simple names.
var iterConfig = jsoniter.Config{}.Froze()

// DecodeJSONIter decodes a response with jsoniter's callback object reader, which always copies
// member names into new strings. It follows the same rules as [jrpcdec.DecodeEnum] and serves as
// a reference point for the two cursor based strategies.
func DecodeJSONIter(data []byte) (jrpcdec.Response, error) {
	iter := iterConfig.BorrowIterator(data)
	defer iterConfig.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return jrpcdec.Response{}, ErrNotObject
	}

	var (
		jsonrpc, id bool
		payload     jrpcdec.Payload
		dupErr      error
	)

	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch field {
		case "jsonrpc":
			jsonrpc = true
			it.Skip()
		case "id":
			id = true
			it.Skip()
		case "result", "error":
			if payload != 0 {
				dupErr = &jrpcdec.FieldError{Field: jrpcdec.FieldPayload, Err: jrpcdec.ErrDuplicateField}
				return false
			}

			payload = jrpcdec.Success
			if field == "error" {
				payload = jrpcdec.Failure
			}

			it.Skip()
		default:
			it.Skip()
		}

		return it.Error == nil
	})

	if dupErr != nil {
		return jrpcdec.Response{}, dupErr
	}

	if iter.Error != nil && iter.Error != io.EOF {
		return jrpcdec.Response{}, errors.Wrap(iter.Error, "jsoniter")
	}

	switch {
	case jsonrpc && id && payload != 0:
		return jrpcdec.Response{Payload: payload}, nil
	case !jsonrpc && !id && payload == 0:
		return jrpcdec.Response{}, jrpcdec.ErrMissingFields
	case !jsonrpc:
		return jrpcdec.Response{}, &jrpcdec.FieldError{Field: jrpcdec.FieldJSONRPC, Err: jrpcdec.ErrMissingField}
	case !id:
		return jrpcdec.Response{}, &jrpcdec.FieldError{Field: jrpcdec.FieldID, Err: jrpcdec.ErrMissingField}
	default:
		return jrpcdec.Response{}, &jrpcdec.FieldError{Field: jrpcdec.FieldPayload, Err: jrpcdec.ErrMissingField}
	}
}
