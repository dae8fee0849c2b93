// Package jrpcdec decodes JSON-RPC 2.0 response objects with two interchangeable strategies
// for matching member names, so the cost of each can be measured on the same input.
//   - [DecodeEnum] classifies every member name into a [Key] and then dispatches on it.
//   - [DecodeStr] dispatches directly on the member name.
//
// Both strategies read the object through [cursor.DecodeObject], share the same validation
// and return the same [Response] or the same error for any input:
//
//	res, err := jrpcdec.DecodeEnum([]byte(`{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`))
//	if err != nil {
//	  log.Fatalf("failed to decode: %v", err)
//	}
//
//	fmt.Println(res.Payload) // result
//
// A response must have "jsonrpc", "id", and exactly one of "result" or "error". Other members are
// skipped whatever their shape. "jsonrpc" and "id" may be repeated, the last one wins, a second
// "result" or "error" is an error:
//
//	_, err := jrpcdec.DecodeStr([]byte(`{"jsonrpc":"2.0","id":1,"result":1,"error":{}}`))
//
//	var fieldErr *jrpcdec.FieldError
//	if errors.As(err, &fieldErr) && errors.Is(err, jrpcdec.ErrDuplicateField) {
//	  log.Printf("duplicate %s", fieldErr.Field) // duplicate result/error
//	}
//
// When several fields are missing only the first one is reported, checking jsonrpc, id and then
// result/error, unless none of them is present, which is reported as [ErrMissingFields].
//
// Member values are never interpreted, a [Response] only records which members were present.
// Use [cursor.Map.NextValue] to build a decoder that keeps them.
package jrpcdec
