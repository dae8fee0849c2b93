package jrpcdec

import (
	"errors"
	"fmt"
)

// Field names used in decode errors.
const (
	FieldJSONRPC = "jsonrpc"
	FieldID      = "id"
	FieldPayload = "result/error" // The result and error members share one slot.
)

var (
	ErrMissingFields  = errors.New("missing fields jsonrpc + id + result/error") // No known member was present.
	ErrMissingField   = errors.New("missing field")                              // Wrapped by FieldError.
	ErrDuplicateField = errors.New("duplicate field")                            // Wrapped by FieldError.
)

// FieldError is returned when a single field is missing or repeated, Err is [ErrMissingField]
// or [ErrDuplicateField]:
//
//	var fieldErr *jrpcdec.FieldError
//	if errors.As(err, &fieldErr) && errors.Is(err, jrpcdec.ErrMissingField) {
//		log.Printf("response has no %s", fieldErr.Field)
//	}
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v `%s`", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

func duplicateField(field string) error {
	return &FieldError{Field: field, Err: ErrDuplicateField}
}
