// Package codec provides JSON serialization helpers with a unified error
// shape, used to move entity data in and out of row payloads.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
)

// Op names the codec direction that failed.
type Op string

const (
	// OpEncode is serialization.
	OpEncode Op = "encode"
	// OpDecode is deserialization.
	OpDecode Op = "decode"
)

// Error wraps a serialization or deserialization failure.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("codec %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Encode writes v as JSON to w.
func Encode(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return &Error{Op: OpEncode, Err: err}
	}
	return nil
}

// Decode reads a JSON value of type T from r.
func Decode[T any](r io.Reader) (T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, &Error{Op: OpDecode, Err: err}
	}
	return v, nil
}
