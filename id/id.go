// Package id provides the opaque entity identifier used across the data
// layer.
//
// An ID is a 128-bit UUID. It crosses the store boundary as its raw 16
// bytes; the hyphenated textual form is only used for interchange with
// humans and JSON.
package id

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// ID is a 128-bit unique identifier.
type ID uuid.UUID

// New generates a random (version 4) ID.
func New() ID {
	return ID(uuid.New())
}

// Zero returns the all-zero ID.
func Zero() ID {
	return ID(uuid.Nil)
}

// Parse reads an ID from its textual form. Hyphenated and bare hex forms
// are accepted in either case.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Zero(), fmt.Errorf("parse id: %w", err)
	}
	return ID(u), nil
}

// FromBytes reads an ID from its raw 16-byte form.
func FromBytes(b []byte) (ID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return Zero(), fmt.Errorf("id from bytes: %w", err)
	}
	return ID(u), nil
}

// Bytes returns the raw 16-byte form.
func (id ID) Bytes() [16]byte {
	return [16]byte(id)
}

// IsZero reports whether the ID is the all-zero value.
func (id ID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

// String returns the lowercase hyphenated form.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// UUID exposes the underlying uuid.UUID value.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// Value stores the ID as its raw 16 bytes.
func (id ID) Value() (driver.Value, error) {
	b := id.Bytes()
	return b[:], nil
}

// Scan reads an ID from a store column holding either the raw 16-byte blob
// or a textual form.
func (id *ID) Scan(src any) error {
	switch src := src.(type) {
	case []byte:
		if len(src) == 16 {
			parsed, err := FromBytes(src)
			if err != nil {
				return err
			}
			*id = parsed
			return nil
		}
		parsed, err := Parse(string(src))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case string:
		parsed, err := Parse(src)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("scan id: unsupported source type %T", src)
	}
}

// MarshalText renders the hyphenated form for JSON and text encodings.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the textual form.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
