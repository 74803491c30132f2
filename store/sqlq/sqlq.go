// Package sqlq models SQL query descriptors and their bound parameters
// independently of any storage backend.
//
// A Query pairs statement text with a Params value in one of three shapes:
// no parameters, an ordered positional list, or named pairs. The placeholder
// style in the statement text must match the shape supplied (ordinal markers
// for positional, named markers for named); that contract is the caller's and
// is not validated here — a mismatch surfaces as a backend execution error.
package sqlq

import (
	"bytes"
	"math"

	"github.com/google/uuid"
)

// Kind identifies which scalar a Param carries. Exactly one kind is active
// per Param.
type Kind uint8

const (
	KindNull Kind = iota
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindUint128
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindInt128
	KindFloat32
	KindFloat64
	KindText
	KindBlob
	KindUUID
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint:
		return "uint"
	case KindUint128:
		return "uint128"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt:
		return "int"
	case KindInt128:
		return "int128"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindText:
		return "text"
	case KindBlob:
		return "blob"
	case KindUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// Param is a tagged scalar value bound to a query placeholder.
//
// The zero Param is the null value. Construct non-null params with Bind or
// the typed constructors; conversion never fails.
type Param struct {
	kind Kind
	bits uint64
	wide Uint128
	text string
	blob []byte
	id   uuid.UUID
}

// Native is the closed set of Go scalar types convertible to a Param.
type Native interface {
	uint8 | uint16 | uint32 | uint64 | uint |
		int8 | int16 | int32 | int64 | int |
		float32 | float64 | string | []byte |
		uuid.UUID | Uint128 | Int128
}

// Bind converts a native scalar into a Param. The conversion is total: every
// type admitted by the Native constraint has exactly one Param kind.
//
// uint64 values above the signed 64-bit range keep their bit pattern when
// marshalled to a backend integer; reading the column back and re-casting
// reproduces the original value.
func Bind[T Native](v T) Param {
	switch v := any(v).(type) {
	case uint8:
		return Param{kind: KindUint8, bits: uint64(v)}
	case uint16:
		return Param{kind: KindUint16, bits: uint64(v)}
	case uint32:
		return Param{kind: KindUint32, bits: uint64(v)}
	case uint64:
		return Param{kind: KindUint64, bits: v}
	case uint:
		return Param{kind: KindUint, bits: uint64(v)}
	case int8:
		return Param{kind: KindInt8, bits: uint64(int64(v))}
	case int16:
		return Param{kind: KindInt16, bits: uint64(int64(v))}
	case int32:
		return Param{kind: KindInt32, bits: uint64(int64(v))}
	case int64:
		return Param{kind: KindInt64, bits: uint64(v)}
	case int:
		return Param{kind: KindInt, bits: uint64(int64(v))}
	case float32:
		return Param{kind: KindFloat32, bits: uint64(math.Float32bits(v))}
	case float64:
		return Param{kind: KindFloat64, bits: math.Float64bits(v)}
	case string:
		return Param{kind: KindText, text: v}
	case []byte:
		return Param{kind: KindBlob, blob: v}
	case uuid.UUID:
		return Param{kind: KindUUID, id: v}
	case Uint128:
		return Param{kind: KindUint128, wide: v}
	case Int128:
		return Param{kind: KindInt128, wide: v.bits()}
	}
	// Unreachable: the Native constraint admits no other types.
	return Param{}
}

// Null returns the null Param.
func Null() Param {
	return Param{}
}

// Kind reports which scalar the Param carries.
func (p Param) Kind() Kind {
	return p.kind
}

// Int64 returns the value of a signed integer Param (kinds int8 through
// int64 and int). The result is unspecified for other kinds.
func (p Param) Int64() int64 {
	return int64(p.bits)
}

// Uint64 returns the value of an unsigned integer Param (kinds uint8 through
// uint64 and uint). The result is unspecified for other kinds.
func (p Param) Uint64() uint64 {
	return p.bits
}

// Float64 returns the value of a float Param. Float32 params widen exactly.
func (p Param) Float64() float64 {
	if p.kind == KindFloat32 {
		return float64(math.Float32frombits(uint32(p.bits)))
	}
	return math.Float64frombits(p.bits)
}

// Text returns the value of a text Param.
func (p Param) Text() string {
	return p.text
}

// Blob returns the value of a blob Param. The slice is shared, not copied.
func (p Param) Blob() []byte {
	return p.blob
}

// UUID returns the value of a uuid Param.
func (p Param) UUID() uuid.UUID {
	return p.id
}

// Uint128 returns the value of a uint128 Param.
func (p Param) Uint128() Uint128 {
	return p.wide
}

// Int128 returns the value of an int128 Param.
func (p Param) Int128() Int128 {
	return int128FromBits(p.wide)
}

// Equal reports structural equality of two params.
func (p Param) Equal(o Param) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case KindText:
		return p.text == o.text
	case KindBlob:
		return bytes.Equal(p.blob, o.blob)
	case KindUUID:
		return p.id == o.id
	case KindUint128, KindInt128:
		return p.wide == o.wide
	default:
		return p.bits == o.bits
	}
}
