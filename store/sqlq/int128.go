package sqlq

import "encoding/binary"

// Uint128 is an unsigned 128-bit integer split into two 64-bit words.
//
// SQLite's integer column type is 64-bit, so 128-bit values cross the store
// boundary as a fixed little-endian 16-byte blob. The encoding is byte-exact,
// not numeric-exact: the engine sees a blob, and only decoding with the same
// convention reproduces the value.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Bytes returns the little-endian 16-byte encoding: the low word occupies
// bytes 0-7, the high word bytes 8-15.
func (v Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:], v.Hi)
	return b
}

// Uint128FromBytes decodes the little-endian 16-byte encoding.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}
}

// Int128 is a signed 128-bit integer in two's complement, split into a
// signed high word and an unsigned low word. It shares the little-endian
// 16-byte store encoding with Uint128.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Bytes returns the little-endian 16-byte two's-complement encoding.
func (v Int128) Bytes() [16]byte {
	return v.bits().Bytes()
}

// Int128FromBytes decodes the little-endian 16-byte encoding.
func Int128FromBytes(b [16]byte) Int128 {
	return int128FromBits(Uint128FromBytes(b))
}

// Int128FromInt64 sign-extends a 64-bit integer to 128 bits.
func Int128FromInt64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

func (v Int128) bits() Uint128 {
	return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
}

func int128FromBits(v Uint128) Int128 {
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}
