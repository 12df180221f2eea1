package abi

import (
	"bytes"
	"encoding/binary"

	"github.com/holiman/uint256"
)

// I256View is a borrow of a single 32-byte ABI word, interpreted as a
// big-endian two's-complement signed integer. Construction never
// fails; the word is always a valid (if possibly large) signed value.
type I256View struct {
	b []byte // len(b) == WordSize, aliases the caller's buffer
}

// AsBytes returns the borrowed 32-byte big-endian word without copying.
func (v I256View) AsBytes() []byte {
	return v.b
}

// Equal reports whether two views hold the same 32-byte word.
func (v I256View) Equal(other I256View) bool {
	return bytes.Equal(v.b, other.b)
}

// IsNegative reports whether the sign bit (bit 255) is set.
func (v I256View) IsNegative() bool {
	return v.b[0]&0x80 != 0
}

// signByte returns 0xff if the word is negative, 0x00 otherwise — the
// byte that every pad byte of a validly narrowable signed value must
// equal.
func (v I256View) signByte() byte {
	if v.IsNegative() {
		return 0xff
	}
	return 0x00
}

// signExtended reports whether every byte in b[:n] equals pad and the
// top bit of b[n], the most significant byte kept by the narrowing,
// agrees with pad, i.e. whether b[:n] is the sign extension of b[n:].
func signExtended(b []byte, n int, pad byte) bool {
	for _, c := range b[:n] {
		if c != pad {
			return false
		}
	}
	return (b[n]&0x80 != 0) == (pad == 0xff)
}

// ToInt8 narrows the word to an int8, failing with IntegerOverflow
// unless the upper 31 bytes are all sign-extension of the low byte.
func (v I256View) ToInt8() (int8, error) {
	pad := v.signByte()
	if !signExtended(v.b, WordSize-1, pad) {
		return 0, ErrIntegerOverflow
	}
	return int8(v.b[WordSize-1]), nil
}

// ToInt16 narrows the word to an int16, failing with IntegerOverflow
// unless the upper 30 bytes are all sign-extension of the low 2 bytes.
func (v I256View) ToInt16() (int16, error) {
	pad := v.signByte()
	if !signExtended(v.b, WordSize-2, pad) {
		return 0, ErrIntegerOverflow
	}
	return int16(binary.BigEndian.Uint16(v.b[WordSize-2:])), nil
}

// ToInt32 narrows the word to an int32, failing with IntegerOverflow
// unless the upper 28 bytes are all sign-extension of the low 4 bytes.
func (v I256View) ToInt32() (int32, error) {
	pad := v.signByte()
	if !signExtended(v.b, WordSize-4, pad) {
		return 0, ErrIntegerOverflow
	}
	return int32(binary.BigEndian.Uint32(v.b[WordSize-4:])), nil
}

// ToInt64 narrows the word to an int64, failing with IntegerOverflow
// unless the upper 24 bytes are all sign-extension of the low 8 bytes.
func (v I256View) ToInt64() (int64, error) {
	pad := v.signByte()
	if !signExtended(v.b, WordSize-8, pad) {
		return 0, ErrIntegerOverflow
	}
	return int64(binary.BigEndian.Uint64(v.b[WordSize-8:])), nil
}

// ToInt128 narrows the word to the low 128 bits of a signed value,
// returned as (high, low) uint64 halves reinterpreted by the caller,
// failing with IntegerOverflow unless the upper 16 bytes are all
// sign-extension of the low 16 bytes.
func (v I256View) ToInt128() (high, low uint64, err error) {
	pad := v.signByte()
	if !signExtended(v.b, WordSize-16, pad) {
		return 0, 0, ErrIntegerOverflow
	}
	high = binary.BigEndian.Uint64(v.b[WordSize-16 : WordSize-8])
	low = binary.BigEndian.Uint64(v.b[WordSize-8:])
	return high, low, nil
}

// AsInt256 returns the 256-bit magnitude and sign of the word as a
// holiman/uint256.Int plus a negative flag, i.e. the two's-complement
// value is unsigned-magnitude(z) if !negative, or -unsigned-magnitude(z)
// if negative. uint256.Int is a fixed-size value type, so this does not
// defeat the package's zero-allocation goal when the result does not
// escape.
func (v I256View) AsInt256() (z uint256.Int, negative bool) {
	negative = v.IsNegative()
	z.SetBytes32(v.b)
	if negative {
		z.Not(&z)
		z.AddUint64(&z, 1)
	}
	return z, negative
}
