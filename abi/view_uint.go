package abi

import (
	"bytes"
	"encoding/binary"

	"github.com/holiman/uint256"
)

// U256View is a borrow of a single 32-byte ABI word, interpreted as a
// big-endian unsigned integer. Construction never fails; the word is
// always a valid (if possibly large) unsigned value.
type U256View struct {
	b []byte // len(b) == WordSize, aliases the caller's buffer
}

// AsBytes returns the borrowed 32-byte big-endian word without copying.
func (v U256View) AsBytes() []byte {
	return v.b
}

// Equal reports whether two views hold the same 32-byte word.
func (v U256View) Equal(other U256View) bool {
	return bytes.Equal(v.b, other.b)
}

// IsZero reports whether the word is all-zero.
func (v U256View) IsZero() bool {
	for _, b := range v.b {
		if b != 0 {
			return false
		}
	}
	return true
}

// leadingZero reports whether every byte in b[:n] is zero.
func leadingZero(b []byte, n int) bool {
	for _, c := range b[:n] {
		if c != 0 {
			return false
		}
	}
	return true
}

// ToUint8 narrows the word to a uint8, failing with IntegerOverflow if
// any of the upper 31 bytes are nonzero.
func (v U256View) ToUint8() (uint8, error) {
	if !leadingZero(v.b, WordSize-1) {
		return 0, ErrIntegerOverflow
	}
	return v.b[WordSize-1], nil
}

// ToUint16 narrows the word to a uint16, failing with IntegerOverflow
// if any of the upper 30 bytes are nonzero.
func (v U256View) ToUint16() (uint16, error) {
	if !leadingZero(v.b, WordSize-2) {
		return 0, ErrIntegerOverflow
	}
	return binary.BigEndian.Uint16(v.b[WordSize-2:]), nil
}

// ToUint32 narrows the word to a uint32, failing with IntegerOverflow
// if any of the upper 28 bytes are nonzero.
func (v U256View) ToUint32() (uint32, error) {
	if !leadingZero(v.b, WordSize-4) {
		return 0, ErrIntegerOverflow
	}
	return binary.BigEndian.Uint32(v.b[WordSize-4:]), nil
}

// ToUint64 narrows the word to a uint64, failing with IntegerOverflow
// if any of the upper 24 bytes are nonzero.
func (v U256View) ToUint64() (uint64, error) {
	if !leadingZero(v.b, WordSize-8) {
		return 0, ErrIntegerOverflow
	}
	return binary.BigEndian.Uint64(v.b[WordSize-8:]), nil
}

// ToUint128 narrows the word to the low 128 bits, returned as
// (high, low) uint64 halves, failing with IntegerOverflow if any of
// the upper 16 bytes are nonzero.
func (v U256View) ToUint128() (high, low uint64, err error) {
	if !leadingZero(v.b, WordSize-16) {
		return 0, 0, ErrIntegerOverflow
	}
	high = binary.BigEndian.Uint64(v.b[WordSize-16 : WordSize-8])
	low = binary.BigEndian.Uint64(v.b[WordSize-8:])
	return high, low, nil
}

// AsUint256 returns the full 256-bit magnitude of the word as a
// holiman/uint256.Int. Unlike math/big.Int, uint256.Int is a fixed-size
// value type, so this accessor does not defeat the package's
// zero-allocation goal when the result does not escape.
func (v U256View) AsUint256() uint256.Int {
	var z uint256.Int
	z.SetBytes32(v.b)
	return z
}
