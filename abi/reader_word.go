package abi

// ReadU256 decodes the 32-byte word at off as an unsigned big-endian
// integer, borrowing it in place.
func ReadU256(buf []byte, off int) (U256View, error) {
	w, err := word(buf, off)
	if err != nil {
		return U256View{}, err
	}
	return U256View{w}, nil
}

// ReadInt256 decodes the 32-byte word at off as a two's-complement
// signed big-endian integer, borrowing it in place.
func ReadInt256(buf []byte, off int) (I256View, error) {
	w, err := word(buf, off)
	if err != nil {
		return I256View{}, err
	}
	return I256View{w}, nil
}

// ReadUint8 decodes a uintN word (N=8) at off, failing with
// IntegerOverflow if the upper 31 bytes are nonzero.
func ReadUint8(buf []byte, off int) (uint8, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return U256View{w}.ToUint8()
}

// ReadUint16 decodes a uintN word (N=16) at off.
func ReadUint16(buf []byte, off int) (uint16, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return U256View{w}.ToUint16()
}

// ReadUint32 decodes a uintN word (N=32) at off.
func ReadUint32(buf []byte, off int) (uint32, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return U256View{w}.ToUint32()
}

// ReadUint64 decodes a uintN word (N=64) at off.
func ReadUint64(buf []byte, off int) (uint64, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return U256View{w}.ToUint64()
}

// ReadUint128 decodes a uintN word (N=128) at off, returned as the
// (high, low) uint64 halves of the 128-bit value.
func ReadUint128(buf []byte, off int) (high, low uint64, err error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, 0, err
	}
	return U256View{w}.ToUint128()
}

// ReadInt8 decodes an intN word (N=8) at off, failing with
// IntegerOverflow unless the upper 31 bytes are sign-extension of the
// low byte.
func ReadInt8(buf []byte, off int) (int8, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return I256View{w}.ToInt8()
}

// ReadInt16 decodes an intN word (N=16) at off.
func ReadInt16(buf []byte, off int) (int16, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return I256View{w}.ToInt16()
}

// ReadInt32 decodes an intN word (N=32) at off.
func ReadInt32(buf []byte, off int) (int32, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return I256View{w}.ToInt32()
}

// ReadInt64 decodes an intN word (N=64) at off.
func ReadInt64(buf []byte, off int) (int64, error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, err
	}
	return I256View{w}.ToInt64()
}

// ReadInt128 decodes an intN word (N=128) at off, returned as the
// (high, low) uint64 halves of the two's-complement 128-bit value.
func ReadInt128(buf []byte, off int) (high, low uint64, err error) {
	w, err := word(buf, off)
	if err != nil {
		return 0, 0, err
	}
	return I256View{w}.ToInt128()
}

// ReadAddress decodes the address right-aligned in the word at off,
// failing with InvalidAddressPadding if the 12 leading bytes are not
// all zero.
func ReadAddress(buf []byte, off int) (AddressView, error) {
	w, err := word(buf, off)
	if err != nil {
		return AddressView{}, err
	}
	if !leadingZero(w, WordSize-AddressLength) {
		return AddressView{}, ErrInvalidAddressPadding
	}
	return AddressView{w[WordSize-AddressLength:]}, nil
}

// ReadBool decodes the boolean word at off, failing with
// InvalidBoolean unless the word is exactly {31 zero bytes, 0x00|0x01}.
func ReadBool(buf []byte, off int) (BoolView, error) {
	w, err := word(buf, off)
	if err != nil {
		return BoolView{}, err
	}
	if !leadingZero(w, WordSize-1) {
		return BoolView{}, ErrInvalidBoolean
	}
	switch w[WordSize-1] {
	case 0:
		return BoolView{w, false}, nil
	case 1:
		return BoolView{w, true}, nil
	default:
		return BoolView{}, ErrInvalidBoolean
	}
}

// ReadBytesN decodes a fixed-size bytesN value (1 <= n <= 32)
// left-aligned in the word at off, failing with InvalidBytesNPadding
// if the trailing 32-n bytes are not all zero.
func ReadBytesN(buf []byte, off, n int) (BytesNView, error) {
	if n < 1 || n > WordSize {
		return BytesNView{}, ErrInvalidLength
	}
	w, err := word(buf, off)
	if err != nil {
		return BytesNView{}, err
	}
	for _, b := range w[n:] {
		if b != 0 {
			return BytesNView{}, ErrInvalidBytesNPadding
		}
	}
	return BytesNView{w[:n]}, nil
}
