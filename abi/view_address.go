package abi

import "bytes"

// AddressLength is the length, in bytes, of an Ethereum address.
const AddressLength = 20

// AddressView is a borrow of exactly 20 bytes taken from the low-order
// end of an ABI word. The 12 leading pad bytes of the source word are
// validated to be zero at construction time and are not retained.
type AddressView struct {
	b []byte // len(b) == AddressLength, aliases the caller's buffer
}

// AsBytes returns the borrowed 20-byte address without copying. The
// returned slice aliases the buffer the view was decoded from and must
// not be retained past that buffer's lifetime.
func (v AddressView) AsBytes() []byte {
	return v.b
}

// ToBytes copies the address into a new, independently owned array.
func (v AddressView) ToBytes() [AddressLength]byte {
	var out [AddressLength]byte
	copy(out[:], v.b)
	return out
}

// Equal reports whether two address views hold the same 20 bytes.
func (v AddressView) Equal(other AddressView) bool {
	return bytes.Equal(v.b, other.b)
}
