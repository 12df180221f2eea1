package abi

import "bytes"

// BytesNView is a borrow of the leading N bytes of an ABI word, for
// fixed-size byte types bytes1..bytes32. Go has no const generics over
// integer widths, so unlike AddressView (a fixed N=20 special case)
// this type carries its size as len(b) rather than as a type
// parameter; every reader that produces one has already validated
// that the trailing 32-len(b) pad bytes of the source word are zero.
type BytesNView struct {
	b []byte // 1 <= len(b) <= 32, aliases the caller's buffer
}

// Len returns N, the fixed width of this bytesN value.
func (v BytesNView) Len() int {
	return len(v.b)
}

// AsBytes returns the borrowed N-byte value without copying.
func (v BytesNView) AsBytes() []byte {
	return v.b
}

// ToBytes copies the value into a new, independently owned slice.
func (v BytesNView) ToBytes() []byte {
	out := make([]byte, len(v.b))
	copy(out, v.b)
	return out
}

// Equal reports whether two views hold byte-identical content.
func (v BytesNView) Equal(other BytesNView) bool {
	return bytes.Equal(v.b, other.b)
}
