package abi

// BoolView is a borrow of a single 32-byte ABI word already validated,
// at construction time, to hold {0,1} in its low byte with all other
// bytes zero. AsBool is therefore infallible.
type BoolView struct {
	b []byte // len(b) == WordSize, aliases the caller's buffer
	v bool
}

// AsBool returns the decoded boolean value.
func (v BoolView) AsBool() bool {
	return v.v
}

// AsBytes returns the borrowed 32-byte word without copying.
func (v BoolView) AsBytes() []byte {
	return v.b
}
