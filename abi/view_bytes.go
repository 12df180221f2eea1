package abi

import (
	"bytes"
	"unsafe"
)

// BytesView is a borrow of a variable-length ABI `bytes` value: the
// length, read from the tail's length word, and the content that
// immediately follows it, with no trailing pad bytes retained.
type BytesView struct {
	b []byte // len(b) == the decoded length, aliases the caller's buffer
}

// Len returns the number of content bytes.
func (v BytesView) Len() int {
	return len(v.b)
}

// IsEmpty reports whether the value has zero length.
func (v BytesView) IsEmpty() bool {
	return len(v.b) == 0
}

// AsSlice returns the borrowed content without copying.
func (v BytesView) AsSlice() []byte {
	return v.b
}

// Equal reports whether two views hold byte-identical content.
func (v BytesView) Equal(other BytesView) bool {
	return bytes.Equal(v.b, other.b)
}

// StringView is a BytesView whose content has already been validated,
// at construction time, as well-formed UTF-8.
type StringView struct {
	b []byte
}

// Len returns the number of bytes in the string.
func (v StringView) Len() int {
	return len(v.b)
}

// IsEmpty reports whether the string is empty.
func (v StringView) IsEmpty() bool {
	return len(v.b) == 0
}

// AsStr returns the borrowed content reinterpreted as a string without
// copying. The returned string aliases the buffer the view was decoded
// from: it must not be retained past that buffer's lifetime, and the
// buffer must not be mutated for as long as the string is in use.
func (v StringView) AsStr() string {
	if len(v.b) == 0 {
		return ""
	}
	return unsafe.String(&v.b[0], len(v.b))
}

// Equal reports whether two views hold byte-identical content.
func (v StringView) Equal(other StringView) bool {
	return bytes.Equal(v.b, other.b)
}
