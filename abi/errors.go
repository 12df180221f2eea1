package abi

// Kind enumerates the ways a decode operation can fail. It carries no
// payload beyond the discriminant itself; callers that need more
// context (which offset, which buffer) should wrap the returned error
// with fmt.Errorf and %w.
type Kind byte

const (
	OutOfBounds Kind = iota
	InvalidBoolean
	InvalidAddressPadding
	InvalidBytesNPadding
	InvalidUtf8
	InvalidOffset
	IntegerOverflow
	InvalidLength
	InvalidSelector
)

var kindToString = [...]string{
	OutOfBounds:           "out of bounds",
	InvalidBoolean:        "invalid boolean word",
	InvalidAddressPadding: "invalid address padding",
	InvalidBytesNPadding:  "invalid bytesN padding",
	InvalidUtf8:           "invalid utf-8",
	InvalidOffset:         "invalid offset",
	IntegerOverflow:       "integer overflow",
	InvalidLength:         "invalid length",
	InvalidSelector:       "invalid selector",
}

func (k Kind) String() string {
	if int(k) >= len(kindToString) || kindToString[k] == "" {
		return "unknown decode error"
	}
	return kindToString[k]
}

// Error is the single error type returned by every reader in this
// package. It is comparable, so callers can test the discriminant with
// errors.Is against the package-level sentinels below.
type Error struct {
	Kind Kind
}

func (e Error) Error() string {
	return "abi: " + e.Kind.String()
}

// Sentinel errors for use with errors.Is. Every reader returns one of
// these (unwrapped); Error itself has no other fields to distinguish.
var (
	ErrOutOfBounds           = Error{OutOfBounds}
	ErrInvalidBoolean        = Error{InvalidBoolean}
	ErrInvalidAddressPadding = Error{InvalidAddressPadding}
	ErrInvalidBytesNPadding  = Error{InvalidBytesNPadding}
	ErrInvalidUtf8           = Error{InvalidUtf8}
	ErrInvalidOffset         = Error{InvalidOffset}
	ErrIntegerOverflow       = Error{IntegerOverflow}
	ErrInvalidLength         = Error{InvalidLength}
	ErrInvalidSelector       = Error{InvalidSelector}
)
