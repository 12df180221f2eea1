package abi

// Slot decodes one positional tuple element. off is the element's
// absolute head-word offset (base + index*32); base is the tuple's own
// head-region base, forwarded so a dynamic element can resolve its own
// tail relative to the tuple rather than to the whole buffer (spec
// §4.E/§4.F).
type Slot func(buf []byte, off, base int) (any, error)

// DecodeTuple walks slots in order at absolute offsets base, base+32,
// base+64, ... exactly as accounts/abi.forTupleUnpack walks a
// reflected struct's fields, but produces borrowed views instead of Go
// struct values (schema-driven decode is a non-goal here). It returns
// the first error encountered and stops immediately, without invoking
// the remaining slots.
func DecodeTuple(buf []byte, base int, slots ...Slot) ([]any, error) {
	out := make([]any, len(slots))
	for i, s := range slots {
		v, err := s(buf, base+i*WordSize, base)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// The Slot* helpers below adapt this package's readers to the Slot
// signature for the common static and dynamic element types.

func SlotU256(buf []byte, off, base int) (any, error) { return ReadU256(buf, off) }

func SlotInt256(buf []byte, off, base int) (any, error) { return ReadInt256(buf, off) }

func SlotAddress(buf []byte, off, base int) (any, error) { return ReadAddress(buf, off) }

func SlotBool(buf []byte, off, base int) (any, error) { return ReadBool(buf, off) }

// SlotBytesN returns a Slot decoding a fixed-size bytesN element of
// width n.
func SlotBytesN(n int) Slot {
	return func(buf []byte, off, base int) (any, error) {
		return ReadBytesN(buf, off, n)
	}
}

// SlotBytes is a Slot decoding a dynamic bytes element.
func SlotBytes(buf []byte, off, base int) (any, error) { return ReadBytes(buf, off, base) }

// SlotString is a Slot decoding a dynamic string element.
func SlotString(buf []byte, off, base int) (any, error) { return ReadString(buf, off, base) }
