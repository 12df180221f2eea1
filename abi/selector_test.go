package abi

import (
	"bytes"
	"errors"
	"testing"
)

// S5: selector split.
func TestSelectorSplit_S5(t *testing.T) {
	calldata := make([]byte, SelectorLength+WordSize)
	calldata[0], calldata[1], calldata[2], calldata[3] = 0xDE, 0xAD, 0xBE, 0xEF
	calldata[SelectorLength+31] = 7 // uint256(7)

	sel, err := ReadSelector(calldata)
	if err != nil {
		t.Fatalf("ReadSelector: %v", err)
	}
	if !bytes.Equal(sel, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("ReadSelector = %x", sel)
	}

	rest, err := SkipSelector(calldata)
	if err != nil {
		t.Fatalf("SkipSelector: %v", err)
	}
	v, err := ReadU256(rest, 0)
	if err != nil {
		t.Fatalf("ReadU256: %v", err)
	}
	got, err := v.ToUint64()
	if err != nil || got != 7 {
		t.Fatalf("ToUint64 = (%d, %v), want (7, nil)", got, err)
	}
}

func TestSelector_TooShort(t *testing.T) {
	short := make([]byte, 3)
	if _, err := ReadSelector(short); !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("ReadSelector: got %v, want ErrInvalidSelector", err)
	}
	if _, err := SkipSelector(short); !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("SkipSelector: got %v, want ErrInvalidSelector", err)
	}
}

func TestSelector_ExactlyFourBytes(t *testing.T) {
	calldata := []byte{0x01, 0x02, 0x03, 0x04}
	sel, err := ReadSelector(calldata)
	if err != nil || !bytes.Equal(sel, calldata) {
		t.Fatalf("ReadSelector = (%x, %v)", sel, err)
	}
	rest, err := SkipSelector(calldata)
	if err != nil || len(rest) != 0 {
		t.Fatalf("SkipSelector = (%x, %v), want empty", rest, err)
	}
}
