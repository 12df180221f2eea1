package main

import (
	"testing"

	"github.com/smallyunet/zabi-go/abi"
)

func TestSlotForType(t *testing.T) {
	cases := []string{"address", "uint256", "int256", "bool", "bytes", "string", "bytes32", "BYTES4"}
	for _, c := range cases {
		if _, err := slotForType(c); err != nil {
			t.Errorf("slotForType(%q): %v", c, err)
		}
	}
	if _, err := slotForType("tuple"); err == nil {
		t.Error("slotForType(\"tuple\") should have failed")
	}
}

func TestParseBytesNWidth(t *testing.T) {
	n, err := parseBytesNWidth("bytes20")
	if err != nil || n != 20 {
		t.Fatalf("parseBytesNWidth(bytes20) = (%d, %v), want (20, nil)", n, err)
	}
	if _, err := parseBytesNWidth("bytes33"); err == nil {
		t.Error("parseBytesNWidth(bytes33) should have failed: width out of range")
	}
	if _, err := parseBytesNWidth("bytesxy"); err == nil {
		t.Error("parseBytesNWidth(bytesxy) should have failed: not numeric")
	}
}

func TestDecodeHex(t *testing.T) {
	for _, in := range []string{"0xdeadbeef", "0XDEADBEEF", "deadbeef"} {
		got, err := decodeHex(in)
		if err != nil {
			t.Fatalf("decodeHex(%q): %v", in, err)
		}
		if len(got) != 4 {
			t.Fatalf("decodeHex(%q) = %x, want 4 bytes", in, got)
		}
	}
	if _, err := decodeHex("not hex"); err == nil {
		t.Error("decodeHex(\"not hex\") should have failed")
	}
}

func TestFormatView(t *testing.T) {
	buf := make([]byte, 32)
	buf[31] = 1
	b, err := abi.ReadBool(buf, 0)
	if err != nil {
		t.Fatalf("ReadBool: %v", err)
	}
	if got := formatView(b); got != "true" {
		t.Fatalf("formatView(BoolView) = %q, want %q", got, "true")
	}
}
