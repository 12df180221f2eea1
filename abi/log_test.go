package abi

import (
	"errors"
	"testing"
)

func padWord(f func(w []byte)) []byte {
	w := make([]byte, WordSize)
	f(w)
	return w
}

// S6: a Transfer-like event log with 3 topics, one of them a padded
// address.
func TestEventLog_S6(t *testing.T) {
	sigTopic := padWord(func(w []byte) { w[0] = 0xAB })
	fromTopic := padWord(func(w []byte) {
		for i := 0; i < AddressLength; i++ {
			w[WordSize-AddressLength+i] = byte(0x10 + i)
		}
	})
	toTopic := padWord(func(w []byte) {
		for i := 0; i < AddressLength; i++ {
			w[WordSize-AddressLength+i] = byte(0x20 + i)
		}
	})

	log, err := NewEventLogView([][]byte{sigTopic, fromTopic, toTopic}, nil)
	if err != nil {
		t.Fatalf("NewEventLogView: %v", err)
	}
	if log.TopicCount() != 3 {
		t.Fatalf("TopicCount() = %d, want 3", log.TopicCount())
	}

	from, err := log.ReadTopicAddress(1)
	if err != nil {
		t.Fatalf("ReadTopicAddress(1): %v", err)
	}
	for i := 0; i < AddressLength; i++ {
		if from.AsBytes()[i] != byte(0x10+i) {
			t.Fatalf("from[%d] = %x, want %x", i, from.AsBytes()[i], 0x10+i)
		}
	}

	if _, err := log.ReadTopicAddress(3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("ReadTopicAddress(3): got %v, want ErrOutOfBounds", err)
	}
}

func TestEventLog_TooManyTopics(t *testing.T) {
	topics := make([][]byte, MaxTopics+1)
	for i := range topics {
		topics[i] = make([]byte, WordSize)
	}
	if _, err := NewEventLogView(topics, nil); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}

func TestEventLog_WrongTopicWidth(t *testing.T) {
	topics := [][]byte{make([]byte, WordSize-1)}
	if _, err := NewEventLogView(topics, nil); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}

func TestEventLog_AddressPaddingViolation(t *testing.T) {
	dirty := padWord(func(w []byte) { w[0] = 1 })
	log, err := NewEventLogView([][]byte{dirty}, nil)
	if err != nil {
		t.Fatalf("NewEventLogView: %v", err)
	}
	if _, err := log.ReadTopicAddress(0); !errors.Is(err, ErrInvalidAddressPadding) {
		t.Fatalf("got %v, want ErrInvalidAddressPadding", err)
	}
}

func TestEventLog_Data(t *testing.T) {
	data := []byte{1, 2, 3}
	log, err := NewEventLogView(nil, data)
	if err != nil {
		t.Fatalf("NewEventLogView: %v", err)
	}
	got, err := ReadU256(log.Data(), 0)
	_ = got
	if err == nil {
		t.Fatal("expected OutOfBounds decoding a 3-byte data section as a word")
	}
}
