package bitio

import "testing"

func TestPeekConsume(t *testing.T) {
	// 0xCD, 0xAB little-endian bit order: bit 0 of byte 0 is the first bit.
	r := NewReader([]byte{0xCD, 0xAB})

	v, err := r.Peek(4)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if v != 0xD {
		t.Fatalf("Peek(4) = %#x, want 0xD", v)
	}
	// Peeking again without consuming must return the same bits.
	v2, err := r.Peek(4)
	if err != nil || v2 != v {
		t.Fatalf("second Peek(4) = %#x, %v; want %#x, nil", v2, err, v)
	}

	if err := r.Consume(4); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	v, err = r.Peek(4)
	if err != nil {
		t.Fatalf("Peek after consume: %v", err)
	}
	if v != 0xC {
		t.Fatalf("Peek(4) after consume = %#x, want 0xC", v)
	}
}

func TestTakeAcrossByteBoundary(t *testing.T) {
	r := NewReader([]byte{0xFF, 0x01})
	v, err := r.Take(9)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if v != 0x1FF {
		t.Fatalf("Take(9) = %#x, want 0x1FF", v)
	}
}

func TestEndOfStream(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.Peek(9); err != ErrEndOfStream {
		t.Fatalf("Peek(9) on 1 byte: err = %v, want ErrEndOfStream", err)
	}
	if err := r.Consume(9); err != ErrEndOfStream {
		t.Fatalf("Consume(9) on 1 byte: err = %v, want ErrEndOfStream", err)
	}
}

func TestRemainingBits(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x00})
	if got := r.RemainingBits(); got != 24 {
		t.Fatalf("RemainingBits = %d, want 24", got)
	}
	if _, err := r.Take(5); err != nil {
		t.Fatalf("Take: %v", err)
	}
	if got := r.RemainingBits(); got != 19 {
		t.Fatalf("RemainingBits after Take(5) = %d, want 19", got)
	}
}
