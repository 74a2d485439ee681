package tagwire

import "testing"

func TestVarintRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 63, 127, 128, 129, 255, 1000, 1 << 20, maxLength}
	for _, n := range lengths {
		encoded, err := writeVarintLength(nil, n)
		if err != nil {
			t.Fatalf("writeVarintLength(%d): %v", n, err)
		}
		if len(encoded) != varintLengthSize(n) {
			t.Fatalf("varintLengthSize(%d) = %d, want %d", n, varintLengthSize(n), len(encoded))
		}
		got, err := ReadVarintLength(NewBuffer(encoded))
		if err != nil {
			t.Fatalf("ReadVarintLength(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip %d -> %d", n, got)
		}
	}
}

func TestVarintShortForm(t *testing.T) {
	encoded, err := writeVarintLength(nil, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(encoded) != 1 {
		t.Fatalf("expected 1-byte short form, got %d bytes", len(encoded))
	}
	if encoded[0] != 5<<1 {
		t.Fatalf("got %#x, want %#x", encoded[0], byte(5<<1))
	}
}

func TestVarintLongFormTolerant(t *testing.T) {
	// A non-minimal long-form encoding of 0: value<<1|1 with value=0.
	encoded := []byte{0x01, 0x00, 0x00, 0x00}
	got, err := ReadVarintLength(NewBuffer(encoded))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestVarintContentTooLarge(t *testing.T) {
	if _, err := writeVarintLength(nil, maxLength+1); err == nil {
		t.Fatal("expected ContentTooLarge error")
	}
	if _, err := writeVarintLength(nil, -1); err == nil {
		t.Fatal("expected ContentTooLarge error for negative length")
	}
}

func TestVarintInsufficientData(t *testing.T) {
	if _, err := ReadVarintLength(NewBuffer(nil)); err == nil {
		t.Fatal("expected error reading varint from empty buffer")
	}
	// Long-form marker with too few trailing bytes.
	if _, err := ReadVarintLength(NewBuffer([]byte{0x01, 0x00})); err == nil {
		t.Fatal("expected error reading truncated long-form varint")
	}
}
