package value

import "testing"

// FuzzDecodeNeverPanics checks that Decode always returns a typed error for
// malformed input instead of panicking, mirroring the root package's
// Unmarshal contract.
func FuzzDecodeNeverPanics(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x80})
	f.Add([]byte{0x11, 0x02, 0x00, 0x04})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = Decode(data)
	})
}
