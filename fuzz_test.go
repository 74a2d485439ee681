package tagwire

import "testing"

// FuzzUnmarshalNeverPanics exercises Unmarshal against arbitrary bytes: a
// malformed payload must always surface as a typed error, never a panic.
func FuzzUnmarshalNeverPanics(f *testing.F) {
	seed, err := Marshal(&person{Name: "seed", Age: 1})
	if err == nil {
		f.Add(seed)
	}
	f.Add([]byte{})
	f.Add([]byte{0x80})
	f.Add([]byte{byte(Struct), 0x01, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		var out person
		_ = Unmarshal(data, &out)
	})
}

// FuzzMarshalUnmarshalRoundTrip checks that any successfully marshaled
// person decodes back to an equal value.
func FuzzMarshalUnmarshalRoundTrip(f *testing.F) {
	f.Add("Grace", uint32(36), true, "ace")
	f.Add("", uint32(0), false, "")

	f.Fuzz(func(t *testing.T, name string, age uint32, hasNick bool, nickVal string) {
		in := person{Name: name, Age: age}
		if hasNick {
			n := nickVal
			in.Nick = &n
		}

		data, err := Marshal(&in)
		if err != nil {
			t.Skip()
		}
		var out person
		if err := Unmarshal(data, &out); err != nil {
			t.Fatalf("round trip failed to decode: %v", err)
		}
		if out.Name != in.Name || out.Age != in.Age {
			t.Fatalf("got %+v, want %+v", out, in)
		}
		if (out.Nick == nil) != (in.Nick == nil) {
			t.Fatalf("nick presence mismatch: got %v, want %v", out.Nick, in.Nick)
		}
		if out.Nick != nil && *out.Nick != *in.Nick {
			t.Fatalf("nick value mismatch: got %q, want %q", *out.Nick, *in.Nick)
		}
	})
}
