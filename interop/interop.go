// Package interop benchmarks the tagged-format codec against other
// general-purpose binary codecs on the same Go value, for size and
// round-trip comparisons during development.
package interop

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tagwire/tagwire"
)

// Result holds one codec's measurements for a single value.
type Result struct {
	Codec       string
	Size        int
	RoundTrips  bool
	EncodeError error
	DecodeError error
}

// Report compares the tagged-format encoding of v against CBOR and
// MessagePack encodings of the same value.
type Report struct {
	Results []Result
}

// Smallest returns the Result with the smallest successfully encoded size,
// or the zero Result if every codec failed to encode.
func (r Report) Smallest() Result {
	var best Result
	for _, res := range r.Results {
		if res.EncodeError != nil {
			continue
		}
		if best.Codec == "" || res.Size < best.Size {
			best = res
		}
	}
	return best
}

func (r Report) String() string {
	s := ""
	for _, res := range r.Results {
		if res.EncodeError != nil {
			s += fmt.Sprintf("%s: encode error: %v\n", res.Codec, res.EncodeError)
			continue
		}
		s += fmt.Sprintf("%s: %d bytes, roundtrips=%v\n", res.Codec, res.Size, res.RoundTrips)
	}
	return s
}

// Compare encodes v with the tagged format, CBOR, and MessagePack, decodes
// each back into a fresh value of the same type via out (a pointer, as
// required by every codec's Unmarshal), and reports size and round-trip
// success for each.
func Compare(v any, out any) Report {
	return Report{Results: []Result{
		compareTagwire(v, out),
		compareCBOR(v, out),
		compareMsgpack(v, out),
	}}
}

func compareTagwire(v any, out any) Result {
	res := Result{Codec: "tagwire"}
	data, err := tagwire.Marshal(v)
	if err != nil {
		res.EncodeError = err
		return res
	}
	res.Size = len(data)
	if err := tagwire.Unmarshal(data, out); err != nil {
		res.DecodeError = err
		return res
	}
	res.RoundTrips = true
	return res
}

func compareCBOR(v any, out any) Result {
	res := Result{Codec: "cbor"}
	eo := cbor.PreferredUnsortedEncOptions()
	em, err := eo.EncMode()
	if err != nil {
		res.EncodeError = err
		return res
	}
	data, err := em.Marshal(v)
	if err != nil {
		res.EncodeError = err
		return res
	}
	res.Size = len(data)
	if err := cbor.Unmarshal(data, out); err != nil {
		res.DecodeError = err
		return res
	}
	res.RoundTrips = true
	return res
}

func compareMsgpack(v any, out any) Result {
	res := Result{Codec: "msgpack"}
	data, err := msgpack.Marshal(v)
	if err != nil {
		res.EncodeError = err
		return res
	}
	res.Size = len(data)
	if err := msgpack.Unmarshal(data, out); err != nil {
		res.DecodeError = err
		return res
	}
	res.RoundTrips = true
	return res
}
