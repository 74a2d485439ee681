package tagwire

import "testing"

func TestEnumRoundTrip(t *testing.T) {
	codec := NewEnumCodec("enum_test.Shape",
		EnumVariant{ID: 0, Sample: int32(0)},
		EnumVariant{ID: 1, Sample: ""},
	)

	data, err := codec.Marshal(TaggedUnion{VariantID: 0, Value: int32(42)})
	if err != nil {
		t.Fatal(err)
	}
	tu, err := codec.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if tu.VariantID != 0 || tu.Value.(int32) != 42 {
		t.Fatalf("got %+v", tu)
	}

	data, err = codec.Marshal(TaggedUnion{VariantID: 1, Value: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	tu, err = codec.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if tu.VariantID != 1 || tu.Value.(string) != "hello" {
		t.Fatalf("got %+v", tu)
	}
}

func TestEnumUnknownVariant(t *testing.T) {
	codec := NewEnumCodec("enum_test.Color", EnumVariant{ID: 0, Sample: int32(0)})
	if _, err := codec.Marshal(TaggedUnion{VariantID: 5, Value: "not a declared variant"}); err == nil {
		t.Fatal("expected UnknownVariant error")
	}
}

func TestEnumDuplicateVariantIdPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate variant id")
		}
	}()
	NewEnumCodec("enum_test.Dup",
		EnumVariant{ID: 0, Sample: int32(0)},
		EnumVariant{ID: 0, Sample: ""},
	)
}

func TestEnumTypeMismatchOnDecode(t *testing.T) {
	codec := NewEnumCodec("enum_test.NotAnEnum", EnumVariant{ID: 0, Sample: int32(0)})
	notEnum, err := WriteUint(nil, 1, 4), error(nil)
	if err != nil {
		t.Fatal(err)
	}
	data := append([]byte{byte(U32)}, notEnum...)
	if _, err := codec.Unmarshal(data); err == nil {
		t.Fatal("expected TypeMismatch error")
	}
}
