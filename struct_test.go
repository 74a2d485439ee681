package tagwire

import "testing"

func buildStructContent(t *testing.T, fields ...struct {
	id    byte
	typ   TypeId
	value []byte
}) *Buffer {
	t.Helper()
	w := NewStructWriter()
	for _, f := range fields {
		if err := w.WriteField(f.id, f.typ, f.value); err != nil {
			t.Fatal(err)
		}
	}
	dst, err := w.Finish(nil)
	if err != nil {
		t.Fatal(err)
	}
	content, err := ReadContainerContent(NewBuffer(dst))
	if err != nil {
		t.Fatal(err)
	}
	return content
}

func TestStructReaderReadsPresentFieldsInOrder(t *testing.T) {
	content := buildStructContent(t,
		struct {
			id    byte
			typ   TypeId
			value []byte
		}{0, U32, WriteUint(nil, 1, 4)},
		struct {
			id    byte
			typ   TypeId
			value []byte
		}{2, U32, WriteUint(nil, 2, 4)},
	)
	r := NewStructReader(content)

	val, id, present, err := r.ReadFieldValue(0)
	if err != nil || !present || id != U32 {
		t.Fatalf("field 0: present=%v id=%v err=%v", present, id, err)
	}
	got, err := ReadUint(val, 4)
	if err != nil || got != 1 {
		t.Fatalf("field 0 value: got %d, err %v", got, err)
	}

	// Field 1 was never written: absent, and field 2 must not be consumed.
	_, _, present, err = r.ReadFieldValue(1)
	if err != nil || present {
		t.Fatalf("field 1 should be absent, present=%v err=%v", present, err)
	}

	val, id, present, err = r.ReadFieldValue(2)
	if err != nil || !present || id != U32 {
		t.Fatalf("field 2: present=%v id=%v err=%v", present, id, err)
	}
	got, err = ReadUint(val, 4)
	if err != nil || got != 2 {
		t.Fatalf("field 2 value: got %d, err %v", got, err)
	}

	if err := r.Finish(); err != nil {
		t.Fatal(err)
	}
}

func TestStructReaderSkipsUnknownLowerField(t *testing.T) {
	content := buildStructContent(t,
		struct {
			id    byte
			typ   TypeId
			value []byte
		}{0, U32, WriteUint(nil, 99, 4)}, // unknown to the reader's caller
		struct {
			id    byte
			typ   TypeId
			value []byte
		}{1, String, mustWriteString(t, "hi")},
	)
	r := NewStructReader(content)
	// Caller only cares about field 1; field 0 must be skipped transparently.
	val, id, present, err := r.ReadFieldValue(1)
	if err != nil || !present || id != String {
		t.Fatalf("present=%v id=%v err=%v", present, id, err)
	}
	s, err := ReadString(val)
	if err != nil || s != "hi" {
		t.Fatalf("got %q, err %v", s, err)
	}
}

func mustWriteString(t *testing.T, s string) []byte {
	t.Helper()
	b, err := WriteString(nil, s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestStructWriterRejectsOutOfOrderFields(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic writing fields out of order")
		}
	}()
	w := NewStructWriter()
	if err := w.WriteField(2, U32, WriteUint(nil, 1, 4)); err != nil {
		t.Fatal(err)
	}
	_ = w.WriteField(1, U32, WriteUint(nil, 2, 4))
}

func TestStructReaderFieldOrderViolation(t *testing.T) {
	// Hand-craft disordered wire bytes: field 2 then field 1.
	var content []byte
	content = append(content, 2, byte(U32))
	content = append(content, WriteUint(nil, 1, 4)...)
	content = append(content, 1, byte(U32))
	content = append(content, WriteUint(nil, 2, 4)...)

	r := NewStructReader(NewBuffer(content))
	// Consuming field 2 first establishes lastID=2; the next on-wire record
	// (id 1) then violates the strictly-increasing discipline.
	if _, _, present, err := r.ReadFieldValue(2); err != nil || !present {
		t.Fatalf("present=%v err=%v", present, err)
	}
	if _, _, _, err := r.ReadFieldValue(5); err == nil {
		t.Fatal("expected FieldOrderViolation error")
	}
}
