package tagwire

// StructWriter accumulates (field_id, type_id, value) records for a struct
// value, enforcing the strictly-increasing field-id discipline at write
// time that [StructReader] relies on at read time.
type StructWriter struct {
	content []byte
	lastID  byte
	hasLast bool
	err     error
}

// NewStructWriter creates an empty StructWriter.
func NewStructWriter() *StructWriter {
	return &StructWriter{}
}

// WriteField appends a record for fieldID with the given wire type and
// pre-encoded value bytes. fieldID must be strictly greater than every
// previously written field id (callers write declared fields in ascending
// id order, per §4.6); violating this is a programming error in the
// reflection-derivation layer, not a wire-level failure, so it panics
// rather than returning an error.
func (w *StructWriter) WriteField(fieldID byte, typeID TypeId, value []byte) error {
	if w.err != nil {
		return w.err
	}
	if fieldID&0x80 != 0 {
		w.err = ErrFieldIdTooLarge(fieldID)
		return w.err
	}
	if w.hasLast && fieldID <= w.lastID {
		panic("tagwire: struct fields must be written in strictly increasing field-id order")
	}
	w.content = append(w.content, fieldID, byte(typeID))
	w.content = append(w.content, value...)
	w.lastID = fieldID
	w.hasLast = true
	return nil
}

// Len reports the number of content bytes written so far.
func (w *StructWriter) Len() int {
	return len(w.content)
}

// Finish appends the completed struct's tagged-varint length prefix and
// content to dst.
func (w *StructWriter) Finish(dst []byte) ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return WriteContainerContent(dst, w.content)
}
