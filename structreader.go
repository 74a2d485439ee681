package tagwire

// StructReader is the forward-only, order-validating field cursor described
// by the struct wire layout: a concatenation of (field_id, type_id, value)
// records with strictly increasing field_id. Generated (or reflection-
// driven) struct decoders request fields in ascending declared-id order;
// StructReader tolerates unknown lower-id fields by skipping them and
// reports higher-id fields as absent without consuming them.
type StructReader struct {
	buf     *Buffer
	lastID  byte
	hasLast bool
}

// NewStructReader creates a reader over the content of a struct value (the
// bytes after the length prefix has already been consumed).
func NewStructReader(content *Buffer) *StructReader {
	return &StructReader{buf: content}
}

// peekFieldID returns the field id of the next on-wire record without
// consuming it. ok is false if the cursor is empty.
func (r *StructReader) peekFieldID() (id byte, ok bool, err error) {
	if r.buf.Empty() {
		return 0, false, nil
	}
	b, err := r.buf.PeekByte()
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// checkOrder validates that f continues the strictly-increasing sequence of
// on-wire field ids.
func (r *StructReader) checkOrder(f byte) error {
	if f&0x80 != 0 {
		return ErrInvalidFieldId(f)
	}
	if r.hasLast && f <= r.lastID {
		return ErrFieldOrderViolation(r.lastID, f)
	}
	return nil
}

// skipCurrentField consumes the next on-wire record without interpreting
// its value, advancing lastID.
func (r *StructReader) skipCurrentField() error {
	f, err := r.buf.ReadByte()
	if err != nil {
		return err
	}
	if err := r.checkOrder(f); err != nil {
		return err
	}
	typeByte, err := r.buf.ReadByte()
	if err != nil {
		return err
	}
	id := TypeId(typeByte)
	if !id.Valid() {
		return ErrInvalidTypeId(typeByte)
	}
	if _, err := readValueBytes(r.buf, id); err != nil {
		return err
	}
	r.lastID = f
	r.hasLast = true
	return nil
}

// ReadFieldValue implements the field-cursor operation of §4.5: "read the
// value for field id t, or return absent". target must be nondecreasing
// across successive calls on the same reader (callers always request
// fields in ascending declared-id order).
//
// present is false if the wire has no record for target (either the cursor
// is empty or the next on-wire id is greater than target). In that case any
// lower-id records ahead of it have been skipped, but the higher-id record
// is left unconsumed.
func (r *StructReader) ReadFieldValue(target byte) (value *Buffer, typeID TypeId, present bool, err error) {
	for {
		f, ok, err := r.peekFieldID()
		if err != nil {
			return nil, 0, false, err
		}
		if !ok {
			return nil, 0, false, nil
		}
		if err := r.checkOrder(f); err != nil {
			return nil, 0, false, err
		}
		switch {
		case f < target:
			if err := r.skipCurrentField(); err != nil {
				return nil, 0, false, err
			}
		case f == target:
			// Consume the record.
			if _, err := r.buf.ReadByte(); err != nil { // field id, already peeked
				return nil, 0, false, err
			}
			typeByte, err := r.buf.ReadByte()
			if err != nil {
				return nil, 0, false, err
			}
			id := TypeId(typeByte)
			if !id.Valid() {
				return nil, 0, false, ErrInvalidTypeId(typeByte)
			}
			valueBuf, err := readValueBytes(r.buf, id)
			if err != nil {
				return nil, 0, false, err
			}
			r.lastID = f
			r.hasLast = true
			return valueBuf, id, true, nil
		default: // f > target
			return nil, 0, false, nil
		}
	}
}

// Finish drains any remaining records, validating ordering and skipping
// fields the caller never requested (fields with ids higher than every
// declared field).
func (r *StructReader) Finish() error {
	for {
		f, ok, err := r.peekFieldID()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := r.checkOrder(f); err != nil {
			return err
		}
		if err := r.skipCurrentField(); err != nil {
			return err
		}
	}
}
