package tagwire

import (
	"fmt"
	"reflect"
)

// UnsupportedTypeError is returned by [Marshal] and [Unmarshal] when asked
// to encode or decode a Go type with no corresponding wire representation.
// It is a binding-layer error distinct from [ParseError]/[WriteError]: it
// signals a programmer mistake (an unsupported Go type), not a malformed or
// oversized payload.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("tagwire: unsupported type: %s", e.Type)
}

// InvalidValueError is returned by [Marshal] and [Unmarshal] when passed a
// value that cannot be encoded or decoded irrespective of its type (e.g. a
// nil pointer passed to Unmarshal).
type InvalidValueError struct {
	Msg string
}

func (e *InvalidValueError) Error() string {
	return "tagwire: " + e.Msg
}

// Marshal encodes v into the Tagged Format: a single top-level value
// consisting of a type byte followed by the type's payload. v is typically
// a struct with `wire:"<id>"`-tagged fields, but any supported Go type
// (primitives, slices, maps, nested structs, [Uint128]/[Int128],
// [time.Time]) may be marshaled directly.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, &InvalidValueError{Msg: "cannot marshal nil interface"}
	}
	typeID, payload, err := marshalValue(rv)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(typeID)}, payload...), nil
}

// Unmarshal decodes a single top-level Tagged Format value from data into
// the value pointed to by v. It is an error if data contains trailing bytes
// after the value (ExtraData), or if v's Go type does not match the type
// declared on the wire (TypeMismatch).
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidValueError{Msg: "Unmarshal target must be a non-nil pointer"}
	}
	buf := NewBuffer(data)
	typeID, err := ReadTypeId(buf)
	if err != nil {
		return err
	}
	if err := unmarshalValueInto(typeID, buf, rv.Elem()); err != nil {
		return err
	}
	if !buf.Empty() {
		return ErrExtraData(buf.Len())
	}
	return nil
}
