package tagwire

import (
	"reflect"
	"time"
)

var (
	uint128Type = reflect.TypeFor[Uint128]()
	int128Type  = reflect.TypeFor[Int128]()
	timeType    = reflect.TypeFor[time.Time]()
)

// wireTypeFor returns the TypeId that t maps onto, the dynamic-target
// equivalent of the generator resolving a declared field's type_i (§4.6).
func wireTypeFor(t reflect.Type) (TypeId, error) {
	if t.Kind() == reflect.Pointer {
		return wireTypeFor(t.Elem())
	}
	switch {
	case t == uint128Type:
		return U128, nil
	case t == int128Type:
		return I128, nil
	case t == timeType:
		return Timestamp, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return Bool, nil
	case reflect.Uint8:
		return U8, nil
	case reflect.Uint16:
		return U16, nil
	case reflect.Uint32:
		return U32, nil
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return U64, nil
	case reflect.Int8:
		return I8, nil
	case reflect.Int16:
		return I16, nil
	case reflect.Int32:
		return I32, nil
	case reflect.Int64, reflect.Int:
		return I64, nil
	case reflect.Float32:
		return F32, nil
	case reflect.Float64:
		return F64, nil
	case reflect.String:
		return String, nil
	case reflect.Slice, reflect.Array:
		return Array, nil
	case reflect.Map:
		return Map, nil
	case reflect.Struct:
		return Struct, nil
	default:
		return 0, &UnsupportedTypeError{Type: t}
	}
}

// marshalValue encodes v (which must not be the nil value of a pointer)
// into its value-payload bytes, the bytes that follow the type byte on the
// wire, and reports the TypeId those bytes belong to.
func marshalValue(v reflect.Value) (TypeId, []byte, error) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, nil, &InvalidValueError{Msg: "cannot marshal nil pointer"}
		}
		return marshalValue(v.Elem())
	}
	t := v.Type()
	switch {
	case t == uint128Type:
		b := make([]byte, 0, 16)
		return U128, WriteUint128(b, v.Interface().(Uint128)), nil
	case t == int128Type:
		b := make([]byte, 0, 16)
		return I128, WriteInt128(b, v.Interface().(Int128)), nil
	case t == timeType:
		tm := v.Interface().(time.Time)
		b, err := WriteTimestamp(nil, tm.Unix())
		if err != nil {
			return 0, nil, err
		}
		return Timestamp, b, nil
	}
	switch v.Kind() {
	case reflect.Bool:
		return Bool, WriteBool(nil, v.Bool()), nil
	case reflect.Uint8:
		return U8, WriteUint(nil, v.Uint(), 1), nil
	case reflect.Uint16:
		return U16, WriteUint(nil, v.Uint(), 2), nil
	case reflect.Uint32:
		return U32, WriteUint(nil, v.Uint(), 4), nil
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return U64, WriteUint(nil, v.Uint(), 8), nil
	case reflect.Int8:
		return I8, WriteUint(nil, uint64(uint8(v.Int())), 1), nil
	case reflect.Int16:
		return I16, WriteUint(nil, uint64(uint16(v.Int())), 2), nil
	case reflect.Int32:
		return I32, WriteUint(nil, uint64(uint32(v.Int())), 4), nil
	case reflect.Int64, reflect.Int:
		return I64, WriteUint(nil, uint64(v.Int()), 8), nil
	case reflect.Float32:
		return F32, WriteFloat32(nil, float32(v.Float())), nil
	case reflect.Float64:
		return F64, WriteFloat64(nil, v.Float()), nil
	case reflect.String:
		b, err := WriteString(nil, v.String())
		if err != nil {
			return 0, nil, err
		}
		return String, b, nil
	case reflect.Slice, reflect.Array:
		content, err := marshalArray(v)
		if err != nil {
			return 0, nil, err
		}
		b, err := WriteContainerContent(nil, content)
		if err != nil {
			return 0, nil, err
		}
		return Array, b, nil
	case reflect.Map:
		content, err := marshalMap(v)
		if err != nil {
			return 0, nil, err
		}
		b, err := WriteContainerContent(nil, content)
		if err != nil {
			return 0, nil, err
		}
		return Map, b, nil
	case reflect.Struct:
		b, err := marshalStruct(v)
		if err != nil {
			return 0, nil, err
		}
		return Struct, b, nil
	default:
		return 0, nil, &UnsupportedTypeError{Type: t}
	}
}

// marshalArray encodes the Array content: elem_type(1) || elements.
func marshalArray(v reflect.Value) ([]byte, error) {
	elemType, err := wireTypeFor(v.Type().Elem())
	if err != nil {
		return nil, err
	}
	content := []byte{byte(elemType)}
	for i := 0; i < v.Len(); i++ {
		_, b, err := marshalValue(v.Index(i))
		if err != nil {
			return nil, err
		}
		content = append(content, b...)
	}
	return content, nil
}

// marshalMap encodes the Map content: key_type(1) value_type(1) || pairs.
func marshalMap(v reflect.Value) ([]byte, error) {
	keyType, err := wireTypeFor(v.Type().Key())
	if err != nil {
		return nil, err
	}
	valType, err := wireTypeFor(v.Type().Elem())
	if err != nil {
		return nil, err
	}
	content := []byte{byte(keyType), byte(valType)}
	iter := v.MapRange()
	for iter.Next() {
		_, kb, err := marshalValue(iter.Key())
		if err != nil {
			return nil, err
		}
		_, vb, err := marshalValue(iter.Value())
		if err != nil {
			return nil, err
		}
		content = append(content, kb...)
		content = append(content, vb...)
	}
	return content, nil
}

// marshalStruct encodes v's declared fields in ascending field-id order,
// per the write rule of §4.6.
func marshalStruct(v reflect.Value) ([]byte, error) {
	desc, err := descriptorFor(v.Type())
	if err != nil {
		return nil, err
	}
	w := NewStructWriter()
	for _, f := range desc.Fields {
		fv := v.Field(f.Index)
		if isOptional(fv.Type()) && fv.IsNil() {
			continue
		}
		var typeID TypeId
		var b []byte
		if f.EnumName != "" {
			typeID, b, err = marshalEnumField(f.EnumName, fv)
		} else {
			typeID, b, err = marshalValue(fv)
		}
		if err != nil {
			return nil, err
		}
		if err := w.WriteField(f.ID, typeID, b); err != nil {
			return nil, err
		}
	}
	return w.Finish(nil)
}

// marshalEnumField encodes a struct field declared with a `,enum=<name>`
// tag: fv must hold a [TaggedUnion], dispatched through the registered
// [EnumCodec] rather than through wireTypeFor/marshalValue's Kind switch,
// since the codec for an enum field isn't determined by its Go type alone.
func marshalEnumField(enumName string, fv reflect.Value) (TypeId, []byte, error) {
	if fv.Kind() == reflect.Pointer {
		fv = fv.Elem()
	}
	codec, ok := enumRegistry[enumName]
	if !ok {
		return 0, nil, &InvalidValueError{Msg: "tagwire: no enum registered under name " + enumName}
	}
	tu, ok := fv.Interface().(TaggedUnion)
	if !ok {
		return 0, nil, &UnsupportedTypeError{Type: fv.Type()}
	}
	content, err := codec.marshalContent(tu)
	if err != nil {
		return 0, nil, err
	}
	b, err := WriteContainerContent(nil, content)
	if err != nil {
		return 0, nil, err
	}
	return Enum, b, nil
}

// unmarshalValueInto reads a value of wire type id from buf (positioned
// just past its type byte) into target, which must be addressable.
func unmarshalValueInto(id TypeId, buf *Buffer, target reflect.Value) error {
	if target.Kind() == reflect.Pointer {
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		return unmarshalValueInto(id, buf, target.Elem())
	}
	t := target.Type()
	switch {
	case t == uint128Type:
		if id != U128 {
			return ErrTypeMismatch(U128, id)
		}
		v, err := ReadUint128(buf)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(v))
		return nil
	case t == int128Type:
		if id != I128 {
			return ErrTypeMismatch(I128, id)
		}
		v, err := ReadInt128(buf)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(v))
		return nil
	case t == timeType:
		if id != Timestamp {
			return ErrTypeMismatch(Timestamp, id)
		}
		secs, err := ReadTimestamp(buf)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(time.Unix(int64(secs), 0).UTC()))
		return nil
	}
	switch t.Kind() {
	case reflect.Bool:
		if id != Bool {
			return ErrTypeMismatch(Bool, id)
		}
		v, err := ReadBool(buf)
		if err != nil {
			return err
		}
		target.SetBool(v)
		return nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		wantID, width := uintWidth(t.Kind())
		if id != wantID {
			return ErrTypeMismatch(wantID, id)
		}
		v, err := ReadUint(buf, width)
		if err != nil {
			return err
		}
		target.SetUint(v)
		return nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		wantID, width := intWidth(t.Kind())
		if id != wantID {
			return ErrTypeMismatch(wantID, id)
		}
		v, err := ReadUint(buf, width)
		if err != nil {
			return err
		}
		target.SetInt(signExtend(v, width))
		return nil
	case reflect.Float32:
		if id != F32 {
			return ErrTypeMismatch(F32, id)
		}
		v, err := ReadFloat32(buf)
		if err != nil {
			return err
		}
		target.SetFloat(float64(v))
		return nil
	case reflect.Float64:
		if id != F64 {
			return ErrTypeMismatch(F64, id)
		}
		v, err := ReadFloat64(buf)
		if err != nil {
			return err
		}
		target.SetFloat(v)
		return nil
	case reflect.String:
		if id != String {
			return ErrTypeMismatch(String, id)
		}
		s, err := ReadString(buf)
		if err != nil {
			return err
		}
		target.SetString(s)
		return nil
	case reflect.Slice, reflect.Array:
		if id != Array {
			return ErrTypeMismatch(Array, id)
		}
		return unmarshalArray(buf, target)
	case reflect.Map:
		if id != Map {
			return ErrTypeMismatch(Map, id)
		}
		return unmarshalMap(buf, target)
	case reflect.Struct:
		if id != Struct {
			return ErrTypeMismatch(Struct, id)
		}
		return unmarshalStruct(buf, target)
	default:
		return &UnsupportedTypeError{Type: t}
	}
}

func uintWidth(k reflect.Kind) (TypeId, int) {
	switch k {
	case reflect.Uint8:
		return U8, 1
	case reflect.Uint16:
		return U16, 2
	case reflect.Uint32:
		return U32, 4
	default:
		return U64, 8
	}
}

func intWidth(k reflect.Kind) (TypeId, int) {
	switch k {
	case reflect.Int8:
		return I8, 1
	case reflect.Int16:
		return I16, 2
	case reflect.Int32:
		return I32, 4
	default:
		return I64, 8
	}
}

func signExtend(v uint64, width int) int64 {
	bits := uint(width * 8)
	if bits == 64 {
		return int64(v)
	}
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

// unmarshalArray decodes the Array content into target, a slice or array.
func unmarshalArray(buf *Buffer, target reflect.Value) error {
	content, err := ReadContainerContent(buf)
	if err != nil {
		return err
	}
	elemType, err := ReadTypeId(content)
	if err != nil {
		return err
	}
	declaredElem, err := wireTypeFor(target.Type().Elem())
	if err != nil {
		return err
	}
	if declaredElem != elemType {
		return ErrTypeMismatch(declaredElem, elemType)
	}
	var elems []reflect.Value
	for !content.Empty() {
		ev := reflect.New(target.Type().Elem()).Elem()
		if err := unmarshalValueInto(elemType, content, ev); err != nil {
			return err
		}
		elems = append(elems, ev)
	}
	if target.Kind() == reflect.Slice {
		s := reflect.MakeSlice(target.Type(), len(elems), len(elems))
		for i, ev := range elems {
			s.Index(i).Set(ev)
		}
		target.Set(s)
		return nil
	}
	if len(elems) != target.Len() {
		return &InvalidValueError{Msg: "array length does not match fixed-size Go array"}
	}
	for i, ev := range elems {
		target.Index(i).Set(ev)
	}
	return nil
}

// unmarshalMap decodes the Map content into target, a map.
func unmarshalMap(buf *Buffer, target reflect.Value) error {
	content, err := ReadContainerContent(buf)
	if err != nil {
		return err
	}
	keyType, err := ReadTypeId(content)
	if err != nil {
		return err
	}
	valType, err := ReadTypeId(content)
	if err != nil {
		return err
	}
	declaredKey, err := wireTypeFor(target.Type().Key())
	if err != nil {
		return err
	}
	declaredVal, err := wireTypeFor(target.Type().Elem())
	if err != nil {
		return err
	}
	if declaredKey != keyType {
		return ErrTypeMismatch(declaredKey, keyType)
	}
	if declaredVal != valType {
		return ErrTypeMismatch(declaredVal, valType)
	}
	m := reflect.MakeMap(target.Type())
	for !content.Empty() {
		kv := reflect.New(target.Type().Key()).Elem()
		if err := unmarshalValueInto(keyType, content, kv); err != nil {
			return err
		}
		if m.MapIndex(kv).IsValid() {
			return ErrDuplicateMapKey()
		}
		vv := reflect.New(target.Type().Elem()).Elem()
		if err := unmarshalValueInto(valType, content, vv); err != nil {
			return err
		}
		m.SetMapIndex(kv, vv)
	}
	target.Set(m)
	return nil
}

// unmarshalStruct decodes the Struct content into target using a
// StructReader, requesting declared fields in ascending id order per §4.6.
func unmarshalStruct(buf *Buffer, target reflect.Value) error {
	content, err := ReadContainerContent(buf)
	if err != nil {
		return err
	}
	desc, err := descriptorFor(target.Type())
	if err != nil {
		return err
	}
	r := NewStructReader(content)
	for _, f := range desc.Fields {
		fv := target.Field(f.Index)
		optional := isOptional(fv.Type())
		valueBuf, typeID, present, err := r.ReadFieldValue(f.ID)
		if err != nil {
			return err
		}
		if !present {
			if !optional {
				return ErrMissingRequiredField()
			}
			continue
		}
		if f.EnumName != "" {
			if typeID != Enum {
				return ErrTypeMismatch(Enum, typeID)
			}
			if err := unmarshalEnumField(f.EnumName, valueBuf, fv); err != nil {
				return err
			}
			continue
		}
		expected, err := wireTypeFor(fv.Type())
		if err != nil {
			return err
		}
		if expected != typeID {
			return ErrTypeMismatch(expected, typeID)
		}
		if err := unmarshalValueInto(typeID, valueBuf, fv); err != nil {
			return err
		}
	}
	return r.Finish()
}

// unmarshalEnumField decodes a struct field declared with a `,enum=<name>`
// tag: buf is positioned at the field's content (length prefix included,
// matching the framing StructReader hands back for every variable-length
// field), and fv must be settable as a [TaggedUnion].
func unmarshalEnumField(enumName string, buf *Buffer, fv reflect.Value) error {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}
	codec, ok := enumRegistry[enumName]
	if !ok {
		return &InvalidValueError{Msg: "tagwire: no enum registered under name " + enumName}
	}
	content, err := ReadContainerContent(buf)
	if err != nil {
		return err
	}
	tu, err := codec.unmarshalContent(content)
	if err != nil {
		return err
	}
	fv.Set(reflect.ValueOf(tu))
	return nil
}
