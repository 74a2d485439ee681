package value

import (
	"reflect"
	"unicode/utf8"

	"github.com/tagwire/tagwire"
)

// Decode parses data as a single schema-less Tagged Format value. Unlike
// [tagwire.Unmarshal], Decode needs no target type: it mirrors whatever
// structure is on the wire into a [Value] tree. Any bytes left over after
// the top-level value fail with an ExtraData-kind error.
func Decode(data []byte) (Value, error) {
	buf := tagwire.NewBuffer(data)
	v, err := parseValue(buf)
	if err != nil {
		return nil, err
	}
	if !buf.Empty() {
		return nil, tagwire.ErrExtraData(buf.Len())
	}
	return v, nil
}

// parseValue reads a type byte followed by its value.
func parseValue(buf *tagwire.Buffer) (Value, error) {
	id, err := tagwire.ReadTypeId(buf)
	if err != nil {
		return nil, err
	}
	return parseTypedValue(buf, id)
}

// valueContent carves the bytes belonging to a value of type id: its fixed
// width, or its length-prefixed content for variable types.
func valueContent(buf *tagwire.Buffer, id tagwire.TypeId) (*tagwire.Buffer, error) {
	if width, ok := id.Fixed(); ok {
		return buf.Take(width)
	}
	return tagwire.ReadContainerContent(buf)
}

// parseTypedValue decodes a value already known to have wire type id, given
// buf positioned just past the type byte.
func parseTypedValue(buf *tagwire.Buffer, id tagwire.TypeId) (Value, error) {
	content, err := valueContent(buf, id)
	if err != nil {
		return nil, err
	}
	switch id {
	case tagwire.Null:
		return Null{}, nil
	case tagwire.Bool:
		b, err := tagwire.ReadBool(content)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case tagwire.U8:
		v, err := tagwire.ReadUint(content, 1)
		return U8(v), err
	case tagwire.U16:
		v, err := tagwire.ReadUint(content, 2)
		return U16(v), err
	case tagwire.U32:
		v, err := tagwire.ReadUint(content, 4)
		return U32(v), err
	case tagwire.U64:
		v, err := tagwire.ReadUint(content, 8)
		return U64(v), err
	case tagwire.U128:
		v, err := tagwire.ReadUint128(content)
		return U128(v), err
	case tagwire.I8:
		v, err := tagwire.ReadUint(content, 1)
		return I8(int8(v)), err
	case tagwire.I16:
		v, err := tagwire.ReadUint(content, 2)
		return I16(int16(v)), err
	case tagwire.I32:
		v, err := tagwire.ReadUint(content, 4)
		return I32(int32(v)), err
	case tagwire.I64:
		v, err := tagwire.ReadUint(content, 8)
		return I64(int64(v)), err
	case tagwire.I128:
		v, err := tagwire.ReadInt128(content)
		return I128(v), err
	case tagwire.F32:
		v, err := tagwire.ReadFloat32(content)
		return F32(v), err
	case tagwire.F64:
		v, err := tagwire.ReadFloat64(content)
		return F64(v), err
	case tagwire.Timestamp:
		v, err := tagwire.ReadTimestamp(content)
		return Timestamp(v), err
	case tagwire.String:
		// content already excludes the length prefix; validate it directly.
		b := content.Bytes()
		if !utf8.Valid(b) {
			return nil, tagwire.ErrInvalidUtf8()
		}
		return String(b), nil
	case tagwire.Array:
		return parseArray(content)
	case tagwire.Map:
		return parseMap(content)
	case tagwire.Struct:
		return parseStruct(content)
	case tagwire.Enum:
		return parseEnum(content)
	default:
		return nil, tagwire.ErrInvalidTypeId(byte(id))
	}
}

func parseArray(content *tagwire.Buffer) (Value, error) {
	elemType, err := tagwire.ReadTypeId(content)
	if err != nil {
		return nil, err
	}
	var elements []Value
	for !content.Empty() {
		el, err := parseTypedValue(content, elemType)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return Array{ElementType: elemType, Elements: elements}, nil
}

func parseMap(content *tagwire.Buffer) (Value, error) {
	keyType, err := tagwire.ReadTypeId(content)
	if err != nil {
		return nil, err
	}
	valType, err := tagwire.ReadTypeId(content)
	if err != nil {
		return nil, err
	}
	var entries []MapEntry
	for !content.Empty() {
		key, err := parseTypedValue(content, keyType)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if reflect.DeepEqual(e.Key, key) {
				return nil, tagwire.ErrDuplicateMapKey()
			}
		}
		val, err := parseTypedValue(content, valType)
		if err != nil {
			return nil, err
		}
		entries = append(entries, MapEntry{Key: key, Value: val})
	}
	return Map{KeyType: keyType, ValueType: valType, Entries: entries}, nil
}

// parseStruct preserves wire order and does not enforce field-id ordering;
// see the package doc on [Struct] for why this differs from the typed
// decoder's StructReader.
func parseStruct(content *tagwire.Buffer) (Value, error) {
	var fields []StructField
	for !content.Empty() {
		fieldID, err := content.ReadByte()
		if err != nil {
			return nil, err
		}
		if fieldID&0x80 != 0 {
			return nil, tagwire.ErrInvalidFieldId(fieldID)
		}
		v, err := parseValue(content)
		if err != nil {
			return nil, err
		}
		fields = append(fields, StructField{ID: fieldID, Value: v})
	}
	return Struct{Fields: fields}, nil
}

func parseEnum(content *tagwire.Buffer) (Value, error) {
	variantID, err := content.ReadByte()
	if err != nil {
		return nil, err
	}
	if variantID&0x80 != 0 {
		return nil, tagwire.ErrInvalidFieldId(variantID)
	}
	v, err := parseValue(content)
	if err != nil {
		return nil, err
	}
	if !content.Empty() {
		return nil, tagwire.ErrExtraData(content.Len())
	}
	return Enum{VariantID: variantID, Value: v}, nil
}
