package tagwire

// TypeId identifies the wire type of an encoded value. The high bit of a
// TypeId byte must always be zero; values with the high bit set are reserved
// and rejected on decode.
type TypeId uint8

// The twenty defined wire types.
const (
	Null      TypeId = 0x00
	Bool      TypeId = 0x01
	U8        TypeId = 0x02
	U16       TypeId = 0x03
	U32       TypeId = 0x04
	U64       TypeId = 0x05
	U128      TypeId = 0x06
	I8        TypeId = 0x07
	I16       TypeId = 0x08
	I32       TypeId = 0x09
	I64       TypeId = 0x0A
	I128      TypeId = 0x0B
	F32       TypeId = 0x0C
	F64       TypeId = 0x0D
	String    TypeId = 0x0E
	Array     TypeId = 0x0F
	Map       TypeId = 0x10
	Struct    TypeId = 0x11
	Enum      TypeId = 0x12
	Timestamp TypeId = 0x13
)

// fixedWidths maps fixed-length TypeIds to their byte width. Types absent
// from this map are variable-length.
var fixedWidths = map[TypeId]int{
	Null:      0,
	Bool:      1,
	U8:        1,
	U16:       2,
	U32:       4,
	U64:       8,
	U128:      16,
	I8:        1,
	I16:       2,
	I32:       4,
	I64:       8,
	I128:      16,
	F32:       4,
	F64:       8,
	Timestamp: 8,
}

// Valid reports whether id is a defined TypeId with its high bit clear.
func (id TypeId) Valid() bool {
	if id&0x80 != 0 {
		return false
	}
	_, fixed := fixedWidths[id]
	return fixed || id == String || id == Array || id == Map || id == Struct || id == Enum
}

// Fixed reports whether id has a statically known width, and returns it.
func (id TypeId) Fixed() (width int, ok bool) {
	width, ok = fixedWidths[id]
	return
}

// Variable reports whether id is length-prefixed on the wire.
func (id TypeId) Variable() bool {
	switch id {
	case String, Array, Map, Struct, Enum:
		return true
	default:
		return false
	}
}
