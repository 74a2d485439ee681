// Package value implements the schema-less value tree: a variant type that
// mirrors any well-formed Tagged Format payload without knowing its schema,
// the way a JSON DOM mirrors any JSON document.
package value

import "github.com/tagwire/tagwire"

// Value is implemented by every concrete variant below. Values are
// immutable once produced by [Decode].
type Value interface {
	Type() tagwire.TypeId
}

type Null struct{}

func (Null) Type() tagwire.TypeId { return tagwire.Null }

type Bool bool

func (Bool) Type() tagwire.TypeId { return tagwire.Bool }

type U8 uint8

func (U8) Type() tagwire.TypeId { return tagwire.U8 }

type U16 uint16

func (U16) Type() tagwire.TypeId { return tagwire.U16 }

type U32 uint32

func (U32) Type() tagwire.TypeId { return tagwire.U32 }

type U64 uint64

func (U64) Type() tagwire.TypeId { return tagwire.U64 }

type U128 tagwire.Uint128

func (U128) Type() tagwire.TypeId { return tagwire.U128 }

type I8 int8

func (I8) Type() tagwire.TypeId { return tagwire.I8 }

type I16 int16

func (I16) Type() tagwire.TypeId { return tagwire.I16 }

type I32 int32

func (I32) Type() tagwire.TypeId { return tagwire.I32 }

type I64 int64

func (I64) Type() tagwire.TypeId { return tagwire.I64 }

type I128 tagwire.Int128

func (I128) Type() tagwire.TypeId { return tagwire.I128 }

type F32 float32

func (F32) Type() tagwire.TypeId { return tagwire.F32 }

type F64 float64

func (F64) Type() tagwire.TypeId { return tagwire.F64 }

type String string

func (String) Type() tagwire.TypeId { return tagwire.String }

// Timestamp holds the raw unsigned second count from the wire.
type Timestamp uint64

func (Timestamp) Type() tagwire.TypeId { return tagwire.Timestamp }

// Array is a homogeneous sequence; every element's runtime Type() equals
// ElementType.
type Array struct {
	ElementType tagwire.TypeId
	Elements    []Value
}

func (Array) Type() tagwire.TypeId { return tagwire.Array }

// MapEntry is one key/value pair of a Map, in wire (insertion) order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map has a single declared key type and value type shared by every entry.
type Map struct {
	KeyType   tagwire.TypeId
	ValueType tagwire.TypeId
	Entries   []MapEntry
}

func (Map) Type() tagwire.TypeId { return tagwire.Map }

// StructField is one (field_id, Value) record of a Struct, in wire order.
// Unlike the schema-ful decoder, [Decode] does not validate that field ids
// are strictly increasing — see the package doc on Struct.
type StructField struct {
	ID    uint8
	Value Value
}

// Struct preserves wire order of its fields. The schema-less decoder
// deliberately does not enforce field-id ordering the way the typed
// decoder's StructReader does: diagnostics should render what is actually
// on the wire, disordered or not. This asymmetry is intentional.
type Struct struct {
	Fields []StructField
}

func (Struct) Type() tagwire.TypeId { return tagwire.Struct }

// Enum holds exactly one (variant_id, Value) pair.
type Enum struct {
	VariantID uint8
	Value     Value
}

func (Enum) Type() tagwire.TypeId { return tagwire.Enum }
