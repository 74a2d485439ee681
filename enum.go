package tagwire

import "reflect"

// TaggedUnion is the runtime value of an enum: exactly one variant,
// identified by VariantID, holding a single inner value. Go has no closed
// sum type to model §3's enum variant natively, so TaggedUnion plus
// [EnumCodec] fill that role — the same role a registry of concrete types
// plays for [encoding/gob]'s interface values.
type TaggedUnion struct {
	VariantID byte
	Value     any
}

// EnumVariant declares one variant of an enum: its on-wire id and a zero
// value of its payload type, used to determine the payload's TypeId and,
// on decode, to allocate a fresh value of the right Go type.
type EnumVariant struct {
	ID     byte
	Sample any
}

// EnumCodec encodes and decodes [TaggedUnion] values for one declared enum,
// implementing the enum write/parse rules of §4.6: a tagged-varint content
// length, then variant_id, then the inner type id, then the inner value;
// an unknown variant id fails with UnknownVariant, and leftover content
// after the inner value fails with ExtraData.
type EnumCodec struct {
	name     string
	byID     map[byte]reflect.Type
	idOfType map[reflect.Type]byte
}

// enumRegistry lets struct fields declared with a `wire:"<id>,enum=<name>"`
// tag resolve their EnumCodec by name at descriptor-build time, mirroring
// the registration idiom encoding/gob uses for interface value decoding.
var enumRegistry = map[string]*EnumCodec{}

// NewEnumCodec builds a codec for an enum named name with the given
// variants and registers it under that name for use from struct tags.
// It panics on duplicate variant ids or ids with the high bit set — these
// are declaration-time mistakes, the dynamic analogue of the static checks
// a code generator would perform in §4.6.
func NewEnumCodec(name string, variants ...EnumVariant) *EnumCodec {
	c := &EnumCodec{
		name:     name,
		byID:     make(map[byte]reflect.Type, len(variants)),
		idOfType: make(map[reflect.Type]byte, len(variants)),
	}
	for _, v := range variants {
		if v.ID&0x80 != 0 {
			panic("tagwire: enum variant id must have high bit clear")
		}
		if _, dup := c.byID[v.ID]; dup {
			panic("tagwire: duplicate enum variant id")
		}
		t := reflect.TypeOf(v.Sample)
		c.byID[v.ID] = t
		c.idOfType[t] = v.ID
	}
	enumRegistry[name] = c
	return c
}

// Marshal encodes tu as a complete Enum value: type byte, length prefix,
// variant id, inner type id, inner value.
func (c *EnumCodec) Marshal(tu TaggedUnion) ([]byte, error) {
	content, err := c.marshalContent(tu)
	if err != nil {
		return nil, err
	}
	dst := append([]byte{byte(Enum)})
	return WriteContainerContent(dst, content)
}

func (c *EnumCodec) marshalContent(tu TaggedUnion) ([]byte, error) {
	t := reflect.TypeOf(tu.Value)
	id, ok := c.idOfType[t]
	if !ok || id != tu.VariantID {
		// The variant id is resolved from the Go type actually carried: a
		// type no variant declares fails with UnknownVariant, and a
		// VariantID that disagrees with the variant declared for that type
		// is replaced by the declared one.
		if !ok {
			return nil, ErrUnknownVariant(tu.VariantID)
		}
		tu.VariantID = id
	}
	typeID, valueBytes, err := marshalValue(reflect.ValueOf(tu.Value))
	if err != nil {
		return nil, err
	}
	content := []byte{tu.VariantID, byte(typeID)}
	return append(content, valueBytes...), nil
}

// Unmarshal parses a complete Enum value (including its leading type byte)
// into a TaggedUnion.
func (c *EnumCodec) Unmarshal(data []byte) (TaggedUnion, error) {
	buf := NewBuffer(data)
	id, err := ReadTypeId(buf)
	if err != nil {
		return TaggedUnion{}, err
	}
	if id != Enum {
		return TaggedUnion{}, ErrTypeMismatch(Enum, id)
	}
	content, err := ReadContainerContent(buf)
	if err != nil {
		return TaggedUnion{}, err
	}
	if !buf.Empty() {
		return TaggedUnion{}, ErrExtraData(buf.Len())
	}
	return c.unmarshalContent(content)
}

func (c *EnumCodec) unmarshalContent(content *Buffer) (TaggedUnion, error) {
	variantID, err := content.ReadByte()
	if err != nil {
		return TaggedUnion{}, err
	}
	if variantID&0x80 != 0 {
		return TaggedUnion{}, ErrInvalidFieldId(variantID)
	}
	payloadType, ok := c.byID[variantID]
	if !ok {
		return TaggedUnion{}, ErrUnknownVariant(variantID)
	}
	typeID, err := ReadTypeId(content)
	if err != nil {
		return TaggedUnion{}, err
	}
	target := reflect.New(payloadType).Elem()
	if err := unmarshalValueInto(typeID, content, target); err != nil {
		return TaggedUnion{}, err
	}
	if !content.Empty() {
		return TaggedUnion{}, ErrExtraData(content.Len())
	}
	return TaggedUnion{VariantID: variantID, Value: target.Interface()}, nil
}
