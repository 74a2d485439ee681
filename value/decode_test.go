package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagwire/tagwire"
)

func TestDecodeNull(t *testing.T) {
	v, err := Decode([]byte{byte(tagwire.Null)})
	require.NoError(t, err)
	assert.Equal(t, Null{}, v)
}

func TestDecodeBool(t *testing.T) {
	data := append([]byte{byte(tagwire.Bool)}, tagwire.WriteBool(nil, true)...)
	v, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v)
}

func TestDecodeU32(t *testing.T) {
	data := append([]byte{byte(tagwire.U32)}, tagwire.WriteUint(nil, 42, 4)...)
	v, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, U32(42), v)
}

func TestDecodeString(t *testing.T) {
	strBytes, err := tagwire.WriteString(nil, "hi")
	require.NoError(t, err)
	data := append([]byte{byte(tagwire.String)}, strBytes...)
	v, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, String("hi"), v)
}

func TestDecodeArray(t *testing.T) {
	var content []byte
	content = append(content, byte(tagwire.U32))
	content = append(content, tagwire.WriteUint(nil, 1, 4)...)
	content = append(content, tagwire.WriteUint(nil, 2, 4)...)
	dst, err := tagwire.WriteContainerContent([]byte{byte(tagwire.Array)}, content)
	require.NoError(t, err)

	v, err := Decode(dst)
	require.NoError(t, err)
	arr, ok := v.(Array)
	require.True(t, ok)
	assert.Equal(t, tagwire.U32, arr.ElementType)
	assert.Equal(t, []Value{U32(1), U32(2)}, arr.Elements)
}

func TestDecodeStructPreservesDisorderedWireOrder(t *testing.T) {
	// Field 2 then field 0: the schema-less decoder must not reject this,
	// unlike the typed decoder's StructReader.
	var content []byte
	content = append(content, 2, byte(tagwire.U32))
	content = append(content, tagwire.WriteUint(nil, 99, 4)...)
	content = append(content, 0, byte(tagwire.U32))
	content = append(content, tagwire.WriteUint(nil, 1, 4)...)
	dst, err := tagwire.WriteContainerContent([]byte{byte(tagwire.Struct)}, content)
	require.NoError(t, err)

	v, err := Decode(dst)
	require.NoError(t, err)
	s, ok := v.(Struct)
	require.True(t, ok)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, uint8(2), s.Fields[0].ID)
	assert.Equal(t, uint8(0), s.Fields[1].ID)
}

func TestDecodeMapDuplicateKeyFails(t *testing.T) {
	var content []byte
	content = append(content, byte(tagwire.String), byte(tagwire.U32))
	k1, err := tagwire.WriteString(nil, "a")
	require.NoError(t, err)
	content = append(content, k1...)
	content = append(content, tagwire.WriteUint(nil, 1, 4)...)
	content = append(content, k1...)
	content = append(content, tagwire.WriteUint(nil, 2, 4)...)
	dst, err := tagwire.WriteContainerContent([]byte{byte(tagwire.Map)}, content)
	require.NoError(t, err)

	_, err = Decode(dst)
	assert.Error(t, err)
}

func TestDecodeEnum(t *testing.T) {
	var content []byte
	content = append(content, 1, byte(tagwire.String))
	strBytes, err := tagwire.WriteString(nil, "x")
	require.NoError(t, err)
	content = append(content, strBytes...)
	dst, err := tagwire.WriteContainerContent([]byte{byte(tagwire.Enum)}, content)
	require.NoError(t, err)

	v, err := Decode(dst)
	require.NoError(t, err)
	e, ok := v.(Enum)
	require.True(t, ok)
	assert.Equal(t, uint8(1), e.VariantID)
	assert.Equal(t, String("x"), e.Value)
}

func TestDecodeExtraDataFails(t *testing.T) {
	data := []byte{byte(tagwire.Null), 0xFF}
	_, err := Decode(data)
	assert.Error(t, err)
}
