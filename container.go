package tagwire

// WriteContainerContent prepends a tagged-varint length prefix to content
// and appends both to dst. It is shared by Array, Map, Struct and Enum,
// every variable-length wire type.
func WriteContainerContent(dst []byte, content []byte) ([]byte, error) {
	dst, err := writeVarintLength(dst, len(content))
	if err != nil {
		return nil, err
	}
	return append(dst, content...), nil
}

// ReadContainerContent reads a tagged-varint length prefix from buf and
// returns a sub-buffer covering exactly that many content bytes.
func ReadContainerContent(buf *Buffer) (*Buffer, error) {
	n, err := ReadVarintLength(buf)
	if err != nil {
		return nil, err
	}
	return buf.Take(n)
}

// ReadTypeId reads and validates a single type-id byte.
func ReadTypeId(buf *Buffer) (TypeId, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	id := TypeId(b)
	if !id.Valid() {
		return 0, ErrInvalidTypeId(b)
	}
	return id, nil
}

// readValueBytes carves off the bytes belonging to a single value of type id
// from buf: its fixed width, or its length-prefixed content (length prefix
// included) for variable types.
func readValueBytes(buf *Buffer, id TypeId) (*Buffer, error) {
	if width, ok := id.Fixed(); ok {
		return buf.Take(width)
	}
	// Variable length: re-derive the prefix+content span without consuming
	// it twice. We peek the length by reading the prefix from a throwaway
	// copy positioned at the same bytes.
	peek := &Buffer{data: buf.Bytes()}
	n, err := ReadVarintLength(peek)
	if err != nil {
		return nil, err
	}
	prefixSize := len(buf.Bytes()) - len(peek.Bytes())
	return buf.Take(prefixSize + n)
}
