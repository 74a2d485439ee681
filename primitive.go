package tagwire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// WriteBool appends the wire encoding of v.
func WriteBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 0xFF)
	}
	return append(dst, 0x00)
}

// ReadBool reads a Bool value from buf. The length must be checked before
// indexing (the reference implementation relies on a slice read failing
// first; spec.md calls this out as a detail implementations should not
// copy).
func ReadBool(buf *Buffer) (bool, error) {
	if buf.Empty() {
		return false, ErrInsufficientData(1, 0)
	}
	b, _ := buf.ReadByte()
	switch b {
	case 0x00:
		return false, nil
	case 0xFF:
		return true, nil
	default:
		return false, ErrInvalidBoolValue(b)
	}
}

func WriteUint(dst []byte, v uint64, width int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:width]...)
}

func ReadUint(buf *Buffer, width int) (uint64, error) {
	sub, err := buf.Take(width)
	if err != nil {
		return 0, err
	}
	var b [8]byte
	copy(b[:], sub.Bytes())
	return binary.LittleEndian.Uint64(b[:]), nil
}

func WriteUint128(dst []byte, v Uint128) []byte {
	var buf [16]byte
	putLE128(buf[:], v.Hi, v.Lo)
	return append(dst, buf[:]...)
}

func ReadUint128(buf *Buffer) (Uint128, error) {
	sub, err := buf.Take(16)
	if err != nil {
		return Uint128{}, err
	}
	hi, lo := readLE128(sub.Bytes())
	return Uint128{Hi: hi, Lo: lo}, nil
}

func WriteInt128(dst []byte, v Int128) []byte {
	var buf [16]byte
	putLE128(buf[:], v.Hi, v.Lo)
	return append(dst, buf[:]...)
}

func ReadInt128(buf *Buffer) (Int128, error) {
	sub, err := buf.Take(16)
	if err != nil {
		return Int128{}, err
	}
	hi, lo := readLE128(sub.Bytes())
	return Int128{Hi: hi, Lo: lo}, nil
}

func WriteFloat32(dst []byte, v float32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	return append(dst, buf[:]...)
}

func ReadFloat32(buf *Buffer) (float32, error) {
	sub, err := buf.Take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(sub.Bytes())), nil
}

func WriteFloat64(dst []byte, v float64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return append(dst, buf[:]...)
}

func ReadFloat64(buf *Buffer) (float64, error) {
	sub, err := buf.Take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(sub.Bytes())), nil
}

// WriteString appends the tagged-varint length prefix followed by the UTF-8
// bytes of s.
func WriteString(dst []byte, s string) ([]byte, error) {
	dst, err := writeVarintLength(dst, len(s))
	if err != nil {
		return nil, err
	}
	return append(dst, s...), nil
}

func stringLength(s string) int {
	return varintLengthSize(len(s)) + len(s)
}

// ReadString reads a length-prefixed UTF-8 string from buf.
func ReadString(buf *Buffer) (string, error) {
	n, err := ReadVarintLength(buf)
	if err != nil {
		return "", err
	}
	sub, err := buf.Take(n)
	if err != nil {
		return "", err
	}
	b := sub.Bytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidUtf8()
	}
	return string(b), nil
}

// WriteTimestamp appends the eight little-endian bytes of the Unix second
// count t. Negative counts cannot be represented and fail with
// InvalidTimestamp.
func WriteTimestamp(dst []byte, t int64) ([]byte, error) {
	if t < 0 {
		return nil, ErrWriteInvalidTimestamp()
	}
	return WriteUint(dst, uint64(t), 8), nil
}

func ReadTimestamp(buf *Buffer) (uint64, error) {
	return ReadUint(buf, 8)
}
