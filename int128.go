package tagwire

import "math/big"

// Uint128 is an unsigned 128-bit integer, represented as two 64-bit halves.
// Go has no native type of this width; this mirrors the width and
// little-endian wire layout of the format's U128 type.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Uint128FromBigInt converts x to a Uint128. It panics if x is negative or
// does not fit in 128 bits; these are programmer errors, not wire-level
// failures, since this conversion never runs on untrusted input.
func Uint128FromBigInt(x *big.Int) Uint128 {
	if x.Sign() < 0 || x.BitLen() > 128 {
		panic("tagwire: value does not fit in Uint128")
	}
	var buf [16]byte
	x.FillBytes(buf[:])
	return Uint128{
		Hi: beUint64(buf[0:8]),
		Lo: beUint64(buf[8:16]),
	}
}

// BigInt converts u to a *big.Int.
func (u Uint128) BigInt() *big.Int {
	var buf [16]byte
	putBeUint64(buf[0:8], u.Hi)
	putBeUint64(buf[8:16], u.Lo)
	return new(big.Int).SetBytes(buf[:])
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func putBeUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// Int128 is a signed 128-bit integer in two's complement, represented as two
// 64-bit halves.
type Int128 struct {
	Lo uint64
	Hi uint64
}

// Int128FromBigInt converts x to an Int128. It panics if x does not fit in a
// signed 128-bit range.
func Int128FromBigInt(x *big.Int) Int128 {
	min := new(big.Int).Lsh(big.NewInt(-1), 127)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	if x.Cmp(min) < 0 || x.Cmp(max) > 0 {
		panic("tagwire: value does not fit in Int128")
	}
	u := new(big.Int).Set(x)
	if u.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		u.Add(u, mod)
	}
	v := Uint128FromBigInt(u)
	return Int128{Lo: v.Lo, Hi: v.Hi}
}

// BigInt converts i to a *big.Int, interpreting the bits as two's complement.
func (i Int128) BigInt() *big.Int {
	u := Uint128{Lo: i.Lo, Hi: i.Hi}
	v := u.BigInt()
	if i.Hi&0x8000000000000000 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		v.Sub(v, mod)
	}
	return v
}

// putLE128 writes the little-endian 16-byte encoding of (hi, lo) to dst.
func putLE128(dst []byte, hi, lo uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(lo >> (8 * i))
	}
	for i := 0; i < 8; i++ {
		dst[8+i] = byte(hi >> (8 * i))
	}
}

// readLE128 reads the little-endian 16-byte encoding into (hi, lo).
func readLE128(src []byte) (hi, lo uint64) {
	for i := 7; i >= 0; i-- {
		lo = lo<<8 | uint64(src[i])
	}
	for i := 7; i >= 0; i-- {
		hi = hi<<8 | uint64(src[8+i])
	}
	return hi, lo
}
