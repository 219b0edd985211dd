package packed

import (
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Fixed-width integers. Each has a packed size of width/8 bytes and decodes
// from a little-endian window at any offset.
type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
)

func (U8) PackedSize() int  { return 1 }
func (U16) PackedSize() int { return 2 }
func (U32) PackedSize() int { return 4 }
func (U64) PackedSize() int { return 8 }
func (I8) PackedSize() int  { return 1 }
func (I16) PackedSize() int { return 2 }
func (I32) PackedSize() int { return 4 }
func (I64) PackedSize() int { return 8 }

func (v *U8) UnpackAt(buf []byte, offset int) error  { return unpackInt(v, buf, offset) }
func (v *U16) UnpackAt(buf []byte, offset int) error { return unpackInt(v, buf, offset) }
func (v *U32) UnpackAt(buf []byte, offset int) error { return unpackInt(v, buf, offset) }
func (v *U64) UnpackAt(buf []byte, offset int) error { return unpackInt(v, buf, offset) }
func (v *I8) UnpackAt(buf []byte, offset int) error  { return unpackInt(v, buf, offset) }
func (v *I16) UnpackAt(buf []byte, offset int) error { return unpackInt(v, buf, offset) }
func (v *I32) UnpackAt(buf []byte, offset int) error { return unpackInt(v, buf, offset) }
func (v *I64) UnpackAt(buf []byte, offset int) error { return unpackInt(v, buf, offset) }

// Int decodes a plain Go integer of type T from the window at offset.
// Its width is the in-memory width of T, so int and uint are 8 bytes on
// 64-bit platforms; prefer the sized kinds for portable formats.
func Int[T constraints.Integer](buf []byte, offset int) (T, error) {
	var v T
	err := unpackInt(&v, buf, offset)
	return v, err
}

func intSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func unpackInt[T constraints.Integer](dst *T, buf []byte, offset int) error {
	b, err := window(buf, offset, intSize[T](), dst)
	if err != nil {
		return err
	}
	*dst = loadInt[T](b)
	return nil
}

// loadInt interprets b as a little-endian T; len(b) is the width of T.
func loadInt[T constraints.Integer](b []byte) T {
	switch len(b) {
	case 1:
		return T(b[0])
	case 2:
		return T(Order.Uint16(b))
	case 4:
		return T(Order.Uint32(b))
	default:
		return T(Order.Uint64(b))
	}
}

// U128 is an unsigned 128-bit integer.
type U128 struct {
	uint128.Uint128
}

func (U128) PackedSize() int { return 16 }

func (v *U128) UnpackAt(buf []byte, offset int) error {
	b, err := window(buf, offset, 16, v)
	if err != nil {
		return err
	}
	v.Uint128 = uint128.FromBytes(b)
	return nil
}

// I128 is a signed 128-bit two's complement integer.
type I128 struct {
	Lo uint64
	Hi int64
}

// I128From64 sign-extends v.
func I128From64(v int64) I128 {
	return I128{Lo: uint64(v), Hi: v >> 63}
}

func (I128) PackedSize() int { return 16 }

func (v *I128) UnpackAt(buf []byte, offset int) error {
	b, err := window(buf, offset, 16, v)
	if err != nil {
		return err
	}
	u := uint128.FromBytes(b)
	v.Lo, v.Hi = u.Lo, int64(u.Hi)
	return nil
}

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// Big returns v as a *big.Int.
func (v I128) Big() *big.Int {
	b := uint128.New(v.Lo, uint64(v.Hi)).Big()
	if v.Hi < 0 {
		b.Sub(b, two128)
	}
	return b
}

func (v I128) String() string { return v.Big().String() }
