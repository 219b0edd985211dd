package packed

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Size Test Suite ---

type SizeTestSuite struct {
	suite.Suite
}

func (s *SizeTestSuite) TestPrimitiveSizes() {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"U8", SizeOf[U8](), 1},
		{"U16", SizeOf[U16](), 2},
		{"U32", SizeOf[U32](), 4},
		{"U64", SizeOf[U64](), 8},
		{"U128", SizeOf[U128](), 16},
		{"I8", SizeOf[I8](), 1},
		{"I16", SizeOf[I16](), 2},
		{"I32", SizeOf[I32](), 4},
		{"I64", SizeOf[I64](), 8},
		{"I128", SizeOf[I128](), 16},
	}
	for _, tc := range cases {
		s.Equal(tc.want, tc.got, tc.name)
	}
}

func (s *SizeTestSuite) TestSizeIsInstanceIndependent() {
	s.Equal(U32(0).PackedSize(), U32(math.MaxUint32).PackedSize())
	s.Equal(I128{}.PackedSize(), I128From64(-1).PackedSize())
	s.Equal(U16x4{}.PackedSize(), U16x4{1, 2, 3, 4}.PackedSize())
}

func (s *SizeTestSuite) TestArraySizeIsMultiplicative() {
	cases := []struct {
		arr  Sizer
		elem Sizer
		n    int
	}{
		{U8x1{}, U8(0), 1}, {U8x3{}, U8(0), 3}, {U8x16{}, U8(0), 16},
		{U16x2{}, U16(0), 2}, {U16x10{}, U16(0), 10},
		{U32x4{}, U32(0), 4}, {U32x14{}, U32(0), 14},
		{U64x6{}, U64(0), 6}, {U64x12{}, U64(0), 12},
		{I8x8{}, I8(0), 8}, {I16x16{}, I16(0), 16},
		{I32x1{}, I32(0), 1}, {I64x10{}, I64(0), 10},
	}
	for _, tc := range cases {
		s.Equal(tc.n*tc.elem.PackedSize(), tc.arr.PackedSize(), "%T", tc.arr)
	}
	s.Equal(5*3, ArraySize[header](5))
}

func TestSize(t *testing.T) {
	suite.Run(t, new(SizeTestSuite))
}

// --- Primitive Decode Tests ---

func TestDecodeLittleEndian(t *testing.T) {
	buf := []byte{0x01, 0x00}

	v, err := Decode[U16](buf, 0)
	require.NoError(t, err)
	assert.Equal(t, U16(1), *v)

	a, err := Decode[U8](buf, 0)
	require.NoError(t, err)
	b, err := Decode[U8](buf, 1)
	require.NoError(t, err)
	assert.Equal(t, U8(1), *a)
	assert.Equal(t, U8(0), *b)
}

func TestDecodePrimitives(t *testing.T) {
	data := []byte{
		0xAA,       // U8
		0xCC, 0xBB, // U16
		0x00, 0xFF, 0xEE, 0xDD, // U32
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // U64
	}

	u8, err := Decode[U8](data, 0)
	require.NoError(t, err)
	u16, err := Decode[U16](data, 1)
	require.NoError(t, err)
	u32, err := Decode[U32](data, 3)
	require.NoError(t, err)
	u64, err := Decode[U64](data, 7)
	require.NoError(t, err)

	assert.Equal(t, U8(0xAA), *u8)
	assert.Equal(t, U16(0xBBCC), *u16)
	assert.Equal(t, U32(0xDDEEFF00), *u32)
	assert.Equal(t, U64(0x0102030405060708), *u64)
}

func TestDecodeSigned(t *testing.T) {
	t.Run("I8", func(t *testing.T) {
		v, err := Decode[I8]([]byte{0xFF}, 0)
		require.NoError(t, err)
		assert.Equal(t, I8(-1), *v)
	})
	t.Run("I16", func(t *testing.T) {
		v, err := Decode[I16]([]byte{0xFE, 0xFF}, 0)
		require.NoError(t, err)
		assert.Equal(t, I16(-2), *v)
	})
	t.Run("I32", func(t *testing.T) {
		v, err := Decode[I32]([]byte{0x00, 0x00, 0x00, 0x80}, 0)
		require.NoError(t, err)
		assert.Equal(t, I32(math.MinInt32), *v)
	})
	t.Run("I64", func(t *testing.T) {
		v, err := Decode[I64]([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, 0)
		require.NoError(t, err)
		assert.Equal(t, I64(math.MaxInt64), *v)
	})
}

func TestDecode128(t *testing.T) {
	buf := make([]byte, 17)
	for i := 1; i < 17; i++ {
		buf[i] = byte(i)
	}

	u, err := Decode[U128](buf, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0807060504030201), u.Lo)
	assert.Equal(t, uint64(0x100F0E0D0C0B0A09), u.Hi)

	minusOne := make([]byte, 16)
	for i := range minusOne {
		minusOne[i] = 0xFF
	}
	s, err := Decode[I128](minusOne, 0)
	require.NoError(t, err)
	assert.Equal(t, I128From64(-1), *s)
	assert.Equal(t, "-1", s.String())

	top, err := Decode[U128](minusOne, 0)
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211455", top.String())
}

func TestDecodeUnaligned(t *testing.T) {
	buf := make([]byte, 32)
	for off := 0; off < 24; off++ {
		binary.LittleEndian.PutUint64(buf[off:], 0x1122334455667788)
		v, err := Decode[U64](buf, off)
		require.NoError(t, err)
		assert.Equal(t, U64(0x1122334455667788), *v, "offset %d", off)
	}
}

func TestInt(t *testing.T) {
	buf := []byte{0x00, 0x34, 0x12, 0xFF}

	v16, err := Int[uint16](buf, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v8, err := Int[int8](buf, 3)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), v8)

	_, err = Int[uint32](buf, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRoundTripWithLittleEndianEncoder(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	buf := make([]byte, 16)
	for i := 0; i < 1000; i++ {
		off := r.IntN(8)
		want := r.Uint64()
		binary.LittleEndian.PutUint64(buf[off:], want)

		u, err := Decode[U64](buf, off)
		require.NoError(t, err)
		assert.Equal(t, U64(want), *u)

		s, err := Decode[I32](buf, off)
		require.NoError(t, err)
		assert.Equal(t, I32(int32(uint32(want))), *s)
	}
}

// --- Bounds Tests ---

func TestOutOfBounds(t *testing.T) {
	t.Run("U64FromFourBytes", func(t *testing.T) {
		v, err := Decode[U64](make([]byte, 4), 0)
		assert.Nil(t, v)
		require.ErrorIs(t, err, ErrOutOfBounds)
		assert.NotErrorIs(t, err, ErrInvalidEncoding)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "packed.U64", de.Type)
		assert.Equal(t, 0, de.Offset)
		assert.Equal(t, 8, de.Size)
		assert.Equal(t, 4, de.Len)
		assert.Contains(t, err.Error(), "[0, 8) of a 4 byte buffer")
	})

	t.Run("WindowEndsPastBuffer", func(t *testing.T) {
		_, err := Decode[U16]([]byte{1, 2, 3}, 2)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("WindowEndsAtBuffer", func(t *testing.T) {
		v, err := Decode[U16]([]byte{1, 2, 3}, 1)
		require.NoError(t, err)
		assert.Equal(t, U16(0x0302), *v)
	})

	t.Run("NegativeOffset", func(t *testing.T) {
		_, err := Decode[U8]([]byte{1}, -1)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("OffsetOverflow", func(t *testing.T) {
		_, err := Decode[U64](make([]byte, 8), math.MaxInt)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("NilBuffer", func(t *testing.T) {
		_, err := Decode[U8](nil, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("DirectUnpackAt", func(t *testing.T) {
		var v U32
		err := v.UnpackAt([]byte{1, 2, 3}, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, U32(0), v, "no byte is read before the bounds check")
	})
}

// --- Exact Window Tests ---

func TestDecodeReadsOnlyItsWindow(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	buf := make([]byte, 24)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	const off = 5

	u32, err := Decode[U32](buf, off)
	require.NoError(t, err)
	arr, err := Decode[I16x4](buf, off)
	require.NoError(t, err)
	snapshot := append([]byte(nil), buf...)

	for i := range buf {
		if i >= off && i < off+8 {
			continue
		}
		buf[i] ^= 0xFF
	}

	u32Again, err := Decode[U32](buf, off)
	require.NoError(t, err)
	arrAgain, err := Decode[I16x4](buf, off)
	require.NoError(t, err)

	assert.Equal(t, *u32, *u32Again)
	assert.Equal(t, *arr, *arrAgain)
	assert.Equal(t, snapshot[off:off+8], buf[off:off+8], "decode never writes to the buffer")
}

// --- Array Tests ---

func TestDecodeArray(t *testing.T) {
	buf := []byte{0xEE, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00}

	v, err := Decode[U16x3](buf, 1)
	require.NoError(t, err)
	assert.Equal(t, U16x3{1, 2, 3}, *v)

	_, err = Decode[U16x4](buf, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	var direct U16x4
	err = direct.UnpackAt(buf, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, U16x4{}, direct, "array window is checked before any element")
	assert.Contains(t, err.Error(), "[4]packed.U16")
}

func TestUnpackArrayOfComposites(t *testing.T) {
	buf := []byte{1, 2, 0, 3, 4, 0}
	var hs [2]header
	require.NoError(t, UnpackArray(hs[:], buf, 0))
	assert.Equal(t, [2]header{{A: 1, B: 2}, {A: 3, B: 4}}, hs)
}
