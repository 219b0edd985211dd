package packed

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks and Helpers ---

// header is a hand-declared composite {a: u8, b: u16}.
type header struct {
	A U8
	B U16
}

func (header) PackedSize() int { return SizeOfFields(U8(0), U16(0)) }

func (h *header) UnpackAt(buf []byte, offset int) error {
	return UnpackFields(buf, offset, &h.A, &h.B)
}

// kind is a closed enumeration stored in one byte.
type kind U8

const (
	kindPing kind = 1
	kindPong kind = 2
)

func (kind) PackedSize() int { return 1 }

func (k *kind) UnpackAt(buf []byte, offset int) error { return (*U8)(k).UnpackAt(buf, offset) }

func (k kind) Validate() error { return OneOf(k, kindPing, kindPong) }

// probe is a U16 that counts how often it is decoded.
type probe struct {
	U16
	calls int
}

func (p *probe) UnpackAt(buf []byte, offset int) error {
	p.calls++
	return p.U16.UnpackAt(buf, offset)
}

type message struct {
	Kind kind
	Seq  probe
}

func (message) PackedSize() int { return SizeOfFields(kind(0), probe{}) }

func (m *message) UnpackAt(buf []byte, offset int) error {
	return UnpackFields(buf, offset, &m.Kind, &m.Seq)
}

// strict rejects every value with the bare sentinel.
type strict U8

func (strict) PackedSize() int                          { return 1 }
func (s *strict) UnpackAt(buf []byte, offset int) error { return (*U8)(s).UnpackAt(buf, offset) }
func (strict) Validate() error                          { return ErrInvalidEncoding }

// --- Composite Tests ---

func TestCompositeDecode(t *testing.T) {
	assert.Equal(t, 3, SizeOf[header]())
	assert.Equal(t, U8(0).PackedSize()+U16(0).PackedSize(), header{}.PackedSize())

	h, err := Decode[header]([]byte{0x05, 0x02, 0x00}, 0)
	require.NoError(t, err)
	assert.Equal(t, header{A: 5, B: 2}, *h)

	h, err = Decode[header]([]byte{0xFF, 0x05, 0x02, 0x00}, 1)
	require.NoError(t, err)
	assert.Equal(t, header{A: 5, B: 2}, *h)
}

func TestCompositeOutOfBounds(t *testing.T) {
	var m message
	err := m.UnpackAt([]byte{0x01, 0x02}, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Zero(t, m.Seq.calls, "no member is decoded when the composite does not fit")
	assert.Equal(t, kind(0), m.Kind)

	v, err := Decode[message]([]byte{0x01, 0x02}, 0)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestCompositeInvalidMemberAborts(t *testing.T) {
	buf := []byte{0x09, 0x34, 0x12}

	t.Run("DecodeReturnsNoValue", func(t *testing.T) {
		v, err := Decode[message](buf, 0)
		assert.Nil(t, v)
		require.ErrorIs(t, err, ErrInvalidEncoding)
		assert.NotErrorIs(t, err, ErrOutOfBounds)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "packed.kind", de.Type)
		assert.Equal(t, 0, de.Offset)
		assert.Equal(t, 1, de.Size)
		require.Error(t, errors.Unwrap(err))
		assert.Contains(t, err.Error(), "value 9 is not one of [1 2]")
	})

	t.Run("LaterMembersUntouched", func(t *testing.T) {
		var m message
		err := m.UnpackAt(buf, 0)
		require.ErrorIs(t, err, ErrInvalidEncoding)
		assert.Zero(t, m.Seq.calls)
		assert.Equal(t, U16(0), m.Seq.U16)
	})

	t.Run("ValidMember", func(t *testing.T) {
		var m message
		require.NoError(t, m.UnpackAt([]byte{0x02, 0x34, 0x12}, 0))
		assert.Equal(t, kindPong, m.Kind)
		assert.Equal(t, U16(0x1234), m.Seq.U16)
		assert.Equal(t, 1, m.Seq.calls)
	})
}

func TestInvalidEncodingSentinelFromValidate(t *testing.T) {
	_, err := Decode[strict]([]byte{0x00}, 0)
	require.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Equal(t, "packed: invalid encoding: packed.strict at offset 0", err.Error())
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf(kindPing, kindPing, kindPong))
	assert.Error(t, OneOf(kind(3), kindPing, kindPong))
	assert.Error(t, OneOf(kind(1)))
}

func TestI128Big(t *testing.T) {
	assert.Equal(t, "-5", I128From64(-5).String())
	assert.Equal(t, "42", I128From64(42).String())
	assert.Equal(t, "-170141183460469231731687303715884105728", I128{Hi: -1 << 63}.String())
}

// --- Concurrency Tests ---

func TestConcurrentDecodeMatchesSequential(t *testing.T) {
	const n = 64
	bufs := make([][]byte, n)
	for i := range bufs {
		bufs[i] = []byte{byte(i), byte(i * 3), byte(i * 7)}
	}

	want := make([]header, n)
	for i, buf := range bufs {
		h, err := Decode[header](buf, 0)
		require.NoError(t, err)
		want[i] = *h
	}

	got := make([]header, n)
	var wg sync.WaitGroup
	for i := range bufs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := Decode[header](bufs[i], 0)
			if assert.NoError(t, err) {
				got[i] = *h
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, want, got)
}
