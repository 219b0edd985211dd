package packed

import (
	"fmt"
	"slices"
)

// SizeOfFields returns the packed size of a composite made of fields:
// the sum of their packed sizes.
//
// A hand-declared composite implements Sizer by listing zero values of its
// members in declaration order:
//
//	func (Header) PackedSize() int {
//		return packed.SizeOfFields(packed.U8(0), packed.U16(0))
//	}
func SizeOfFields(fields ...Sizer) int {
	n := 0
	for _, f := range fields {
		n += f.PackedSize()
	}
	return n
}

// UnpackFields decodes fields in declaration order, each at the running sum
// of the packed sizes of the fields before it, starting at offset.
//
// The window of the whole composite is checked before any field is read.
// Decoding stops at the first failing field and returns its error; later
// fields are left untouched.
//
//	func (h *Header) UnpackAt(buf []byte, offset int) error {
//		return packed.UnpackFields(buf, offset, &h.A, &h.B)
//	}
func UnpackFields(buf []byte, offset int, fields ...Unpacker) error {
	size := 0
	for _, f := range fields {
		size += f.PackedSize()
	}
	if _, err := window(buf, offset, size, "composite"); err != nil {
		return err
	}
	for _, f := range fields {
		if err := unpack(f, buf, offset); err != nil {
			return err
		}
		offset += f.PackedSize()
	}
	return nil
}

//go:generate go run ./internal/gen/arrays -o arrays_gen.go

// ArraySize returns the packed size of n elements of E.
func ArraySize[E any, P PtrSizer[E]](n int) int {
	var zero E
	return n * P(&zero).PackedSize()
}

// UnpackArray decodes len(dst) elements of E, element i at
// offset + i*PackedSize(E), in index order. The window of the whole array
// is checked first.
func UnpackArray[E any, P PtrUnpacker[E]](dst []E, buf []byte, offset int) error {
	var zero E
	size := P(&zero).PackedSize()
	if _, err := window(buf, offset, len(dst)*size, arrayName{elem: P(&zero), n: len(dst)}); err != nil {
		return err
	}
	for i := range dst {
		if err := unpack(P(&dst[i]), buf, offset+i*size); err != nil {
			return err
		}
	}
	return nil
}

type arrayName struct {
	elem any
	n    int
}

func (a arrayName) String() string { return fmt.Sprintf("[%d]%s", a.n, typeName(a.elem)) }

// OneOf reports whether v is one of allowed. It is meant for Validate
// methods of enumerations:
//
//	func (k Kind) Validate() error { return packed.OneOf(k, KindA, KindB) }
func OneOf[T comparable](v T, allowed ...T) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	return fmt.Errorf("value %v is not one of %v", v, allowed)
}
