// Package packed computes the packed size of fixed-layout types and decodes
// them from unaligned byte buffers.
//
// The packed size of a type is the number of bytes it occupies with no
// alignment padding: the width of an integer, n times the element size for
// an array, and the sum of the member sizes for a composite. Every
// multi-byte integer is little-endian (see Order).
//
// Decoding is stateless. A caller holding a buffer decodes successive fields
// at successive offsets and advances the offset by each field's packed size;
// nothing in this package keeps a cursor. Decode calls only read the window
// [offset, offset+PackedSize()) of the buffer they are given, never write to
// it and never retain it, so they are safe to run concurrently.
package packed

// Sizer is implemented by types that can report their packed size.
type Sizer interface {
	// PackedSize returns the size of the type in bytes with no padding.
	// It must not depend on the receiver's value: it is called on zero values.
	PackedSize() int
}

// Unpacker is implemented by pointers to decodable types.
type Unpacker interface {
	Sizer

	// UnpackAt decodes the receiver from buf[offset:offset+PackedSize()].
	// It returns an error wrapping ErrOutOfBounds when the window does not
	// fit in buf, before reading anything. On error the receiver's contents
	// are unspecified.
	UnpackAt(buf []byte, offset int) error
}

// Validator is implemented by decodable types whose valid values are a
// subset of their bit patterns, such as enumerations. Validate is called
// after every successful UnpackAt; a non-nil result is reported as
// ErrInvalidEncoding.
type Validator interface {
	Validate() error
}

// PtrSizer constrains P to be *T where *T implements Sizer.
type PtrSizer[T any] interface {
	*T
	Sizer
}

// PtrUnpacker constrains P to be *T where *T implements Unpacker.
type PtrUnpacker[T any] interface {
	*T
	Unpacker
}

// SizeOf returns the packed size of T without an instance.
func SizeOf[T any, P PtrSizer[T]]() int {
	var zero T
	return P(&zero).PackedSize()
}

// Decode decodes a new T from the window of buf starting at offset.
// The returned value is owned by the caller. On error no value is returned.
func Decode[T any, P PtrUnpacker[T]](buf []byte, offset int) (*T, error) {
	v := new(T)
	if err := unpack(P(v), buf, offset); err != nil {
		return nil, err
	}
	return v, nil
}

// unpack checks the window of u, decodes it and runs its validation.
// Every composite decodes its members through here.
func unpack(u Unpacker, buf []byte, offset int) error {
	size := u.PackedSize()
	if _, err := window(buf, offset, size, u); err != nil {
		return err
	}
	if err := u.UnpackAt(buf, offset); err != nil {
		return err
	}
	if v, ok := u.(Validator); ok {
		if err := v.Validate(); err != nil {
			return invalidEncoding(u, offset, size, err)
		}
	}
	return nil
}
