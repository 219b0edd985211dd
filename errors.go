package packed

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrOutOfBounds indicates that a decode window [offset, offset+size) does not
	// fit in the supplied buffer. It is always reported before any byte is read.
	ErrOutOfBounds = errors.New("packed: read window out of bounds")

	// ErrInvalidEncoding indicates that the bytes in the window are in range but
	// do not represent a valid value of a constrained type.
	ErrInvalidEncoding = errors.New("packed: invalid encoding")

	// ErrUnsupportedType indicates that a packed layout cannot be derived for a type.
	ErrUnsupportedType = errors.New("packed: unsupported type")

	// ErrNilIO indicates that NewReader was called with a nil io.Reader.
	ErrNilIO = errors.New("packed: NewReader called with a nil io.Reader")
)

// DecodeError describes a failed decode of a single value.
// errors.Is matches it against its Kind, and errors.Unwrap yields Err.
type DecodeError struct {
	Kind   error  // ErrOutOfBounds or ErrInvalidEncoding
	Type   string // decoded type
	Offset int    // start of the window
	Size   int    // packed size of Type
	Len    int    // buffer length, set for ErrOutOfBounds
	Err    error  // cause reported by Validate, if any
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	switch e.Kind {
	case ErrOutOfBounds:
		fmt.Fprintf(&b, ": %s needs [%d, %d) of a %d byte buffer", e.Type, e.Offset, e.Offset+e.Size, e.Len)
	default:
		fmt.Fprintf(&b, ": %s at offset %d", e.Type, e.Offset)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Is(target error) bool { return target == e.Kind }

func (e *DecodeError) Unwrap() error { return e.Err }

// window returns buf[offset:offset+size] or an ErrOutOfBounds error.
// The comparison is arranged so that offset+size cannot overflow.
func window(buf []byte, offset, size int, v any) ([]byte, error) {
	if offset < 0 || size < 0 || offset > len(buf) || size > len(buf)-offset {
		return nil, &DecodeError{Kind: ErrOutOfBounds, Type: typeName(v), Offset: offset, Size: size, Len: len(buf)}
	}
	return buf[offset : offset+size], nil
}

func invalidEncoding(v any, offset, size int, cause error) error {
	// Validate may already speak our taxonomy; keep only one layer of it.
	var de *DecodeError
	if errors.As(cause, &de) && de.Kind == ErrInvalidEncoding {
		return cause
	}
	if cause == ErrInvalidEncoding {
		cause = nil
	}
	return &DecodeError{Kind: ErrInvalidEncoding, Type: typeName(v), Offset: offset, Size: size, Err: cause}
}

func typeName(v any) string {
	switch t := v.(type) {
	case reflect.Type:
		return t.String()
	case string:
		return t
	case arrayName:
		return t.String()
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
