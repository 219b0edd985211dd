package packed

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// layoutCache keeps derived layouts, and derivation failures, so reflection
// runs once per type.
var layoutCache = xsync.NewMap[reflect.Type, derived]()

type derived struct {
	layout *Layout
	err    error
}

var (
	unpackerType  = reflect.TypeFor[Unpacker]()
	validatorType = reflect.TypeFor[Validator]()
)

type nodeKind uint8

const (
	kindUnpacker nodeKind = iota // *T implements Unpacker
	kindUint
	kindInt
	kindArray
	kindStruct
	kindReserved // blank field, skipped
)

// node tells how to decode one type within a derived layout.
type node struct {
	kind     nodeKind
	size     int
	validate bool // *T implements Validator and UnpackAt does not run it

	elem    *node // kindArray
	len     int   // kindArray
	members []member
}

type member struct {
	name   string
	index  int
	offset int
	node   *node
}

// Layout is the packed layout of a struct type, derived from its fields in
// declaration order. Each field starts at the sum of the packed sizes of the
// fields before it; there is no padding.
//
// Supported field types are types whose pointer implements Unpacker, sized
// integer kinds (int8..int64, uint8..uint64), arrays of supported types and
// nested structs. Blank (_) fields are reserved bytes: they count toward the
// size but are never decoded. Fields tagged `packed:"-"` are left out.
type Layout struct {
	typ  reflect.Type
	root *node
}

// Field describes a top-level member of a Layout.
type Field struct {
	Name   string
	Offset int
	Size   int
}

// LayoutOf returns the derived layout of struct T.
// It fails with ErrUnsupportedType when T or one of its fields has no packed form.
func LayoutOf[T any]() (*Layout, error) {
	return layoutFor(reflect.TypeFor[T]())
}

func layoutFor(t reflect.Type) (*Layout, error) {
	if d, ok := layoutCache.Load(t); ok {
		return d.layout, d.err
	}
	// Deriving a struct derives the layouts of nested Struct fields, so this
	// must not run under a lock of the cache.
	var d derived
	if t.Kind() != reflect.Struct {
		d.err = fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, t)
	} else if root, err := buildStruct(t, t.String()); err != nil {
		d.err = err
	} else {
		d.layout = &Layout{typ: t, root: root}
	}
	d, _ = layoutCache.LoadOrStore(t, d)
	return d.layout, d.err
}

// structAdapter is implemented by *Struct[T]; its size comes from the layout
// of T, which may not exist.
type structAdapter interface {
	valueLayout() (*Layout, error)
}

func build(t reflect.Type, path string) (*node, error) {
	if reflect.PointerTo(t).Implements(unpackerType) {
		u := reflect.New(t).Interface().(Unpacker)
		if sa, ok := u.(structAdapter); ok {
			l, err := sa.valueLayout()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return &node{kind: kindUnpacker, size: l.PackedSize()}, nil
		}
		return &node{kind: kindUnpacker, size: u.PackedSize()}, nil
	}

	var n *node
	switch t.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = &node{kind: kindUint, size: int(t.Size())}
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = &node{kind: kindInt, size: int(t.Size())}
	case reflect.Array:
		elem, err := build(t.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		n = &node{kind: kindArray, size: t.Len() * elem.size, elem: elem, len: t.Len()}
	case reflect.Struct:
		var err error
		if n, err = buildStruct(t, path); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s has kind %s", ErrUnsupportedType, path, t.Kind())
	}
	n.validate = reflect.PointerTo(t).Implements(validatorType)
	return n, nil
}

func buildStruct(t reflect.Type, path string) (*node, error) {
	n := &node{kind: kindStruct}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("packed") == "-" {
			continue
		}
		name := path + "." + f.Name
		fn, err := build(f.Type, name)
		if err != nil {
			return nil, err
		}
		switch {
		case f.Name == "_":
			fn = &node{kind: kindReserved, size: fn.size}
		case !f.IsExported():
			return nil, fmt.Errorf("%w: %s is unexported", ErrUnsupportedType, name)
		}
		n.members = append(n.members, member{name: f.Name, index: i, offset: n.size, node: fn})
		n.size += fn.size
	}
	n.validate = reflect.PointerTo(t).Implements(validatorType)
	return n, nil
}

// PackedSize returns the sum of the packed sizes of the layout's fields.
func (l *Layout) PackedSize() int { return l.root.size }

// Type returns the struct type the layout was derived from.
func (l *Layout) Type() reflect.Type { return l.typ }

// Fields returns the top-level members in declaration order.
func (l *Layout) Fields() []Field {
	fields := make([]Field, len(l.root.members))
	for i, m := range l.root.members {
		fields[i] = Field{Name: m.name, Offset: m.offset, Size: m.node.size}
	}
	return fields
}

// unpack decodes into v, an addressable value of the layout's type.
func (l *Layout) unpack(v reflect.Value, buf []byte, offset int) error {
	if _, err := window(buf, offset, l.root.size, l.typ); err != nil {
		return err
	}
	return decodeNode(l.root, v, buf, offset)
}

// decodeNode assumes the window of n at offset has been checked.
func decodeNode(n *node, v reflect.Value, buf []byte, offset int) error {
	switch n.kind {
	case kindUnpacker:
		return unpack(v.Addr().Interface().(Unpacker), buf, offset)
	case kindUint:
		v.SetUint(loadInt[uint64](buf[offset : offset+n.size]))
	case kindInt:
		v.SetInt(loadSigned(buf[offset : offset+n.size]))
	case kindArray:
		for i := 0; i < n.len; i++ {
			if err := decodeNode(n.elem, v.Index(i), buf, offset+i*n.elem.size); err != nil {
				return err
			}
		}
	case kindStruct:
		for _, m := range n.members {
			if m.node.kind == kindReserved {
				continue
			}
			if err := decodeNode(m.node, v.Field(m.index), buf, offset+m.offset); err != nil {
				return fmt.Errorf("decoding field %s: %w", m.name, err)
			}
		}
	}
	if n.validate {
		if err := v.Addr().Interface().(Validator).Validate(); err != nil {
			return invalidEncoding(v.Type(), offset, n.size, err)
		}
	}
	return nil
}

// loadSigned sign-extends the little-endian integer in b.
func loadSigned(b []byte) int64 {
	switch len(b) {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(int16(Order.Uint16(b)))
	case 4:
		return int64(int32(Order.Uint32(b)))
	default:
		return int64(Order.Uint64(b))
	}
}

// DecodeStruct decodes a new T from buf at offset using T's derived layout.
// A field that fails aborts the decode; its error is wrapped with the field
// name and keeps its errors.Is identity.
func DecodeStruct[T any](buf []byte, offset int) (*T, error) {
	l, err := LayoutOf[T]()
	if err != nil {
		return nil, err
	}
	v := new(T)
	if err := l.unpack(reflect.ValueOf(v).Elem(), buf, offset); err != nil {
		return nil, err
	}
	return v, nil
}

// Struct adapts a struct with a derived layout to Unpacker, so it can be
// used with Decode, UnpackFields and UnpackArray, or nested in other types.
//
// PackedSize panics if T has no valid layout; that is a property of the
// type, not of any input, and shows up the first time the type is used.
type Struct[T any] struct {
	Value T
}

func (Struct[T]) PackedSize() int {
	l, err := LayoutOf[T]()
	if err != nil {
		panic(err)
	}
	return l.PackedSize()
}

func (*Struct[T]) valueLayout() (*Layout, error) { return LayoutOf[T]() }

func (s *Struct[T]) UnpackAt(buf []byte, offset int) error {
	l, err := LayoutOf[T]()
	if err != nil {
		return err
	}
	return l.unpack(reflect.ValueOf(&s.Value).Elem(), buf, offset)
}
