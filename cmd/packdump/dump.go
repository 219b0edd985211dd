package main

import (
	"errors"
	"fmt"

	"github.com/oy3o/packed"
)

var scalars = map[string]func() packed.Unpacker{
	"u8":   func() packed.Unpacker { return new(packed.U8) },
	"u16":  func() packed.Unpacker { return new(packed.U16) },
	"u32":  func() packed.Unpacker { return new(packed.U32) },
	"u64":  func() packed.Unpacker { return new(packed.U64) },
	"u128": func() packed.Unpacker { return new(packed.U128) },
	"i8":   func() packed.Unpacker { return new(packed.I8) },
	"i16":  func() packed.Unpacker { return new(packed.I16) },
	"i32":  func() packed.Unpacker { return new(packed.I32) },
	"i64":  func() packed.Unpacker { return new(packed.I64) },
	"i128": func() packed.Unpacker { return new(packed.I128) },
}

// record is a composite built at run time from a layout file. Its members
// are the layout's fields in order, arrays expanded element by element.
type record struct {
	layout  recordLayout
	members []packed.Unpacker
}

func newRecord(l recordLayout) *record {
	r := &record{layout: l}
	for _, f := range l.Fields {
		n := max(f.Count, 1)
		for range n {
			r.members = append(r.members, scalars[f.Elem]())
		}
	}
	return r
}

func (r *record) PackedSize() int {
	size := 0
	for _, m := range r.members {
		size += m.PackedSize()
	}
	return size
}

func (r *record) UnpackAt(buf []byte, offset int) error {
	return packed.UnpackFields(buf, offset, r.members...)
}

type namedValue struct {
	Name  string
	Value any
}

// values returns the decoded fields; arrays become []any.
func (r *record) values() []namedValue {
	out := make([]namedValue, 0, len(r.layout.Fields))
	i := 0
	for _, f := range r.layout.Fields {
		if f.Count == 0 {
			out = append(out, namedValue{f.Name, plain(r.members[i])})
			i++
			continue
		}
		elems := make([]any, f.Count)
		for j := range elems {
			elems[j] = plain(r.members[i])
			i++
		}
		out = append(out, namedValue{f.Name, elems})
	}
	return out
}

// plain converts a decoded member to a value the loggers can print.
// 128-bit integers become decimal strings.
func plain(u packed.Unpacker) any {
	switch v := u.(type) {
	case *packed.U8:
		return uint8(*v)
	case *packed.U16:
		return uint16(*v)
	case *packed.U32:
		return uint32(*v)
	case *packed.U64:
		return uint64(*v)
	case *packed.U128:
		return v.String()
	case *packed.I8:
		return int8(*v)
	case *packed.I16:
		return int16(*v)
	case *packed.I32:
		return int32(*v)
	case *packed.I64:
		return int64(*v)
	case *packed.I128:
		return v.String()
	}
	return fmt.Sprint(u)
}

type dumpOptions struct {
	Offset int
	Count  int // 0 decodes until the data ends
}

type dumpResult struct {
	Records  int
	Next     int // offset after the last decoded record
	Trailing int // bytes left after Next
}

// dump decodes consecutive records of l from buf, starting at opts.Offset,
// and passes each to emit. Running past the end of buf ends the dump; any
// other decode error is returned.
func dump(buf []byte, l recordLayout, opts dumpOptions, emit func(index, offset int, values []namedValue)) (dumpResult, error) {
	rec := newRecord(l)
	size := rec.PackedSize()

	res := dumpResult{Next: opts.Offset}
	for opts.Count == 0 || res.Records < opts.Count {
		err := rec.UnpackAt(buf, res.Next)
		if errors.Is(err, packed.ErrOutOfBounds) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("record %d at offset %d: %w", res.Records, res.Next, err)
		}
		emit(res.Records, res.Next, rec.values())
		res.Next += size
		res.Records++
	}
	res.Trailing = max(len(buf)-res.Next, 0)
	return res, nil
}
