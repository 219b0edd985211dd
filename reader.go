package packed

import (
	"bufio"
	"bytes"
	"io"
)

// Reader feeds packed records from a stream to the decoder.
//
// The decode functions of this package are stateless and work on a buffer
// the caller already holds. Reader is the caller side for streams such as
// files and sockets: it reads exactly one record's packed size at a time and
// decodes it at offset 0. It tracks the first error; after that every read
// is a no-op that reports it again.
type Reader struct {
	r     io.Reader
	count int64 // total bytes read
	err   error // first error encountered
}

// NewReader returns a Reader over r. Unless r is already buffered or in
// memory it is wrapped in a bufio.Reader.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	switch rr := r.(type) {
	case *Reader:
		return &Reader{r: rr.r}, nil
	case *bufio.Reader, *bytes.Reader, *bytes.Buffer:
		return &Reader{r: r}, nil
	}
	return &Reader{r: bufio.NewReader(r)}, nil
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }
func (r *Reader) IsEOF() bool  { return r.err == io.EOF }

// Read forwards to the underlying stream so a Reader can be handed to code
// expecting an io.Reader. It shares the byte count and error state of ReadInto.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// ReadInto reads the next dst.PackedSize() bytes and decodes them into dst.
// A stream that ends before the record starts yields io.EOF; one that ends
// inside it yields io.ErrUnexpectedEOF.
func (r *Reader) ReadInto(dst Unpacker) {
	if r.err != nil {
		return
	}
	size := dst.PackedSize()

	bufPtr := scratchPool.Get().(*[]byte)
	defer scratchPool.Put(bufPtr)
	buf := *bufPtr
	if size > len(buf) {
		buf = make([]byte, size)
	}
	buf = buf[:size]

	n, err := io.ReadFull(r.r, buf)
	r.count += int64(n)
	if err != nil {
		r.setError(err)
		return
	}
	r.setError(unpack(dst, buf, 0))
}

// Next reads and decodes the next record as a new T.
func Next[T any, P PtrUnpacker[T]](r *Reader) (*T, error) {
	v := new(T)
	r.ReadInto(P(v))
	if r.err != nil {
		return nil, r.err
	}
	return v, nil
}
