package sfnt

import "encoding/binary"

// reader is a big-endian cursor over a byte slice.
// The first out-of-range read sets err; later reads return zero values, so a
// run of fields can be read and checked once.
type reader struct {
	buf []byte
	pos int
	err error
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// Seek moves the cursor to an absolute position.
func (r *reader) Seek(pos int) {
	if r.err != nil {
		return
	}
	if pos < 0 || pos > len(r.buf) {
		r.fail()
		return
	}
	r.pos = pos
}

// Len returns the number of unread bytes.
func (r *reader) Len() int {
	return len(r.buf) - r.pos
}

func (r *reader) ReadBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.Len() < n {
		r.fail()
		return nil
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) ReadTag() string {
	b := r.ReadBytes(4)
	if b == nil {
		return ""
	}
	return string(b)
}

func (r *reader) ReadUint16() uint16 {
	b := r.ReadBytes(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *reader) ReadUint32() uint32 {
	b := r.ReadBytes(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *reader) fail() {
	r.err = ErrTruncated
	r.pos = len(r.buf)
}
