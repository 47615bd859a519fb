package util

import (
	"encoding/binary"
	"io"

	"github.com/bsv-blockchain/txcodec/errors"
)

// Reader is a forward-only cursor over an immutable byte slice.
// Every read either consumes exactly the requested bytes or fails without moving the cursor.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.Len() == 0 {
		if len(p) == 0 {
			return 0, nil
		}

		return 0, io.EOF
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	return n, nil
}

func (r *Reader) ReadByte() (byte, error) {
	if r.Len() < 1 {
		return 0, errors.NewTruncatedError("need 1 byte, have 0", io.ErrUnexpectedEOF)
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadBytes returns a copy of the next n bytes.
// The length is checked against the remaining input before anything is allocated.
func (r *Reader) ReadBytes(n uint64) ([]byte, error) {
	if n > uint64(r.Len()) {
		return nil, errors.NewTruncatedError("need %d bytes, have %d", n, r.Len(), io.ErrUnexpectedEOF)
	}

	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+int(n)])
	r.pos += int(n)

	return out, nil
}

func (r *Reader) ReadUint16LE() (uint16, error) {
	b, err := r.peek(2)
	if err != nil {
		return 0, err
	}

	r.pos += 2

	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.peek(4)
	if err != nil {
		return 0, err
	}

	r.pos += 4

	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.peek(8)
	if err != nil {
		return 0, err
	}

	r.pos += 8

	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) peek(n int) ([]byte, error) {
	if r.Len() < n {
		return nil, errors.NewTruncatedError("need %d bytes, have %d", n, r.Len(), io.ErrUnexpectedEOF)
	}

	return r.data[r.pos : r.pos+n], nil
}
