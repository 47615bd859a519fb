package util

import (
	"encoding/binary"
	"io"
)

// VarInt is a Bitcoin variable-length unsigned integer.
type VarInt uint64

// VarintSize calculates the number of bytes required to store a value as a Bitcoin variable-length integer.
// Returns 1, 3, 5, or 9 bytes depending on the value size.
func VarintSize(x uint64) uint64 {
	if x < 0xfd {
		return 1
	}

	if x <= 0xffff {
		return 3
	}

	if x <= 0xffffffff {
		return 5
	}

	return 9
}

// Length returns the size of the canonical encoding.
func (v VarInt) Length() int {
	return int(VarintSize(uint64(v)))
}

// Bytes returns the canonical (minimal) encoding of v.
func (v VarInt) Bytes() []byte {
	x := uint64(v)

	switch VarintSize(x) {
	case 1:
		return []byte{byte(x)}
	case 3:
		b := make([]byte, 3)
		b[0] = 0xfd
		binary.LittleEndian.PutUint16(b[1:], uint16(x))

		return b
	case 5:
		b := make([]byte, 5)
		b[0] = 0xfe
		binary.LittleEndian.PutUint32(b[1:], uint32(x))

		return b
	default:
		b := make([]byte, 9)
		b[0] = 0xff
		binary.LittleEndian.PutUint64(b[1:], x)

		return b
	}
}

// WriteVarInt writes the canonical encoding of v to w.
func WriteVarInt(w io.Writer, v uint64) error {
	_, err := w.Write(VarInt(v).Bytes())
	return err
}

// ReadVarInt reads one VarInt from r. Non-minimal encodings are accepted.
func ReadVarInt(r *Reader) (uint64, error) {
	discriminant, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch discriminant {
	case 0xff:
		return r.ReadUint64LE()
	case 0xfe:
		v, err := r.ReadUint32LE()
		return uint64(v), err
	case 0xfd:
		v, err := r.ReadUint16LE()
		return uint64(v), err
	default:
		return uint64(discriminant), nil
	}
}

// NewVarIntFromBytes decodes a VarInt from the front of b and reports how many bytes it used.
func NewVarIntFromBytes(b []byte) (VarInt, int, error) {
	r := NewReader(b)

	v, err := ReadVarInt(r)
	if err != nil {
		return 0, 0, err
	}

	return VarInt(v), r.Pos(), nil
}
