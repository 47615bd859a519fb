package script

import (
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/util"
)

// Chunk is one parsed instruction. Data is set only for push instructions.
type Chunk struct {
	Op   byte
	Data []byte
}

// IsPush reports whether the chunk carries a payload.
func (c Chunk) IsPush() bool {
	return IsPushOpcode(c.Op)
}

// Chunks walks the script left to right and splits it into instructions.
// It fails only when a declared push length runs past the end of the script.
func (s *Script) Chunks() ([]Chunk, error) {
	r := util.NewReader(s.Bytes())

	var chunks []Chunk

	for r.Len() > 0 {
		offset := r.Pos()

		op, err := r.ReadByte()
		if err != nil {
			return nil, err
		}

		if !IsPushOpcode(op) {
			chunks = append(chunks, Chunk{Op: op})
			continue
		}

		length, err := readPushLength(r, op)
		if err != nil {
			return nil, errors.NewTruncatedError("push length at offset %d", offset, err)
		}

		data, err := r.ReadBytes(length)
		if err != nil {
			return nil, errors.NewTruncatedError("push of %d bytes at offset %d", length, offset, err)
		}

		chunks = append(chunks, Chunk{Op: op, Data: data})
	}

	return chunks, nil
}

func readPushLength(r *util.Reader, op byte) (uint64, error) {
	switch op {
	case OpPUSHDATA1:
		b, err := r.ReadByte()
		return uint64(b), err
	case OpPUSHDATA2:
		v, err := r.ReadUint16LE()
		return uint64(v), err
	case OpPUSHDATA4:
		v, err := r.ReadUint32LE()
		return uint64(v), err
	default:
		return uint64(op), nil
	}
}
