package script

import (
	"encoding/binary"
	"math"

	"github.com/bsv-blockchain/txcodec/errors"
)

// EncodePushData frames data with the smallest legal push-data prefix and returns prefix and payload.
// An empty payload encodes as a single OP_0.
func EncodePushData(data []byte) ([]byte, error) {
	prefix, err := pushDataPrefix(uint64(len(data)))
	if err != nil {
		return nil, err
	}

	result := make([]byte, len(prefix)+len(data))
	copy(result, prefix)
	copy(result[len(prefix):], data)

	return result, nil
}

// pushDataPrefix returns the framing bytes for a payload of length n.
func pushDataPrefix(n uint64) ([]byte, error) {
	switch {
	case n <= MaxDirectPush:
		return []byte{byte(n)}, nil
	case n <= math.MaxUint8:
		return []byte{OpPUSHDATA1, byte(n)}, nil
	case n <= math.MaxUint16:
		b := []byte{OpPUSHDATA2, 0, 0}
		binary.LittleEndian.PutUint16(b[1:], uint16(n))

		return b, nil
	case n <= math.MaxUint32:
		b := []byte{OpPUSHDATA4, 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(b[1:], uint32(n))

		return b, nil
	}

	return nil, errors.NewInvalidArgumentError("push data of %d bytes exceeds the OP_PUSHDATA4 limit", n)
}
