package crypto

import (
	"bytes"

	base58 "github.com/bsv-blockchain/go-sdk/compat/base58"
	"github.com/bsv-blockchain/txcodec/errors"
)

const checksumSize = 4

// Base58CheckEncode encodes version || payload || checksum, the checksum being
// the first four bytes of the double SHA-256 of version || payload.
func Base58CheckEncode(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+checksumSize)
	b = append(b, version)
	b = append(b, payload...)
	b = append(b, Sha256d(b)[:checksumSize]...)

	return base58.Encode(b)
}

// Base58CheckDecode reverses Base58CheckEncode, verifying the checksum.
func Base58CheckDecode(s string) (byte, []byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return 0, nil, errors.NewDecodeError("invalid base58 string", err)
	}

	if len(b) < 1+checksumSize {
		return 0, nil, errors.NewDecodeError("base58check string too short: %d bytes", len(b))
	}

	body := b[:len(b)-checksumSize]
	if !bytes.Equal(Sha256d(body)[:checksumSize], b[len(b)-checksumSize:]) {
		return 0, nil, errors.NewDecodeError("base58check checksum mismatch")
	}

	payload := make([]byte, len(body)-1)
	copy(payload, body[1:])

	return body[0], payload, nil
}
