// Package script implements the script buffer: opcode table, push-data framing and
// transcoding between raw bytes, hex, compact ASM and extended ASM.
package script

import (
	"bytes"
	"encoding/hex"

	"github.com/bsv-blockchain/txcodec/errors"
)

// Script is an owned sequence of opcodes and push payloads.
// No validity is enforced on construction; only rendering can fail.
type Script []byte

// NewFromBytes returns a script holding a copy of b.
func NewFromBytes(b []byte) *Script {
	s := make(Script, len(b))
	copy(s, b)

	return &s
}

// NewFromHexString decodes a hex string, upper or lower case, into a script.
func NewFromHexString(str string) (*Script, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.NewDecodeError("invalid script hex", err)
	}

	s := Script(b)

	return &s, nil
}

// String returns the script as lowercase hex.
func (s *Script) String() string {
	if s == nil {
		return ""
	}

	return hex.EncodeToString(*s)
}

// Bytes returns the raw script bytes.
func (s *Script) Bytes() []byte {
	if s == nil {
		return nil
	}

	return *s
}

func (s *Script) Len() int {
	if s == nil {
		return 0
	}

	return len(*s)
}

func (s *Script) Clone() *Script {
	if s == nil {
		return nil
	}

	return NewFromBytes(*s)
}

// Equals compares scripts byte for byte. A nil script equals an empty one.
func (s *Script) Equals(other *Script) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// AppendOpcodes appends non-push opcodes to the script.
func (s *Script) AppendOpcodes(ops ...byte) error {
	for _, op := range ops {
		if IsPushOpcode(op) {
			return errors.NewInvalidArgumentError("opcode 0x%02x is a push opcode, use AppendPushData", op)
		}
	}

	*s = append(*s, ops...)

	return nil
}

// AppendPushData appends data with minimal push framing.
func (s *Script) AppendPushData(data []byte) error {
	framed, err := EncodePushData(data)
	if err != nil {
		return err
	}

	*s = append(*s, framed...)

	return nil
}

// IsP2PKH reports whether the script is a standard pay-to-public-key-hash locking script.
func (s *Script) IsP2PKH() bool {
	b := s.Bytes()

	return len(b) == 25 &&
		b[0] == OpDUP &&
		b[1] == OpHASH160 &&
		b[2] == 0x14 &&
		b[23] == OpEQUALVERIFY &&
		b[24] == OpCHECKSIG
}

// PublicKeyHash returns the 20-byte hash locked by a P2PKH script.
func (s *Script) PublicKeyHash() ([]byte, error) {
	if !s.IsP2PKH() {
		return nil, errors.NewScriptInvalidError("script is not a P2PKH locking script")
	}

	pkh := make([]byte, 20)
	copy(pkh, (*s)[3:23])

	return pkh, nil
}

// IsData reports whether the script is an OP_RETURN data carrier, with or without a leading OP_FALSE.
func (s *Script) IsData() bool {
	b := s.Bytes()

	return (len(b) > 0 && b[0] == OpRETURN) ||
		(len(b) > 1 && b[0] == OpFALSE && b[1] == OpRETURN)
}
