package script

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/bsv-blockchain/txcodec/errors"
)

// extendedPushToken introduces an explicit push in extended ASM: OP_PUSH <len> <hex>.
const extendedPushToken = "OP_PUSH"

// ToASM renders the script in compact ASM. Push payloads appear as bare hex and OP_0 as "0".
func (s *Script) ToASM() (string, error) {
	return s.renderASM(false)
}

// ToExtendedASM renders every push as "OP_PUSH <len> <hex>" and OP_0 as "OP_0".
func (s *Script) ToExtendedASM() (string, error) {
	return s.renderASM(true)
}

func (s *Script) renderASM(extended bool) (string, error) {
	chunks, err := s.Chunks()
	if err != nil {
		return "", err
	}

	tokens := make([]string, 0, len(chunks))

	for i, c := range chunks {
		switch {
		case c.IsPush():
			if extended {
				tokens = append(tokens, extendedPushToken, strconv.Itoa(len(c.Data)))
				if len(c.Data) > 0 {
					tokens = append(tokens, hex.EncodeToString(c.Data))
				}

				continue
			}

			if len(c.Data) == 0 {
				tokens = append(tokens, "0")
				continue
			}

			tokens = append(tokens, hex.EncodeToString(c.Data))

		case c.Op == Op0 && !extended:
			tokens = append(tokens, "0")

		default:
			name, ok := OpcodeName(c.Op)
			if !ok {
				return "", errors.NewScriptInvalidError("unknown opcode 0x%02x at instruction %d", c.Op, i)
			}

			tokens = append(tokens, name)
		}
	}

	return strings.Join(tokens, " "), nil
}

// NewFromASM parses compact or extended ASM. Mnemonics are case-insensitive, the literals
// "0", "-1" and "1".."9" map to their small-integer opcodes, and any other token must be
// even-length hex which is pushed with minimal framing.
//
// Bare "10".."16" are not small integers here: they are valid hex and become one-byte
// pushes, so "16" encodes as 0x01 0x16. Write OP_10..OP_16 for the opcodes.
func NewFromASM(asm string) (*Script, error) {
	tokens := strings.Fields(asm)
	s := make(Script, 0, len(asm)/2)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if strings.EqualFold(tok, extendedPushToken) {
			data, consumed, err := parseExtendedPush(tokens[i+1:], i)
			if err != nil {
				return nil, err
			}

			if err = s.AppendPushData(data); err != nil {
				return nil, err
			}

			i += consumed

			continue
		}

		if op, ok := OpcodeByName(tok); ok {
			if IsPushOpcode(op) {
				return nil, errors.NewScriptParseError("token %d: %s cannot be used directly, pushes are written as hex", i, tok)
			}

			s = append(s, op)

			continue
		}

		if op, ok := numericLiteral(tok); ok {
			s = append(s, op)
			continue
		}

		data, err := hex.DecodeString(tok)
		if err != nil {
			return nil, errors.NewScriptParseError("token %d: %q is not an opcode, number or hex push", i, tok, err)
		}

		if err = s.AppendPushData(data); err != nil {
			return nil, err
		}
	}

	return &s, nil
}

// parseExtendedPush reads "<len> [hex]" following OP_PUSH and reports how many tokens it used.
func parseExtendedPush(rest []string, index int) ([]byte, int, error) {
	if len(rest) == 0 {
		return nil, 0, errors.NewScriptParseError("token %d: OP_PUSH without a length", index)
	}

	length, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return nil, 0, errors.NewScriptParseError("token %d: invalid OP_PUSH length %q", index, rest[0], err)
	}

	if length == 0 {
		return nil, 1, nil
	}

	if len(rest) < 2 {
		return nil, 0, errors.NewScriptParseError("token %d: OP_PUSH %d without a payload", index, length)
	}

	data, err := hex.DecodeString(rest[1])
	if err != nil {
		return nil, 0, errors.NewScriptParseError("token %d: invalid OP_PUSH payload %q", index, rest[1], err)
	}

	if uint64(len(data)) != length {
		return nil, 0, errors.NewScriptParseError("token %d: OP_PUSH declares %d bytes but payload has %d", index, length, len(data))
	}

	return data, 2, nil
}

// numericLiteral maps "0", "-1" and single digits to opcodes. Two-digit values are valid hex
// and are therefore parsed as pushes.
func numericLiteral(tok string) (byte, bool) {
	if tok != "-1" && len(tok) != 1 {
		return 0, false
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}

	return smallIntOpcode(n)
}
