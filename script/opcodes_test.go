package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeName(t *testing.T) {
	tests := []struct {
		op       byte
		expected string
		ok       bool
	}{
		{0x00, "OP_0", true},
		{0x01, "", false},
		{0x4b, "", false},
		{OpPUSHDATA1, "OP_PUSHDATA1", true},
		{Op1NEGATE, "OP_1NEGATE", true},
		{Op1, "OP_1", true},
		{Op16, "OP_16", true},
		{OpDUP, "OP_DUP", true},
		{OpSPLIT, "OP_SPLIT", true},
		{OpNUM2BIN, "OP_NUM2BIN", true},
		{OpLSHIFT, "OP_LSHIFT", true},
		{OpCHECKSIG, "OP_CHECKSIG", true},
		{OpNOP2, "OP_NOP2", true},
		{OpNOP10, "OP_NOP10", true},
		{0xba, "", false},
		{0xfc, "", false},
		{OpINVALIDOPCODE, "OP_INVALIDOPCODE", true},
	}

	for _, tt := range tests {
		name, ok := OpcodeName(tt.op)
		assert.Equal(t, tt.ok, ok, "opcode 0x%02x", tt.op)
		assert.Equal(t, tt.expected, name, "opcode 0x%02x", tt.op)
	}
}

func TestOpcodeByName(t *testing.T) {
	tests := []struct {
		name     string
		expected byte
		ok       bool
	}{
		{"OP_0", 0x00, true},
		{"OP_FALSE", 0x00, true},
		{"OP_TRUE", 0x51, true},
		{"op_dup", OpDUP, true},
		{"OP_CHECKLOCKTIMEVERIFY", 0xb1, true},
		{"OP_CHECKSEQUENCEVERIFY", 0xb2, true},
		{"OP_BIN2NUM", 0x81, true},
		{"DUP", 0, false},
		{"OP_PUSH", 0, false},
		{"OP_UNKNOWN", 0, false},
	}

	for _, tt := range tests {
		op, ok := OpcodeByName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.expected, op, tt.name)
	}
}

func TestOpcodeTableIsBidirectional(t *testing.T) {
	for b := 0; b < 256; b++ {
		name, ok := OpcodeName(byte(b))
		if !ok {
			continue
		}

		op, found := OpcodeByName(name)
		assert.True(t, found, name)
		assert.Equal(t, byte(b), op, name)
	}
}

func TestSmallIntOpcode(t *testing.T) {
	op, ok := smallIntOpcode(-1)
	assert.True(t, ok)
	assert.Equal(t, byte(Op1NEGATE), op)

	op, ok = smallIntOpcode(16)
	assert.True(t, ok)
	assert.Equal(t, byte(Op16), op)

	_, ok = smallIntOpcode(17)
	assert.False(t, ok)
}
