package script

import (
	"testing"

	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hex21e8         = "20d26f2b12ee0a5923dab7314e533917f2ab5b50da5ce302d3d60941f0ee8000a20221e8825479a87c7f758875ac"
	asm21e8         = "d26f2b12ee0a5923dab7314e533917f2ab5b50da5ce302d3d60941f0ee8000a2 21e8 OP_SIZE OP_4 OP_PICK OP_SHA256 OP_SWAP OP_SPLIT OP_DROP OP_EQUALVERIFY OP_DROP OP_CHECKSIG"
	extendedASM21e8 = "OP_PUSH 32 d26f2b12ee0a5923dab7314e533917f2ab5b50da5ce302d3d60941f0ee8000a2 OP_PUSH 2 21e8 OP_SIZE OP_4 OP_PICK OP_SHA256 OP_SWAP OP_SPLIT OP_DROP OP_EQUALVERIFY OP_DROP OP_CHECKSIG"

	opReturnPayload = "7b227573657248616e646c65223a226c75636b787878222c226368616e6e656c223a226d61746368222c226368616e6e656c4964223a2264757374222c2277696e6e65724964223a2239383333323836362d636435372d343166332d393537632d636433376231666237643738222c2275736572496d616765223a2268747470733a2f2f636c6f75642e68616e64636173682e696f2f75736572732f70726f66696c65506963747572652f6c75636b787878227d"
	opReturnHex     = "006a4cb4" + opReturnPayload
	opReturnASM     = "0 OP_RETURN " + opReturnPayload

	customASM         = "OP_NOP OP_0 ff OP_0 OP_PICK OP_2 OP_ROLL OP_DROP OP_1 OP_ROLL OP_DROP OP_NOP OP_1 OP_PICK OP_0 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_NUMEQUAL OP_NIP OP_NIP OP_NIP OP_ELSE OP_1 OP_PICK OP_1 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_LESSTHAN OP_NIP OP_NIP OP_NIP OP_ELSE OP_1 OP_PICK OP_2 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_GREATERTHAN OP_NIP OP_NIP OP_NIP OP_ELSE OP_0 OP_ENDIF OP_ENDIF OP_ENDIF"
	customExtendedASM = "OP_NOP OP_0 OP_PUSH 1 ff OP_0 OP_PICK OP_2 OP_ROLL OP_DROP OP_1 OP_ROLL OP_DROP OP_NOP OP_1 OP_PICK OP_0 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_NUMEQUAL OP_NIP OP_NIP OP_NIP OP_ELSE OP_1 OP_PICK OP_1 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_LESSTHAN OP_NIP OP_NIP OP_NIP OP_ELSE OP_1 OP_PICK OP_2 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_GREATERTHAN OP_NIP OP_NIP OP_NIP OP_ELSE OP_0 OP_ENDIF OP_ENDIF OP_ENDIF"
	customCompactASM  = "OP_NOP 0 ff 0 OP_PICK OP_2 OP_ROLL OP_DROP OP_1 OP_ROLL OP_DROP OP_NOP OP_1 OP_PICK 0 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_NUMEQUAL OP_NIP OP_NIP OP_NIP OP_ELSE OP_1 OP_PICK OP_1 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_LESSTHAN OP_NIP OP_NIP OP_NIP OP_ELSE OP_1 OP_PICK OP_2 OP_EQUAL OP_IF OP_2 OP_PICK OP_1 OP_PICK OP_GREATERTHAN OP_NIP OP_NIP OP_NIP OP_ELSE 0 OP_ENDIF OP_ENDIF OP_ENDIF"
)

func TestToASM_21e8(t *testing.T) {
	s, err := NewFromHexString(hex21e8)
	require.NoError(t, err)

	asm, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, asm21e8, asm)

	extended, err := s.ToExtendedASM()
	require.NoError(t, err)
	assert.Equal(t, extendedASM21e8, extended)
}

func TestFromASM_21e8RoundTrip(t *testing.T) {
	s, err := NewFromASM(asm21e8)
	require.NoError(t, err)
	assert.Equal(t, hex21e8, s.String())

	asm, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, asm21e8, asm)

	extended, err := s.ToExtendedASM()
	require.NoError(t, err)
	assert.Equal(t, extendedASM21e8, extended)

	fromExtended, err := NewFromASM(extendedASM21e8)
	require.NoError(t, err)
	assert.True(t, s.Equals(fromExtended))
}

func TestASM_Standard21e8(t *testing.T) {
	const (
		h   = "200a40eda5ff94de646c3928e4a8eff097feeb283d124b0e871b24962e758461440221e8825479a87c7f758875ac"
		asm = "0a40eda5ff94de646c3928e4a8eff097feeb283d124b0e871b24962e75846144 21e8 OP_SIZE OP_4 OP_PICK OP_SHA256 OP_SWAP OP_SPLIT OP_DROP OP_EQUALVERIFY OP_DROP OP_CHECKSIG"
	)

	fromHex, err := NewFromHexString(h)
	require.NoError(t, err)

	rendered, err := fromHex.ToASM()
	require.NoError(t, err)
	assert.Equal(t, asm, rendered)

	fromASM, err := NewFromASM(asm)
	require.NoError(t, err)
	assert.Equal(t, h, fromASM.String())
}

func TestASM_OpReturn(t *testing.T) {
	s, err := NewFromHexString(opReturnHex)
	require.NoError(t, err)
	assert.True(t, s.IsData())

	asm, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, opReturnASM, asm)

	extended, err := s.ToExtendedASM()
	require.NoError(t, err)
	assert.Equal(t, "OP_0 OP_RETURN OP_PUSH 180 "+opReturnPayload, extended)

	parsed, err := NewFromASM(opReturnASM)
	require.NoError(t, err)
	assert.Equal(t, opReturnHex, parsed.String())
}

func TestASM_Custom(t *testing.T) {
	s, err := NewFromASM(customASM)
	require.NoError(t, err)

	extended, err := s.ToExtendedASM()
	require.NoError(t, err)
	assert.Equal(t, customExtendedASM, extended)

	compact, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, customCompactASM, compact)

	fromCompact, err := NewFromASM(customCompactASM)
	require.NoError(t, err)
	assert.True(t, s.Equals(fromCompact))
}

func TestASM_P2PKH(t *testing.T) {
	const asm = "OP_DUP OP_HASH160 6fa5502ea094d59576898b490d866b32a61b89f6 OP_EQUALVERIFY OP_CHECKSIG"

	s, err := NewFromASM(asm)
	require.NoError(t, err)
	assert.Equal(t, "76a9146fa5502ea094d59576898b490d866b32a61b89f688ac", s.String())
	assert.True(t, s.IsP2PKH())

	rendered, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, asm, rendered)
}

func TestASM_ShortPushes(t *testing.T) {
	const asm = "OP_RETURN 026d02 0568656c6c6f"

	s, err := NewFromASM(asm)
	require.NoError(t, err)
	assert.Equal(t, "6a03026d02060568656c6c6f", s.String())

	rendered, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, asm, rendered)
}

func TestFromASM_Invalid(t *testing.T) {
	tests := []struct {
		name string
		asm  string
	}{
		{"trailing non hex", "OP_RETURN 026d02 0568656c6c6fzz"},
		{"odd length hex", "OP_RETURN abc"},
		{"unknown mnemonic", "OP_DUP OP_FOO"},
		{"bare push opcode", "OP_PUSHDATA1 ff"},
		{"push without length", "OP_PUSH"},
		{"push with bad length", "OP_PUSH x ff"},
		{"push without payload", "OP_PUSH 2"},
		{"push length mismatch", "OP_PUSH 2 ff"},
		{"push length out of range", "OP_PUSH 4294967296 ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewFromASM(tt.asm)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, errors.ErrScriptParse)
		})
	}
}

func TestFromASM_NumericLiterals(t *testing.T) {
	tests := []struct {
		asm      string
		expected string
	}{
		{"0", "00"},
		{"OP_FALSE", "00"},
		{"-1", "4f"},
		{"1", "51"},
		{"9", "59"},
		{"OP_TRUE", "51"},
		{"OP_16", "60"},
		// two digits are a valid hex byte and become a push
		{"10", "0110"},
		{"16", "0116"},
		{"OP_10 OP_16", "5a60"},
		{"", ""},
		{"  OP_DUP \n\t OP_DROP  ", "7675"},
		{"op_checksig", "ac"},
		{"OP_CHECKLOCKTIMEVERIFY OP_CHECKSEQUENCEVERIFY", "b1b2"},
		{"OP_PUSH 0", "00"},
		{"ABCD", "02abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.asm, func(t *testing.T) {
			s, err := NewFromASM(tt.asm)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.String())
		})
	}
}

func TestToASM_Errors(t *testing.T) {
	t.Run("truncated direct push", func(t *testing.T) {
		s, err := NewFromHexString("05aabb")
		require.NoError(t, err)

		_, err = s.ToASM()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrTruncated)

		_, err = s.ToExtendedASM()
		require.Error(t, err)
	})

	t.Run("truncated PUSHDATA2 length", func(t *testing.T) {
		s := NewFromBytes([]byte{OpPUSHDATA2, 0x01})

		_, err := s.ToASM()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrTruncated)
	})

	t.Run("PUSHDATA4 length past end", func(t *testing.T) {
		s := NewFromBytes([]byte{OpPUSHDATA4, 0xff, 0xff, 0xff, 0xff, 0x00})

		_, err := s.ToASM()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrTruncated)
	})

	t.Run("unknown opcode", func(t *testing.T) {
		s := NewFromBytes([]byte{OpDUP, 0xba})

		_, err := s.ToASM()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrScriptInvalid)
	})
}

func TestToASM_EmptyPushes(t *testing.T) {
	s := NewFromBytes([]byte{OpPUSHDATA1, 0x00, OpDUP})

	compact, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, "0 OP_DUP", compact)

	extended, err := s.ToExtendedASM()
	require.NoError(t, err)
	assert.Equal(t, "OP_PUSH 0 OP_DUP", extended)

	reparsed, err := NewFromASM(extended)
	require.NoError(t, err)
	assert.Equal(t, "0076", reparsed.String())
}

// Non-minimal pushes survive bytes and hex but collapse to minimal framing through compact ASM.
func TestASM_NonMinimalPushCollapses(t *testing.T) {
	const nonMinimal = "4d0a0000112233445566778899" // OP_PUSHDATA2 framing a 10 byte payload

	s, err := NewFromHexString(nonMinimal)
	require.NoError(t, err)
	assert.Equal(t, nonMinimal, s.String())

	asm, err := s.ToASM()
	require.NoError(t, err)
	assert.Equal(t, "00112233445566778899", asm)

	reparsed, err := NewFromASM(asm)
	require.NoError(t, err)
	assert.Equal(t, "0a00112233445566778899", reparsed.String())
	assert.False(t, s.Equals(reparsed))

	minimal, err := NewFromHexString("0a00112233445566778899")
	require.NoError(t, err)

	minimalASM, err := minimal.ToASM()
	require.NoError(t, err)
	assert.Equal(t, asm, minimalASM)
}

func BenchmarkToASM(b *testing.B) {
	s, _ := NewFromHexString(hex21e8)

	for i := 0; i < b.N; i++ {
		_, _ = s.ToASM()
	}
}

func BenchmarkFromASM(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewFromASM(asm21e8)
	}
}
