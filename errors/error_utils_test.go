package errors

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"decode", NewDecodeError("odd length"), true},
		{"script parse", NewScriptParseError("bad token"), true},
		{"deserialize", NewDeserializeError("TxOut", "satoshis", io.ErrUnexpectedEOF), true},
		{"wrapped", fmt.Errorf("x: %w", NewTxInvalidError("trailing bytes")), true},
		{"processing", NewProcessingError("boom"), false},
		{"service", NewServiceError("boom"), false},
		{"plain", io.EOF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInputError(tt.err))
		})
	}
}

func TestIsTruncationError(t *testing.T) {
	assert.False(t, IsTruncationError(nil))
	assert.True(t, IsTruncationError(io.ErrUnexpectedEOF))
	assert.True(t, IsTruncationError(NewTruncatedError("short")))
	assert.True(t, IsTruncationError(NewDeserializeError("TxIn", "sequence", io.ErrUnexpectedEOF)))
	assert.False(t, IsTruncationError(NewDecodeError("bad hex")))
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "none", GetErrorCategory(nil))
	assert.Equal(t, "context", GetErrorCategory(context.Canceled))
	assert.Equal(t, "codec", GetErrorCategory(NewDecodeError("x")))
	assert.Equal(t, "transaction", GetErrorCategory(NewTxInvalidError("x")))
	assert.Equal(t, "service", GetErrorCategory(NewServiceError("x")))
	assert.Equal(t, "general", GetErrorCategory(NewProcessingError("x")))
	assert.Equal(t, "unknown", GetErrorCategory(io.EOF))
}
