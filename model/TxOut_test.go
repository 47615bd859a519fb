package model

import (
	"io"
	"strings"
	"testing"

	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	p2pkhHex   = "76a9143b80a2d74a2b6dcd2f15fdea0d14aa58736de6d788ac"
	txOut5000  = "8813000000000000" + "19" + p2pkhHex
	emptyTxOut = "0000000000000000" + "00"
)

func mustScript(t *testing.T, h string) *script.Script {
	t.Helper()

	s, err := script.NewFromHexString(h)
	require.NoError(t, err)

	return s
}

func TestTxOut_Bytes(t *testing.T) {
	out := NewTxOut(5000, mustScript(t, p2pkhHex))

	assert.Equal(t, txOut5000, out.String())
	assert.Equal(t, 8+1+25, out.Size())
	assert.Equal(t, p2pkhHex, out.LockingScriptHex())

	empty := NewTxOut(0, nil)
	assert.Equal(t, emptyTxOut, empty.String())
}

func TestTxOut_RoundTrip(t *testing.T) {
	out, err := NewTxOutFromString(txOut5000)
	require.NoError(t, err)

	assert.Equal(t, uint64(5000), out.Satoshis)
	assert.Equal(t, p2pkhHex, out.LockingScript.String())
	assert.Equal(t, txOut5000, out.String())

	upper, err := NewTxOutFromString(strings.ToUpper(txOut5000))
	require.NoError(t, err)
	assert.Equal(t, txOut5000, upper.String())
}

func TestTxOut_ScriptIsCopied(t *testing.T) {
	s := mustScript(t, "76")
	out := NewTxOut(1, s)

	require.NoError(t, s.AppendOpcodes(script.OpDROP))
	assert.Equal(t, "76", out.LockingScriptHex())
}

func TestTxOut_SetSatoshis(t *testing.T) {
	out := NewTxOut(1, nil)
	out.SetSatoshis(0x0102030405060708)

	assert.Equal(t, uint64(0x0102030405060708), out.Satoshis)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, out.SatoshisBytes())
	assert.Equal(t, "0807060504030201", out.String()[:16])
}

func TestTxOut_DeserializeErrors(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		field string
	}{
		{"empty", "", "satoshis"},
		{"short satoshis", "88130000", "satoshis"},
		{"missing script length", "8813000000000000", "script_pub_key_size"},
		{"short script length", "8813000000000000fd01", "script_pub_key_size"},
		{"short script", "881300000000000005aabb", "script_pub_key"},
		{"huge script length", "8813000000000000ffffffffffffffffff", "script_pub_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTxOutFromString(tt.hex)
			require.Error(t, err)

			assert.ErrorIs(t, err, errors.ErrDeserialize)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

			var data *errors.FieldErrData
			require.True(t, errors.AsData(err, &data))
			assert.Equal(t, "TxOut", data.Record)
			assert.Equal(t, tt.field, data.Field)
		})
	}
}

func TestTxOut_TrailingBytes(t *testing.T) {
	_, err := NewTxOutFromString(txOut5000 + "00")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTxInvalid)

	_, err = NewTxOutFromString("zz")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDecode)
}

func TestTxOut_JSON(t *testing.T) {
	out := NewTxOut(400, mustScript(t, p2pkhHex))

	b, err := out.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":400,"script_pub_key":"`+p2pkhHex+`"}`, string(b))

	pretty, err := out.ToJSONString()
	require.NoError(t, err)
	assert.JSONEq(t, string(b), pretty)
	assert.Contains(t, pretty, "\n")
}
