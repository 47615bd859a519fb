package model

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/script"
	"github.com/bsv-blockchain/txcodec/util"
)

const txOutRecord = "TxOut"

// TxOut is a transaction output: a satoshi amount locked by a script.
type TxOut struct {
	Satoshis      uint64
	LockingScript *script.Script
}

type txOutJSON struct {
	Value        uint64 `json:"value"`
	ScriptPubKey string `json:"script_pub_key"`
}

// NewTxOut returns an output holding a copy of lockingScript.
func NewTxOut(satoshis uint64, lockingScript *script.Script) *TxOut {
	if lockingScript == nil {
		lockingScript = &script.Script{}
	}

	return &TxOut{
		Satoshis:      satoshis,
		LockingScript: lockingScript.Clone(),
	}
}

// NewTxOutFromReader reads value (8 bytes LE), script length (VarInt) and the script bytes.
func NewTxOutFromReader(r *util.Reader) (*TxOut, error) {
	satoshis, err := r.ReadUint64LE()
	if err != nil {
		return nil, errors.NewDeserializeError(txOutRecord, "satoshis", err)
	}

	scriptLen, err := util.ReadVarInt(r)
	if err != nil {
		return nil, errors.NewDeserializeError(txOutRecord, "script_pub_key_size", err)
	}

	scriptBytes, err := r.ReadBytes(scriptLen)
	if err != nil {
		return nil, errors.NewDeserializeError(txOutRecord, "script_pub_key", err)
	}

	s := script.Script(scriptBytes)

	return &TxOut{
		Satoshis:      satoshis,
		LockingScript: &s,
	}, nil
}

func NewTxOutFromBytes(b []byte) (*TxOut, error) {
	r := util.NewReader(b)

	out, err := NewTxOutFromReader(r)
	if err != nil {
		return nil, err
	}

	if r.Len() != 0 {
		return nil, errors.NewTxInvalidError("%d unexpected bytes after output", r.Len())
	}

	return out, nil
}

func NewTxOutFromString(str string) (*TxOut, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.NewDecodeError("invalid output hex", err)
	}

	return NewTxOutFromBytes(b)
}

// Bytes encodes value, script length and script, in that order.
func (o *TxOut) Bytes() []byte {
	scriptBytes := o.LockingScript.Bytes()

	b := make([]byte, 8, 8+util.VarintSize(uint64(len(scriptBytes)))+uint64(len(scriptBytes)))
	binary.LittleEndian.PutUint64(b, o.Satoshis)
	b = append(b, util.VarInt(len(scriptBytes)).Bytes()...)

	return append(b, scriptBytes...)
}

// String returns the hex encoded output.
func (o *TxOut) String() string {
	return hex.EncodeToString(o.Bytes())
}

func (o *TxOut) SetSatoshis(satoshis uint64) {
	o.Satoshis = satoshis
}

// SatoshisBytes returns the value as 8 big-endian bytes.
func (o *TxOut) SatoshisBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, o.Satoshis)

	return b
}

func (o *TxOut) LockingScriptHex() string {
	return o.LockingScript.String()
}

func (o *TxOut) Size() int {
	return len(o.Bytes())
}

func (o *TxOut) toJSON() txOutJSON {
	return txOutJSON{
		Value:        o.Satoshis,
		ScriptPubKey: o.LockingScript.String(),
	}
}

func (o *TxOut) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toJSON())
}

// ToJSONString returns indented JSON for diagnostics.
func (o *TxOut) ToJSONString() (string, error) {
	b, err := json.MarshalIndent(o.toJSON(), "", "  ")
	if err != nil {
		return "", errors.NewProcessingError("failed to marshal output", err)
	}

	return string(b), nil
}
