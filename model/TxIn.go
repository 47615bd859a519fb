package model

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/script"
	"github.com/bsv-blockchain/txcodec/util"
)

const (
	txInRecord = "TxIn"

	// DefaultSequenceNumber marks an input as final.
	DefaultSequenceNumber uint32 = 0xFFFFFFFF
)

// TxIn is a transaction input. PreviousTxID is kept in wire order exactly as given
// and is never reversed; use PreviousTxIDStr for the explorer display form.
type TxIn struct {
	PreviousTxID       [32]byte
	PreviousTxOutIndex uint32
	UnlockingScript    *script.Script
	SequenceNumber     uint32

	// satoshis of the spent output, tracked locally for matching and never serialized
	satoshis *uint64
}

type txInJSON struct {
	PrevTxID  string  `json:"prev_tx_id"`
	Vout      uint32  `json:"vout"`
	ScriptSig string  `json:"script_sig"`
	Sequence  uint32  `json:"sequence"`
	Satoshis  *uint64 `json:"satoshis,omitempty"`
}

// NewTxIn builds an input. A nil sequence defaults to DefaultSequenceNumber.
func NewTxIn(prevTxID []byte, vout uint32, unlockingScript *script.Script, sequence *uint32) (*TxIn, error) {
	if len(prevTxID) != 32 {
		return nil, errors.NewInvalidArgumentError("previous tx id must be 32 bytes, got %d", len(prevTxID))
	}

	if unlockingScript == nil {
		unlockingScript = &script.Script{}
	}

	in := &TxIn{
		PreviousTxOutIndex: vout,
		UnlockingScript:    unlockingScript.Clone(),
		SequenceNumber:     DefaultSequenceNumber,
	}

	copy(in.PreviousTxID[:], prevTxID)

	if sequence != nil {
		in.SequenceNumber = *sequence
	}

	return in, nil
}

// NewTxInFromReader reads prev tx id (32 bytes), vout (4 bytes LE), the VarInt framed
// unlocking script and the sequence number (4 bytes LE).
func NewTxInFromReader(r *util.Reader) (*TxIn, error) {
	in := &TxIn{}

	prevTxID, err := r.ReadBytes(32)
	if err != nil {
		return nil, errors.NewDeserializeError(txInRecord, "prev_tx_id", err)
	}

	copy(in.PreviousTxID[:], prevTxID)

	if in.PreviousTxOutIndex, err = r.ReadUint32LE(); err != nil {
		return nil, errors.NewDeserializeError(txInRecord, "prev_tx_index", err)
	}

	scriptLen, err := util.ReadVarInt(r)
	if err != nil {
		return nil, errors.NewDeserializeError(txInRecord, "script_sig_size", err)
	}

	scriptBytes, err := r.ReadBytes(scriptLen)
	if err != nil {
		return nil, errors.NewDeserializeError(txInRecord, "script_sig", err)
	}

	s := script.Script(scriptBytes)
	in.UnlockingScript = &s

	if in.SequenceNumber, err = r.ReadUint32LE(); err != nil {
		return nil, errors.NewDeserializeError(txInRecord, "sequence", err)
	}

	return in, nil
}

func NewTxInFromBytes(b []byte) (*TxIn, error) {
	r := util.NewReader(b)

	in, err := NewTxInFromReader(r)
	if err != nil {
		return nil, err
	}

	if r.Len() != 0 {
		return nil, errors.NewTxInvalidError("%d unexpected bytes after input", r.Len())
	}

	return in, nil
}

func NewTxInFromString(str string) (*TxIn, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.NewDecodeError("invalid input hex", err)
	}

	return NewTxInFromBytes(b)
}

func (in *TxIn) Bytes() []byte {
	scriptBytes := in.UnlockingScript.Bytes()

	b := make([]byte, 0, 32+4+util.VarintSize(uint64(len(scriptBytes)))+uint64(len(scriptBytes))+4)
	b = append(b, in.PreviousTxID[:]...)
	b = binary.LittleEndian.AppendUint32(b, in.PreviousTxOutIndex)
	b = append(b, util.VarInt(len(scriptBytes)).Bytes()...)
	b = append(b, scriptBytes...)

	return binary.LittleEndian.AppendUint32(b, in.SequenceNumber)
}

// String returns the hex encoded input.
func (in *TxIn) String() string {
	return hex.EncodeToString(in.Bytes())
}

// PreviousTxIDStr returns the previous tx id in display order (byte reversed), as block explorers show it.
func (in *TxIn) PreviousTxIDStr() string {
	return chainhash.Hash(in.PreviousTxID).String()
}

// SetSatoshis records the value of the output being spent, used by MatchInputs.
func (in *TxIn) SetSatoshis(satoshis uint64) {
	in.satoshis = &satoshis
}

// Satoshis returns the locally tracked value, or 0 when none was set.
func (in *TxIn) Satoshis() uint64 {
	if in.satoshis == nil {
		return 0
	}

	return *in.satoshis
}

func (in *TxIn) HasSatoshis() bool {
	return in.satoshis != nil
}

// IsFinal reports whether the sequence number is the final value.
func (in *TxIn) IsFinal() bool {
	return in.SequenceNumber == DefaultSequenceNumber
}

func (in *TxIn) Size() int {
	return len(in.Bytes())
}

// clone copies the input including its tracked satoshis.
func (in *TxIn) clone() *TxIn {
	c := *in
	c.UnlockingScript = in.UnlockingScript.Clone()

	if in.satoshis != nil {
		v := *in.satoshis
		c.satoshis = &v
	}

	return &c
}

func (in *TxIn) toJSON() txInJSON {
	return txInJSON{
		PrevTxID:  hex.EncodeToString(in.PreviousTxID[:]),
		Vout:      in.PreviousTxOutIndex,
		ScriptSig: in.UnlockingScript.String(),
		Sequence:  in.SequenceNumber,
		Satoshis:  in.satoshis,
	}
}

func (in *TxIn) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.toJSON())
}

// ToJSONString returns indented JSON for diagnostics.
func (in *TxIn) ToJSONString() (string, error) {
	b, err := json.MarshalIndent(in.toJSON(), "", "  ")
	if err != nil {
		return "", errors.NewProcessingError("failed to marshal input", err)
	}

	return string(b), nil
}
