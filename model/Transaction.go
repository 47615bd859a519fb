package model

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/util"
)

const (
	transactionRecord = "Transaction"

	// smallest possible encodings, used to bound preallocation by the remaining input
	minTxInSize  = 32 + 4 + 1 + 4
	minTxOutSize = 8 + 1
)

// Transaction is an ordered set of inputs and outputs with version and locktime.
// The order of Inputs and Outputs is part of the wire encoding and is preserved exactly.
type Transaction struct {
	Version  uint32
	Inputs   []*TxIn
	Outputs  []*TxOut
	LockTime uint32
}

type transactionJSON struct {
	TxID     string      `json:"txid"`
	Version  uint32      `json:"version"`
	Inputs   []txInJSON  `json:"inputs"`
	Outputs  []txOutJSON `json:"outputs"`
	LockTime uint32      `json:"locktime"`
}

func NewTransaction(version uint32, lockTime uint32) *Transaction {
	return &Transaction{
		Version:  version,
		Inputs:   make([]*TxIn, 0),
		Outputs:  make([]*TxOut, 0),
		LockTime: lockTime,
	}
}

// NewTransactionFromReader reads version, VarInt counted inputs, VarInt counted outputs and locktime.
func NewTransactionFromReader(r *util.Reader) (*Transaction, error) {
	tx := &Transaction{}

	var err error

	if tx.Version, err = r.ReadUint32LE(); err != nil {
		return nil, errors.NewDeserializeError(transactionRecord, "version", err)
	}

	inputCount, err := util.ReadVarInt(r)
	if err != nil {
		return nil, errors.NewDeserializeError(transactionRecord, "input_count", err)
	}

	tx.Inputs = make([]*TxIn, 0, boundedCapacity(inputCount, r.Len(), minTxInSize))

	for i := uint64(0); i < inputCount; i++ {
		in, err := NewTxInFromReader(r)
		if err != nil {
			return nil, errors.NewDeserializeError(transactionRecord, fmt.Sprintf("inputs[%d]", i), err)
		}

		tx.Inputs = append(tx.Inputs, in)
	}

	outputCount, err := util.ReadVarInt(r)
	if err != nil {
		return nil, errors.NewDeserializeError(transactionRecord, "output_count", err)
	}

	tx.Outputs = make([]*TxOut, 0, boundedCapacity(outputCount, r.Len(), minTxOutSize))

	for i := uint64(0); i < outputCount; i++ {
		out, err := NewTxOutFromReader(r)
		if err != nil {
			return nil, errors.NewDeserializeError(transactionRecord, fmt.Sprintf("outputs[%d]", i), err)
		}

		tx.Outputs = append(tx.Outputs, out)
	}

	if tx.LockTime, err = r.ReadUint32LE(); err != nil {
		return nil, errors.NewDeserializeError(transactionRecord, "locktime", err)
	}

	return tx, nil
}

// NewTransactionFromBytes parses a complete transaction. Bytes after the locktime are rejected.
func NewTransactionFromBytes(b []byte) (*Transaction, error) {
	r := util.NewReader(b)

	tx, err := NewTransactionFromReader(r)
	if err != nil {
		return nil, err
	}

	if r.Len() != 0 {
		return nil, errors.NewTxInvalidError("%d unexpected bytes after locktime", r.Len())
	}

	return tx, nil
}

func NewTransactionFromString(str string) (*Transaction, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.NewDecodeError("invalid transaction hex", err)
	}

	return NewTransactionFromBytes(b)
}

func boundedCapacity(count uint64, remaining int, minSize int) int {
	limit := uint64(remaining / minSize)
	if count < limit {
		return int(count)
	}

	return int(limit)
}

// AddInput appends a copy of in. The index of the input is its position at the time of a query.
func (tx *Transaction) AddInput(in *TxIn) {
	tx.Inputs = append(tx.Inputs, in.clone())
}

// AddOutput appends a copy of out.
func (tx *Transaction) AddOutput(out *TxOut) {
	tx.Outputs = append(tx.Outputs, NewTxOut(out.Satoshis, out.LockingScript))
}

func (tx *Transaction) InputCount() int {
	return len(tx.Inputs)
}

func (tx *Transaction) OutputCount() int {
	return len(tx.Outputs)
}

func (tx *Transaction) InputAt(index int) (*TxIn, error) {
	if index < 0 || index >= len(tx.Inputs) {
		return nil, errors.NewTxInvalidError("input index %d out of range, tx has %d inputs", index, len(tx.Inputs))
	}

	return tx.Inputs[index], nil
}

func (tx *Transaction) OutputAt(index int) (*TxOut, error) {
	if index < 0 || index >= len(tx.Outputs) {
		return nil, errors.NewTxInvalidError("output index %d out of range, tx has %d outputs", index, len(tx.Outputs))
	}

	return tx.Outputs[index], nil
}

// TotalOutputSatoshis sums the output values, failing if the sum overflows.
func (tx *Transaction) TotalOutputSatoshis() (uint64, error) {
	var total uint64

	for i, out := range tx.Outputs {
		if out.Satoshis > math.MaxUint64-total {
			return 0, errors.NewThresholdExceededError("output %d overflows the total output value", i)
		}

		total += out.Satoshis
	}

	return total, nil
}

// IsCoinbase reports whether the transaction has the single null-outpoint input of a coinbase.
func (tx *Transaction) IsCoinbase() bool {
	if len(tx.Inputs) != 1 {
		return false
	}

	in := tx.Inputs[0]

	return in.PreviousTxID == [32]byte{} && in.PreviousTxOutIndex == math.MaxUint32
}

func (tx *Transaction) Bytes() []byte {
	b := make([]byte, 0, 4+9+9+4)
	b = binary.LittleEndian.AppendUint32(b, tx.Version)

	b = append(b, util.VarInt(len(tx.Inputs)).Bytes()...)
	for _, in := range tx.Inputs {
		b = append(b, in.Bytes()...)
	}

	b = append(b, util.VarInt(len(tx.Outputs)).Bytes()...)
	for _, out := range tx.Outputs {
		b = append(b, out.Bytes()...)
	}

	return binary.LittleEndian.AppendUint32(b, tx.LockTime)
}

// String returns the hex encoded transaction.
func (tx *Transaction) String() string {
	return hex.EncodeToString(tx.Bytes())
}

func (tx *Transaction) Size() int {
	return len(tx.Bytes())
}

// TxIDChainHash returns the double SHA-256 of the serialized transaction.
func (tx *Transaction) TxIDChainHash() *chainhash.Hash {
	hash := chainhash.DoubleHashH(tx.Bytes())
	return &hash
}

// TxID returns the transaction id in display order.
func (tx *Transaction) TxID() string {
	return tx.TxIDChainHash().String()
}

func (tx *Transaction) toJSON() transactionJSON {
	txJSON := transactionJSON{
		TxID:     tx.TxID(),
		Version:  tx.Version,
		Inputs:   make([]txInJSON, 0, len(tx.Inputs)),
		Outputs:  make([]txOutJSON, 0, len(tx.Outputs)),
		LockTime: tx.LockTime,
	}

	for _, in := range tx.Inputs {
		txJSON.Inputs = append(txJSON.Inputs, in.toJSON())
	}

	for _, out := range tx.Outputs {
		txJSON.Outputs = append(txJSON.Outputs, out.toJSON())
	}

	return txJSON
}

func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toJSON())
}

// ToJSONString returns indented JSON for diagnostics.
func (tx *Transaction) ToJSONString() (string, error) {
	b, err := json.MarshalIndent(tx.toJSON(), "", "  ")
	if err != nil {
		return "", errors.NewProcessingError("failed to marshal transaction", err)
	}

	return string(b), nil
}
