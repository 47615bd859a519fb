package model

import (
	"testing"

	"github.com/bsv-blockchain/txcodec/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	matchTxID1      = "4fe512f97769bc2fe47b0dadb1767404ebe2be50b3ea39a9b93d6325ee287e9a"
	matchTxID2      = "ae1bce3baad401f5ce96d6b5f34427a94f4bdd2b4c401298acc54927ac7afdb0"
	matchTxID3      = "f2e1978486452bd4262f3f51fb54fb50ca55ba3e928c3aabfa27e11a1b230d02"
	matchUnlockHex  = "4730440220029fa2e1301bf1073f3dbea9c9ddf797a4a211ef63dc5ab26ce9f21513d12e8d022032af0020d4c07b96969e3e99f228c6cd463ba58e47a9020d3ca8215ac3a5da22412103c134c904118b148d32492cd17d1183088f708a3e4a7429f3260ff51b9e72c6cc"
	matchAddressHex = p2pkhHex // locking script of 16Rcy7RYM3xkPEJr4tvUtL485Fuobi8S7o
)

func newMatchInput(t *testing.T, txID string, vout uint32, s *script.Script) *TxIn {
	t.Helper()

	seq := uint32(0xffffffff)

	in, err := NewTxIn(mustHex(t, txID), vout, s, &seq)
	require.NoError(t, err)

	return in
}

// four inputs: two with empty scripts, one with a signature and one with the address locking script
func buildMatchInputs(t *testing.T) *Transaction {
	t.Helper()

	empty, err := script.NewFromASM("")
	require.NoError(t, err)

	tx := NewTransaction(1, 0)
	tx.AddInput(newMatchInput(t, matchTxID1, 0, empty))
	tx.AddInput(newMatchInput(t, matchTxID2, 2, mustScript(t, matchUnlockHex)))
	tx.AddInput(newMatchInput(t, matchTxID3, 0, empty))
	tx.AddInput(newMatchInput(t, matchTxID1, 1, mustScript(t, matchAddressHex)))

	return tx
}

func TestMatchInputs_NoCriteriaMatchesAll(t *testing.T) {
	tx := buildMatchInputs(t)

	assert.Equal(t, []int{0, 1, 2, 3}, tx.MatchInputs(NewMatchCriteria()))
}

func TestMatchInputs_Script(t *testing.T) {
	tx := buildMatchInputs(t)

	criteria := NewMatchCriteria().SetScript(mustScript(t, matchAddressHex))
	assert.Equal(t, []int{3}, tx.MatchInputs(criteria))

	criteria = NewMatchCriteria().SetScript(&script.Script{})
	assert.Equal(t, []int{0, 2}, tx.MatchInputs(criteria))
}

func TestMatchInputs_ScriptAndRange(t *testing.T) {
	tx := buildMatchInputs(t)

	in := newMatchInput(t, matchTxID1, 1, mustScript(t, matchAddressHex))
	in.SetSatoshis(6000)
	tx.AddInput(in)

	criteria := NewMatchCriteria().
		SetScript(mustScript(t, matchAddressHex)).
		SetMin(2000).
		SetMax(7000)

	assert.Equal(t, []int{4}, tx.MatchInputs(criteria))

	// without the range both address inputs match
	assert.Equal(t, []int{3, 4}, tx.MatchInputs(NewMatchCriteria().SetScript(mustScript(t, matchAddressHex))))
}

func TestMatchOutputs_Value(t *testing.T) {
	tx := NewTransaction(1, 0)

	for _, v := range []uint64{5000, 0, 400, 9999999} {
		tx.AddOutput(NewTxOut(v, mustScript(t, matchAddressHex)))
	}

	criteria := NewMatchCriteria().SetScript(mustScript(t, matchAddressHex)).SetValue(400)
	assert.Equal(t, []int{2}, tx.MatchOutputs(criteria))

	assert.Equal(t, []int{0, 1, 2, 3}, tx.MatchOutputs(NewMatchCriteria()))
	assert.Equal(t, []int{0, 2}, tx.MatchOutputs(NewMatchCriteria().SetMin(400).SetMax(5000)))
	assert.Equal(t, []int{1}, tx.MatchOutputs(NewMatchCriteria().SetMax(0)))
}

func TestMatch_UnsatisfiableCriteria(t *testing.T) {
	tx := NewTransaction(1, 0)
	tx.AddOutput(NewTxOut(500, nil))

	criteria := NewMatchCriteria().SetMin(1000).SetMax(10)
	assert.Empty(t, tx.MatchOutputs(criteria))
	assert.NotNil(t, tx.MatchOutputs(criteria))

	assert.Empty(t, tx.MatchOutputs(NewMatchCriteria().SetValue(500).SetMax(100)))
}

func TestMatch_DoesNotMutate(t *testing.T) {
	tx := buildMatchInputs(t)
	before := tx.String()

	_ = tx.MatchInputs(NewMatchCriteria().SetMin(1))
	_ = tx.MatchOutputs(NewMatchCriteria().SetMin(1))

	assert.Equal(t, before, tx.String())
}

func TestMatchCriteria_ValueSemantics(t *testing.T) {
	base := NewMatchCriteria().SetMin(10)
	narrowed := base.SetMax(20)

	_, hasMax := base.Max()
	assert.False(t, hasMax)

	minimum, ok := narrowed.Min()
	assert.True(t, ok)
	assert.Equal(t, uint64(10), minimum)

	maximum, ok := narrowed.Max()
	assert.True(t, ok)
	assert.Equal(t, uint64(20), maximum)

	_, hasValue := narrowed.Value()
	assert.False(t, hasValue)
	assert.Nil(t, narrowed.Script())

	s := mustScript(t, "76")
	withScript := base.SetScript(s)
	require.NoError(t, s.AppendOpcodes(script.OpDROP))
	assert.Equal(t, "76", withScript.Script().String())
}
