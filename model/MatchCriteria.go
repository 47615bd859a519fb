package model

import "github.com/bsv-blockchain/txcodec/script"

// MatchCriteria filters inputs and outputs. Every field that is set must match;
// the zero value matches everything. Setters return an updated copy.
type MatchCriteria struct {
	script *script.Script
	value  *uint64
	min    *uint64
	max    *uint64
}

func NewMatchCriteria() MatchCriteria {
	return MatchCriteria{}
}

// SetScript requires the script to be byte-for-byte equal.
func (c MatchCriteria) SetScript(s *script.Script) MatchCriteria {
	c.script = s.Clone()
	return c
}

// SetValue requires the satoshi value to be exactly v.
func (c MatchCriteria) SetValue(v uint64) MatchCriteria {
	c.value = &v
	return c
}

// SetMin requires the satoshi value to be at least v.
func (c MatchCriteria) SetMin(v uint64) MatchCriteria {
	c.min = &v
	return c
}

// SetMax requires the satoshi value to be at most v.
func (c MatchCriteria) SetMax(v uint64) MatchCriteria {
	c.max = &v
	return c
}

func (c MatchCriteria) Script() *script.Script {
	return c.script.Clone()
}

func (c MatchCriteria) Value() (uint64, bool) {
	return deref(c.value)
}

func (c MatchCriteria) Min() (uint64, bool) {
	return deref(c.min)
}

func (c MatchCriteria) Max() (uint64, bool) {
	return deref(c.max)
}

func deref(v *uint64) (uint64, bool) {
	if v == nil {
		return 0, false
	}

	return *v, true
}

func (c MatchCriteria) matches(s *script.Script, satoshis uint64) bool {
	if c.script != nil && !c.script.Equals(s) {
		return false
	}

	if c.value != nil && satoshis != *c.value {
		return false
	}

	if c.min != nil && satoshis < *c.min {
		return false
	}

	if c.max != nil && satoshis > *c.max {
		return false
	}

	return true
}

// MatchInputs returns the indices of inputs whose unlocking script and tracked satoshis
// satisfy c, in ascending order. Inputs without tracked satoshis count as 0.
func (tx *Transaction) MatchInputs(c MatchCriteria) []int {
	matches := make([]int, 0)

	for i, in := range tx.Inputs {
		if c.matches(in.UnlockingScript, in.Satoshis()) {
			matches = append(matches, i)
		}
	}

	return matches
}

// MatchOutputs returns the indices of outputs whose locking script and value satisfy c, in ascending order.
func (tx *Transaction) MatchOutputs(c MatchCriteria) []int {
	matches := make([]int, 0)

	for i, out := range tx.Outputs {
		if c.matches(out.LockingScript, out.Satoshis) {
			matches = append(matches, i)
		}
	}

	return matches
}
