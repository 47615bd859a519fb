package codec

import (
	"encoding/hex"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/model"
	"github.com/bsv-blockchain/txcodec/script"
	"github.com/jellydator/ttlcache/v3"
	"github.com/labstack/echo/v4"
)

const (
	sideInputs  = "inputs"
	sideOutputs = "outputs"
)

type txHexRequest struct {
	Hex string `json:"hex"`
}

type matchCriteriaRequest struct {
	ScriptHex *string `json:"script_hex,omitempty"`
	Value     *uint64 `json:"value,omitempty"`
	Min       *uint64 `json:"min,omitempty"`
	Max       *uint64 `json:"max,omitempty"`
}

type matchRequest struct {
	Hex           string               `json:"hex"`
	Side          string               `json:"side"`
	Criteria      matchCriteriaRequest `json:"criteria"`
	InputSatoshis []uint64             `json:"input_satoshis,omitempty"`
}

type matchResponse struct {
	TxID    string `json:"txid"`
	Indices []int  `json:"indices"`
}

// decodeTransaction parses a hex transaction, reusing a cached parse of identical bytes.
// The returned transaction is shared with the cache and must not be modified.
func (h *HTTP) decodeTransaction(txHex string) (*model.Transaction, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, errors.NewDecodeError("invalid transaction hex", err)
	}

	key := chainhash.DoubleHashH(raw)

	if item := h.txCache.Get(key); item != nil {
		prometheusCodecDecodeCacheHit.Inc()
		return item.Value(), nil
	}

	prometheusCodecDecodeCacheMiss.Inc()

	tx, err := model.NewTransactionFromBytes(raw)
	if err != nil {
		return nil, err
	}

	h.txCache.Set(key, tx, ttlcache.DefaultTTL)

	return tx, nil
}

// DecodeTransaction returns the JSON form of a hex encoded transaction.
func (h *HTTP) DecodeTransaction(c echo.Context) error {
	var req txHexRequest
	if err := bindJSON(c, &req); err != nil {
		return h.fail(c, prometheusCodecHTTPDecodeTx, "DecodeTransaction", err)
	}

	tx, err := h.decodeTransaction(req.Hex)
	if err != nil {
		return h.fail(c, prometheusCodecHTTPDecodeTx, "DecodeTransaction", err)
	}

	b, err := tx.MarshalJSON()
	if err != nil {
		return h.fail(c, prometheusCodecHTTPDecodeTx, "DecodeTransaction", errors.NewProcessingError("failed to marshal transaction", err))
	}

	prometheusCodecHTTPDecodeTx.WithLabelValues("DecodeTransaction", "200").Inc()

	return h.sendJSONBlob(c, b)
}

func (r matchCriteriaRequest) toMatchCriteria() (model.MatchCriteria, error) {
	criteria := model.NewMatchCriteria()

	if r.ScriptHex != nil {
		s, err := script.NewFromHexString(*r.ScriptHex)
		if err != nil {
			return criteria, err
		}

		criteria = criteria.SetScript(s)
	}

	if r.Value != nil {
		criteria = criteria.SetValue(*r.Value)
	}

	if r.Min != nil {
		criteria = criteria.SetMin(*r.Min)
	}

	if r.Max != nil {
		criteria = criteria.SetMax(*r.Max)
	}

	return criteria, nil
}

// MatchTransaction returns the indices of the inputs or outputs satisfying the request criteria.
// Input values are supplied by the caller in input_satoshis since they are not part of the encoding.
func (h *HTTP) MatchTransaction(c echo.Context) error {
	var req matchRequest
	if err := bindJSON(c, &req); err != nil {
		return h.fail(c, prometheusCodecHTTPMatchTx, "MatchTransaction", err)
	}

	if req.Side != sideInputs && req.Side != sideOutputs {
		err := errors.NewInvalidArgumentError("side must be %q or %q, got %q", sideInputs, sideOutputs, req.Side)
		return h.fail(c, prometheusCodecHTTPMatchTx, "MatchTransaction", err)
	}

	criteria, err := req.Criteria.toMatchCriteria()
	if err != nil {
		return h.fail(c, prometheusCodecHTTPMatchTx, "MatchTransaction", err)
	}

	cached, err := h.decodeTransaction(req.Hex)
	if err != nil {
		return h.fail(c, prometheusCodecHTTPMatchTx, "MatchTransaction", err)
	}

	if len(req.InputSatoshis) > len(cached.Inputs) {
		err = errors.NewInvalidArgumentError("%d input values given for %d inputs", len(req.InputSatoshis), len(cached.Inputs))
		return h.fail(c, prometheusCodecHTTPMatchTx, "MatchTransaction", err)
	}

	resp := &matchResponse{TxID: cached.TxID()}

	if req.Side == sideOutputs {
		resp.Indices = cached.MatchOutputs(criteria)
	} else {
		// copy so the input values do not leak into the cached transaction
		tx := model.NewTransaction(cached.Version, cached.LockTime)

		for i, in := range cached.Inputs {
			tx.AddInput(in)

			if i < len(req.InputSatoshis) {
				tx.Inputs[i].SetSatoshis(req.InputSatoshis[i])
			}
		}

		resp.Indices = tx.MatchInputs(criteria)
	}

	prometheusCodecHTTPMatchTx.WithLabelValues("MatchTransaction", "200").Inc()

	return h.sendJSON(c, resp)
}
