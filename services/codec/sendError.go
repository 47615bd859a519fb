package codec

import (
	"net/http"

	"github.com/bsv-blockchain/txcodec/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Status int32               `json:"status"`
	Code   int32               `json:"code"`
	Err    string              `json:"error"`
	Data   jsoniter.RawMessage `json:"data,omitempty"`
}

// sendError writes err as an errorResponse. Caller input errors become 400, oversized input 413,
// anything else 500. Typed error data, such as the failing field of a transaction, is passed through.
func sendError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	code := int32(errors.ERR_UNKNOWN)

	var data jsoniter.RawMessage

	var tErr *errors.Error
	if errors.As(err, &tErr) {
		code = int32(tErr.Code())

		if tErr.Data() != nil {
			data = tErr.Data().EncodeErrorData()
		}
	}

	switch {
	case errors.Is(err, errors.ErrThresholdExceeded):
		status = http.StatusRequestEntityTooLarge
	case errors.IsInputError(err):
		status = http.StatusBadRequest
	}

	e := &errorResponse{
		Status: int32(status),
		Code:   code,
		Err:    err.Error(),
		Data:   data,
	}

	b, mErr := json.Marshal(e)
	if mErr != nil {
		return c.JSON(http.StatusInternalServerError, &errorResponse{
			Status: http.StatusInternalServerError,
			Code:   int32(errors.ERR_PROCESSING),
			Err:    mErr.Error(),
		})
	}

	return c.JSONBlob(status, b)
}
