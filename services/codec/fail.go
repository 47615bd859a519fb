package codec

import (
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// failureCategory labels a failed request for metrics. Input that ended early is counted
// apart from other codec errors.
func failureCategory(err error) string {
	if errors.IsTruncationError(err) {
		return "truncated"
	}

	return errors.GetErrorCategory(err)
}

// fail counts and logs a failed request, then writes the error response.
func (h *HTTP) fail(c echo.Context, counter *prometheus.CounterVec, function string, err error) error {
	counter.WithLabelValues(function, failureCategory(err)).Inc()

	if errors.IsInputError(err) {
		h.logger.Debugf("[Codec] %s rejected input from %s: %v", function, c.Request().RemoteAddr, err)
	} else {
		h.logger.Errorf("[Codec] %s failed: %v", function, err)
	}

	return sendError(c, err)
}
