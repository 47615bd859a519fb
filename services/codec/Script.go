package codec

import (
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/script"
	"github.com/labstack/echo/v4"
)

type scriptHexRequest struct {
	Hex string `json:"hex"`
}

type scriptASMRequest struct {
	ASM string `json:"asm"`
}

type scriptASMResponse struct {
	ASM         string `json:"asm"`
	ExtendedASM string `json:"extended_asm"`
}

type scriptHexResponse struct {
	Hex string `json:"hex"`
}

// bindJSON decodes the request body into v.
func bindJSON(c echo.Context, v interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		return errors.NewInvalidArgumentError("invalid JSON request body", err)
	}

	return nil
}

// ScriptToASM renders a hex encoded script as compact and extended ASM.
func (h *HTTP) ScriptToASM(c echo.Context) error {
	var req scriptHexRequest
	if err := bindJSON(c, &req); err != nil {
		return h.fail(c, prometheusCodecHTTPScriptASM, "ScriptToASM", err)
	}

	s, err := script.NewFromHexString(req.Hex)
	if err != nil {
		return h.fail(c, prometheusCodecHTTPScriptASM, "ScriptToASM", err)
	}

	asm, err := s.ToASM()
	if err != nil {
		return h.fail(c, prometheusCodecHTTPScriptASM, "ScriptToASM", err)
	}

	extended, err := s.ToExtendedASM()
	if err != nil {
		return h.fail(c, prometheusCodecHTTPScriptASM, "ScriptToASM", err)
	}

	prometheusCodecHTTPScriptASM.WithLabelValues("ScriptToASM", "200").Inc()

	return h.sendJSON(c, &scriptASMResponse{ASM: asm, ExtendedASM: extended})
}

// ASMToScript parses compact or extended ASM into a hex encoded script.
func (h *HTTP) ASMToScript(c echo.Context) error {
	var req scriptASMRequest
	if err := bindJSON(c, &req); err != nil {
		return h.fail(c, prometheusCodecHTTPScriptHex, "ASMToScript", err)
	}

	if maxLen := h.settings.Script.MaxASMLength; maxLen > 0 && len(req.ASM) > maxLen {
		err := errors.NewThresholdExceededError("ASM length %d exceeds the limit of %d", len(req.ASM), maxLen)
		return h.fail(c, prometheusCodecHTTPScriptHex, "ASMToScript", err)
	}

	s, err := script.NewFromASM(req.ASM)
	if err != nil {
		return h.fail(c, prometheusCodecHTTPScriptHex, "ASMToScript", err)
	}

	prometheusCodecHTTPScriptHex.WithLabelValues("ASMToScript", "200").Inc()

	return h.sendJSON(c, &scriptHexResponse{Hex: s.String()})
}
