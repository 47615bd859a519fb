// Package codec exposes the script and transaction codec over HTTP.
package codec

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/txcodec/crypto"
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/model"
	"github.com/bsv-blockchain/txcodec/settings"
	"github.com/bsv-blockchain/txcodec/ulogger"
	"github.com/jellydator/ttlcache/v3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP serves the codec API using echo.
//
// Endpoints, relative to the configured API prefix:
//
//	POST /script/asm   {"hex"}                 -> {"asm", "extended_asm"}
//	POST /script/hex   {"asm"}                 -> {"hex"}
//	POST /tx/decode    {"hex"}                 -> transaction JSON with txid
//	POST /tx/match     {"hex", "side", ...}    -> {"indices"}
//
// plus GET /alive and GET /metrics at the root.
type HTTP struct {
	logger    ulogger.Logger
	settings  *settings.Settings
	e         *echo.Echo
	startTime time.Time
	privKey   *bec.PrivateKey
	txCache   *ttlcache.Cache[chainhash.Hash, *model.Transaction]
}

func New(logger ulogger.Logger, tSettings *settings.Settings) (*HTTP, error) {
	initPrometheusMetrics()

	e := echo.New()
	e.Debug = tSettings.Codec.EchoDebug
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", tSettings.Codec.MaxRequestBytes)))
	e.Use(metricsMiddleware())

	if e.Debug {
		e.Use(customLoggerMiddleware(logger))
	}

	h := &HTTP{
		logger:    logger,
		settings:  tSettings,
		e:         e,
		startTime: time.Now(),
		txCache: ttlcache.New[chainhash.Hash, *model.Transaction](
			ttlcache.WithTTL[chainhash.Hash, *model.Transaction](tSettings.Codec.CacheTTL),
			ttlcache.WithDisableTouchOnHit[chainhash.Hash, *model.Transaction](),
		),
	}

	if tSettings.Codec.SignResponses {
		if tSettings.Codec.PrivateKeyWIF == "" {
			return nil, errors.NewConfigurationError("codec_signResponses is set but codec_privateKeyWIF is empty")
		}

		privKey, err := crypto.PrivateKeyFromWIF(tSettings.Codec.PrivateKeyWIF)
		if err != nil {
			return nil, errors.NewConfigurationError("failed to load codec_privateKeyWIF", err)
		}

		h.privKey = privKey
	}

	e.GET("/alive", func(c echo.Context) error {
		return c.String(http.StatusOK, fmt.Sprintf("Codec service is alive. Uptime: %s\n", time.Since(h.startTime)))
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiGroup := e.Group(tSettings.Codec.APIPrefix)

	apiGroup.POST("/script/asm", h.ScriptToASM)
	apiGroup.POST("/script/hex", h.ASMToScript)
	apiGroup.POST("/tx/decode", h.DecodeTransaction)
	apiGroup.POST("/tx/match", h.MatchTransaction)

	return h, nil
}

// Handler returns the underlying echo instance as an http.Handler.
func (h *HTTP) Handler() http.Handler {
	return h.e
}

// Start serves on addr until ctx is done.
func (h *HTTP) Start(ctx context.Context, addr string) error {
	go h.txCache.Start()
	defer h.txCache.Stop()

	go func() {
		<-ctx.Done()

		h.logger.Infof("[Codec] HTTP service shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.e.Shutdown(shutdownCtx); err != nil {
			h.logger.Errorf("[Codec] HTTP service shutdown error: %s", err)
		}
	}()

	h.logger.Infof("[Codec] HTTP service listening on %s", addr)

	err := h.e.Start(addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.NewServiceError("[Codec] HTTP service failed", err)
	}

	return nil
}

func (h *HTTP) Stop(ctx context.Context) error {
	return h.e.Shutdown(ctx)
}

// Sign sets X-Signature to the DER signature of sha256d(body), when a key is configured.
func (h *HTTP) Sign(resp *echo.Response, body []byte) error {
	if h.privKey == nil {
		return nil
	}

	signature, err := crypto.Sign(h.privKey, crypto.Sha256d(body))
	if err != nil {
		return err
	}

	resp.Header().Set("X-Signature", hex.EncodeToString(signature))

	return nil
}

// sendJSON marshals v, signs the body and writes it.
func (h *HTTP) sendJSON(c echo.Context, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return sendError(c, errors.NewProcessingError("failed to marshal response", err))
	}

	return h.sendJSONBlob(c, b)
}

func (h *HTTP) sendJSONBlob(c echo.Context, b []byte) error {
	// the signature header must be set before the body is written
	if err := h.Sign(c.Response(), b); err != nil {
		h.logger.Errorf("[Codec] failed to sign response: %v", err)
	}

	return c.JSONBlob(http.StatusOK, b)
}

func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if c.Request().ContentLength > 0 {
				prometheusCodecHTTPRequestBodyBytes.Observe(float64(c.Request().ContentLength))
			}

			err := next(c)

			prometheusCodecHTTPRequestDuration.WithLabelValues(c.Path()).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Middleware to log HTTP requests using the custom logger
func customLoggerMiddleware(logger ulogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Infof("http request: Method=%s, URI=%s, RemoteAddr=%s Status=%d, Duration=%v, err=%v", c.Request().Method, c.Request().RequestURI, c.Request().RemoteAddr, c.Response().Status, time.Since(start), err)

			return err
		}
	}
}
