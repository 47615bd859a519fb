package codec

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter vectors labelled by "function" and "operation" (the status code or error category).
var (
	prometheusCodecHTTPScriptASM        *prometheus.CounterVec
	prometheusCodecHTTPScriptHex        *prometheus.CounterVec
	prometheusCodecHTTPDecodeTx         *prometheus.CounterVec
	prometheusCodecHTTPMatchTx          *prometheus.CounterVec
	prometheusCodecDecodeCacheHit       prometheus.Counter
	prometheusCodecDecodeCacheMiss      prometheus.Counter
	prometheusCodecHTTPRequestDuration  *prometheus.HistogramVec
	prometheusCodecHTTPRequestBodyBytes prometheus.Histogram
)

var (
	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func newCounterVec(name, help string) *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txcodec",
			Subsystem: "codec",
			Name:      name,
			Help:      help,
		},
		[]string{
			"function",  // function tracking the operation
			"operation", // type of operation achieved
		},
	)
}

func _initPrometheusMetrics() {
	prometheusCodecHTTPScriptASM = newCounterVec("http_script_asm", "Number of script to ASM ops")
	prometheusCodecHTTPScriptHex = newCounterVec("http_script_hex", "Number of ASM to script ops")
	prometheusCodecHTTPDecodeTx = newCounterVec("http_decode_tx", "Number of transaction decode ops")
	prometheusCodecHTTPMatchTx = newCounterVec("http_match_tx", "Number of transaction match ops")

	prometheusCodecDecodeCacheHit = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "txcodec",
			Subsystem: "codec",
			Name:      "decode_cache_hit",
			Help:      "Number of decoded transactions served from the cache",
		},
	)

	prometheusCodecDecodeCacheMiss = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "txcodec",
			Subsystem: "codec",
			Name:      "decode_cache_miss",
			Help:      "Number of transactions decoded from scratch",
		},
	)

	prometheusCodecHTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "txcodec",
			Subsystem: "codec",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of codec HTTP requests",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"path"},
	)

	prometheusCodecHTTPRequestBodyBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "txcodec",
			Subsystem: "codec",
			Name:      "http_request_body_bytes",
			Help:      "Size of codec HTTP request bodies",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 10),
		},
	)
}
