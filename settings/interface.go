package settings

import (
	"time"

	"github.com/bsv-blockchain/go-chaincfg"
)

type CodecSettings struct {
	HTTPListenAddress string
	APIPrefix         string
	EchoDebug         bool
	MaxRequestBytes   int
	CacheTTL          time.Duration
	SignResponses     bool
	PrivateKeyWIF     string
}

type ScriptSettings struct {
	MaxASMLength int
}

type Settings struct {
	ClientName     string
	LogLevel       string
	PrettyLogs     bool
	Network        string
	ChainCfgParams *chaincfg.Params
	Codec          CodecSettings
	Script         ScriptSettings
}
