// Package settings loads the service and CLI configuration through gocore.
package settings

import (
	"time"
)

func NewSettings() *Settings {
	network := getString("network", "mainnet")

	params, err := GetChainParams(network)
	if err != nil {
		panic(err)
	}

	return &Settings{
		ClientName:     getString("clientName", "txcodec"),
		LogLevel:       getString("logLevel", "INFO"),
		PrettyLogs:     getBool("PRETTY_LOGS", true),
		Network:        network,
		ChainCfgParams: params,
		Codec: CodecSettings{
			HTTPListenAddress: getString("codec_httpListenAddress", ":8095"),
			APIPrefix:         getString("codec_apiPrefix", "/api/v1"),
			EchoDebug:         getBool("codec_echoDebug", false),
			MaxRequestBytes:   getInt("codec_maxRequestBytes", 10*1024*1024), // 10MB
			CacheTTL:          getDuration("codec_cacheTTL", 10*time.Minute),
			SignResponses:     getBool("codec_signResponses", false),
			PrivateKeyWIF:     getString("codec_privateKeyWIF", ""),
		},
		Script: ScriptSettings{
			MaxASMLength: getInt("script_maxASMLength", 1024*1024), // 1MB
		},
	}
}

// AddressVersion returns the P2PKH address version byte of the configured network.
func (s *Settings) AddressVersion() byte {
	return s.ChainCfgParams.LegacyPubKeyHashAddrID
}
