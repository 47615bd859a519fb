// Package crypto adapts the key, hash and encoding primitives the codec consumes.
// Nothing here is implemented locally; every function delegates to go-sdk or go-bt.
package crypto

import (
	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	return hash.Hash160(b)
}

// Sha256d returns SHA256(SHA256(b)).
func Sha256d(b []byte) []byte {
	return hash.Sha256d(b)
}
