package crypto

import (
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/script"
)

// LockingScriptFromAddress builds the P2PKH locking script paying to a base58 address.
func LockingScriptFromAddress(address string) (*script.Script, error) {
	s, err := bscript.NewP2PKHFromAddress(address)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("invalid address %q", address, err)
	}

	return script.NewFromBytes(*s), nil
}

const (
	mainnetPubKeyHashVersion byte = 0x00
	testnetPubKeyHashVersion byte = 0x6f
)

// AddressFromPublicKeyHash renders a 20-byte public key hash as a base58check address
// with the given network version byte. Mainnet and testnet/regtest addresses go through
// bscript, other version bytes are encoded directly.
func AddressFromPublicKeyHash(version byte, pkh []byte) (string, error) {
	if len(pkh) != 20 {
		return "", errors.NewInvalidArgumentError("public key hash must be 20 bytes, got %d", len(pkh))
	}

	switch version {
	case mainnetPubKeyHashVersion, testnetPubKeyHashVersion:
		addr, err := bscript.NewAddressFromPublicKeyHash(pkh, version == mainnetPubKeyHashVersion)
		if err != nil {
			return "", errors.NewInvalidArgumentError("failed to build address", err)
		}

		return addr.AddressString, nil
	default:
		return Base58CheckEncode(version, pkh), nil
	}
}

// AddressFromLockingScript renders the address a P2PKH locking script pays to.
func AddressFromLockingScript(version byte, s *script.Script) (string, error) {
	pkh, err := s.PublicKeyHash()
	if err != nil {
		return "", err
	}

	return AddressFromPublicKeyHash(version, pkh)
}
