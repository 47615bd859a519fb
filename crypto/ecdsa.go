package crypto

import (
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/txcodec/errors"
)

const digestSize = 32

// Sign signs a 32-byte digest and returns the DER encoded signature.
func Sign(privKey *bec.PrivateKey, digest []byte) ([]byte, error) {
	if privKey == nil {
		return nil, errors.NewInvalidArgumentError("private key is nil")
	}

	if len(digest) != digestSize {
		return nil, errors.NewInvalidArgumentError("digest must be %d bytes, got %d", digestSize, len(digest))
	}

	signature, err := privKey.Sign(digest)
	if err != nil {
		return nil, errors.NewProcessingError("failed to sign digest", err)
	}

	return signature.Serialize(), nil
}

// Verify checks a DER signature over digest against a serialized public key.
// A malformed key or signature is an error, a well-formed but wrong signature is false.
func Verify(pubKey []byte, digest []byte, der []byte) (bool, error) {
	pk, err := bec.ParsePubKey(pubKey)
	if err != nil {
		return false, errors.NewInvalidArgumentError("invalid public key", err)
	}

	signature, err := bec.ParseDERSignature(der)
	if err != nil {
		return false, errors.NewInvalidArgumentError("invalid DER signature", err)
	}

	return signature.Verify(digest, pk), nil
}

// PrivateKeyFromWIF decodes a WIF encoded private key.
func PrivateKeyFromWIF(wif string) (*bec.PrivateKey, error) {
	privKey, err := bec.PrivateKeyFromWif(wif)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("invalid WIF private key", err)
	}

	return privKey, nil
}
