package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"bitkitcore/internal/domain"
)

// Sign signs the hex encoded 32-byte challenge k1 and returns the DER signature.
func (k *LinkingKey) Sign(k1Hex string) ([]byte, error) {
	digest, err := decodeK1(k1Hex)
	if err != nil {
		return nil, err
	}
	return ecdsa.Sign(k.priv, digest).Serialize(), nil
}

// VerifyChallenge checks a LUD-04 login: sigHex is a DER signature of k1Hex
// by the compressed public key keyHex.
func VerifyChallenge(keyHex, k1Hex, sigHex string) bool {
	digest, err := decodeK1(k1Hex)
	if err != nil {
		return false
	}
	rawKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	pub, err := btcec.ParsePubKey(rawKey)
	if err != nil {
		return false
	}
	rawSig, err := hex.DecodeString(sigHex)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(rawSig)
	if err != nil {
		return false
	}
	return sig.Verify(digest, pub)
}

func decodeK1(k1Hex string) ([]byte, error) {
	b, err := hex.DecodeString(k1Hex)
	if err != nil {
		return nil, fmt.Errorf("%w: k1 is not hex: %v", domain.ErrAuthenticationFailed, err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: k1 must be 32 bytes, got %d", domain.ErrAuthenticationFailed, len(b))
	}
	return b, nil
}
