package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"

	"bitkitcore/internal/domain"
)

// ErrBadHashingKey is returned when a hashing key cannot be parsed.
var ErrBadHashingKey = errors.New("hashing key must be 32 hex-encoded bytes")

// HashingKeyFromSeed derives the LUD-05 hashing key: the private key at
// m/138'/0 of the wallet seed.
func HashingKeyFromSeed(seed []byte) (domain.HashingKey, error) {
	var out domain.HashingKey
	ext, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return out, err
	}
	for _, idx := range []uint32{hdkeychain.HardenedKeyStart + lnurlPurpose, 0} {
		if ext, err = ext.Derive(idx); err != nil {
			return out, err
		}
	}
	priv, err := ext.ECPrivKey()
	if err != nil {
		return out, err
	}
	raw := priv.Serialize()
	defer Wipe(raw)
	copy(out[:], raw)
	priv.Zero()
	return out, nil
}

// HashingKeyFromMnemonic derives the hashing key from a BIP39 mnemonic and
// optional BIP39 passphrase.
func HashingKeyFromMnemonic(mnemonic, passphrase string) (domain.HashingKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return domain.HashingKey{}, fmt.Errorf("invalid mnemonic: %w", err)
	}
	defer Wipe(seed)
	return HashingKeyFromSeed(seed)
}

// ParseHashingKey decodes a hex hashing key.
func ParseHashingKey(s string) (domain.HashingKey, error) {
	var out domain.HashingKey
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(out) {
		return out, ErrBadHashingKey
	}
	copy(out[:], b)
	Wipe(b)
	return out, nil
}
