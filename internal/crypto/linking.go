package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"bitkitcore/internal/domain"
)

// lnurlPurpose is the hardened first element of every LUD-05 path.
const lnurlPurpose = 138

// Path is a BIP32 derivation path. Indices at or above
// hdkeychain.HardenedKeyStart are hardened.
type Path []uint32

// String renders the path as 138'/1588488367/511787106'/..., without the m/ prefix.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		if idx >= hdkeychain.HardenedKeyStart {
			parts[i] = strconv.FormatUint(uint64(idx-hdkeychain.HardenedKeyStart), 10) + "'"
		} else {
			parts[i] = strconv.FormatUint(uint64(idx), 10)
		}
	}
	return strings.Join(parts, "/")
}

// DerivationPath computes the LUD-05 path for host:
// m/138'/<u1>/<u2>/<u3>/<u4>, where u1..u4 are the first 16 bytes of
// HMAC-SHA256(hashingKey, host) read as big-endian uint32s.
func DerivationPath(hashingKey domain.HashingKey, host string) Path {
	mac := hmac.New(sha256.New, hashingKey[:])
	mac.Write([]byte(host))
	sum := mac.Sum(nil)

	path := Path{hdkeychain.HardenedKeyStart + lnurlPurpose}
	for i := 0; i < 4; i++ {
		path = append(path, binary.BigEndian.Uint32(sum[i*4:(i+1)*4]))
	}
	return path
}

// LinkingKey is the service-specific LNURL-auth key pair.
type LinkingKey struct {
	priv *btcec.PrivateKey
}

// DeriveLinkingKey derives the linking key for host. The hashing key seeds
// a BIP32 master key, which is walked along DerivationPath(hashingKey, host).
func DeriveLinkingKey(hashingKey domain.HashingKey, host string) (*LinkingKey, error) {
	ext, err := hdkeychain.NewMaster(hashingKey[:], &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("%w: master key: %v", domain.ErrAuthenticationFailed, err)
	}
	for _, idx := range DerivationPath(hashingKey, host) {
		ext, err = ext.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("%w: derive %d: %v", domain.ErrAuthenticationFailed, idx, err)
		}
	}
	priv, err := ext.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
	}
	return &LinkingKey{priv: priv}, nil
}

// PublicKey returns the compressed 33-byte public key.
func (k *LinkingKey) PublicKey() []byte { return k.priv.PubKey().SerializeCompressed() }

// Zero clears the private scalar.
func (k *LinkingKey) Zero() { k.priv.Zero() }
