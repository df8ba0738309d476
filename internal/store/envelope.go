package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// The current supported version of the encrypted blob format stored on disk.
const envelopeVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

// sealed is the JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce,omitempty"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// kdfParams are the scrypt cost parameters for new blobs.
type kdfParams struct{ N, R, P int }

var defaultKDF = kdfParams{N: 1 << 15, R: 8, P: 1}

// scrypt needs 128*N*r bytes; files asking for more than this are refused.
const maxKDFMemory = 256 << 20

// ErrKDFParams is returned for a key file whose scrypt costs are out of range.
var ErrKDFParams = errors.New("key file scrypt parameters out of range")

func (k kdfParams) check() error {
	if k.N < 2 || k.N&(k.N-1) != 0 || k.R < 1 || k.P < 1 || k.P > 16 ||
		k.R > maxKDFMemory/128/k.N {
		return fmt.Errorf("%w: N=%d r=%d p=%d", ErrKDFParams, k.N, k.R, k.P)
	}
	return nil
}

// seal derives a key from passphrase and encrypts raw, binding purpose as
// associated data so blobs cannot be swapped between files.
func seal(passphrase string, raw []byte, purpose string, kdf kdfParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, []byte(purpose))

	return json.Marshal(sealed{
		V:      envelopeVersion,
		Salt:   salt,
		Nonce:  nonce,
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Cipher: ct,
	})
}

// open decrypts a blob produced by seal.
func open(passphrase string, b []byte, purpose string) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode key file: %w", err)
	}
	if s.V < 1 || s.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported key file version %d", s.V)
	}

	if err := (kdfParams{N: s.N, R: s.R, P: s.P}).check(); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), s.Salt, s.N, s.R, s.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(s.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, s.Nonce, s.Cipher, []byte(purpose))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
