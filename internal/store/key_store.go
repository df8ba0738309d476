package store

import (
	"encoding/hex"
	"errors"
	"path/filepath"
	"sync"

	"bitkitcore/internal/crypto"
	"bitkitcore/internal/domain"
)

const (
	keyFilename = "hashing_key.json.enc"
	keyPurpose  = "bitkitcore/lnurl-auth/hashing-key"
)

// ErrNoKey is returned when no hashing key has been saved yet.
var ErrNoKey = errors.New("no hashing key stored, run `key init` or `key import` first")

// KeyFileStore persists the LNURL-auth hashing key encrypted on disk.
type KeyFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir, kdf: defaultKDF}
}

// SaveHashingKey encrypts key with passphrase and writes it to disk,
// replacing any previous key.
func (s *KeyFileStore) SaveHashingKey(passphrase string, key domain.HashingKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := []byte(hex.EncodeToString(key[:]))
	defer crypto.Wipe(raw)
	blob, err := seal(passphrase, raw, keyPurpose, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.path(), blob, 0o600)
}

// LoadHashingKey reads and decrypts the hashing key.
func (s *KeyFileStore) LoadHashingKey(passphrase string) (domain.HashingKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path())
	if err != nil {
		return domain.HashingKey{}, err
	}
	if b == nil {
		return domain.HashingKey{}, ErrNoKey
	}
	raw, err := open(passphrase, b, keyPurpose)
	if err != nil {
		return domain.HashingKey{}, err
	}
	defer crypto.Wipe(raw)
	return crypto.ParseHashingKey(string(raw))
}

// HasHashingKey reports whether a key file exists.
func (s *KeyFileStore) HasHashingKey() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path())
	return b != nil, err
}

func (s *KeyFileStore) path() string { return filepath.Join(s.dir, keyFilename) }

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
