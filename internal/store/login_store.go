package store

import (
	"path/filepath"
	"sync"

	"bitkitcore/internal/domain"
)

const loginsFilename = "logins.json"

// LoginFileStore keeps the LNURL-auth login history as JSON.
type LoginFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewLoginFileStore returns a LoginFileStore rooted at dir.
func NewLoginFileStore(dir string) *LoginFileStore { return &LoginFileStore{dir: dir} }

// SaveLogin appends rec. A previous record for the same domain is removed,
// so each domain appears once, at the position of its latest login.
func (s *LoginFileStore) SaveLogin(rec domain.LoginRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []domain.LoginRecord
	if err := readJSON(s.path(), &recs); err != nil {
		return err
	}
	out := recs[:0]
	for _, r := range recs {
		if r.Domain != rec.Domain {
			out = append(out, r)
		}
	}
	return writeJSON(s.path(), append(out, rec), 0o600)
}

// ListLogins returns all records, oldest first.
func (s *LoginFileStore) ListLogins() ([]domain.LoginRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []domain.LoginRecord
	if err := readJSON(s.path(), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *LoginFileStore) path() string { return filepath.Join(s.dir, loginsFilename) }

var _ domain.LoginStore = (*LoginFileStore)(nil)
