package interfaces

import domaintypes "bitkitcore/internal/domain/types"

// KeyStore persists the LNURL-auth hashing key encrypted at rest.
type KeyStore interface {
	SaveHashingKey(passphrase string, key domaintypes.HashingKey) error
	LoadHashingKey(passphrase string) (domaintypes.HashingKey, error)
	HasHashingKey() (bool, error)
}

// LoginStore keeps a history of LNURL-auth logins.
type LoginStore interface {
	SaveLogin(rec domaintypes.LoginRecord) error
	ListLogins() ([]domaintypes.LoginRecord, error)
}
