package types

import "time"

// LoginRecord remembers a successful LNURL-auth login.
type LoginRecord struct {
	Domain     string    `json:"domain"`
	LinkingKey string    `json:"linking_key"` // compressed secp256k1 public key, hex
	At         time.Time `json:"at"`
}
