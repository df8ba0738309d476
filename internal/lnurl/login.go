package lnurl

import (
	"encoding/hex"
	"fmt"

	"bitkitcore/internal/domain"
)

// LoginRequest is the content of an LNURL-auth URL (LUD-04).
type LoginRequest struct {
	Domain   string // host the linking key is derived for
	K1       string // hex challenge
	Action   string // optional: register, login, link or auth
	Callback string // the full URL, signed parameters are appended to it
}

// ParseLoginURL decodes s and checks it is a tag=login URL with a 32-byte k1.
func ParseLoginURL(s string) (LoginRequest, error) {
	u, err := Decode(s)
	if err != nil {
		return LoginRequest{}, err
	}
	q := u.Query()
	if tag := q.Get("tag"); tag != string(domain.TagLogin) {
		return LoginRequest{}, fmt.Errorf("%w: tag %q is not login", domain.ErrInvalidAddress, tag)
	}
	k1 := q.Get("k1")
	if b, err := hex.DecodeString(k1); err != nil || len(b) != 32 {
		return LoginRequest{}, fmt.Errorf("%w: k1 must be 32 hex-encoded bytes", domain.ErrInvalidAddress)
	}
	return LoginRequest{
		Domain:   u.Hostname(),
		K1:       k1,
		Action:   q.Get("action"),
		Callback: u.String(),
	}, nil
}
