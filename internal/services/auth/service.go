package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"bitkitcore/internal/crypto"
	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
)

// Success is returned by a completed login.
const Success = "Authentication successful"

// ErrNoKeyStore is returned when a stored-key operation runs without a KeyStore.
var ErrNoKeyStore = errors.New("no key store configured")

// Service signs LNURL-auth challenges.
type Service struct {
	transport domain.Transport
	keys      domain.KeyStore
	logins    domain.LoginStore
	now       func() time.Time
}

// New constructs an auth service. keys and logins may be nil.
func New(t domain.Transport, keys domain.KeyStore, logins domain.LoginStore) *Service {
	return &Service{
		transport: t,
		keys:      keys,
		logins:    logins,
		now:       time.Now,
	}
}

// Authenticate logs into the service at params.Domain.
//
// Steps:
//  1. Validate the domain and derive the linking key for its host.
//  2. Sign k1 with the linking key.
//  3. Resolve the callback, decoding it first if it is a bech32 LNURL.
//  4. Send sig and key to the callback and interpret the status reply.
func (s *Service) Authenticate(ctx context.Context, params domain.LnurlAuthParams) (string, error) {
	host, err := serviceHost(params.Domain)
	if err != nil {
		return "", err
	}

	key, err := crypto.DeriveLinkingKey(params.HashingKey, host)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	sig, err := key.Sign(params.K1)
	if err != nil {
		return "", err
	}

	callback := params.Callback
	if lnurl.IsBech32(callback) {
		u, err := lnurl.Decode(callback)
		if err != nil {
			return "", err
		}
		callback = u.String()
	}
	pub := key.PublicKey()
	signed, err := lnurl.AuthCallbackURL(callback, sig, pub)
	if err != nil {
		return "", err
	}

	if s.transport == nil {
		return "", domain.ErrClientCreationFailed
	}
	st, err := s.transport.Call(ctx, signed)
	if err != nil {
		var se *domain.ServiceError
		if errors.As(err, &se) {
			return "", fmt.Errorf("%w: %s", domain.ErrAuthenticationFailed, se.Reason)
		}
		if errors.Is(err, domain.ErrRequestFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrRequestFailed, err)
	}
	if !st.OK() {
		return "", fmt.Errorf("%w: %s", domain.ErrAuthenticationFailed, st.Reason)
	}

	s.record(host, pub)
	slog.Info("lnurl-auth login", "domain", host, "linking_key", crypto.Fingerprint(pub))
	return Success, nil
}

// AuthenticateWithStore is Authenticate with the hashing key loaded from the key store.
func (s *Service) AuthenticateWithStore(
	ctx context.Context,
	passphrase, serviceDomain, k1, callback string,
) (string, error) {
	if s.keys == nil {
		return "", ErrNoKeyStore
	}
	hk, err := s.keys.LoadHashingKey(passphrase)
	if err != nil {
		return "", fmt.Errorf("load hashing key: %w", err)
	}
	defer crypto.Wipe(hk[:])

	return s.Authenticate(ctx, domain.LnurlAuthParams{
		Domain:     serviceDomain,
		K1:         k1,
		Callback:   callback,
		HashingKey: hk,
	})
}

// Login parses an LNURL-auth URL and authenticates with the stored hashing key.
func (s *Service) Login(ctx context.Context, passphrase, raw string) (string, error) {
	req, err := lnurl.ParseLoginURL(raw)
	if err != nil {
		return "", err
	}
	return s.AuthenticateWithStore(ctx, passphrase, req.Domain, req.K1, req.Callback)
}

// LinkingKey returns the hex linking public key used for serviceDomain.
func LinkingKey(hashingKey domain.HashingKey, serviceDomain string) (string, error) {
	host, err := serviceHost(serviceDomain)
	if err != nil {
		return "", err
	}
	key, err := crypto.DeriveLinkingKey(hashingKey, host)
	if err != nil {
		return "", err
	}
	defer key.Zero()
	return hex.EncodeToString(key.PublicKey()), nil
}

// record stores the login; failures are logged and never fail the login.
func (s *Service) record(host string, pub []byte) {
	if s.logins == nil {
		return
	}
	rec := domain.LoginRecord{
		Domain:     host,
		LinkingKey: hex.EncodeToString(pub),
		At:         s.now().UTC(),
	}
	if err := s.logins.SaveLogin(rec); err != nil {
		slog.Warn("could not record lnurl-auth login", "domain", host, "error", err)
	}
}

// serviceHost returns the IDNA ASCII host of "https://<serviceDomain>".
func serviceHost(serviceDomain string) (string, error) {
	u, err := url.Parse("https://" + serviceDomain)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: empty domain", domain.ErrInvalidAddress)
	}
	host, err := idna.Lookup.ToASCII(strings.ToLower(u.Hostname()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	return host, nil
}

var _ domain.AuthService = (*Service)(nil)
