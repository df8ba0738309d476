package app

import (
	"fmt"
	"os"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/services/auth"
	"bitkitcore/internal/services/channel"
	"bitkitcore/internal/services/pay"
	"bitkitcore/internal/services/withdraw"
	"bitkitcore/internal/store"
	"bitkitcore/internal/transport"
)

// Wire bundles all stores, services, and the transport for the CLI.
type Wire struct {
	*App
	Keys      domain.KeyStore
	Logins    domain.LoginStore
	Transport domain.Transport
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, fmt.Errorf("%w: no home directory", domain.ErrClientCreationFailed)
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	// File-based stores
	keys := store.NewKeyFileStore(cfg.Home)
	logins := store.NewLoginFileStore(cfg.Home)

	opts := []transport.Option{transport.WithProxy(cfg.Proxy)}
	if cfg.HTTP != nil {
		opts = append(opts, transport.WithHTTPClient(cfg.HTTP))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, transport.WithTimeout(cfg.Timeout))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(cfg.UserAgent))
	}
	if cfg.Metrics != nil {
		opts = append(opts, transport.WithMetrics(cfg.Metrics))
	}
	tr, err := transport.New(opts...)
	if err != nil {
		return nil, err
	}

	// High-level services
	a := New(
		pay.New(tr, pay.WithPlainHTTP(cfg.PlainHTTP)),
		auth.New(tr, keys, logins),
		withdraw.New(tr),
		channel.New(tr),
	)
	return &Wire{App: a, Keys: keys, Logins: logins, Transport: tr}, nil
}
