package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bitkitcore/internal/domain"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "bitkitcore-lnurl/1"
	maxBodyBytes     = 1 << 20
)

// Client is an HTTP LNURL client.
type Client struct {
	http      *http.Client
	userAgent string
	log       *slog.Logger
	metrics   *metrics

	timeout  time.Duration
	proxy    string
	register prometheus.Registerer
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. Timeout and proxy
// options are ignored when it is set.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithProxy routes requests through the given proxy URL (http, https or socks5).
func WithProxy(rawURL string) Option {
	return func(c *Client) { c.proxy = rawURL }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) { c.register = reg }
}

// New constructs a Client. Errors wrap domain.ErrClientCreationFailed.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		userAgent: defaultUserAgent,
		log:       slog.Default(),
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		if c.proxy != "" {
			pu, err := url.Parse(c.proxy)
			if err != nil || pu.Scheme == "" || pu.Host == "" {
				return nil, fmt.Errorf("%w: invalid proxy %q", domain.ErrClientCreationFailed, c.proxy)
			}
			switch pu.Scheme {
			case "http", "https", "socks5":
			default:
				return nil, fmt.Errorf("%w: unsupported proxy scheme %q", domain.ErrClientCreationFailed, pu.Scheme)
			}
			tr.Proxy = http.ProxyURL(pu)
		}
		c.http = &http.Client{Timeout: c.timeout, Transport: tr}
	}

	if c.register != nil {
		m, err := newMetrics(c.register)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrClientCreationFailed, err)
		}
		c.metrics = m
	}
	return c, nil
}

var _ domain.Transport = (*Client)(nil)
