package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bitkitcore/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string        // data directory, e.g. $HOME/.bitkit-lnurl
	Timeout   time.Duration // per request; zero keeps the transport default
	Proxy     string        // optional http, https or socks5 proxy URL
	PlainHTTP bool          // resolve Lightning Addresses over http
	UserAgent string
	HTTP      *http.Client          // optional; replaces the built-in client
	Metrics   prometheus.Registerer // optional
}

// FromSettings maps loaded settings onto wiring options.
func FromSettings(s config.Config) Config {
	return Config{
		Home:      s.Home,
		Timeout:   s.Timeout,
		Proxy:     s.Proxy,
		PlainHTTP: s.PlainHTTP,
		UserAgent: s.UserAgent,
	}
}
