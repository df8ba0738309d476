package devserver

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bitkitcore/internal/crypto"
	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
)

// InvoiceFunc returns a BOLT11 invoice for an amount in millisatoshis.
type InvoiceFunc func(amountMsat uint64, comment string) (string, error)

// Config tunes the offers the server makes. Amounts are in millisatoshis.
type Config struct {
	BaseURL         string   // public base for callbacks; derived from the request when empty
	Users           []string // accepted pay usernames; any when empty
	MinSendable     uint64
	MaxSendable     uint64
	CommentAllowed  int
	MinWithdrawable uint64
	MaxWithdrawable uint64
	NodeURI         string // advertised in channel offers
	Invoice         InvoiceFunc
	ChallengeTTL    time.Duration // lifetime of an issued k1
	MaxPending      int           // outstanding k1 limit; the oldest are evicted
}

const (
	defaultChallengeTTL = 10 * time.Minute
	defaultMaxPending   = 1024
)

// DefaultConfig returns a config suitable for regtest.
func DefaultConfig() Config {
	return Config{
		MinSendable:     1_000,
		MaxSendable:     100_000_000,
		CommentAllowed:  140,
		MinWithdrawable: 1_000,
		MaxWithdrawable: 10_000_000,
		NodeURI:         "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798@127.0.0.1:9735",
		ChallengeTTL:    defaultChallengeTTL,
		MaxPending:      defaultMaxPending,
	}
}

// ChannelRequest is a channel callback the server received.
type ChannelRequest struct {
	RemoteID string
	Private  bool
	Cancel   bool
}

// Server is an in-memory LNURL service.
type Server struct {
	cfg      Config
	registry *prometheus.Registry
	requests *prometheus.CounterVec

	mu          sync.Mutex
	pending     map[string]challenge // outstanding k1s
	withdrawals []string
	channels    []ChannelRequest
	logins      []string // verified linking keys
}

// New returns a server for cfg.
func New(cfg Config) *Server {
	if cfg.Invoice == nil {
		cfg.Invoice = fakeInvoice
	}
	if cfg.ChallengeTTL <= 0 {
		cfg.ChallengeTTL = defaultChallengeTTL
	}
	if cfg.MaxPending <= 0 {
		cfg.MaxPending = defaultMaxPending
	}
	s := &Server{
		cfg:      cfg,
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lnurl_devserver_requests_total",
			Help: "Requests served by route and outcome.",
		}, []string{"route", "outcome"}),
		pending: make(map[string]challenge),
	}
	s.registry.MustRegister(s.requests)
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /.well-known/lnurlp/{user}", s.handlePayRequest)
	mux.HandleFunc("GET /lnurlp/{user}/callback", s.handlePayCallback)
	mux.HandleFunc("GET /withdraw", s.handleWithdrawRequest)
	mux.HandleFunc("GET /withdraw/callback", s.handleWithdrawCallback)
	mux.HandleFunc("GET /channel", s.handleChannelRequest)
	mux.HandleFunc("GET /channel/callback", s.handleChannelCallback)
	mux.HandleFunc("GET /login", s.handleLoginRequest)
	mux.HandleFunc("GET /login/callback", s.handleLoginCallback)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// Withdrawals returns the payment requests submitted so far.
func (s *Server) Withdrawals() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.withdrawals...)
}

// ChannelRequests returns the channel callbacks received so far.
func (s *Server) ChannelRequests() []ChannelRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChannelRequest(nil), s.channels...)
}

// Logins returns the linking keys that logged in successfully.
func (s *Server) Logins() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.logins...)
}

type challenge struct {
	flow    domain.Tag
	expires time.Time
}

// Pending returns the number of outstanding k1 values.
func (s *Server) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Issue registers a fresh k1 for flow and returns it. Expired k1s are
// dropped first; at MaxPending the one closest to expiry makes room.
func (s *Server) Issue(flow domain.Tag) string {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("devserver: read random: %v", err))
	}
	k1 := hex.EncodeToString(b[:])
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	var oldest string
	for k, c := range s.pending {
		if !now.Before(c.expires) {
			delete(s.pending, k)
			continue
		}
		if oldest == "" || c.expires.Before(s.pending[oldest].expires) {
			oldest = k
		}
	}
	if len(s.pending) >= s.cfg.MaxPending {
		delete(s.pending, oldest)
	}
	s.pending[k1] = challenge{flow: flow, expires: now.Add(s.cfg.ChallengeTTL)}
	return k1
}

// consume removes k1 and reports whether it was live and issued for flow.
func (s *Server) consume(k1 string, flow domain.Tag) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.pending[k1]
	if !ok || c.flow != flow {
		return false
	}
	delete(s.pending, k1)
	return time.Now().Before(c.expires)
}

func (s *Server) handlePayRequest(w http.ResponseWriter, r *http.Request) {
	user := strings.ToLower(r.PathValue("user"))
	if !s.knownUser(user) {
		s.fail(w, "pay", http.StatusNotFound, "user not found")
		return
	}
	base := s.base(r)
	meta, _ := json.Marshal([][2]string{
		{"text/plain", "Pay to " + user},
		{"text/identifier", user + "@" + r.Host},
	})
	s.ok(w, "pay", domain.PayResponse{
		Tag:            domain.TagPayRequest,
		Callback:       base + "/lnurlp/" + user + "/callback",
		MinSendable:    s.cfg.MinSendable,
		MaxSendable:    s.cfg.MaxSendable,
		Metadata:       string(meta),
		CommentAllowed: s.cfg.CommentAllowed,
	})
}

func (s *Server) handlePayCallback(w http.ResponseWriter, r *http.Request) {
	if !s.knownUser(strings.ToLower(r.PathValue("user"))) {
		s.fail(w, "pay_callback", http.StatusNotFound, "user not found")
		return
	}
	q := r.URL.Query()
	amount, err := strconv.ParseUint(q.Get("amount"), 10, 64)
	if err != nil {
		s.fail(w, "pay_callback", http.StatusBadRequest, "amount must be an integer number of msat")
		return
	}
	if amount < s.cfg.MinSendable || amount > s.cfg.MaxSendable {
		s.fail(w, "pay_callback", http.StatusOK,
			fmt.Sprintf("amount %d outside [%d, %d] msat", amount, s.cfg.MinSendable, s.cfg.MaxSendable))
		return
	}
	comment := q.Get("comment")
	if len([]rune(comment)) > s.cfg.CommentAllowed {
		s.fail(w, "pay_callback", http.StatusOK, "comment too long")
		return
	}
	pr, err := s.cfg.Invoice(amount, comment)
	if err != nil {
		s.fail(w, "pay_callback", http.StatusOK, err.Error())
		return
	}
	s.ok(w, "pay_callback", domain.InvoiceResponse{PR: pr, Routes: []json.RawMessage{}})
}

func (s *Server) handleWithdrawRequest(w http.ResponseWriter, r *http.Request) {
	s.ok(w, "withdraw", domain.WithdrawResponse{
		Tag:                domain.TagWithdrawRequest,
		Callback:           s.base(r) + "/withdraw/callback",
		K1:                 s.Issue(domain.TagWithdrawRequest),
		DefaultDescription: "devserver withdrawal",
		MinWithdrawable:    s.cfg.MinWithdrawable,
		MaxWithdrawable:    s.cfg.MaxWithdrawable,
	})
}

func (s *Server) handleWithdrawCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pr := q.Get("pr")
	if pr == "" {
		s.fail(w, "withdraw_callback", http.StatusBadRequest, "missing pr")
		return
	}
	if !s.consume(q.Get("k1"), domain.TagWithdrawRequest) {
		s.fail(w, "withdraw_callback", http.StatusOK, "unknown or used k1")
		return
	}
	s.mu.Lock()
	s.withdrawals = append(s.withdrawals, pr)
	s.mu.Unlock()
	slog.Info("devserver: withdraw accepted", "pr", pr)
	s.ok(w, "withdraw_callback", domain.StatusResponse{Status: domain.StatusOK})
}

func (s *Server) handleChannelRequest(w http.ResponseWriter, r *http.Request) {
	s.ok(w, "channel", domain.ChannelResponse{
		Tag:      domain.TagChannelRequest,
		URI:      s.cfg.NodeURI,
		Callback: s.base(r) + "/channel/callback",
		K1:       s.Issue(domain.TagChannelRequest),
	})
}

func (s *Server) handleChannelCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	remote := q.Get("remoteid")
	if remote == "" {
		s.fail(w, "channel_callback", http.StatusBadRequest, "missing remoteid")
		return
	}
	if !s.consume(q.Get("k1"), domain.TagChannelRequest) {
		s.fail(w, "channel_callback", http.StatusOK, "unknown or used k1")
		return
	}
	req := ChannelRequest{RemoteID: remote, Private: q.Get("private") == "1", Cancel: q.Get("cancel") == "1"}
	s.mu.Lock()
	s.channels = append(s.channels, req)
	s.mu.Unlock()
	slog.Info("devserver: channel request", "remoteid", remote, "private", req.Private, "cancel", req.Cancel)
	s.ok(w, "channel_callback", domain.StatusResponse{Status: domain.StatusOK})
}

// LoginChallenge is served by /login.
type LoginChallenge struct {
	K1    string `json:"k1"`
	URL   string `json:"url"`
	LNURL string `json:"lnurl"`
}

func (s *Server) handleLoginRequest(w http.ResponseWriter, r *http.Request) {
	k1 := s.Issue(domain.TagLogin)
	raw := s.base(r) + "/login/callback?tag=login&k1=" + k1 + "&action=login"
	enc, err := lnurl.Encode(raw)
	if err != nil {
		s.fail(w, "login", http.StatusInternalServerError, err.Error())
		return
	}
	s.ok(w, "login", LoginChallenge{K1: k1, URL: raw, LNURL: enc})
}

func (s *Server) handleLoginCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	k1, sig, key := q.Get("k1"), q.Get("sig"), q.Get("key")
	if !crypto.VerifyChallenge(key, k1, sig) {
		s.fail(w, "login_callback", http.StatusOK, "bad signature")
		return
	}
	if !s.consume(k1, domain.TagLogin) {
		s.fail(w, "login_callback", http.StatusOK, "unknown or used k1")
		return
	}
	s.mu.Lock()
	s.logins = append(s.logins, key)
	s.mu.Unlock()
	raw, _ := hex.DecodeString(key) // checked by VerifyChallenge
	slog.Info("devserver: login", "linking_key", crypto.Fingerprint(raw))
	s.ok(w, "login_callback", domain.StatusResponse{Status: domain.StatusOK})
}

func (s *Server) knownUser(user string) bool {
	if len(s.cfg.Users) == 0 {
		return user != ""
	}
	for _, u := range s.cfg.Users {
		if strings.EqualFold(u, user) {
			return true
		}
	}
	return false
}

func (s *Server) base(r *http.Request) string {
	if s.cfg.BaseURL != "" {
		return strings.TrimRight(s.cfg.BaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (s *Server) ok(w http.ResponseWriter, route string, v any) {
	s.requests.WithLabelValues(route, "ok").Inc()
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) fail(w http.ResponseWriter, route string, code int, reason string) {
	s.requests.WithLabelValues(route, "error").Inc()
	slog.Debug("devserver: rejected", "route", route, "reason", reason)
	writeJSON(w, code, domain.StatusResponse{Status: domain.StatusError, Reason: reason})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeInvoice returns a placeholder regtest invoice; it is not payable.
func fakeInvoice(amountMsat uint64, _ string) (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return fmt.Sprintf("lnbcrt%dn1dev%s", amountMsat/100, hex.EncodeToString(b[:])), nil
}
