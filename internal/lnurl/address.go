package lnurl

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"

	"bitkitcore/internal/domain"
)

const lnurlpPath = "/.well-known/lnurlp/"

// LightningAddress is a LUD-16 internet identifier, user@domain.
type LightningAddress struct {
	Username string
	Domain   string // IDNA ASCII form, may carry a :port
}

// ParseLightningAddress validates s and returns its normalised parts.
func ParseLightningAddress(s string) (LightningAddress, error) {
	s = stripLightningPrefix(strings.TrimSpace(s))
	user, host, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(host, "@") {
		return LightningAddress{}, fmt.Errorf("%w: %q is not user@domain", domain.ErrInvalidAddress, s)
	}
	user = strings.ToLower(user)
	if !validUsername(user) {
		return LightningAddress{}, fmt.Errorf("%w: bad username %q", domain.ErrInvalidAddress, user)
	}
	d, err := normaliseDomain(host)
	if err != nil {
		return LightningAddress{}, err
	}
	return LightningAddress{Username: user, Domain: d}, nil
}

// IsLnurlAddress reports whether s is a well-formed Lightning Address.
func IsLnurlAddress(s string) bool {
	_, err := ParseLightningAddress(s)
	return err == nil
}

// String returns user@domain.
func (a LightningAddress) String() string { return a.Username + "@" + a.Domain }

// LnurlpURL returns the LNURL-pay endpoint of the address.
func (a LightningAddress) LnurlpURL() string { return a.URL(false) }

// URL returns the LNURL-pay endpoint, forcing http when plainHTTP is set.
// Onion domains always use http.
func (a LightningAddress) URL(plainHTTP bool) string {
	host, _, err := net.SplitHostPort(a.Domain)
	if err != nil {
		host = a.Domain
	}
	u := url.URL{
		Scheme: schemeForHost(host, plainHTTP),
		Host:   a.Domain,
		Path:   lnurlpPath + a.Username,
	}
	return u.String()
}

func validUsername(u string) bool {
	if u == "" {
		return false
	}
	for _, r := range u {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '+':
		default:
			return false
		}
	}
	return true
}

func normaliseDomain(host string) (string, error) {
	name, port := host, ""
	if h, p, err := net.SplitHostPort(host); err == nil {
		name, port = h, p
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return "", fmt.Errorf("%w: bad port %q", domain.ErrInvalidAddress, p)
		}
	}
	if name == "" {
		return "", fmt.Errorf("%w: empty domain", domain.ErrInvalidAddress)
	}
	if ip := net.ParseIP(name); ip != nil {
		if port == "" {
			return ip.String(), nil
		}
		return net.JoinHostPort(ip.String(), port), nil
	}
	ascii, err := idna.Lookup.ToASCII(strings.ToLower(name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	if ascii != "localhost" && !strings.Contains(ascii, ".") {
		return "", fmt.Errorf("%w: domain %q has no dot", domain.ErrInvalidAddress, ascii)
	}
	if port != "" {
		return net.JoinHostPort(ascii, port), nil
	}
	return ascii, nil
}
