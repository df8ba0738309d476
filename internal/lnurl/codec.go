package lnurl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"bitkitcore/internal/domain"
)

const (
	hrp             = "lnurl"
	lightningScheme = "lightning:"
)

// lud17Schemes maps LUD-17 URI schemes to the tag they announce.
var lud17Schemes = map[string]domain.Tag{
	"lnurlp":  domain.TagPayRequest,
	"lnurlw":  domain.TagWithdrawRequest,
	"lnurlc":  domain.TagChannelRequest,
	"keyauth": domain.TagLogin,
}

// Decode resolves s into the HTTP(S) URL it refers to.
//
// Accepted forms are a bech32 "lnurl1..." string (either case, with or
// without a "lightning:" prefix), a LUD-17 URI such as "lnurlp://host/path",
// and a plain http(s) URL, optionally carrying the LNURL in a "lightning"
// query parameter (LUD-01 fallback scheme).
func Decode(s string) (*url.URL, error) {
	s = stripLightningPrefix(strings.TrimSpace(s))
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, hrp+"1") {
		return decodeBech32(s)
	}
	if scheme, _, ok := strings.Cut(lower, "://"); ok {
		if _, known := lud17Schemes[scheme]; known {
			return decodeLUD17(s)
		}
	}

	u, err := parseHTTPURL(s)
	if err != nil {
		return nil, err
	}
	if inner := u.Query().Get("lightning"); inner != "" {
		return Decode(inner)
	}
	return u, nil
}

// Encode returns the upper-case bech32 LNURL for rawURL, the form LUD-01
// recommends for QR codes.
func Encode(rawURL string) (string, error) {
	s, err := EncodeLower(rawURL)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(s), nil
}

// EncodeLower returns the lower-case bech32 LNURL for rawURL.
func EncodeLower(rawURL string) (string, error) {
	if _, err := parseHTTPURL(rawURL); err != nil {
		return "", err
	}
	data, err := bech32.ConvertBits([]byte(rawURL), 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	s, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	return s, nil
}

// IsBech32 reports whether s looks like a bech32 LNURL.
func IsBech32(s string) bool {
	s = strings.ToLower(stripLightningPrefix(strings.TrimSpace(s)))
	return strings.HasPrefix(s, hrp+"1")
}

func decodeBech32(s string) (*url.URL, error) {
	// LNURLs routinely exceed the 90 character limit of BIP-173.
	gotHRP, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	if gotHRP != hrp {
		return nil, fmt.Errorf("%w: unexpected prefix %q", domain.ErrInvalidAddress, gotHRP)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	return parseHTTPURL(string(raw))
}

func decodeLUD17(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	u.Scheme = schemeForHost(u.Hostname(), false)
	return u, nil
}

// parseHTTPURL parses raw and requires an absolute http(s) URL with a host.
func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: %q is not an http(s) url", domain.ErrInvalidAddress, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", domain.ErrInvalidAddress, raw)
	}
	return u, nil
}

// parseAbsoluteURL parses raw and requires a scheme and a host. Callbacks
// are only checked this far; fetching them is the transport's concern.
func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute url", domain.ErrInvalidAddress, raw)
	}
	return u, nil
}

// schemeForHost picks https, except for onion services or when the caller
// explicitly asks for plain HTTP.
func schemeForHost(host string, plainHTTP bool) string {
	if plainHTTP || strings.HasSuffix(strings.ToLower(host), ".onion") {
		return "http"
	}
	return "https"
}

func stripLightningPrefix(s string) string {
	if len(s) >= len(lightningScheme) && strings.EqualFold(s[:len(lightningScheme)], lightningScheme) {
		return s[len(lightningScheme):]
	}
	return s
}

// TagHint returns the tag a LUD-17 URI announces through its scheme.
func TagHint(s string) (domain.Tag, bool) {
	s = stripLightningPrefix(strings.TrimSpace(s))
	scheme, _, ok := strings.Cut(strings.ToLower(s), "://")
	if !ok {
		return "", false
	}
	tag, known := lud17Schemes[scheme]
	return tag, known
}
