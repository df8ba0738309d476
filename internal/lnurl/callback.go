package lnurl

import (
	"encoding/hex"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"bitkitcore/internal/domain"
)

type pair struct{ key, value string }

// CreateChannelRequestURL builds the LNURL-channel callback (LUD-02):
//
//	<callback>?<existing>&k1=<k1>&remoteid=<node id>&private=<0|1>&cancel=<0|1>
//
// Existing query parameters keep their order; any existing k1 is replaced.
func CreateChannelRequestURL(params domain.ChannelRequestParams) (string, error) {
	return rebuild(params.Callback, []string{"k1"},
		pair{"k1", params.K1},
		pair{"remoteid", params.LocalNodeID},
		pair{"private", flag(params.IsPrivate)},
		pair{"cancel", flag(params.Cancel)},
	)
}

// CreateWithdrawCallbackURL builds the LNURL-withdraw callback (LUD-03):
//
//	<callback>?<existing>&k1=<k1>&pr=<invoice>
//
// Existing k1 and pr parameters are replaced.
func CreateWithdrawCallbackURL(params domain.WithdrawCallbackParams) (string, error) {
	return rebuild(params.Callback, []string{"k1", "pr"},
		pair{"k1", params.K1},
		pair{"pr", params.PaymentRequest},
	)
}

// PayCallbackURL builds the LNURL-pay invoice request (LUD-06), with an
// optional LUD-12 comment.
func PayCallbackURL(callback string, amountMsat uint64, comment string) (string, error) {
	add := []pair{{"amount", strconv.FormatUint(amountMsat, 10)}}
	if comment != "" {
		add = append(add, pair{"comment", comment})
	}
	return rebuild(callback, []string{"amount", "comment"}, add...)
}

// AuthCallbackURL appends the LNURL-auth signature and linking key (LUD-04).
func AuthCallbackURL(callback string, sigDER, linkingKey []byte) (string, error) {
	return rebuild(callback, []string{"sig", "key"},
		pair{"sig", hex.EncodeToString(sigDER)},
		pair{"key", hex.EncodeToString(linkingKey)},
	)
}

// rebuild parses callback, drops the named keys from its query and appends add.
func rebuild(callback string, drop []string, add ...pair) (string, error) {
	u, err := parseAbsoluteURL(callback)
	if err != nil {
		return "", err
	}
	kept := make([]pair, 0, len(add)+4)
	for _, p := range queryPairs(u.RawQuery) {
		if !slices.Contains(drop, p.key) {
			kept = append(kept, p)
		}
	}
	u.RawQuery = encodePairs(append(kept, add...))
	u.ForceQuery = false
	return u.String(), nil
}

// queryPairs splits a raw query into ordered, form-decoded pairs. Invalid
// percent escapes are kept as literal text, so "100%" stays "100%".
func queryPairs(raw string) []pair {
	var out []pair
	for raw != "" {
		var seg string
		seg, raw, _ = strings.Cut(raw, "&")
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		out = append(out, pair{formDecode(k), formDecode(v)})
	}
	return out
}

// formDecode is application/x-www-form-urlencoded decoding that never fails.
func formDecode(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			n, _ := strconv.ParseUint(s[i+1:i+3], 16, 8)
			b.WriteByte(byte(n))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func encodePairs(ps []pair) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
