package lnurl_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
)

const nodeID = "03abcd1234567890abcd1234567890abcd1234567890abcd1234567890abcd1234"

func TestCreateChannelRequestURL(t *testing.T) {
	got, err := lnurl.CreateChannelRequestURL(domain.ChannelRequestParams{
		K1:          "test_k1_value",
		Callback:    "https://example.com/callback",
		LocalNodeID: nodeID,
		IsPrivate:   true,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "https://example.com/callback?"), got)
	for _, part := range []string{"k1=test_k1_value", "remoteid=" + nodeID, "private=1", "cancel=0"} {
		assert.Contains(t, got, part)
	}
}

func TestCreateChannelRequestURL_KeepsExistingParams(t *testing.T) {
	got, err := lnurl.CreateChannelRequestURL(domain.ChannelRequestParams{
		K1:          "test_k1_value",
		Callback:    "https://example.com/callback?existing=param",
		LocalNodeID: nodeID,
		Cancel:      true,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://example.com/callback?existing=param&k1=test_k1_value&remoteid="+nodeID+"&private=0&cancel=1",
		got)
}

func TestCreateChannelRequestURL_ReplacesK1(t *testing.T) {
	got, err := lnurl.CreateChannelRequestURL(domain.ChannelRequestParams{
		K1:          "fresh",
		Callback:    "https://example.com/callback?k1=stale&a=b",
		LocalNodeID: nodeID,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(got, "k1="))
	assert.NotContains(t, got, "stale")
	assert.Contains(t, got, "a=b")
}

func TestCreateChannelRequestURL_EncodesValues(t *testing.T) {
	got, err := lnurl.CreateChannelRequestURL(domain.ChannelRequestParams{
		K1:          "special+chars&test=value",
		Callback:    "https://example.com/callback",
		LocalNodeID: nodeID,
		Cancel:      true,
	})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "special+chars&test=value", q.Get("k1"))
	assert.Equal(t, nodeID, q.Get("remoteid"))
	assert.Equal(t, "0", q.Get("private"))
	assert.Equal(t, "1", q.Get("cancel"))
}

func TestCreateChannelRequestURL_InvalidCallback(t *testing.T) {
	for _, cb := range []string{"invalid_url", "", "/relative/cb", "https://"} {
		_, err := lnurl.CreateChannelRequestURL(domain.ChannelRequestParams{
			K1:          "k1",
			Callback:    cb,
			LocalNodeID: nodeID,
			IsPrivate:   true,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress, "callback %q", cb)
	}
}

func TestCreateChannelRequestURL_KeepsUndecodableParams(t *testing.T) {
	got, err := lnurl.CreateChannelRequestURL(domain.ChannelRequestParams{
		K1:          "new",
		Callback:    "https://example.com/cb?x=%zz&k1=old&desc=100%&note=a%20b",
		LocalNodeID: nodeID,
	})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "%zz", q.Get("x"))
	assert.Equal(t, "100%", q.Get("desc"))
	assert.Equal(t, "a b", q.Get("note"))
	assert.Equal(t, []string{"new"}, q["k1"])
	assert.True(t, strings.HasPrefix(got, "https://example.com/cb?x=%25zz&desc=100%25&note=a+b&k1=new&"), got)
}

func TestCreateChannelRequestURL_AnyAbsoluteScheme(t *testing.T) {
	got, err := lnurl.CreateChannelRequestURL(domain.ChannelRequestParams{
		K1:          "k1",
		Callback:    "lnurlc://example.com/cb",
		LocalNodeID: nodeID,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "lnurlc://example.com/cb?k1=k1&"), got)
}

func TestCreateWithdrawCallbackURL(t *testing.T) {
	got, err := lnurl.CreateWithdrawCallbackURL(domain.WithdrawCallbackParams{
		K1:             "test_k1_value",
		Callback:       "https://example.com/withdraw",
		PaymentRequest: "lnbc1230n1pjqqqqqqpp5abcdef...",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/withdraw?k1=test_k1_value&pr=lnbc1230n1pjqqqqqqpp5abcdef...", got)
}

func TestCreateWithdrawCallbackURL_ExistingK1Replaced(t *testing.T) {
	got, err := lnurl.CreateWithdrawCallbackURL(domain.WithdrawCallbackParams{
		K1:             "new_k1_value",
		Callback:       "https://example.com/withdraw?k1=existing_k1_value&foo=bar&pr=old",
		PaymentRequest: "lnbc1230n1pjqqqqqqpp5abcdef...",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(got, "k1="), "exactly one k1")
	assert.Equal(t, 1, strings.Count(got, "pr="), "exactly one pr")
	assert.NotContains(t, got, "k1=existing_k1_value")
	assert.Contains(t, got, "k1=new_k1_value")
	assert.Contains(t, got, "foo=bar")
	assert.Contains(t, got, "pr=lnbc1230n1pjqqqqqqpp5abcdef...")
}

func TestCreateWithdrawCallbackURL_InvalidCallback(t *testing.T) {
	_, err := lnurl.CreateWithdrawCallbackURL(domain.WithdrawCallbackParams{
		K1:             "k1",
		Callback:       "invalid_url",
		PaymentRequest: "lnbc1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidAddress))
}

func TestPayCallbackURL(t *testing.T) {
	got, err := lnurl.PayCallbackURL("https://pay.example.com/cb?id=7&amount=1", 21000, "thanks for lunch")
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/cb?id=7&amount=21000&comment=thanks+for+lunch", got)
}

func TestAuthCallbackURL(t *testing.T) {
	got, err := lnurl.AuthCallbackURL("https://site.com/auth?tag=login&k1=aa", []byte{0x30, 0x01}, []byte{0x02, 0xff})
	require.NoError(t, err)

	assert.Equal(t, "https://site.com/auth?tag=login&k1=aa&sig=3001&key=02ff", got)
}
