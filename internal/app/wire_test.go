package app_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitkitcore/internal/app"
	"bitkitcore/internal/config"
	"bitkitcore/internal/devserver"
	"bitkitcore/internal/domain"
)

func TestNewWire_Errors(t *testing.T) {
	_, err := app.NewWire(app.Config{})
	assert.ErrorIs(t, err, domain.ErrClientCreationFailed)

	_, err = app.NewWire(app.Config{Home: t.TempDir(), Proxy: "ftp://proxy:21"})
	assert.ErrorIs(t, err, domain.ErrClientCreationFailed)
}

func TestNewWire_CreatesHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	w, err := app.NewWire(app.FromSettings(config.Config{Home: home, Proxy: "socks5://127.0.0.1:9050"}))
	require.NoError(t, err)

	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NotNil(t, w.Pay)
	assert.NotNil(t, w.Auth)
	assert.NotNil(t, w.Withdraw)
	assert.NotNil(t, w.Channel)

	has, err := w.Keys.HasHashingKey()
	require.NoError(t, err)
	assert.False(t, has)
}

func TestNewWire_PayEndToEnd(t *testing.T) {
	srv := httptest.NewServer(devserver.New(devserver.DefaultConfig()).Handler())
	t.Cleanup(srv.Close)
	reg := prometheus.NewRegistry()

	w, err := app.NewWire(app.Config{
		Home:      t.TempDir(),
		PlainHTTP: true,
		HTTP:      srv.Client(),
		Metrics:   reg,
	})
	require.NoError(t, err)

	addr := "satoshi@" + strings.TrimPrefix(srv.URL, "http://")
	pr, err := w.Pay.GetInvoice(context.Background(), addr, 100)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pr, "lnbcrt"), pr)

	n, err := testutil.GatherAndCount(reg, "lnurl_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "fetch and invoice series")
}
