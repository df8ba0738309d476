package channel_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitkitcore/internal/devserver"
	"bitkitcore/internal/domain"
	"bitkitcore/internal/services/channel"
	"bitkitcore/internal/transport"
)

const localNode = "03a0b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1"

func setup(t *testing.T) (*channel.Service, *devserver.Server, string) {
	t.Helper()
	dev := devserver.New(devserver.DefaultConfig())
	srv := httptest.NewServer(dev.Handler())
	t.Cleanup(srv.Close)
	client, err := transport.New(transport.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return channel.New(client), dev, srv.URL
}

func TestPrepareAndRequest(t *testing.T) {
	svc, dev, base := setup(t)
	ctx := context.Background()

	offer, err := svc.Prepare(ctx, base+"/channel")
	require.NoError(t, err)
	assert.Equal(t, devserver.DefaultConfig().NodeURI, offer.URI)

	err = svc.Request(ctx, domain.ChannelRequestParams{
		K1:          offer.K1,
		Callback:    offer.Callback,
		LocalNodeID: localNode,
		IsPrivate:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []devserver.ChannelRequest{{RemoteID: localNode, Private: true}}, dev.ChannelRequests())
}

func TestRequest_Cancel(t *testing.T) {
	svc, dev, base := setup(t)
	ctx := context.Background()

	offer, err := svc.Prepare(ctx, base+"/channel")
	require.NoError(t, err)
	require.NoError(t, svc.Request(ctx, domain.ChannelRequestParams{
		K1: offer.K1, Callback: offer.Callback, LocalNodeID: localNode, Cancel: true,
	}))
	assert.True(t, dev.ChannelRequests()[0].Cancel)
}

func TestRequest_UnknownK1(t *testing.T) {
	svc, _, base := setup(t)
	err := svc.Request(context.Background(), domain.ChannelRequestParams{
		K1: "deadbeef", Callback: base + "/channel/callback", LocalNodeID: localNode,
	})
	var se *domain.ServiceError
	assert.True(t, errors.As(err, &se), "got %v", err)
}

func TestRequest_Validation(t *testing.T) {
	svc, _, _ := setup(t)
	err := svc.Request(context.Background(), domain.ChannelRequestParams{K1: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LocalNodeID")
}

func TestPrepare_WrongTag(t *testing.T) {
	svc, _, base := setup(t)
	_, err := svc.Prepare(context.Background(), base+"/withdraw")
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}
