package channel

import (
	"context"
	"fmt"
	"log/slog"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
	"bitkitcore/internal/validation"
)

// Service performs LNURL-channel requests.
type Service struct {
	transport domain.Transport
}

// New returns a channel service using t for HTTP.
func New(t domain.Transport) *Service { return &Service{transport: t} }

// Prepare decodes an LNURL and fetches its channel offer. The returned URI
// is the node the wallet must connect to before calling Request.
func (s *Service) Prepare(ctx context.Context, raw string) (domain.ChannelResponse, error) {
	u, err := lnurl.Decode(raw)
	if err != nil {
		return domain.ChannelResponse{}, err
	}
	resp, err := s.transport.Fetch(ctx, u.String())
	if err != nil {
		return domain.ChannelResponse{}, err
	}
	if resp.Channel == nil {
		return domain.ChannelResponse{}, fmt.Errorf("%w: expected channelRequest, got %q",
			domain.ErrInvalidResponse, resp.Tag)
	}
	return *resp.Channel, nil
}

// Request calls the channel callback for the local node.
func (s *Service) Request(ctx context.Context, params domain.ChannelRequestParams) error {
	if err := validation.Struct(params); err != nil {
		return fmt.Errorf("channel params: %w", err)
	}
	cb, err := lnurl.CreateChannelRequestURL(params)
	if err != nil {
		return err
	}
	st, err := s.transport.Call(ctx, cb)
	if err != nil {
		return err
	}
	if !st.OK() {
		return &domain.ServiceError{Reason: st.Reason}
	}
	slog.Info("lnurl-channel request accepted", "private", params.IsPrivate, "cancel", params.Cancel)
	return nil
}

var _ domain.ChannelService = (*Service)(nil)
