package withdraw

import (
	"context"
	"fmt"
	"log/slog"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
	"bitkitcore/internal/validation"
)

// Service performs LNURL-withdraw requests.
type Service struct {
	transport domain.Transport
}

// New returns a withdraw service using t for HTTP.
func New(t domain.Transport) *Service { return &Service{transport: t} }

// Prepare decodes an LNURL and fetches its withdraw offer.
func (s *Service) Prepare(ctx context.Context, raw string) (domain.WithdrawResponse, error) {
	u, err := lnurl.Decode(raw)
	if err != nil {
		return domain.WithdrawResponse{}, err
	}
	resp, err := s.transport.Fetch(ctx, u.String())
	if err != nil {
		return domain.WithdrawResponse{}, err
	}
	if resp.Withdraw == nil {
		return domain.WithdrawResponse{}, fmt.Errorf("%w: expected withdrawRequest, got %q",
			domain.ErrInvalidResponse, resp.Tag)
	}
	return *resp.Withdraw, nil
}

// Withdraw submits params.PaymentRequest to the withdraw callback.
func (s *Service) Withdraw(ctx context.Context, params domain.WithdrawCallbackParams) error {
	if err := validation.Struct(params); err != nil {
		return fmt.Errorf("withdraw params: %w", err)
	}
	cb, err := lnurl.CreateWithdrawCallbackURL(params)
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
	slog.Info("lnurl-withdraw submitted")
	return nil
}

var _ domain.WithdrawService = (*Service)(nil)
