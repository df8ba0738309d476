package pay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/lnurl"
)

const msatPerSat = 1000

// Service requests invoices from LNURL-pay services.
type Service struct {
	transport domain.Transport
	plainHTTP bool
}

// Option customises the service.
type Option func(*Service)

// WithPlainHTTP resolves Lightning Addresses over http instead of https.
// Meant for regtest and local development services.
func WithPlainHTTP(on bool) Option {
	return func(s *Service) { s.plainHTTP = on }
}

// New returns a pay service using t for HTTP.
func New(t domain.Transport, opts ...Option) *Service {
	s := &Service{transport: t}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetInvoice returns an invoice for amountSatoshis payable to address.
//
// Steps:
//  1. Parse the Lightning Address.
//  2. Fetch its LNURL-pay reply; anything but a payRequest is rejected.
//  3. Check the amount against minSendable and maxSendable.
//  4. Request the invoice from the callback.
func (s *Service) GetInvoice(ctx context.Context, address string, amountSatoshis uint64) (string, error) {
	return s.GetInvoiceWithComment(ctx, address, amountSatoshis, "")
}

// GetInvoiceWithComment is GetInvoice with a LUD-12 comment. The comment is
// dropped when the service does not accept comments and truncated to the
// length it allows.
func (s *Service) GetInvoiceWithComment(
	ctx context.Context,
	address string,
	amountSatoshis uint64,
	comment string,
) (string, error) {
	addr, err := lnurl.ParseLightningAddress(address)
	if err != nil {
		return "", err
	}
	if s.transport == nil {
		return "", domain.ErrClientCreationFailed
	}

	pay, err := s.fetchPayRequest(ctx, addr)
	if err != nil {
		return "", err
	}
	msats, err := checkAmount(pay, amountSatoshis)
	if err != nil {
		return "", err
	}

	cb, err := lnurl.PayCallbackURL(pay.Callback, msats, trimComment(comment, pay.CommentAllowed))
	if err != nil {
		return "", &domain.InvoiceCreationError{Details: err.Error()}
	}
	inv, err := s.transport.FetchInvoice(ctx, cb)
	if err != nil {
		return "", &domain.InvoiceCreationError{Details: err.Error()}
	}

	slog.Info("lnurl invoice created", "address", addr.String(), "amount_sats", amountSatoshis)
	return inv.PR, nil
}

// GetLightningAddressInvoice returns the invoice together with its inputs.
func (s *Service) GetLightningAddressInvoice(
	ctx context.Context,
	address string,
	amountSatoshis uint64,
) (domain.LightningAddressInvoice, error) {
	pr, err := s.GetInvoice(ctx, address, amountSatoshis)
	if err != nil {
		return domain.LightningAddressInvoice{}, err
	}
	return domain.LightningAddressInvoice{
		Address:        address,
		AmountSatoshis: amountSatoshis,
		Invoice:        pr,
	}, nil
}

func (s *Service) fetchPayRequest(ctx context.Context, addr lnurl.LightningAddress) (*domain.PayResponse, error) {
	resp, err := s.transport.Fetch(ctx, addr.URL(s.plainHTTP))
	switch {
	case errors.Is(err, domain.ErrRequestFailed), errors.Is(err, domain.ErrInvalidResponse):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w: %w", domain.ErrRequestFailed, err)
	}
	if resp.Tag != domain.TagPayRequest || resp.Pay == nil {
		return nil, fmt.Errorf("%w: expected payRequest, got %q", domain.ErrInvalidResponse, resp.Tag)
	}
	return resp.Pay, nil
}

// checkAmount converts sats to msats and checks the sendable range.
func checkAmount(pay *domain.PayResponse, sats uint64) (uint64, error) {
	if sats > math.MaxUint64/msatPerSat {
		return 0, invalidAmount(pay, sats)
	}
	msats := sats * msatPerSat
	if msats < pay.MinSendable || msats > pay.MaxSendable {
		return 0, invalidAmount(pay, sats)
	}
	return msats, nil
}

func invalidAmount(pay *domain.PayResponse, sats uint64) error {
	return &domain.InvalidAmountError{
		AmountSatoshis: sats,
		Min:            pay.MinSendable / msatPerSat,
		Max:            pay.MaxSendable / msatPerSat,
	}
}

func trimComment(comment string, allowed int) string {
	if allowed <= 0 {
		return ""
	}
	if r := []rune(comment); len(r) > allowed {
		return string(r[:allowed])
	}
	return comment
}

var _ domain.PayService = (*Service)(nil)
