package interfaces

import (
	"context"

	domaintypes "bitkitcore/internal/domain/types"
)

// PayService obtains invoices from Lightning Addresses.
type PayService interface {
	GetInvoice(ctx context.Context, address string, amountSatoshis uint64) (string, error)
	GetInvoiceWithComment(
		ctx context.Context,
		address string,
		amountSatoshis uint64,
		comment string,
	) (string, error)
	GetLightningAddressInvoice(
		ctx context.Context,
		address string,
		amountSatoshis uint64,
	) (domaintypes.LightningAddressInvoice, error)
}

// AuthService signs LNURL-auth challenges and logs into services.
type AuthService interface {
	Authenticate(ctx context.Context, params domaintypes.LnurlAuthParams) (string, error)
	AuthenticateWithStore(
		ctx context.Context,
		passphrase, domain, k1, callback string,
	) (string, error)
	// Login authenticates against an LNURL-auth URL using the stored hashing key.
	Login(ctx context.Context, passphrase, lnurl string) (string, error)
}

// WithdrawService drives LNURL-withdraw.
type WithdrawService interface {
	Prepare(ctx context.Context, lnurl string) (domaintypes.WithdrawResponse, error)
	Withdraw(ctx context.Context, params domaintypes.WithdrawCallbackParams) error
}

// ChannelService drives LNURL-channel.
type ChannelService interface {
	Prepare(ctx context.Context, lnurl string) (domaintypes.ChannelResponse, error)
	Request(ctx context.Context, params domaintypes.ChannelRequestParams) error
}
