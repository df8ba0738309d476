package interfaces

import (
	"context"

	domaintypes "bitkitcore/internal/domain/types"
)

// Transport talks HTTP to LNURL services, all with context.
type Transport interface {
	// Fetch performs the first-step GET of an LNURL and decodes the tagged reply.
	Fetch(ctx context.Context, rawURL string) (domaintypes.Response, error)
	// FetchInvoice calls a pay callback and returns the invoice reply.
	FetchInvoice(ctx context.Context, rawURL string) (domaintypes.InvoiceResponse, error)
	// Call performs a callback that answers with a status reply.
	Call(ctx context.Context, rawURL string) (domaintypes.StatusResponse, error)
}
