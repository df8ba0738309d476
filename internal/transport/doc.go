// Package transport provides the HTTP implementation of domain.Transport
// used to talk to LNURL services.
//
// Supported operations include:
//   - Fetching and decoding the tagged first-step reply of an LNURL.
//   - Requesting an invoice from a pay callback.
//   - Calling withdraw, channel and auth callbacks that answer with a status.
//
// All requests are GETs that accept a context for cancellation and
// deadlines. Transport failures and non-2xx statuses wrap
// domain.ErrRequestFailed, with the method, host and status text to aid
// diagnostics; undecodable bodies wrap domain.ErrInvalidResponse. Each
// request is logged through log/slog and counted in Prometheus when a
// registerer is supplied.
package transport
