// Package devserver implements the service side of LNURL-pay, -withdraw,
// -channel and -auth for local development and tests.
//
// State lives in memory. Every k1 it issues is single use. Invoices are
// produced by a pluggable InvoiceFunc, so the server never talks to a
// Lightning node.
//
// Routes
//
//   - GET /.well-known/lnurlp/{user}     LUD-16 pay request
//   - GET /lnurlp/{user}/callback        LUD-06 invoice (amount, comment)
//   - GET /withdraw, /withdraw/callback  LUD-03
//   - GET /channel, /channel/callback    LUD-02
//   - GET /login, /login/callback        LUD-04 challenge and verification
//   - GET /metrics                       Prometheus
package devserver
