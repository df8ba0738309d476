// Package pay obtains BOLT11 invoices from Lightning Addresses over LNURL-pay.
//
// It resolves the address to its well-known endpoint (LUD-16), checks the
// requested amount against the service's sendable range (LUD-06) and asks
// the callback for an invoice, optionally with a comment (LUD-12).
package pay
