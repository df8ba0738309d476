// Package withdraw drives LNURL-withdraw (LUD-03): it reads the service's
// withdraw offer and submits an invoice for the service to pay.
package withdraw
