// Command lnurld runs the in-memory LNURL development service.
//
// It serves Lightning Address pay requests, withdraw and channel offers
// and LNURL-auth logins, see package devserver for the routes. Invoices
// are placeholders; point wallets at it on regtest only.
//
//	lnurld --listen 127.0.0.1:8080 --users alice,bob
package main
