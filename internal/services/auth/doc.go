// Package auth performs LNURL-auth logins (LUD-04, LUD-05).
//
// A service-specific linking key is derived from the hashing key and the
// service domain, the k1 challenge is signed with it and the signature is
// sent to the service callback. Successful logins are recorded when a
// login store is configured.
package auth
