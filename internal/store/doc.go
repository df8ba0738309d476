// Package store provides file-based persistence for the LNURL client.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files typically live under the user's configured
// home directory and are written atomically with mode 0600.
//
// The package includes stores for:
//   - The LNURL-auth hashing key, encrypted with a passphrase (KeyFileStore)
//   - The history of LNURL-auth logins (LoginFileStore)
package store
