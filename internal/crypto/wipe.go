package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"runtime"
)

// Wipe zeroes b. Best-effort: the Go runtime may already have copied it.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}

// Fingerprint returns the first 10 bytes of SHA-256(pub) in hex, for display.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}
