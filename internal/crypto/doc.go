// Package crypto exposes the key handling used by LNURL-auth.
//
// Contents
//
//   - LUD-05 derivation paths and service-specific linking keys
//     (DerivationPath, DeriveLinkingKey)
//   - k1 challenge signing and verification (LinkingKey.Sign, VerifyChallenge)
//   - Hashing key derivation from a wallet seed or BIP39 mnemonic
//     (HashingKeyFromSeed, HashingKeyFromMnemonic)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Signatures are deterministic ECDSA over secp256k1 (RFC 6979) and
// DER-encoded, which is what LUD-04 services expect in the sig parameter.
// Callers should treat hashing keys as secrets and rely on Wipe when
// practical to reduce their lifetime in memory.
package crypto
