// Package lnurl implements the client-side encodings of the LNURL protocol
// family.
//
// Contents
//
//   - bech32 LNURL decoding and encoding, LUD-17 schemes (Decode, Encode)
//   - Lightning Address parsing and resolution (ParseLightningAddress,
//     IsLnurlAddress)
//   - Callback URL construction for pay, withdraw, channel and auth flows
//   - Decoding of tagged first-step replies (DecodeResponse)
//
// # Notes
//
// Every malformed input is reported as domain.ErrInvalidAddress, and every
// malformed service reply as domain.ErrInvalidResponse, so callers can switch
// on error kinds without inspecting messages. Callback builders drop any
// parameter they are about to set, so a callback can never carry two k1
// values.
package lnurl
