// Package commands defines the bitkit-lnurl CLI and wires dependencies for subcommands.
//
// Commands
//
//   - decode         Resolve an LNURL, LUD-17 URI or fallback URL to its HTTPS URL
//   - encode         Encode a URL as a bech32 LNURL
//   - address        Validate a Lightning Address and print its LNURL-pay URL
//   - invoice        Request an invoice from a Lightning Address
//   - channel-url    Build an LNURL-channel callback URL
//   - withdraw-url   Build an LNURL-withdraw callback URL
//   - withdraw       Fetch a withdraw offer and submit an invoice to it
//   - channel        Fetch a channel offer and request the channel
//   - auth           Log in to an LNURL-auth service
//   - key            Create, import or inspect the LNURL-auth hashing key
//   - logins         List services logged into with LNURL-auth
//   - config write   Write the resolved settings to a YAML file
//
// # Implementation
//
// The root command loads settings (defaults, bitkit-lnurl.yaml,
// BITKIT_LNURL_* environment, flags), configures logging and builds the
// dependency graph (transport, stores, services) before any subcommand runs.
package commands
