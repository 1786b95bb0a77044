// Package commands defines the vitaverify CLI.
//
// Commands
//
//   - serve           Run the verification HTTP server
//   - verify          Verify a post/author session pair offline
//   - submit          Send a session pair to a running server
//   - keygen          Create an issuer signing key
//   - pubkey          Print the issuer public key and fingerprint
//   - check-code      Verify an issued redemption code
//   - decode-appdata  Decode a session's hex transcript
//
// # Implementation
//
// The root command loads .env, the YAML config and VITA_* overrides, and
// builds the logger before any subcommand runs. Commands that need key
// material build the full dependency graph through app.NewWire.
package commands
