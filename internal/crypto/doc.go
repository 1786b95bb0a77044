// Package crypto exposes the minimal primitives used by vitaverify.
//
// Contents
//
//   - Ed25519 key generation, keypair validation, signing and verification
//     (GenerateEd25519, Ed25519FromKeypair, SignEd25519, VerifyEd25519)
//   - ECDSA P-256 fixed-width r||s signature parsing and SHA-256 verification
//     (ParseP256Signature, IsP256, VerifyP256, SignP256)
//   - Best-effort memory wiping for sensitive byte slices (Wipe, WipeIssuerKey)
//   - Short public-key fingerprints for display/logging (Fingerprint, FingerprintEd25519, FingerprintP256)
//
// # Notes
//
// Notary signatures arrive as 64 raw bytes, never ASN.1 DER. Scalars outside
// [1, N-1] are rejected at parse time so that VerifyP256 only sees well-formed
// input; a false from VerifyP256 is a verification outcome, not an error.
package crypto
