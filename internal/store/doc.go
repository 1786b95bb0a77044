// Package store loads and persists the key material vitaverify needs at
// startup.
//
// It contains:
//   - The encrypted issuer keystore (IssuerKeyFileStore): an Ed25519 key pair
//     sealed with XChaCha20-Poly1305 under a scrypt-derived key.
//   - Unencrypted issuer key files (LoadIssuerKeyPEM), either PKCS#8 or the
//     legacy base58 keypair armor.
//   - The notary verification key (LoadNotaryKey), an ECDSA P-256 key in PEM.
//
// Writes go through a temp file and rename. Decrypted key bytes are wiped once
// they have been copied into their fixed-size domain types.
package store
