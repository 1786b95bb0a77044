// Package issuer signs redemption codes with the Ed25519 issuer key and
// checks codes signed by it.
package issuer
