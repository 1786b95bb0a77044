package types

// Ed25519Public is an Ed25519 verification key.
type Ed25519Public [32]byte

// Ed25519Private is an Ed25519 signing key in seed||public layout.
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// IssuerKey is the issuer signing key pair as persisted in the keystore.
type IssuerKey struct {
	Public  Ed25519Public  `json:"public"`
	Private Ed25519Private `json:"private"`
}
