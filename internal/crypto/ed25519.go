package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"

	"vitaverify/internal/domain"
)

// randReader is the entropy source for key generation and ECDSA signing.
var randReader = rand.Reader

var errKeypairMismatch = errors.New("ed25519 keypair: public half does not match private seed")

// GenerateEd25519 returns a new Ed25519 signing key pair.
func GenerateEd25519() (priv domain.Ed25519Private, pub domain.Ed25519Public, err error) {
	pk, sk, err := ed25519.GenerateKey(randReader)
	if err != nil {
		return priv, pub, err
	}
	copy(priv[:], sk)
	copy(pub[:], pk)
	return priv, pub, nil
}

// Ed25519FromKeypair validates a 64-byte seed||public blob and returns it as
// a key pair. The public half must be the one derived from the seed.
func Ed25519FromKeypair(b []byte) (priv domain.Ed25519Private, pub domain.Ed25519Public, err error) {
	if len(b) != ed25519.PrivateKeySize {
		return priv, pub, errors.New("ed25519 keypair: want 64 bytes")
	}
	derived := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if string(derived[ed25519.SeedSize:]) != string(b[ed25519.SeedSize:]) {
		return priv, pub, errKeypairMismatch
	}
	copy(priv[:], derived)
	copy(pub[:], derived[ed25519.SeedSize:])
	Wipe(derived)
	return priv, pub, nil
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv domain.Ed25519Private, msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(priv[:]), msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
