package crypto

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"

	"vitaverify/internal/domain"
)

// fingerprintBytes is the truncated SHA-256 length used for display.
const fingerprintBytes = 10

// Fingerprint hashes raw public key bytes to a 20-char hex tag for logs and
// the issuer endpoint.
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintBytes]))
}

// FingerprintEd25519 fingerprints a raw 32-byte issuer key.
func FingerprintEd25519(pub domain.Ed25519Public) domain.Fingerprint {
	return Fingerprint(pub[:])
}

// FingerprintP256 fingerprints the SPKI DER of a notary key, so it matches
// `openssl pkey -pubout -outform DER | sha256sum` truncated. Nil yields "".
func FingerprintP256(pub *ecdsa.PublicKey) domain.Fingerprint {
	if pub == nil {
		return ""
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return ""
	}
	return Fingerprint(der)
}
