package notary

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"

	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
)

// Verifier checks attributes against a fixed ECDSA P-256 notary key. It holds
// no mutable state and is safe for concurrent use.
type Verifier struct {
	key *ecdsa.PublicKey
}

// New returns a Verifier for key, which must be on P-256.
func New(key *ecdsa.PublicKey) (*Verifier, error) {
	if key == nil {
		return nil, errors.New("notary: nil verification key")
	}
	if !crypto.IsP256(key) {
		return nil, crypto.ErrNotP256
	}
	return &Verifier{key: key}, nil
}

// Verify reports whether attr carries a valid notary signature over its
// attribute bytes.
//
// The hex encoding of attributeName must equal attributeHex; otherwise the
// attribute is rejected with InvalidMessage before any signature work.
// Undecodable hex or a signature that is not 64 in-range bytes is a
// SignatureError. A well-formed signature that does not verify yields false.
func (v *Verifier) Verify(attr domain.Attribute) (bool, error) {
	if hex.EncodeToString([]byte(attr.AttributeName)) != attr.AttributeHex {
		return false, domain.InvalidMessage("attribute_name_hex not match attribute_hex")
	}

	sigBytes, err := hex.DecodeString(attr.Signature)
	if err != nil {
		return false, domain.SignatureError("invalid signature hex: %v", err)
	}
	msg, err := hex.DecodeString(attr.AttributeHex)
	if err != nil {
		return false, domain.SignatureError("invalid attribute hex: %v", err)
	}
	sig, err := crypto.ParseP256Signature(sigBytes)
	if err != nil {
		return false, domain.SignatureError("%v", err)
	}
	return crypto.VerifyP256(v.key, msg, sig), nil
}

// Fingerprint identifies the configured notary key.
func (v *Verifier) Fingerprint() domain.Fingerprint {
	return crypto.FingerprintP256(v.key)
}

// Compile-time assertion that Verifier implements domain.AttributeVerifier.
var _ domain.AttributeVerifier = (*Verifier)(nil)
