package issuer

import (
	"encoding/hex"
	"errors"
	"fmt"

	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
	"vitaverify/internal/protocol/redemption"
)

// Signer holds the issuer key pair loaded at startup. The key is never
// replaced, so a Signer is safe for concurrent use.
type Signer struct {
	key domain.IssuerKey
}

// New validates key and returns a Signer for it.
func New(key domain.IssuerKey) (*Signer, error) {
	_, pub, err := crypto.Ed25519FromKeypair(key.Private.Slice())
	if err != nil {
		return nil, fmt.Errorf("issuer key: %w", err)
	}
	if pub != key.Public {
		return nil, errors.New("issuer key: public key does not match private key")
	}
	return &Signer{key: key}, nil
}

// Sign renders code and signs its bytes. The signature is lowercase hex.
func (s *Signer) Sign(code domain.RedemptionCode) domain.SignedRedemptionCode {
	text := code.String()
	sig := crypto.SignEd25519(s.key.Private, []byte(text))
	return domain.SignedRedemptionCode{
		RedemCode: text,
		Signature: hex.EncodeToString(sig),
	}
}

// PublicKey returns the issuer verification key.
func (s *Signer) PublicKey() domain.Ed25519Public { return s.key.Public }

// Fingerprint identifies the issuer key.
func (s *Signer) Fingerprint() domain.Fingerprint {
	return crypto.FingerprintEd25519(s.key.Public)
}

// Verify checks sigHex over code under pub and returns the parsed code.
func Verify(pub domain.Ed25519Public, code, sigHex string) (domain.RedemptionCode, error) {
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return domain.RedemptionCode{}, domain.SignatureError("invalid signature hex: %v", err)
	}
	if !crypto.VerifyEd25519(pub, []byte(code), sig) {
		return domain.RedemptionCode{}, domain.InvalidMessage("Invalid signature")
	}
	parsed, err := redemption.Parse(code)
	if err != nil {
		return domain.RedemptionCode{}, domain.InvalidMessage("%v", err)
	}
	return parsed, nil
}

// ParsePublicKey decodes a hex-encoded issuer public key.
func ParsePublicKey(s string) (domain.Ed25519Public, error) {
	var pub domain.Ed25519Public
	b, err := hex.DecodeString(s)
	if err != nil {
		return pub, fmt.Errorf("issuer public key: %w", err)
	}
	if len(b) != len(pub) {
		return pub, fmt.Errorf("issuer public key: want %d bytes, got %d", len(pub), len(b))
	}
	copy(pub[:], b)
	return pub, nil
}

// Compile-time assertion that Signer implements domain.CodeSigner.
var _ domain.CodeSigner = (*Signer)(nil)
