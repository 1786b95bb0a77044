package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"errors"
	"math/big"
)

// P256SignatureSize is the length of a fixed-width r||s signature.
const P256SignatureSize = 64

var (
	ErrSignatureLength = errors.New("p256 signature: want 64 bytes r||s")
	ErrSignatureRange  = errors.New("p256 signature: scalar out of range")
	ErrNotP256         = errors.New("public key is not ECDSA P-256")
)

// P256Signature is a parsed ECDSA signature over P-256.
type P256Signature struct {
	R *big.Int
	S *big.Int
}

// ParseP256Signature decodes a fixed-width big-endian r||s signature and
// rejects scalars outside [1, N-1].
func ParseP256Signature(sig []byte) (P256Signature, error) {
	if len(sig) != P256SignatureSize {
		return P256Signature{}, ErrSignatureLength
	}
	n := elliptic.P256().Params().N
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	if r.Sign() <= 0 || s.Sign() <= 0 || r.Cmp(n) >= 0 || s.Cmp(n) >= 0 {
		return P256Signature{}, ErrSignatureRange
	}
	return P256Signature{R: r, S: s}, nil
}

// Bytes re-encodes the signature as fixed-width r||s.
func (s P256Signature) Bytes() []byte {
	out := make([]byte, P256SignatureSize)
	s.R.FillBytes(out[:32])
	s.S.FillBytes(out[32:])
	return out
}

// IsP256 reports whether pub is a usable P-256 public key.
func IsP256(pub *ecdsa.PublicKey) bool {
	return pub != nil && pub.Curve == elliptic.P256()
}

// VerifyP256 checks sig over the SHA-256 digest of message.
func VerifyP256(pub *ecdsa.PublicKey, message []byte, sig P256Signature) bool {
	if !IsP256(pub) {
		return false
	}
	digest := sha256.Sum256(message)
	return ecdsa.Verify(pub, digest[:], sig.R, sig.S)
}

// SignP256 produces a fixed-width r||s signature over the SHA-256 digest of
// message. The service only verifies; this exists for tooling and tests.
func SignP256(priv *ecdsa.PrivateKey, message []byte) ([]byte, error) {
	if priv == nil || priv.Curve != elliptic.P256() {
		return nil, ErrNotP256
	}
	digest := sha256.Sum256(message)
	r, s, err := ecdsa.Sign(randReader, priv, digest[:])
	if err != nil {
		return nil, err
	}
	return P256Signature{R: r, S: s}.Bytes(), nil
}
