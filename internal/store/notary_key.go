package store

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// NotaryKey is the verification key for notary attribute signatures.
type NotaryKey struct {
	Public *ecdsa.PublicKey
	// DerivedFromPrivate is set when the key file held a private key and the
	// verification key was derived from it.
	DerivedFromPrivate bool
}

// LoadNotaryKey reads an ECDSA P-256 key from a PEM file. A public key is
// preferred; a private key is accepted and its public half is used.
func LoadNotaryKey(path string) (NotaryKey, error) {
	data, err := readKeyFile(path)
	if err != nil {
		return NotaryKey{}, fmt.Errorf("reading notary key %q: %w", path, err)
	}
	key, err := ParseNotaryKeyPEM(data)
	if err != nil {
		return NotaryKey{}, fmt.Errorf("notary key %q: %w", path, err)
	}
	return key, nil
}

// ParseNotaryKeyPEM parses the first PEM block of data as a P-256 key.
func ParseNotaryKeyPEM(data []byte) (NotaryKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return NotaryKey{}, fmt.Errorf("no PEM block found")
	}

	switch block.Type {
	case "PUBLIC KEY":
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return NotaryKey{}, err
		}
		pub, ok := parsed.(*ecdsa.PublicKey)
		if !ok {
			return NotaryKey{}, fmt.Errorf("must be ECDSA P-256")
		}
		if err := checkP256(pub); err != nil {
			return NotaryKey{}, err
		}
		return NotaryKey{Public: pub}, nil
	case "EC PRIVATE KEY":
		priv, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return NotaryKey{}, err
		}
		if err := checkP256(&priv.PublicKey); err != nil {
			return NotaryKey{}, err
		}
		return NotaryKey{Public: &priv.PublicKey, DerivedFromPrivate: true}, nil
	case "PRIVATE KEY":
		// PKCS#8 wrapped key
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return NotaryKey{}, err
		}
		priv, ok := parsed.(*ecdsa.PrivateKey)
		if !ok {
			return NotaryKey{}, fmt.Errorf("must be ECDSA P-256")
		}
		if err := checkP256(&priv.PublicKey); err != nil {
			return NotaryKey{}, err
		}
		return NotaryKey{Public: &priv.PublicKey, DerivedFromPrivate: true}, nil
	default:
		return NotaryKey{}, fmt.Errorf("unsupported PEM type %q", block.Type)
	}
}

func checkP256(pub *ecdsa.PublicKey) error {
	if pub.Curve != elliptic.P256() {
		return fmt.Errorf("must be ECDSA P-256, got %s", pub.Curve.Params().Name)
	}
	return nil
}

// EncodeNotaryPublicKeyPEM renders pub as a PKIX "PUBLIC KEY" block.
func EncodeNotaryPublicKeyPEM(pub *ecdsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
