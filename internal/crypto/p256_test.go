package crypto_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"vitaverify/internal/crypto"
)

func newP256(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return key
}

func TestP256_SignVerify(t *testing.T) {
	key := newP256(t)
	msg := []byte(`content: "gm"`)

	raw, err := crypto.SignP256(key, msg)
	if err != nil {
		t.Fatalf("SignP256: %v", err)
	}
	if len(raw) != crypto.P256SignatureSize {
		t.Fatalf("signature length %d", len(raw))
	}
	sig, err := crypto.ParseP256Signature(raw)
	if err != nil {
		t.Fatalf("ParseP256Signature: %v", err)
	}
	if !bytes.Equal(sig.Bytes(), raw) {
		t.Fatal("Bytes does not round trip")
	}
	if !crypto.VerifyP256(&key.PublicKey, msg, sig) {
		t.Fatal("valid signature rejected")
	}
	if crypto.VerifyP256(&key.PublicKey, []byte(`content: "gn"`), sig) {
		t.Fatal("signature accepted for different message")
	}
	if crypto.VerifyP256(&newP256(t).PublicKey, msg, sig) {
		t.Fatal("signature accepted under different key")
	}
	if crypto.VerifyP256(nil, msg, sig) {
		t.Fatal("nil key accepted")
	}
}

func TestParseP256Signature_Rejects(t *testing.T) {
	n := elliptic.P256().Params().N

	outOfRange := make([]byte, 64)
	n.FillBytes(outOfRange[:32])
	big.NewInt(1).FillBytes(outOfRange[32:])

	cases := map[string]struct {
		sig  []byte
		want error
	}{
		"short":        {make([]byte, 63), crypto.ErrSignatureLength},
		"long":         {make([]byte, 65), crypto.ErrSignatureLength},
		"der-ish":      {append([]byte{0x30, 0x44}, make([]byte, 68)...), crypto.ErrSignatureLength},
		"zero":         {make([]byte, 64), crypto.ErrSignatureRange},
		"r equal to N": {outOfRange, crypto.ErrSignatureRange},
	}
	for name, c := range cases {
		if _, err := crypto.ParseP256Signature(c.sig); !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v, want %v", name, err, c.want)
		}
	}
}

func TestSignP256_RejectsOtherCurves(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if _, err := crypto.SignP256(key, []byte("x")); !errors.Is(err, crypto.ErrNotP256) {
		t.Fatalf("got %v", err)
	}
	if crypto.IsP256(&key.PublicKey) {
		t.Fatal("P-384 reported as P-256")
	}
}
