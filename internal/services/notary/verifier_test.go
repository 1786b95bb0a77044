package notary_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"vitaverify/internal/domain"
	"vitaverify/internal/services/notary"
	"vitaverify/internal/services/notary/notarytest"
)

func newVerifier(t *testing.T, n *notarytest.Notary) *notary.Verifier {
	t.Helper()
	v, err := notary.New(n.Public())
	if err != nil {
		t.Fatalf("notary.New: %v", err)
	}
	return v
}

func TestVerify_Valid(t *testing.T) {
	n := notarytest.New(t)
	v := newVerifier(t, n)
	attr := n.Attribute(`author: "dobby"`)

	for i := 0; i < 3; i++ {
		ok, err := v.Verify(attr)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if !ok {
			t.Fatal("expected valid signature")
		}
	}
}

func TestVerify_WrongKeyIsFalse(t *testing.T) {
	signer := notarytest.New(t)
	v := newVerifier(t, notarytest.New(t))

	ok, err := v.Verify(signer.Attribute("id: 1"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("expected false for foreign key")
	}
}

func TestVerify_EncodingMismatch(t *testing.T) {
	n := notarytest.New(t)
	v := newVerifier(t, n)

	tampered := n.Attribute("id: 1")
	tampered.AttributeName = "id: 2"
	_, err := v.Verify(tampered)
	if !errors.Is(err, domain.ErrInvalidMessage) {
		t.Fatalf("want InvalidMessage, got %v", err)
	}

	upper := n.Attribute("id: 1")
	upper.AttributeHex = strings.ToUpper(upper.AttributeHex)
	if _, err := v.Verify(upper); !errors.Is(err, domain.ErrInvalidMessage) {
		t.Fatalf("uppercase hex: want InvalidMessage, got %v", err)
	}
}

func TestVerify_EncodingCheckedBeforeSignature(t *testing.T) {
	v := newVerifier(t, notarytest.New(t))

	for _, sig := range []string{"zz", "abc", ""} {
		_, err := v.Verify(domain.Attribute{
			AttributeHex:  "69643a2032",
			AttributeName: "id: 1",
			Signature:     sig,
		})
		if !errors.Is(err, domain.ErrInvalidMessage) {
			t.Fatalf("signature %q: want InvalidMessage, got %v", sig, err)
		}
		if errors.Is(err, domain.ErrSignature) {
			t.Fatalf("signature %q: signature decoded before the encoding check", sig)
		}
	}
}

func TestVerify_MalformedSignature(t *testing.T) {
	n := notarytest.New(t)
	v := newVerifier(t, n)

	cases := map[string]string{
		"not hex":   "zz",
		"odd hex":   "abc",
		"too short": hex.EncodeToString(make([]byte, 63)),
		"zero r||s": hex.EncodeToString(make([]byte, 64)),
	}
	for name, sig := range cases {
		attr := n.Attribute("id: 1")
		attr.Signature = sig
		_, err := v.Verify(attr)
		if !errors.Is(err, domain.ErrSignature) {
			t.Fatalf("%s: want SignatureError, got %v", name, err)
		}
	}
}

func TestNew_RejectsOtherCurves(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if _, err := notary.New(&key.PublicKey); err == nil {
		t.Fatal("expected P-384 key to be rejected")
	}
	if _, err := notary.New(nil); err == nil {
		t.Fatal("expected nil key to be rejected")
	}
}
