package crypto_test

import (
	"testing"

	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
)

func TestEd25519_SignVerify(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	msg := []byte("v1-twitter-1-0x85e58d0f9152669083bda1e6638fa6400898d0ee-1")
	sig := crypto.SignEd25519(priv, msg)
	if !crypto.VerifyEd25519(pub, msg, sig) {
		t.Fatal("valid signature rejected")
	}
	msg[0] = 'V'
	if crypto.VerifyEd25519(pub, msg, sig) {
		t.Fatal("signature accepted for modified message")
	}
}

func TestEd25519FromKeypair(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}

	gotPriv, gotPub, err := crypto.Ed25519FromKeypair(priv[:])
	if err != nil {
		t.Fatalf("Ed25519FromKeypair: %v", err)
	}
	if gotPriv != priv || gotPub != pub {
		t.Fatal("keypair did not round trip")
	}

	if _, _, err := crypto.Ed25519FromKeypair(priv[:32]); err == nil {
		t.Fatal("expected error for 32-byte input")
	}
	tampered := priv
	tampered[40] ^= 0xff
	if _, _, err := crypto.Ed25519FromKeypair(tampered[:]); err == nil {
		t.Fatal("expected error for mismatched public half")
	}
}

func TestFingerprint(t *testing.T) {
	_, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	fp := crypto.Fingerprint(pub[:])
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d", len(fp))
	}
	if fp != crypto.Fingerprint(pub[:]) {
		t.Fatal("fingerprint not deterministic")
	}
}

func TestWipeIssuerKey(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	key := domain.IssuerKey{Public: pub, Private: priv}
	crypto.WipeIssuerKey(&key)
	if key.Private != (domain.Ed25519Private{}) {
		t.Fatal("private key not wiped")
	}
	if key.Public != pub {
		t.Fatal("public key modified")
	}
}

func TestFingerprintTypedKeys(t *testing.T) {
	_, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	if crypto.FingerprintEd25519(pub) != crypto.Fingerprint(pub[:]) {
		t.Fatal("typed and raw fingerprints differ")
	}
	if fp := crypto.FingerprintP256(nil); fp != "" {
		t.Fatalf("nil P-256 key fingerprint = %q", fp)
	}
}
