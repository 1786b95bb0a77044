// Package notarytest provides a throwaway notary for tests: it signs
// attributes with a fresh P-256 key and renders attested-session payloads.
package notarytest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"testing"

	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
)

// Notary signs attributes with its own key.
type Notary struct {
	t    testing.TB
	Key  *ecdsa.PrivateKey
	Meta domain.SessionMeta
}

// New returns a Notary with a freshly generated key.
func New(t testing.TB) *Notary {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate notary key: %v", err)
	}
	return &Notary{
		t:   t,
		Key: key,
		Meta: domain.SessionMeta{
			NotaryURL:         "https://notary.test",
			WebsocketProxyURL: "wss://proxy.test",
		},
	}
}

// Public returns the verification key.
func (n *Notary) Public() *ecdsa.PublicKey { return &n.Key.PublicKey }

// Attribute returns a correctly encoded and signed attribute.
func (n *Notary) Attribute(name string) domain.Attribute {
	n.t.Helper()
	sig, err := crypto.SignP256(n.Key, []byte(name))
	if err != nil {
		n.t.Fatalf("sign attribute: %v", err)
	}
	return domain.Attribute{
		AttributeHex:  hex.EncodeToString([]byte(name)),
		AttributeName: name,
		Signature:     hex.EncodeToString(sig),
	}
}

// Attributes signs each name in order.
func (n *Notary) Attributes(names ...string) []domain.Attribute {
	out := make([]domain.Attribute, 0, len(names))
	for _, name := range names {
		out = append(out, n.Attribute(name))
	}
	return out
}

// Session wraps attrs in a session with non-empty transcript and signature.
func (n *Notary) Session(attrs ...domain.Attribute) domain.AttestedSession {
	return domain.AttestedSession{
		Version:         "1.0",
		Meta:            n.Meta,
		Signature:       "3045022100aa",
		ApplicationData: hex.EncodeToString([]byte("GET https://x.com/i/api HTTP/1.1\r\n\r\nHTTP/1.1 200 OK\r\n\r\n{}")),
		Attributes:      attrs,
	}
}

// Payload renders s as the JSON text clients submit.
func (n *Notary) Payload(s domain.AttestedSession) string {
	n.t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		n.t.Fatalf("marshal session: %v", err)
	}
	return string(b)
}

// SignedPayload signs names and renders them as a session payload.
func (n *Notary) SignedPayload(names ...string) string {
	return n.Payload(n.Session(n.Attributes(names...)...))
}
