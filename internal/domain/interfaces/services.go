package interfaces

import (
	"context"

	domaintypes "vitaverify/internal/domain/types"
)

// SessionParser decodes untrusted payload text into an attested session.
type SessionParser interface {
	Parse(payload string) (domaintypes.AttestedSession, error)
}

// AttributeVerifier checks one attribute against the notary key.
//
// A false result with a nil error means the signature decoded but did not
// verify; errors are reserved for malformed input.
type AttributeVerifier interface {
	Verify(attr domaintypes.Attribute) (bool, error)
}

// CodeSigner signs redemption codes with the issuer key.
type CodeSigner interface {
	Sign(code domaintypes.RedemptionCode) domaintypes.SignedRedemptionCode
	PublicKey() domaintypes.Ed25519Public
	Fingerprint() domaintypes.Fingerprint
}

// Redeemer runs the full validate-then-issue pipeline.
type Redeemer interface {
	VerifyAndSign(
		ctx context.Context,
		postPayload string,
		authorPayload string,
	) (domaintypes.SignedRedemptionCode, error)
}
