package interfaces

import (
	"context"

	domaintypes "vitaverify/internal/domain/types"
)

// VerifyClient submits session payloads to a running verification server.
type VerifyClient interface {
	Verify(
		ctx context.Context,
		postPayload string,
		authorPayload string,
	) (domaintypes.SignedRedemptionCode, error)
	IssuerPublicKey(ctx context.Context) (string, error)
}
