package interfaces

import domaintypes "vitaverify/internal/domain/types"

// IssuerKeyStore persists the issuer signing key encrypted at rest.
type IssuerKeyStore interface {
	SaveIssuerKey(passphrase string, key domaintypes.IssuerKey) error
	LoadIssuerKey(passphrase string) (domaintypes.IssuerKey, error)
}
