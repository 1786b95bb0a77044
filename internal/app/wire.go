package app

import (
	"fmt"

	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
	"vitaverify/internal/logging"
	"vitaverify/internal/server"
	"vitaverify/internal/services/issuer"
	"vitaverify/internal/services/notary"
	"vitaverify/internal/services/redeem"
	"vitaverify/internal/services/session"
	"vitaverify/internal/store"
)

// Wire bundles key material and services for the commands.
type Wire struct {
	Config   *Config
	Log      *logging.Logger
	Notary   store.NotaryKey
	Verifier *notary.Verifier
	Signer   *issuer.Signer
	Redeem   *redeem.Service
}

// NewWire validates cfg, loads both keys and constructs the pipeline.
func NewWire(cfg *Config, log *logging.Logger) (*Wire, error) {
	if log == nil {
		log = logging.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	notaryKey, err := store.LoadNotaryKey(cfg.Keys.NotaryKeyFile)
	if err != nil {
		return nil, err
	}
	if notaryKey.DerivedFromPrivate {
		log.Warn("notary key file holds a private key; verifying with its derived public key")
	}
	verifier, err := notary.New(notaryKey.Public)
	if err != nil {
		return nil, err
	}

	issuerKey, err := LoadIssuerKey(cfg.Keys, log)
	if err != nil {
		return nil, err
	}
	signer, err := issuer.New(issuerKey)
	if err != nil {
		return nil, err
	}

	log.Zerolog().Info().
		Str("notary_fingerprint", string(verifier.Fingerprint())).
		Str("issuer_fingerprint", string(signer.Fingerprint())).
		Msg("keys loaded")

	return &Wire{
		Config:   cfg,
		Log:      log,
		Notary:   notaryKey,
		Verifier: verifier,
		Signer:   signer,
		Redeem:   redeem.New(session.New(), verifier, signer, log),
	}, nil
}

// Server builds the HTTP server over the wired pipeline.
func (w *Wire) Server() *server.Server {
	return server.New(w.Config.Server, w.Redeem, w.Signer, w.Log)
}

// LoadIssuerKey loads the issuer key from whichever source keys names.
func LoadIssuerKey(keys KeysConfig, log *logging.Logger) (domain.IssuerKey, error) {
	switch {
	case keys.IssuerKeystore != "":
		key, err := store.NewIssuerKeyFileStore(keys.IssuerKeystore).LoadIssuerKey(keys.IssuerPassphrase)
		if err != nil {
			return domain.IssuerKey{}, fmt.Errorf("issuer keystore %q: %w", keys.IssuerKeystore, err)
		}
		log.Infof("issuer key loaded from keystore %s", keys.IssuerKeystore)
		return key, nil
	case keys.IssuerKeyFile != "":
		key, err := store.LoadIssuerKeyPEM(keys.IssuerKeyFile)
		if err != nil {
			return domain.IssuerKey{}, err
		}
		log.Infof("issuer key loaded from %s", keys.IssuerKeyFile)
		return key, nil
	case keys.DevEphemeralIssuer:
		priv, pub, err := crypto.GenerateEd25519()
		if err != nil {
			return domain.IssuerKey{}, err
		}
		log.Warn("using an ephemeral issuer key; issued codes will not verify after restart")
		return domain.IssuerKey{Public: pub, Private: priv}, nil
	default:
		return domain.IssuerKey{}, fmt.Errorf("no issuer key configured")
	}
}
