package store

import (
	"encoding/json"
	"sync"

	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
)

// IssuerKeyFileStore persists the issuer signing key to a single encrypted file.
type IssuerKeyFileStore struct {
	path string
	mu   sync.Mutex
}

// NewIssuerKeyFileStore returns an IssuerKeyFileStore backed by path.
func NewIssuerKeyFileStore(path string) *IssuerKeyFileStore {
	return &IssuerKeyFileStore{path: path}
}

// Path returns the keystore file location.
func (s *IssuerKeyFileStore) Path() string { return s.path }

// SaveIssuerKey writes the encrypted issuer key to disk.
func (s *IssuerKeyFileStore) SaveIssuerKey(passphrase string, key domain.IssuerKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(key)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeKeyFile(s.path, ct, 0o600)
}

// LoadIssuerKey reads, decrypts and validates the issuer key.
func (s *IssuerKeyFileStore) LoadIssuerKey(passphrase string) (domain.IssuerKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readKeyFile(s.path)
	if err != nil {
		return domain.IssuerKey{}, err
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return domain.IssuerKey{}, err
	}
	defer crypto.Wipe(pt)

	var key domain.IssuerKey
	if err := json.Unmarshal(pt, &key); err != nil {
		return domain.IssuerKey{}, err
	}
	priv, pub, err := crypto.Ed25519FromKeypair(key.Private.Slice())
	if err != nil {
		return domain.IssuerKey{}, err
	}
	if pub != key.Public {
		return domain.IssuerKey{}, ErrWrongPassphrase
	}
	return domain.IssuerKey{Public: pub, Private: priv}, nil
}

// Compile-time assertion that IssuerKeyFileStore implements domain.IssuerKeyStore.
var _ domain.IssuerKeyStore = (*IssuerKeyFileStore)(nil)
