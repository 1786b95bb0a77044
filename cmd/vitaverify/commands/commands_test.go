package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vitaverify/internal/protocol/redemption"
	"vitaverify/internal/services/issuer"
	"vitaverify/internal/services/notary/notarytest"
	"vitaverify/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{
		"--config", filepath.Join(dir, "none.yaml"),
		"--env-file", filepath.Join(dir, "none.env"),
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestDecodeAppData(t *testing.T) {
	raw := "GET https://www.x.com/i/api HTTP/1.1\r\nx-semaphore-identity: abc\r\n\r\nHTTP/1.1 200 OK\r\n\r\n{}"
	out, err := run(t, "decode-appdata", hex.EncodeToString([]byte(raw)))
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "x.com", got["hostname"])
	require.Equal(t, "abc", got["semaphoreIdentityCommitment"])
}

func TestKeygenAndCheckCode(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "issuer.pem")
	out, err := run(t, "keygen", "--out", keyPath)
	require.NoError(t, err)
	require.Contains(t, out, "Fingerprint:")

	_, err = run(t, "keygen", "--out", keyPath)
	require.ErrorContains(t, err, "exists")

	key, err := store.LoadIssuerKeyPEM(keyPath)
	require.NoError(t, err)
	signer, err := issuer.New(key)
	require.NoError(t, err)
	signed := signer.Sign(redemption.Build("5", "0x85e58d0f9152669083bda1e6638fa6400898d0ee", 3))

	t.Setenv("VITA_ISSUER_KEY_FILE", keyPath)
	out, err = run(t, "check-code", signed.RedemCode, signed.Signature)
	require.NoError(t, err)
	require.Contains(t, out, `"postId": "5"`)

	out, err = run(t, "pubkey")
	require.NoError(t, err)
	require.Contains(t, out, hex.EncodeToString(key.Public[:]))

	_, err = run(t, "check-code", "--pubkey", strings.Repeat("00", 32), signed.RedemCode, signed.Signature)
	require.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	n := notarytest.New(t)
	pemBytes, err := store.EncodeNotaryPublicKeyPEM(n.Public())
	require.NoError(t, err)
	notaryPath := filepath.Join(dir, "notary.pem")
	require.NoError(t, os.WriteFile(notaryPath, pemBytes, 0o600))

	author := `author: "dobby"`
	postPath := filepath.Join(dir, "post.json")
	authorPath := filepath.Join(dir, "author.json")
	require.NoError(t, os.WriteFile(postPath, []byte(n.SignedPayload(
		`id: "111111111111111"`, author,
		`content: "ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"`,
		"bookmark_count: 0", "favorite_count: 0", "retweet_count: 0",
	)), 0o600))
	require.NoError(t, os.WriteFile(authorPath, []byte(n.SignedPayload(author)), 0o600))

	t.Setenv("VITA_NOTARY_KEY_FILE", notaryPath)
	t.Setenv("VITA_DEV_EPHEMERAL_ISSUER", "true")
	out, err := run(t, "verify", postPath, authorPath)
	require.NoError(t, err)
	require.Contains(t, out, "v1-twitter-111111111111111-7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump-1")
}
