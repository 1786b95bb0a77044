package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vitaverify/internal/app"
	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
	"vitaverify/internal/store"
)

func keygenCmd() *cobra.Command {
	var (
		out        string
		keystore   string
		passphrase string
		armor      bool
		force      bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Create an issuer signing key",
		Long: "Create an Ed25519 issuer key and write it either as an encrypted keystore\n" +
			"(--keystore, passphrase from --passphrase or " + app.EnvIssuerPassphrase + ") or as an\n" +
			"unencrypted key file (--out).",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (out == "") == (keystore == "") {
				return errors.New("exactly one of --out or --keystore is required")
			}
			target := out + keystore
			if !force {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s exists; pass --force to replace it", target)
				}
			}

			priv, pub, err := crypto.GenerateEd25519()
			if err != nil {
				return err
			}
			key := domain.IssuerKey{Public: pub, Private: priv}
			defer crypto.WipeIssuerKey(&key)

			switch {
			case keystore != "":
				if passphrase == "" {
					passphrase = os.Getenv(app.EnvIssuerPassphrase)
				}
				if err := store.NewIssuerKeyFileStore(keystore).SaveIssuerKey(passphrase, key); err != nil {
					return err
				}
			case armor:
				if err := os.WriteFile(out, store.EncodeIssuerKeyBase58Armor(key), 0o600); err != nil {
					return err
				}
			default:
				if err := store.WriteIssuerKeyPEM(out, key); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", target)
			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\n", hex.EncodeToString(pub[:]))
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(pub[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write an unencrypted key file")
	cmd.Flags().StringVar(&keystore, "keystore", "", "write an encrypted keystore")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "keystore passphrase")
	cmd.Flags().BoolVar(&armor, "base58", false, "with --out, use the base58 armor instead of PKCS#8")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	return cmd
}
