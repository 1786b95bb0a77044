package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vitaverify/internal/app"
	"vitaverify/internal/crypto"
	"vitaverify/internal/relay"
)

func pubkeyCmd() *cobra.Command {
	var serverURL string
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the issuer public key and fingerprint",
		Long:  "Print the configured issuer key, or with --server the key a running server signs with.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL != "" {
				ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
				defer cancel()
				info, err := relay.NewHTTP(serverURL).Issuer(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\nFingerprint: %s\n", info.PublicKey, info.Fingerprint)
				return nil
			}

			key, err := app.LoadIssuerKey(cfg.Keys, logger)
			if err != nil {
				return err
			}
			defer crypto.WipeIssuerKey(&key)
			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\nFingerprint: %s\n",
				hex.EncodeToString(key.Public[:]), crypto.Fingerprint(key.Public[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", "", "query a running server instead of the local key")
	return cmd
}
