package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"vitaverify/internal/app"
	"vitaverify/internal/crypto"
	"vitaverify/internal/domain"
	"vitaverify/internal/services/issuer"
)

func checkCodeCmd() *cobra.Command {
	var pubHex string
	cmd := &cobra.Command{
		Use:   "check-code <redemcode> <signature>",
		Short: "Verify an issued redemption code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub domain.Ed25519Public
			if pubHex != "" {
				p, err := issuer.ParsePublicKey(pubHex)
				if err != nil {
					return err
				}
				pub = p
			} else {
				key, err := app.LoadIssuerKey(cfg.Keys, logger)
				if err != nil {
					return err
				}
				crypto.WipeIssuerKey(&key)
				pub = key.Public
			}
			if pub == (domain.Ed25519Public{}) {
				return errors.New("no issuer public key")
			}

			code, err := issuer.Verify(pub, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{
				"valid":           true,
				"version":         code.Version,
				"client":          code.Client,
				"postId":          code.PostID,
				"contractAddress": code.ContractAddress,
				"engagement":      code.Engagement,
			})
		},
	}
	cmd.Flags().StringVar(&pubHex, "pubkey", "", "issuer public key hex (default: configured issuer key)")
	return cmd
}
