package commands

import (
	"github.com/spf13/cobra"

	"vitaverify/internal/app"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <post.json> <author.json>",
		Short: "Verify a post/author session pair and print the signed code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := readArg(cmd, args[0])
			if err != nil {
				return err
			}
			author, err := readArg(cmd, args[1])
			if err != nil {
				return err
			}

			w, err := app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			signed, err := w.Redeem.VerifyAndSign(cmd.Context(), post, author)
			if err != nil {
				return err
			}
			return printJSON(cmd, signed)
		},
	}
	return cmd
}
