package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"vitaverify/internal/relay"
)

func submitCmd() *cobra.Command {
	var (
		serverURL string
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "submit <post.json> <author.json>",
		Short: "Send a session pair to a running server",
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

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			signed, err := relay.NewHTTP(serverURL).Verify(ctx, post, author)
			if err != nil {
				return err
			}
			return printJSON(cmd, signed)
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", "http://127.0.0.1:5000", "verification server base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}
