package commands

import (
	"github.com/spf13/cobra"

	"vitaverify/internal/protocol/appdata"
)

func decodeAppDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-appdata <hex|@file>",
		Short: "Decode a session's hex transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInline(cmd, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, appdata.Decode(in))
		},
	}
	return cmd
}
