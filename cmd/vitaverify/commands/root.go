package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vitaverify/internal/app"
	"vitaverify/internal/logging"
)

var (
	configPath string
	envFile    string
	logLevel   string

	cfg    *app.Config
	logger *logging.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vitaverify",
		Short:         "Verify attested engagement and issue signed redemption codes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadDotEnv(envFile); err != nil {
				return err
			}
			loaded, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				loaded.Logging.Level = logLevel
			}
			l, err := logging.NewWithOutput(loaded.Logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, logger = loaded, l
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", envOr("VITA_CONFIG", "vitaverify.yaml"), "config file (missing file uses defaults)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load (missing file is ignored)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")

	root.AddCommand(
		serveCmd(),
		verifyCmd(),
		submitCmd(),
		keygenCmd(),
		pubkeyCmd(),
		checkCodeCmd(),
		decodeAppDataCmd(),
	)
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// readArg returns the contents of path, or stdin when path is "-".
func readArg(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readInline returns s, or the contents of the file when s is "@path".
func readInline(cmd *cobra.Command, s string) (string, error) {
	if path, ok := strings.CutPrefix(s, "@"); ok {
		return readArg(cmd, path)
	}
	return s, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
