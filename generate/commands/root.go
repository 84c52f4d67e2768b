package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/NicholasIapalucci/drexel-api/config"
	"github.com/NicholasIapalucci/drexel-api/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outPath    string
	logLevel   string

	cfg *config.Config
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "catalog.yaml", "The YAML config to read, next to an optional .local.yaml override.")
	flags.StringVar(&outPath, "out", "", "Where to write the document, overrides the config's output.")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error, overrides the config's logging level.")
}

var rootCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate scrapes the Drexel catalog, faculty directories and student organizations into drexel.json.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if outPath != "" {
			loaded.Output = outPath
		}
		if logLevel != "" {
			loaded.Logging.Level = logLevel
		}
		if err := logging.Setup(os.Stderr, loaded.Logging.Level, loaded.Logging.Format); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
