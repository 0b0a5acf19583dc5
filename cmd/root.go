package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/config"
	"github.com/mj1618/axtree/internal/logging"
	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/output"
	"github.com/mj1618/axtree/internal/platform"
	"github.com/mj1618/axtree/internal/version"
)

var (
	// cfg and logger are set by the root command before any subcommand runs.
	cfg    *config.Config
	logger = slog.New(slog.DiscardHandler)

	// newProvider is replaced in tests.
	newProvider = platform.NewProvider
)

var rootCmd = &cobra.Command{
	Use:   "axtree",
	Short: "Snapshot and drive the frontmost application's accessibility tree",
	Long: `axtree exposes the UI of the frontmost application as a tree of nodes
addressed by path refs (n0, n0.2, n0.2.1, ...) and acts on those nodes.

Refs describe positions in the tree at snapshot time. Take a new snapshot
after any action that changes the UI.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Every failure is reported as a failure
// envelope on stdout and exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			if perr := output.Print(output.Failure(model.ExecutionError("%w", err), nil)); perr != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: json, yaml, text (default: json when piped, text on a terminal)")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Max traversal depth below the root, 0 = unlimited (default from AXTREE_MAX_DEPTH or 256)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}

		// Use the root persistent flags directly so subcommand flags with the
		// same name cannot shadow them.
		flags := rootCmd.PersistentFlags()
		if flags.Changed("format") {
			loaded.Format, _ = flags.GetString("format")
		}
		if flags.Changed("max-depth") {
			loaded.MaxDepth, _ = flags.GetInt("max-depth")
		}
		if flags.Changed("log-level") {
			loaded.LogLevel, _ = flags.GetString("log-level")
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		format, err := output.ParseFormat(loaded.Format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = flags.GetBool("pretty")

		l, err := logging.New(os.Stderr, loaded.LogLevel, loaded.LogFormat)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = l.With("run_id", uuid.NewString(), "cmd", cmd.Name())
		return nil
	}
}
