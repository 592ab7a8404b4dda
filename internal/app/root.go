// Package app contains the Cobra command tree for cmdtrack.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/blackwell-systems/cmdtrack/internal/config"
	"github.com/blackwell-systems/cmdtrack/internal/output"
	"github.com/blackwell-systems/cmdtrack/internal/store"
	"github.com/blackwell-systems/cmdtrack/internal/tracker"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cmdtrack",
	Short: "Track AI command suggestions and learn from accept/reject history",
	Long: `cmdtrack records every AI-generated command suggestion, the user's
accept/reject decision, and the execution outcome, then mines that history:
confidence scores for new suggestions, similar past suggestions, acceptance
statistics and insights.

It is the tracking engine behind an AI terminal assistant; the assistant
calls 'track' when a suggestion is shown, 'decide' when the user answers,
and 'result' when the command is actually run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if flagVerbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		if flagNoColor {
			output.SetNoColor(true)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("cmdtrack", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  track     Record a presented command suggestion")
		fmt.Println("  decide    Record the user's accept/reject decision")
		fmt.Println("  result    Record the execution outcome of a command")
		fmt.Println("  similar   Find similar past suggestions for a request")
		fmt.Println("  assess    Estimate confidence for a candidate suggestion")
		fmt.Println("  stats     Show acceptance statistics")
		fmt.Println("  insights  Show insights derived from the history")
		fmt.Println("  cleanup   Prune records past the retention window")
		fmt.Println("  export    Export a full snapshot of the history")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/cmdtrack/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// openTracker loads the configuration and opens the store and tracker for
// a command run.
func openTracker() (*tracker.Tracker, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	st, err := store.Open(cfg.HistoryPath(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history: %w", err)
	}

	opts := []tracker.Option{tracker.WithLogger(logger)}
	if cfg.ArchivePruned {
		opts = append(opts, tracker.WithArchive(cfg.ArchivePath()))
	}

	return tracker.New(st, opts...), cfg, nil
}
