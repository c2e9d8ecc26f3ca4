package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodtrack/internal/config"
	"github.com/chris-regnier/moodtrack/internal/logging"
	"github.com/chris-regnier/moodtrack/internal/storage"
	"github.com/chris-regnier/moodtrack/internal/storage/csvfile"
	"github.com/chris-regnier/moodtrack/internal/storage/sqlite"
	"github.com/chris-regnier/moodtrack/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.Storage
	logger         = zerolog.Nop()
	logCloser      io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "moodtrack",
	Short: "Mood journal and medical diagnosis tracker",
	Long: `moodtrack records a daily mood journal and medical diagnosis notes in two
CSV files and shows mood history as a chart.

Run without a subcommand to open the Mood Tracker window.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		logger, logCloser, err = logging.Open(appConfig.LogPath(), appConfig.Log.Level)
		if err != nil {
			return err
		}

		store, err = openStore(appConfig, logger)
		if err != nil {
			logger.Error().Err(err).Str("storage", appConfig.Storage).Msg("startup failed")
			return err
		}
		logger.Debug().Str("command", cmd.Name()).Str("storage", appConfig.Storage).Msg("store opened")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: print the status summary
			return statusRun(cmd.OutOrStdout(), "")
		}
		return ui.RunTUI(store, ui.TUIConfig{
			MaxWidth: appConfig.MaxWidth,
			Theme:    ui.ResolveTheme(appConfig.Theme),
			Logger:   logger,
		})
	},
}

// openStore initializes the configured backend. For CSV this creates both
// record files with their header rows when they are missing.
func openStore(cfg *config.Config, log zerolog.Logger) (storage.Storage, error) {
	switch cfg.Storage {
	case "csv", "":
		s, err := csvfile.New(cfg.JournalPath(), cfg.DiagnosisPath(), csvfile.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("initializing csv storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

func closeAll() error {
	var err error
	if store != nil {
		err = store.Close()
		store = nil
	}
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
	return err
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Error().Err(err).Msg("command failed")
		closeAll()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (csv|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
