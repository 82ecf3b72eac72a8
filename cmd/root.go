package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/FluidXR/peripheral/internal/config"
	"github.com/FluidXR/peripheral/internal/journal"
	"github.com/FluidXR/peripheral/internal/logging"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version of peripheral.
const Version = "0.1.0"

// LogLevelEnv sets the log level when --log-level is not given.
const LogLevelEnv = "PERIPHERAL_LOG_LEVEL"

var (
	logLevel  string
	noJournal bool
	logger    = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:     "peripheral",
	Short:   "Drive simulated printers and scanners",
	Version: Version,
	Long: `peripheral builds a fleet of simulated office devices (printers, scanners and
multifunction printer-scanners) from a YAML config and runs operations against them,
reporting one status line per outcome.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup loads .env and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := loadDotEnv(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	level := logLevel
	if !cmd.Flags().Changed("log-level") {
		if env := os.Getenv(LogLevelEnv); env != "" {
			level = env
		}
	}
	l, err := logging.New(os.Stderr, level)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// openJournal opens the outcome journal unless it is disabled. A journal that
// cannot be opened is logged and skipped.
func openJournal(cfg *config.Config) *journal.DB {
	if noJournal || !cfg.Journal.Enabled {
		return nil
	}
	j, err := journal.Open(cfg.JournalDir())
	if err != nil {
		logger.Warn("journal unavailable", "dir", cfg.JournalDir(), "err", err)
		return nil
	}
	return j
}

func newRunID() string {
	return uuid.NewString()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "Don't record outcomes in the journal")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
