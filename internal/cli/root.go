package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/optrack/config"
	"github.com/rustyeddy/optrack/internal/id"
	"github.com/rustyeddy/optrack/internal/logging"
	"github.com/rustyeddy/optrack/journal"
	"github.com/rustyeddy/optrack/nav"
	"github.com/rustyeddy/optrack/tui"
)

const version = "0.3.0"

// RootConfig carries the global flags and what PersistentPreRunE builds
// from them.
type RootConfig struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	LogFile    string
	NoColor    bool

	cfg      *config.Config
	log      zerolog.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&RootConfig{})
}

func newRootCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optrack",
		Short: "Record stock and option trades and report realized P/L per symbol",
		Long: `optrack is a terminal journal for stock and option trades.

Run it without arguments for the interactive screen:
  a  add a trade
  l  list, edit (e) and delete (d) trades
  r  profit/loss report by symbol
  q  quit

Trades are kept in a single SQLite file (default ./options_tracker.db).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(rc)
		},
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite trade database (default ./options_tracker.db)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&rc.LogFile, "log-file", "", `Log file ("-" for stderr)`)
	cmd.PersistentFlags().BoolVar(&rc.NoColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rc.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return rc.teardown()
	}

	cmd.AddCommand(
		newListCmd(rc),
		newReportCmd(rc),
		newExportCmd(rc),
		newConfigCmd(),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "optrack version %s\n", version)
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and opens the log.
func (rc *RootConfig) setup() error {
	cfg, err := config.Load(rc.ConfigPath)
	if err != nil {
		return err
	}
	if rc.DBPath != "" {
		cfg.Journal.DBPath = rc.DBPath
	}
	if rc.LogLevel != "" {
		cfg.Log.Level = rc.LogLevel
	}
	if rc.LogFile != "" {
		cfg.Log.File = rc.LogFile
	}
	if rc.NoColor {
		cfg.Display.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, closeLog, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Session: id.Session(),
	})
	if err != nil {
		return err
	}

	rc.cfg = cfg
	rc.log = log
	rc.closeLog = closeLog
	return nil
}

func (rc *RootConfig) teardown() error {
	if rc.closeLog == nil {
		return nil
	}
	closeLog := rc.closeLog
	rc.closeLog = nil
	return closeLog()
}

func (rc *RootConfig) openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(rc.cfg.Journal.DBPath)
	if err != nil {
		rc.log.Error().Err(err).Str("db", rc.cfg.Journal.DBPath).Msg("open journal")
		return nil, fmt.Errorf("open db: %w", err)
	}
	rc.log.Debug().Str("db", rc.cfg.Journal.DBPath).Msg("journal opened")
	return j, nil
}

func (rc *RootConfig) styles() tui.Styles {
	return tui.NewStyles(rc.cfg.Display.NoColor)
}

func runInteractive(rc *RootConfig) error {
	// PersistentPostRunE is skipped when RunE fails, so close the log here too.
	defer rc.teardown()

	j, err := rc.openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rc.log.Info().Str("db", rc.cfg.Journal.DBPath).Msg("session started")
	m := nav.New(j, rc.log)
	if err := tui.Run(m, rc.styles(), tea.WithAltScreen()); err != nil {
		rc.log.Error().Err(err).Msg("terminal ui failed")
		return fmt.Errorf("terminal ui: %w", err)
	}
	rc.log.Info().Msg("session ended")
	return nil
}
