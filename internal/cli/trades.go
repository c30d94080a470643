package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/optrack/journal"
	"github.com/rustyeddy/optrack/report"
	"github.com/rustyeddy/optrack/tui"
)

func newListCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all trades, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPostRunE is skipped when RunE fails.
			defer rc.teardown()

			trades, err := rc.loadTrades()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTrades(trades, -1, rc.styles()))
			return nil
		},
	}
}

func newReportCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print realized profit/loss by symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPostRunE is skipped when RunE fails.
			defer rc.teardown()

			trades, err := rc.loadTrades()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report.BySymbol(trades), rc.styles()))
			return nil
		},
	}
}

func newExportCmd(rc *RootConfig) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all trades as CSV",
		Long: `Write every trade as CSV, newest first.

Examples:
  optrack export
  optrack export -o trades.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPostRunE is skipped when RunE fails.
			defer rc.teardown()

			trades, err := rc.loadTrades()
			if err != nil {
				return err
			}

			if err := writeExport(cmd.OutOrStdout(), output, trades); err != nil {
				return err
			}
			rc.log.Info().Int("trades", len(trades)).Str("output", output).Msg("trades exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `CSV file to write ("-" or empty for stdout)`)
	return cmd
}

// writeExport writes CSV to path, or to stdout when path is empty or "-".
func writeExport(stdout io.Writer, path string, trades []journal.Trade) error {
	if path == "" || path == "-" {
		if err := journal.WriteCSV(stdout, trades); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := journal.WriteCSV(f, trades); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func (rc *RootConfig) loadTrades() ([]journal.Trade, error) {
	j, err := rc.openJournal()
	if err != nil {
		return nil, err
	}
	defer j.Close()

	trades, err := j.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return trades, nil
}
