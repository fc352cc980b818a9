package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/epochs/internal/scan"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	DB     string
	Query  string
	As     string
	Preset string
	Limit  int
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Convert epoch columns out of a SQLite database",
		Long: `Open a SQLite database read-only, run a query, and convert the first
column of every row through a named format.

Presets cover common application databases:
  epochs scan --db History --preset chrome_history
  epochs scan --db places.sqlite --preset firefox_places

Or supply the query and format yourself:
  epochs scan --db places.sqlite \
    --query "SELECT last_visit_date FROM moz_places" --as mozilla`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the SQLite database (required)")
	cmd.Flags().StringVar(&opts.Query, "query", "", "SQL query; first column is converted")
	cmd.Flags().StringVar(&opts.As, "as", "", "epoch format of the queried column")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "named preset ("+strings.Join(presetNames(), "|")+")")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum rows to convert (0 = no limit)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runScan(opts *ScanOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	query, format := opts.Query, opts.As
	if opts.Preset != "" {
		preset, ok := scan.Presets[opts.Preset]
		if !ok {
			return NewExitError(ExitCommandError, fmt.Sprintf("unknown preset %q (want one of %v)", opts.Preset, presetNames()))
		}
		query, format = preset.Query, preset.Format
	}
	if query == "" || format == "" {
		return NewExitError(ExitCommandError, "need --preset, or both --query and --as")
	}

	reg, err := opts.registry()
	if err != nil {
		return err
	}

	scanner, err := scan.Open(opts.DB, reg)
	if err != nil {
		formatter.EmitError("DB_ERROR", err.Error())
		return WrapExitError(ExitCommandError, "opening database", err)
	}
	defer scanner.Close()

	formatter.VerboseLog("scanning %s as %s: %s", opts.DB, format, query)
	result, err := scanner.Scan(cmd.Context(), query, format, opts.Limit)
	if err != nil {
		formatter.EmitError("SCAN_ERROR", err.Error())
		return WrapExitError(ExitFailure, "scan failed", err)
	}

	return formatter.Emit(scanText(result), result)
}

func scanText(result *scan.Result) string {
	var b strings.Builder
	for i, row := range result.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		if row.Err != "" {
			fmt.Fprintf(&b, "%-22s !%s", row.Raw, row.Err)
			continue
		}
		fmt.Fprintf(&b, "%-22s %s", row.Raw, FormatDateTime(row.Civil))
	}
	if result.Skipped > 0 {
		fmt.Fprintf(&b, "\n(%d NULL rows skipped)", result.Skipped)
	}
	return b.String()
}

func presetNames() []string {
	names := make([]string, 0, len(scan.Presets))
	for name := range scan.Presets {
		names = append(names, name)
	}
	// Map order is random; pin it for help text and error messages.
	sort.Strings(names)
	return names
}
