package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/epochs/internal/catalog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	FormatsDir string // optional directory of CUE custom format definitions
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the epochs CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "epochs",
		Short: "Convert epoch timestamps to civil datetimes and back",
		Long: `Convert the numeric timestamp encodings used by filesystems, browsers,
operating systems, calendar services, and UUIDs into civil datetimes, and back.

All datetimes are naive proleptic-Gregorian civil time; no time zones apply.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.FormatsDir, "formats-dir", "", "directory of CUE custom format definitions")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewToCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGuessCommand(opts))
	cmd.AddCommand(NewUUIDCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// registry builds the format catalog: the built-ins, plus custom formats
// when --formats-dir is set.
func (o *RootOptions) registry() (*catalog.Registry, error) {
	if o.FormatsDir == "" {
		return catalog.NewRegistry(), nil
	}
	reg, errs := catalog.LoadDir(o.FormatsDir)
	if len(errs) > 0 {
		return nil, WrapExitError(ExitCommandError, "loading custom formats", errors.Join(errs...))
	}
	return reg, nil
}

// formatter builds the output formatter for a command invocation.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
