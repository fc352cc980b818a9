package cli

import (
	"github.com/spf13/cobra"
)

// ToOptions holds flags for the to command.
type ToOptions struct {
	*RootOptions
}

// ReverseResult is the structured payload for a backward conversion.
type ReverseResult struct {
	Format string `json:"format" yaml:"format"`
	Civil  string `json:"civil" yaml:"civil"`
	Raw    string `json:"raw" yaml:"raw"`
}

// NewToCommand creates the to command.
func NewToCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ToOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "to <format> <datetime>",
		Short: "Convert a civil datetime to an epoch value",
		Long: `Convert a civil datetime to a raw epoch value.

Backward conversions are total: they always produce a number, though values
far beyond double precision lose sub-second accuracy.

Example:
  epochs to unix "2009-02-13 23:31:30"
  epochs to google_calendar "2009-02-13 23:31:30"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTo(opts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runTo(opts *ToOptions, format, datetime string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	reg, err := opts.registry()
	if err != nil {
		return err
	}
	desc, err := reg.Lookup(format)
	if err != nil {
		formatter.EmitError("UNKNOWN_FORMAT", err.Error())
		return WrapExitError(ExitCommandError, "unknown format", err)
	}

	civil, err := ParseDateTime(datetime)
	if err != nil {
		formatter.EmitError("INVALID_INPUT", err.Error())
		return WrapExitError(ExitCommandError, "bad datetime", err)
	}

	raw := desc.Encode(civil)
	return formatter.Emit(raw, ReverseResult{
		Format: desc.Name,
		Civil:  FormatDateTime(civil),
		Raw:    raw,
	})
}
