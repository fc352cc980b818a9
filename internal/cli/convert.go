package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/epochs/internal/catalog"
	"github.com/roach88/epochs/internal/epoch"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
}

// ConversionResult is the structured payload for a forward conversion.
type ConversionResult struct {
	Format string `json:"format" yaml:"format"`
	Raw    string `json:"raw" yaml:"raw"`
	Civil  string `json:"civil" yaml:"civil"`
	Unix   int64  `json:"unix" yaml:"unix"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <format> <value>",
		Short: "Convert an epoch value to a civil datetime",
		Long: `Convert a raw epoch value to a civil datetime.

Integer formats accept decimal and hex (0x...) input; icq accepts a
fractional day count.

Example:
  epochs convert unix 1234567890
  epochs convert windows_file 0x1cabbaa00ca9000`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runConvert(opts *ConvertOptions, format, raw string, cmd *cobra.Command) error {
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
	formatter.VerboseLog("format %s: %s since %s", desc.Name, desc.Unit, desc.Epoch)

	civil, err := desc.Decode(raw)
	if err != nil {
		formatter.EmitError(conversionErrorCode(err), err.Error())
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	text := FormatDateTime(civil)
	return formatter.Emit(text, ConversionResult{
		Format: desc.Name,
		Raw:    raw,
		Civil:  text,
		Unix:   epoch.ToUnix(civil),
	})
}

// conversionErrorCode maps a conversion error onto a response code.
func conversionErrorCode(err error) string {
	var ce *epoch.ConversionError
	if errors.As(err, &ce) {
		return string(ce.Code)
	}
	if catalog.IsUnknownFormat(err) {
		return "UNKNOWN_FORMAT"
	}
	return "INVALID_INPUT"
}
