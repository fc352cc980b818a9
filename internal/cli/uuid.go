package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/epochs/internal/uuidtime"
)

// UUIDOptions holds flags for the uuid command.
type UUIDOptions struct {
	*RootOptions
}

// UUIDResult is the structured payload for a UUID timestamp extraction.
type UUIDResult struct {
	UUID  string `json:"uuid" yaml:"uuid"`
	Ticks int64  `json:"ticks" yaml:"ticks"` // hectonanoseconds since 1582-10-15
	Civil string `json:"civil" yaml:"civil"`
}

// NewUUIDCommand creates the uuid command.
func NewUUIDCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UUIDOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "uuid <uuid>",
		Short: "Extract the timestamp from a version 1 UUID",
		Long: `Extract the 60-bit timestamp buried in a version 1 UUID and convert it
to a civil datetime. Other UUID versions carry no timestamp and are rejected.

Example:
  epochs uuid ca4892ce-4f7d-11ea-b77f-2e728ce88125`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUUID(opts, args[0], cmd)
		},
	}

	return cmd
}

func runUUID(opts *UUIDOptions, raw string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ticks, err := uuidtime.Ticks(raw)
	if err != nil {
		formatter.EmitError("INVALID_INPUT", err.Error())
		return WrapExitError(ExitCommandError, "bad UUID", err)
	}
	civil, err := uuidtime.Extract(raw)
	if err != nil {
		formatter.EmitError(conversionErrorCode(err), err.Error())
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	text := FormatDateTime(civil)
	return formatter.Emit(text, UUIDResult{UUID: raw, Ticks: ticks, Civil: text})
}
