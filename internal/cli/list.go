package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
}

// FormatInfo is the structured payload describing one catalog format.
type FormatInfo struct {
	Name    string `json:"name" yaml:"name"`
	Unit    string `json:"unit" yaml:"unit"`
	Kind    string `json:"kind" yaml:"kind"`
	Divisor int64  `json:"divisor,omitempty" yaml:"divisor,omitempty"`
	Offset  int64  `json:"offset,omitempty" yaml:"offset,omitempty"`
	Epoch   string `json:"epoch" yaml:"epoch"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the known epoch formats",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	reg, err := opts.registry()
	if err != nil {
		return err
	}

	descs := reg.Descriptors()
	infos := make([]FormatInfo, 0, len(descs))
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %-26s %-15s %s\n", "NAME", "UNIT", "KIND", "EPOCH")
	for _, d := range descs {
		infos = append(infos, FormatInfo{
			Name:    d.Name,
			Unit:    d.Unit,
			Kind:    d.Kind.String(),
			Divisor: d.Divisor,
			Offset:  d.OffsetSeconds,
			Epoch:   d.Epoch,
		})
		fmt.Fprintf(&b, "%-16s %-26s %-15s %s\n", d.Name, d.Unit, d.Kind, d.Epoch)
	}

	return formatter.Emit(strings.TrimRight(b.String(), "\n"), infos)
}
