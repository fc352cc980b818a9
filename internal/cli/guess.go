package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// A guess is only reported when the civil result lands in a window a human
// would believe as a real-world timestamp.
const (
	guessMinYear = 1970
	guessMaxYear = 2100
)

// GuessOptions holds flags for the guess command.
type GuessOptions struct {
	*RootOptions
}

// NewGuessCommand creates the guess command.
func NewGuessCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GuessOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "guess <value>",
		Short: "Try every format on a raw value",
		Long: `Run a raw value through every known format and report the candidates
whose civil result falls between ` + strconv.Itoa(guessMinYear) + ` and ` + strconv.Itoa(guessMaxYear) + `.

Example:
  epochs guess 1234567890`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuess(opts, args[0], cmd)
		},
	}

	return cmd
}

func runGuess(opts *GuessOptions, raw string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	reg, err := opts.registry()
	if err != nil {
		return err
	}

	candidates := map[string]any{}
	for _, desc := range reg.Descriptors() {
		civil, err := desc.Decode(raw)
		if err != nil {
			formatter.VerboseLog("%s: %v", desc.Name, err)
			continue
		}
		if plausible(civil) {
			candidates[desc.Name] = FormatDateTime(civil)
		}
	}

	if len(candidates) == 0 {
		formatter.EmitError("NO_CANDIDATES", fmt.Sprintf("no format puts %s between %d and %d", raw, guessMinYear, guessMaxYear))
		return NewExitError(ExitFailure, "no plausible format found")
	}

	return formatter.EmitCanonical(guessText(candidates), candidates)
}

func plausible(t time.Time) bool {
	return t.Year() >= guessMinYear && t.Year() <= guessMaxYear
}

// guessText renders candidates as aligned "format  datetime" lines in
// catalog name order.
func guessText(candidates map[string]any) string {
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-16s %s", name, candidates[name])
	}
	return b.String()
}
