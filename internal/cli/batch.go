package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/epochs/internal/catalog"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
}

// BatchFile is the YAML job file layout.
type BatchFile struct {
	Jobs []BatchJob `yaml:"jobs"`
}

// BatchJob is one conversion request. Exactly one of Value (forward) or
// Datetime (backward) must be set.
type BatchJob struct {
	Format   string `yaml:"format"`
	Value    string `yaml:"value,omitempty"`
	Datetime string `yaml:"datetime,omitempty"`
}

// BatchResult is the structured outcome of one job. Err is set instead of
// Civil/Raw when the job failed; a failing job never aborts the batch.
type BatchResult struct {
	Format   string `json:"format" yaml:"format"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Datetime string `json:"datetime,omitempty" yaml:"datetime,omitempty"`
	Result   string `json:"result,omitempty" yaml:"result,omitempty"`
	Err      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run a YAML file of conversions",
		Long: `Run every conversion in a YAML job file.

The file lists forward jobs (format + value) and backward jobs
(format + datetime):

  jobs:
    - format: unix
      value: "1234567890"
    - format: google_calendar
      datetime: "2009-02-13 23:31:30"

Jobs run in order; a failing job is reported and the batch continues.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	raw, err := os.ReadFile(path)
	if err != nil {
		formatter.EmitError("FILE_ERROR", err.Error())
		return WrapExitError(ExitCommandError, "reading job file", err)
	}
	var file BatchFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		formatter.EmitError("INVALID_INPUT", err.Error())
		return WrapExitError(ExitCommandError, "parsing job file", err)
	}
	if len(file.Jobs) == 0 {
		return NewExitError(ExitCommandError, "job file has no jobs")
	}

	reg, err := opts.registry()
	if err != nil {
		return err
	}

	results := make([]BatchResult, 0, len(file.Jobs))
	failures := 0
	for _, job := range file.Jobs {
		res := runJob(reg, job)
		if res.Err != "" {
			failures++
		}
		results = append(results, res)
	}

	if err := formatter.Emit(batchText(results), results); err != nil {
		return err
	}
	if failures > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d jobs failed", failures, len(results)))
	}
	return nil
}

func runJob(reg *catalog.Registry, job BatchJob) BatchResult {
	res := BatchResult{Format: job.Format, Value: job.Value, Datetime: job.Datetime}

	desc, err := reg.Lookup(job.Format)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	switch {
	case job.Value != "" && job.Datetime != "":
		res.Err = "job has both value and datetime"
	case job.Value != "":
		civil, err := desc.Decode(job.Value)
		if err != nil {
			res.Err = err.Error()
			break
		}
		res.Result = FormatDateTime(civil)
	case job.Datetime != "":
		civil, err := ParseDateTime(job.Datetime)
		if err != nil {
			res.Err = err.Error()
			break
		}
		res.Result = desc.Encode(civil)
	default:
		res.Err = "job has neither value nor datetime"
	}
	return res
}

func batchText(results []BatchResult) string {
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		in := res.Value
		if in == "" {
			in = res.Datetime
		}
		if res.Err != "" {
			fmt.Fprintf(&b, "%-16s %-26s !%s", res.Format, in, res.Err)
			continue
		}
		fmt.Fprintf(&b, "%-16s %-26s %s", res.Format, in, res.Result)
	}
	return b.String()
}
