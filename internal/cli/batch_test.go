package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBatchCommand(t *testing.T) {
	path := writeJobs(t, `jobs:
  - format: unix
    value: "1234567890"
  - format: google_calendar
    datetime: "2009-02-13 23:31:30"
  - format: windows_file
    value: "0x1cabbaa00ca9000"
`)

	out, err := execute(t, "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2009-02-13 23:31:30")
	assert.Contains(t, out, "1297899090")
	assert.Contains(t, out, "2010-03-04 14:50:16.559001600")
}

func TestBatchCommand_JSON(t *testing.T) {
	path := writeJobs(t, `jobs:
  - format: unix
    value: "1234567890"
`)

	out, err := execute(t, "--format", "json", "batch", path)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   []BatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "2009-02-13 23:31:30", resp.Data[0].Result)
	assert.Empty(t, resp.Data[0].Err)
}

// A failing job is reported in place and the rest of the batch still runs.
func TestBatchCommand_PartialFailure(t *testing.T) {
	path := writeJobs(t, `jobs:
  - format: vms
    value: "123"
  - format: unix
    value: "1234567890"
`)

	out, err := execute(t, "batch", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 of 2 jobs failed")
	assert.Contains(t, out, "2009-02-13 23:31:30")
}

func TestBatchCommand_AmbiguousJob(t *testing.T) {
	path := writeJobs(t, `jobs:
  - format: unix
    value: "1234567890"
    datetime: "2009-02-13 23:31:30"
`)

	out, err := execute(t, "batch", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "both value and datetime")
}

func TestBatchCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "batch", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBatchCommand_EmptyJobs(t *testing.T) {
	path := writeJobs(t, "jobs: []\n")
	_, err := execute(t, "batch", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
