package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCommand_Text(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		datetime string
		want     string
	}{
		{"unix", "unix", "2009-02-13 23:31:30", "1234567890"},
		{"chrome", "chrome", "2009-02-13 23:31:30", "12879041490000000"},
		{"google_calendar", "google_calendar", "2009-02-13 23:31:30", "1297899090"},
		{"windows_date", "windows_date", "2009-02-13 23:31:30", "633701646900000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "to", tt.format, tt.datetime)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestToCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "to", "unix", "2009-02-13 23:31:30")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "unix", data["format"])
	assert.Equal(t, "1234567890", data["raw"])
}

func TestToCommand_BadDatetime(t *testing.T) {
	out, err := execute(t, "to", "unix", "February 13th")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "INVALID_INPUT")
}

func TestToCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "to", "vms", "2009-02-13 23:31:30")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
