package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessCommand_Text(t *testing.T) {
	out, err := execute(t, "guess", "1234567890")
	require.NoError(t, err)

	assert.Contains(t, out, "unix")
	assert.Contains(t, out, "2009-02-13 23:31:30")
	assert.Contains(t, out, "java")
	assert.Contains(t, out, "1970-01-15 06:56:07.890")

	// Formats that land outside 1970..2100 stay out of the report.
	assert.NotContains(t, out, "windows_file")
	assert.NotContains(t, out, "uuid_v1")
}

// Canonical JSON output is byte-stable, so the whole response is golden.
func TestGuessCommand_JSONGolden(t *testing.T) {
	out, err := execute(t, "--format", "json", "guess", "1234567890")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "guess_1234567890", []byte(out))
}

func TestGuessCommand_NoCandidates(t *testing.T) {
	out, err := execute(t, "guess", "--", "-5000000000")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "NO_CANDIDATES")
}
