package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_SortedKeys(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"zebra": "z",
		"alpha": "a",
		"mid":   int64(7),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"a","mid":7,"zebra":"z"}`, string(out))
}

func TestMarshalCanonical_Nested(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"data":   map[string]any{"unix": "2009-02-13 23:31:30"},
		"status": "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"unix":"2009-02-13 23:31:30"},"status":"ok"}`, string(out))
}

func TestMarshalCanonical_NFC(t *testing.T) {
	// e + combining acute normalizes to the precomposed form.
	out, err := MarshalCanonical("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(out))
}

func TestMarshalCanonical_NoHTMLEscaping(t *testing.T) {
	out, err := MarshalCanonical("a<b>&c")
	require.NoError(t, err)
	assert.Equal(t, `"a<b>&c"`, string(out))
}

func TestMarshalCanonical_FloatsForbidden(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"bad": 1.5})
	assert.Error(t, err)
}

func TestMarshalCanonical_NullForbidden(t *testing.T) {
	_, err := MarshalCanonical(nil)
	assert.Error(t, err)
}
