package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2009-02-13 23:31:30", time.Date(2009, 2, 13, 23, 31, 30, 0, time.UTC)},
		{"2009-02-13T23:31:30", time.Date(2009, 2, 13, 23, 31, 30, 0, time.UTC)},
		{"2009-02-13 23:31:30.057", time.Date(2009, 2, 13, 23, 31, 30, 57000000, time.UTC)},
		{"2010-03-04 14:50:16.559001600", time.Date(2010, 3, 4, 14, 50, 16, 559001600, time.UTC)},
		{"2009-02-13", time.Date(2009, 2, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseDateTime_Garbage(t *testing.T) {
	for _, in := range []string{"", "last tuesday", "13/02/2009"} {
		_, err := ParseDateTime(in)
		assert.Error(t, err, "input %q", in)
	}
}

// The fraction renders at 3, 6, or 9 digits, never trimmed mid-group.
func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole second", time.Date(2009, 2, 13, 23, 31, 30, 0, time.UTC), "2009-02-13 23:31:30"},
		{"milliseconds", time.Date(2009, 2, 13, 23, 31, 30, 57000000, time.UTC), "2009-02-13 23:31:30.057"},
		{"microseconds", time.Date(2010, 3, 4, 14, 50, 16, 559001000, time.UTC), "2010-03-04 14:50:16.559001"},
		{"nanoseconds", time.Date(2010, 3, 4, 14, 50, 16, 559001600, time.UTC), "2010-03-04 14:50:16.559001600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateTime(tt.in))
		})
	}
}
