package epoch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICQ(t *testing.T) {
	got, err := ICQ(39857.980209)
	require.NoError(t, err)
	want := time.Date(2009, time.February, 13, 23, 31, 30, 57000000, time.UTC)
	assert.True(t, want.Equal(got))
}

func TestICQ_Fraction(t *testing.T) {
	got, err := ICQ(41056.275208)
	require.NoError(t, err)
	want := time.Date(2012, time.May, 27, 6, 36, 17, 971000000, time.UTC)
	assert.True(t, want.Equal(got))
}

func TestICQ_WholeDays(t *testing.T) {
	got, err := ICQ(2.0)
	require.NoError(t, err)
	assert.True(t, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC).Equal(got))
}

// Day counts that fit the millisecond limit but land past the supported
// year range fail with range overflow.
func TestICQ_TooBig(t *testing.T) {
	_, err := ICQ(398570000.980209)
	require.Error(t, err)
	assert.True(t, IsRangeOverflow(err))
}

// Day counts past MaxICQDays are rejected before any date arithmetic.
func TestICQ_WayTooBig(t *testing.T) {
	_, err := ICQ(123456789012.0)
	require.Error(t, err)
	assert.True(t, IsValueTooLarge(err))
}

// The negative side is guarded too. -2^57 days is the nasty case: its
// seconds equivalent is a multiple of 2^64, so unchecked it would wrap all
// the way back to the anchor and "succeed" with 1899-12-30.
func TestICQ_WayTooNegative(t *testing.T) {
	_, err := ICQ(-float64(int64(1) << 57))
	require.Error(t, err)
	assert.True(t, IsValueTooLarge(err))

	_, err = ICQ(-123456789012.0)
	require.Error(t, err)
	assert.True(t, IsValueTooLarge(err))
}

func TestToICQ(t *testing.T) {
	got := ToICQ(time.Date(2009, time.February, 13, 23, 31, 30, 0, time.UTC))
	assert.InDelta(t, 39857.980209, got, 1e-5)
}

func TestToICQ_Fraction(t *testing.T) {
	got := ToICQ(time.Date(2012, time.May, 27, 6, 36, 17, 971000000, time.UTC))
	assert.InDelta(t, 41056.275208, got, 1e-5)
}
