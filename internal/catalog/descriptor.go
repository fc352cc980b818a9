package catalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/roach88/epochs/internal/epoch"
)

// Kind selects which transform a format flows through.
type Kind int

const (
	// KindUniform formats are a plain (divisor, offset) pair through the
	// generic transform.
	KindUniform Kind = iota

	// KindNonUniformMonth32 is the Google Calendar 32-day synthetic month
	// encoding.
	KindNonUniformMonth32

	// KindFractionalDay is the ICQ floating-point day count.
	KindFractionalDay
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "uniform"
	case KindNonUniformMonth32:
		return "32-day-month"
	case KindFractionalDay:
		return "fractional-day"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Descriptor describes one named epoch format. Descriptors are immutable
// values; the built-in set is created once and shared read-only.
type Descriptor struct {
	// Name is the catalog key, e.g. "windows_file".
	Name string

	// Unit names the tick granularity, for display.
	Unit string

	// Divisor is ticks per second. Meaningful for KindUniform only.
	Divisor int64

	// OffsetSeconds shifts the format's reference epoch onto the Unix
	// epoch: unix_seconds = ticks/Divisor + OffsetSeconds. KindUniform only.
	OffsetSeconds int64

	// Kind routes the value through the right transform.
	Kind Kind

	// Epoch describes the reference instant, for display.
	Epoch string
}

// Decode parses a raw string value in this format and converts it to a
// civil datetime. Integer formats accept decimal, hex (0x...) and octal
// prefixes; the fractional-day format accepts any float literal.
func (d Descriptor) Decode(raw string) (time.Time, error) {
	if d.Kind == KindFractionalDay {
		days, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("format %s wants a day count: %w", d.Name, err)
		}
		return d.FromFloat(days)
	}

	ticks, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("format %s wants an integer tick count: %w", d.Name, err)
	}
	return d.FromTicks(ticks)
}

// Encode converts a civil datetime to this format's raw string form.
// Total: backward conversions never fail.
func (d Descriptor) Encode(t time.Time) string {
	if d.Kind == KindFractionalDay {
		return strconv.FormatFloat(d.FloatFromTime(t), 'f', -1, 64)
	}
	ticks, _ := d.TicksFromTime(t) // kind already excludes the error case
	return strconv.FormatInt(ticks, 10)
}

// FromTicks converts an integer tick count to a civil datetime.
// KindFractionalDay descriptors reject integer input here; use FromFloat.
func (d Descriptor) FromTicks(ticks int64) (time.Time, error) {
	switch d.Kind {
	case KindUniform:
		return epoch.EpochToTime(ticks, d.Divisor, d.OffsetSeconds)
	case KindNonUniformMonth32:
		return epoch.GoogleCalendar(ticks)
	default:
		return time.Time{}, fmt.Errorf("format %s is %s, not tick-counted", d.Name, d.Kind)
	}
}

// FromFloat converts a fractional day count to a civil datetime. Only
// meaningful for KindFractionalDay.
func (d Descriptor) FromFloat(days float64) (time.Time, error) {
	if d.Kind != KindFractionalDay {
		return time.Time{}, fmt.Errorf("format %s is %s, not day-counted", d.Name, d.Kind)
	}
	return epoch.ICQ(days)
}

// TicksFromTime converts a civil datetime to this format's tick count.
// KindFractionalDay descriptors have no tick count; use FloatFromTime.
func (d Descriptor) TicksFromTime(t time.Time) (int64, error) {
	switch d.Kind {
	case KindUniform:
		return epoch.TimeToEpoch(t, d.Divisor, d.OffsetSeconds), nil
	case KindNonUniformMonth32:
		return epoch.ToGoogleCalendar(t), nil
	default:
		return 0, fmt.Errorf("format %s is %s, not tick-counted", d.Name, d.Kind)
	}
}

// FloatFromTime converts a civil datetime to a fractional day count.
func (d Descriptor) FloatFromTime(t time.Time) float64 {
	return epoch.ToICQ(t)
}
