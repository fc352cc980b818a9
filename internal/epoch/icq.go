package epoch

import (
	"math"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// MaxICQDays is the largest whole-day magnitude accepted by ICQ, in either
// direction. It is the largest day count whose millisecond equivalent still
// fits a signed 64-bit integer; inputs beyond it are rejected up front with
// ErrCodeValueTooLarge instead of letting the duration arithmetic overflow
// underneath.
const MaxICQDays = math.MaxInt64 / millisPerDay

var (
	icqAnchor     = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	icqAnchorUnix = icqAnchor.Unix()
)

// ICQ converts an ICQ timestamp, a possibly fractional count of days since
// 1899-12-30, to a civil datetime.
//
// The fractional part becomes whole milliseconds by multiplying by
// milliseconds-per-day and truncating. Both the day addition and the
// millisecond addition are range-checked independently.
//
// The limit guards magnitude, not just the positive side: a huge negative
// day count would wrap inside AddDate's seconds arithmetic and could land
// back inside the supported years, slipping past the post-hoc check.
func ICQ(days float64) (time.Time, error) {
	intdays := int64(days)
	if intdays > MaxICQDays || intdays < -MaxICQDays {
		return time.Time{}, newValueTooLarge("", "%v days exceeds the %d day limit", days, int64(MaxICQDays))
	}

	milliseconds := int64((days - float64(intdays)) * float64(millisPerDay))

	t := icqAnchor.AddDate(0, 0, int(intdays))
	if y := t.Year(); y < MinYear || y > MaxYear {
		return time.Time{}, newRangeOverflow("", "%d days from 1899-12-30 lands in year %d, outside years %d..%d", intdays, y, MinYear, MaxYear)
	}

	t = t.Add(time.Duration(milliseconds) * time.Millisecond)
	if y := t.Year(); y < MinYear || y > MaxYear {
		return time.Time{}, newRangeOverflow("", "millisecond remainder leaves years %d..%d", MinYear, MaxYear)
	}
	return t, nil
}

// ToICQ converts a civil datetime to an ICQ day count.
//
// The millisecond distance from the anchor is computed from Unix seconds
// rather than time.Time.Sub, whose time.Duration result saturates around
// ±292 years. Total; the float result simply loses precision for dates
// extremely far from the anchor.
func ToICQ(t time.Time) float64 {
	millis := (t.Unix()-icqAnchorUnix)*1000 + int64(t.Nanosecond())/1_000_000
	return float64(millis) / float64(millisPerDay)
}
