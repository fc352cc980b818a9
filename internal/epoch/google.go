package epoch

import "time"

// Google Calendar's encoding is a historical quirk: it counts seconds from
// one day before the Unix epoch, but groups days into fixed 32-day blocks
// ("synthetic months") regardless of real month lengths. The forward
// conversion decomposes under that synthetic calendar and then repairs the
// month component into true calendar months with AddCalendarMonths. This is
// deliberately kept as an isolated special case; the generic transform
// knows nothing about non-uniform months.

const (
	secondsPerDay      = 24 * 60 * 60
	syntheticMonthDays = 32
)

// The Google epoch starts a day early.
var googleAnchor = time.Date(1969, time.December, 31, 0, 0, 0, 0, time.UTC)

// GoogleCalendar converts a Google Calendar timestamp, seconds counted in
// 32-day months from 1969-12-31, to a civil datetime.
//
// Decomposition order matters: days are added to the anchor first as plain
// day arithmetic, then the synthetic months are repaired into calendar
// months, then the remainder seconds land on top. Fails if the repaired
// month count pushes the year outside the supported range.
func GoogleCalendar(num int64) (time.Time, error) {
	totalDays := num / secondsPerDay
	seconds := num % secondsPerDay

	months := totalDays / syntheticMonthDays
	days := totalDays % syntheticMonthDays

	// First, add the days...
	t := googleAnchor.AddDate(0, 0, int(days))

	// ...then the months...
	t, err := AddCalendarMonths(t, months)
	if err != nil {
		return time.Time{}, err
	}

	// ...then the seconds.
	return t.Add(time.Duration(seconds) * time.Second), nil
}

// ToGoogleCalendar converts a civil datetime to a Google Calendar
// timestamp.
//
// No month loop is needed in this direction: the encoding is a direct
// mixed-radix expansion (12 months of 32 days of 24 hours...), so the
// components flatten algebraically.
func ToGoogleCalendar(t time.Time) int64 {
	return (((((int64(t.Year())-1970)*12+int64(t.Month())-1)*
		syntheticMonthDays+int64(t.Day()))*24+
		int64(t.Hour()))*60+
		int64(t.Minute()))*60 +
		int64(t.Second())
}
