package epoch

import "time"

// Supported civil range. Conversions whose result falls outside these years
// fail with ErrCodeRangeOverflow rather than wrapping or clamping. The range
// covers every catalog format's reference epoch (earliest: year 0 for
// Symbian, 1582-10-15 for UUIDv1).
const (
	MinYear = -9999
	MaxYear = 9999
)

var (
	minCivil = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxCivil = time.Date(MaxYear, time.December, 31, 23, 59, 59, 999999999, time.UTC)

	minUnixSeconds = minCivil.Unix()
	maxUnixSeconds = maxCivil.Unix()
)

// DaysInMonth returns the number of days in the given calendar month under
// proleptic Gregorian rules.
//
// Rather than a hard-coded table, the last day is found by constructing the
// first day of the following month and stepping back one day, so the
// leap-year rule is expressed exactly once, by time.Date normalization.
// Fails only if year is outside MinYear..MaxYear.
func DaysInMonth(year int, month time.Month) (int, error) {
	if year < MinYear || year > MaxYear {
		return 0, newRangeOverflow("", "year %d outside supported range %d..%d", year, MinYear, MaxYear)
	}

	// The first day of the next month...
	y, m := year, month+1
	if month == time.December {
		y, m = year+1, time.January
	}
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	// ...is preceded by the last day of the original month.
	return first.AddDate(0, 0, -1).Day(), nil
}

// AddCalendarMonths advances t by n whole calendar months.
//
// The year component absorbs n/12 first; the remaining n%12 months are then
// stepped one at a time, each step adding DaysInMonth(current) days so the
// step size tracks month boundaries (a uniform "add 30 days" would drift).
// The year adjustment must happen before the stepping loop.
//
// A negative remainder performs no monthly steps; only the year adjustment
// applies. Fails if the adjusted year leaves MinYear..MaxYear, or if t's
// day does not exist in the adjusted year (Feb 29 onto a non-leap year).
func AddCalendarMonths(t time.Time, n int64) (time.Time, error) {
	years := n / 12
	rem := n % 12

	year := int64(t.Year()) + years
	if year < MinYear || year > MaxYear {
		return time.Time{}, newRangeOverflow("", "month offset %d lands in year %d, outside supported range %d..%d", n, year, MinYear, MaxYear)
	}

	cur := time.Date(int(year), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	if cur.Day() != t.Day() {
		// time.Date normalized an invalid day (Feb 29 in a non-leap year).
		return time.Time{}, newRangeOverflow("", "day %d does not exist in %04d-%02d", t.Day(), year, t.Month())
	}

	for i := int64(0); i < rem; i++ {
		days, err := DaysInMonth(cur.Year(), cur.Month())
		if err != nil {
			return time.Time{}, err
		}
		cur = cur.AddDate(0, 0, days)
	}
	return cur, nil
}
