package epoch

import "time"

const nanosPerSecond = 1_000_000_000

// EpochToTime converts a tick count to a civil datetime. divisor is the
// number of ticks per second; offset is the signed shift in seconds between
// the format's reference epoch and the Unix epoch, with the convention
//
//	unix_seconds = ticks/divisor + offset
//
// Division truncates toward zero, Go's native semantics, which matters for
// negative tick counts. The sub-second remainder carries the same sign and
// scales exactly to nanoseconds because every supported divisor evenly
// divides one billion; time.Unix normalizes a negative nanosecond argument.
// Fails with ErrCodeRangeOverflow if the offset addition overflows int64 or
// the result leaves the supported year range.
func EpochToTime(ticks, divisor, offset int64) (time.Time, error) {
	q := ticks / divisor
	nsec := (ticks % divisor) * (nanosPerSecond / divisor)

	sec, ok := addInt64(q, offset)
	if !ok {
		return time.Time{}, newRangeOverflow("", "offset %d overflows %d seconds", offset, q)
	}
	// A negative remainder normalizes one second down, so at the lower
	// bound exactly it would land just before MinYear.
	if sec < minUnixSeconds || sec > maxUnixSeconds || (sec == minUnixSeconds && nsec < 0) {
		return time.Time{}, newRangeOverflow("", "%d seconds from the Unix epoch is outside years %d..%d", sec, MinYear, MaxYear)
	}
	return time.Unix(sec, nsec).UTC(), nil
}

// TimeToEpoch converts a civil datetime back to a tick count, the exact
// inverse of EpochToTime over the same (divisor, offset) pair.
//
// The computation deliberately goes through float64 and truncates toward
// zero, preserving the legacy rounding behavior existing callers depend on.
// float64 holds 53 bits of mantissa, so tick counts beyond ~2^53 (dates far
// from the reference epoch at nanosecond resolution) lose precision; every
// practical timestamp through year 9999 at second resolution round-trips
// exactly.
func TimeToEpoch(t time.Time, divisor, offset int64) int64 {
	frac := float64(t.Nanosecond()) / float64(nanosPerSecond)
	sec := float64(t.Unix())
	return int64(float64(divisor) * (sec + frac - float64(offset)))
}

// addInt64 returns a+b and reports whether the addition stayed within int64.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
