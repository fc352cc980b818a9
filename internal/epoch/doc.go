// Package epoch converts numeric timestamp encodings to civil datetimes.
//
// Many systems count time as integer "ticks" since a reference instant:
// Unix counts seconds since 1970, Java milliseconds since 1970, Chrome
// microseconds since 1601, Windows FILETIME hectonanoseconds since 1601,
// and so on. Every such format reduces to a (divisor, offset) pair fed
// through one generic transform:
//
//	unix_seconds = ticks/divisor + offset
//
// Two formats need more than the generic transform. Google Calendar groups
// days into synthetic 32-day months and is repaired into real calendar
// months by AddCalendarMonths. ICQ counts fractional days from 1899-12-30.
//
// All conversions are pure functions. The civil result is a time.Time in
// UTC used as a naive (zone-free) calendar value; no I/O, no shared state,
// no logging. Forward conversions fail with a coded ConversionError when
// the result would leave the supported year range (MinYear..MaxYear)
// instead of wrapping. Backward conversions are total but use the legacy
// floating-point path, which loses precision near 2^53 ticks; see
// the note on each To* function.
package epoch
