package epoch

import "time"

// Seconds between each format's reference epoch and the Unix epoch, under
// the convention unix_seconds = ticks/divisor + offset.
const (
	chromeOffset      = -11_644_473_600 // 1601-01-01
	cocoaOffset       = 978_307_200     // 2001-01-01
	symbianOffset     = -62_167_219_200 // year 0
	uuidOffset        = -12_219_292_800 // 1582-10-15, Gregorian reform
	windowsDateOffset = -62_135_596_800 // 0001-01-01
	windowsFileOffset = -11_644_473_600 // 1601-01-01
)

// APFS time is the number of nanoseconds since the Unix epoch.
func APFS(num int64) (time.Time, error) {
	return EpochToTime(num, 1_000_000_000, 0)
}

// ToAPFS converts the given datetime to an APFS time.
func ToAPFS(t time.Time) int64 {
	return TimeToEpoch(t, 1_000_000_000, 0)
}

// Chrome time is the number of microseconds since 1601-01-01, which is
// 11,644,473,600 seconds before the Unix epoch.
func Chrome(num int64) (time.Time, error) {
	return EpochToTime(num, 1_000_000, chromeOffset)
}

// ToChrome converts the given datetime to a Chrome time.
func ToChrome(t time.Time) int64 {
	return TimeToEpoch(t, 1_000_000, chromeOffset)
}

// Cocoa time is the number of seconds since 2001-01-01, which is
// 978,307,200 seconds after the Unix epoch.
func Cocoa(num int64) (time.Time, error) {
	return EpochToTime(num, 1, cocoaOffset)
}

// ToCocoa converts the given datetime to a Cocoa time.
func ToCocoa(t time.Time) int64 {
	return TimeToEpoch(t, 1, cocoaOffset)
}

// Java time is the number of milliseconds since the Unix epoch.
func Java(num int64) (time.Time, error) {
	return EpochToTime(num, 1000, 0)
}

// ToJava converts the given datetime to a Java time.
func ToJava(t time.Time) int64 {
	return TimeToEpoch(t, 1000, 0)
}

// Mozilla time (Firefox places.sqlite and friends) is the number of
// microseconds since the Unix epoch.
func Mozilla(num int64) (time.Time, error) {
	return EpochToTime(num, 1_000_000, 0)
}

// ToMozilla converts the given datetime to a Mozilla time.
func ToMozilla(t time.Time) int64 {
	return TimeToEpoch(t, 1_000_000, 0)
}

// Symbian time is the number of microseconds since the year 0, which is
// 62,167,219,200 seconds before the Unix epoch.
func Symbian(num int64) (time.Time, error) {
	return EpochToTime(num, 1_000_000, symbianOffset)
}

// ToSymbian converts the given datetime to a Symbian time.
func ToSymbian(t time.Time) int64 {
	return TimeToEpoch(t, 1_000_000, symbianOffset)
}

// Unix time is the number of seconds since 1970-01-01.
func Unix(num int64) (time.Time, error) {
	return EpochToTime(num, 1, 0)
}

// ToUnix converts the given datetime to a Unix time.
func ToUnix(t time.Time) int64 {
	return TimeToEpoch(t, 1, 0)
}

// UUIDv1 time (RFC 4122) is the number of hectonanoseconds (100 ns) since
// 1582-10-15, which is 12,219,292,800 seconds before the Unix epoch. The
// tick count is the 60-bit timestamp field buried inside a version 1 UUID;
// see the uuidtime package for extracting it from the string form.
func UUIDv1(num int64) (time.Time, error) {
	return EpochToTime(num, 10_000_000, uuidOffset)
}

// ToUUIDv1 converts the given datetime to a UUIDv1 time.
func ToUUIDv1(t time.Time) int64 {
	return TimeToEpoch(t, 10_000_000, uuidOffset)
}

// WindowsDate time (.NET System.DateTime.Ticks) is the number of
// hectonanoseconds (100 ns) since 0001-01-01, which is 62,135,596,800
// seconds before the Unix epoch.
func WindowsDate(num int64) (time.Time, error) {
	return EpochToTime(num, 10_000_000, windowsDateOffset)
}

// ToWindowsDate converts the given datetime to a WindowsDate time.
func ToWindowsDate(t time.Time) int64 {
	return TimeToEpoch(t, 10_000_000, windowsDateOffset)
}

// WindowsFile time (NTFS FILETIME) is the number of hectonanoseconds
// (100 ns) since 1601-01-01, which is 11,644,473,600 seconds before the
// Unix epoch.
func WindowsFile(num int64) (time.Time, error) {
	return EpochToTime(num, 10_000_000, windowsFileOffset)
}

// ToWindowsFile converts the given datetime to a WindowsFile time.
func ToWindowsFile(t time.Time) int64 {
	return TimeToEpoch(t, 10_000_000, windowsFileOffset)
}
