package cli

import (
	"fmt"
	"time"
)

// Accepted civil datetime layouts, tried in order. All naive: no zone
// designators, values taken as-is.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseDateTime parses a naive civil datetime string.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q (want YYYY-MM-DD[ HH:MM:SS[.fraction]])", s)
}

// FormatDateTime renders a civil datetime with the sub-second fraction at
// millisecond, microsecond, or nanosecond width, whichever is shortest
// without losing digits; whole seconds carry no fraction at all. This
// matches the display convention of the systems these timestamps come from
// (".057", ".559001", ".559001600"), where Go's ".999999999" verb would
// trim trailing zeros inside the fraction.
func FormatDateTime(t time.Time) string {
	base := t.Format("2006-01-02 15:04:05")
	ns := t.Nanosecond()
	switch {
	case ns == 0:
		return base
	case ns%1_000_000 == 0:
		return fmt.Sprintf("%s.%03d", base, ns/1_000_000)
	case ns%1_000 == 0:
		return fmt.Sprintf("%s.%06d", base, ns/1_000)
	default:
		return fmt.Sprintf("%s.%09d", base, ns)
	}
}
