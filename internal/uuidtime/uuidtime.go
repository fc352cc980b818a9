// Package uuidtime pulls the timestamp out of version 1 UUIDs.
//
// A version 1 UUID like ca4892ce-4f7d-11ea-b77f-2e728ce88125 carries a
// 60-bit count of hectonanoseconds since 1582-10-15 split across its first
// three groups (time_low, time_mid, time_hi). Reassembled, that count is an
// ordinary uuid_v1 epoch value. Other UUID versions carry no timestamp
// (version 7's millisecond prefix aside) and are rejected here.
package uuidtime

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/epochs/internal/epoch"
)

// Extract parses an RFC 4122 UUID string, requires version 1, and converts
// its embedded timestamp to a civil datetime.
func Extract(s string) (time.Time, error) {
	ticks, err := Ticks(s)
	if err != nil {
		return time.Time{}, err
	}
	return epoch.UUIDv1(ticks)
}

// Ticks parses an RFC 4122 UUID string and returns the version 1 timestamp
// as a hectonanosecond tick count, without converting it.
func Ticks(s string) (int64, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("parsing UUID: %w", err)
	}
	if v := u.Version(); v != 1 {
		return 0, fmt.Errorf("UUID %s is version %d; only version 1 embeds a timestamp", u, v)
	}
	// uuid.Time already counts 100ns intervals since 1582-10-15.
	return int64(u.Time()), nil
}
