package chromium

import (
	"strconv"
	"strings"
	"time"
)

// Chromium timestamps count microseconds since 1601-01-01T00:00:00Z, the
// Windows FILETIME epoch. epochDelta is the seconds between that epoch and
// the Unix one.
const epochDelta = 11644473600

// parseTimestamp converts a raw microsecond count into wall time. Blank,
// zero, unparsable or out-of-range values come back as nil, never as an
// error; the owning entry is kept without a timestamp.
func parseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil
	}

	usec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || usec <= 0 {
		return nil
	}

	// Duration arithmetic would overflow int64 nanoseconds for realistic
	// values, so split into seconds and the sub-second remainder.
	sec := usec/1_000_000 - epochDelta
	nsec := (usec % 1_000_000) * 1_000
	t := time.Unix(sec, nsec).UTC()
	if t.Year() < 1601 || t.Year() > 9999 {
		return nil
	}
	return &t
}
