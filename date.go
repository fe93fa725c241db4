package blogsite

import (
	"fmt"
	"time"
)

// midnightUTC completes a bare YYYY-MM-DD date into an RFC 3339 timestamp.
const midnightUTC = "T00:00:00+00:00"

// NormalizeDate converts a YYYY-MM-DD date into a timestamp at midnight UTC.
//
// Only bare dates are supported. The suffix is appended unconditionally, so
// input that already has a time of day or an offset fails to parse, as does
// any invalid calendar date such as 2017-13-31 or 2021-02-30.
func NormalizeDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw+midnightUTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrDateParse, raw, err)
	}
	return t, nil
}
