package adapterout

import (
	"fmt"
	"time"
)

// The backend emits timestamps either as RFC 3339 or as a bare
// "2006-01-02T15:04:05.999999" without a zone. Treat zoneless values as UTC.
func parseServerTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05.999999", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}
