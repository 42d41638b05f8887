// Package isotime parses the ISO-8601 timestamps accepted by the API.
package isotime

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidTimestamp = errors.New("timestamp must be ISO-8601, e.g. 2006-01-02T15:04:05+05:00")

var awareLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05-07",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Parse reads s as an ISO-8601 timestamp. A timestamp without an offset is taken to be
// wall-clock time in loc. A space may stand in for the "T" separator and fractional
// seconds are accepted.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
