package firefly

import (
	"fmt"
	"strings"
	"time"
)

// timeNow is swapped out in tests
var timeNow = time.Now

// Date is a custom type that accepts the date formats Firefly III emits:
// date-only values, RFC3339 timestamps, and timestamps without a zone.
type Date struct {
	time.Time
}

// NewDate wraps a time.Time
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses a date string in any accepted format. Malformed input is
// an error, never silently defaulted.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}

	return Date{}, fmt.Errorf("unable to parse date: %s", s)
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

// String returns the date as a string
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
