package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Date wraps time.Time to match the backend's LocalDate wire format.
// The backend serializes dates without a time or zone component, which the
// stock time.Time JSON codec refuses to parse.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := parseFlexible(string(data))
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

// DateTime wraps time.Time to match the backend's LocalDateTime wire format.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Second)}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	t, err := parseFlexible(string(data))
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

// parseFlexible accepts the layouts the backend has been observed to emit:
// plain dates, zoneless date-times (with or without fractional seconds), and
// full RFC 3339 timestamps. Zoneless values are wall-clock times in the
// server's zone, so they parse in time.Local; comparing them against
// time.Now() must not shift them by the UTC offset.
func parseFlexible(raw string) (time.Time, error) {
	s := strings.Trim(raw, `"`)

	layouts := []string{
		dateTimeLayout,
		"2006-01-02T15:04:05.999999999",
		time.RFC3339,
		dateLayout,
		"2006-01-02T15:04",
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}
