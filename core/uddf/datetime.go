package uddf

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// Lexical forms accepted for ISO-8601 date/time content. Zoned forms are
// tried first; the remaining forms carry no zone and decode as local time.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// DateTime is an ISO-8601 timestamp.
//
// Two modes exist: zoned (UTC "Z" or an explicit offset) and local-time
// without zone. A local DateTime holds its wall clock in time.UTC and is
// written back without a zone designator. The lexical layout seen while
// decoding is kept so re-encoding reproduces the same form.
type DateTime struct {
	Time   time.Time
	Local  bool
	layout string
}

// NewUTCDateTime returns a zoned DateTime normalized to UTC.
func NewUTCDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC(), layout: time.RFC3339}
}

// NewLocalDateTime returns a DateTime that keeps t's wall clock and is
// written without a zone.
func NewLocalDateTime(t time.Time) DateTime {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return DateTime{Time: wall, Local: true, layout: "2006-01-02T15:04:05"}
}

// ParseDateTime decodes an ISO-8601 date or date-time.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t, layout: layout}, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return DateTime{Time: t, Local: true, layout: layout}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid ISO-8601 date/time %q", s)
}

// IsZero reports whether no timestamp is set.
func (d DateTime) IsZero() bool { return d.Time.IsZero() }

func (d DateTime) String() string {
	if d.Time.IsZero() {
		return ""
	}
	layout := d.layout
	if layout == "" {
		if d.Local {
			layout = "2006-01-02T15:04:05"
		} else {
			layout = time.RFC3339
		}
	}
	return d.Time.Format(layout)
}

func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DateTime) UnmarshalText(b []byte) error {
	if len(strings.TrimSpace(string(b))) == 0 {
		*d = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Binary is base64 encoded element content such as a dive computer dump.
type Binary []byte

func (b Binary) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out, nil
}

// UnmarshalText decodes standard base64, ignoring embedded whitespace.
func (b *Binary) UnmarshalText(text []byte) error {
	clean := strings.Join(strings.Fields(string(text)), "")
	decoded, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return fmt.Errorf("invalid base64 content: %w", err)
	}
	*b = decoded
	return nil
}
