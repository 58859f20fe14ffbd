package uddf

import (
	"encoding/xml"
	"testing"
	"time"
)

func TestParseDateTimeModes(t *testing.T) {
	tests := []struct {
		input     string
		wantLocal bool
		wantUTC   time.Time
	}{
		{"2024-05-01T10:00:00Z", false, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T12:00:00+02:00", false, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T10:00Z", false, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T10:00:00", true, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T10:00", true, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01", true, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"  2024-05-01T10:00:00.5 ", true, time.Date(2024, 5, 1, 10, 0, 0, 5e8, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDateTime(tt.input)
			if err != nil {
				t.Fatalf("ParseDateTime(%q) error: %v", tt.input, err)
			}
			if d.Local != tt.wantLocal {
				t.Errorf("Local = %v, want %v", d.Local, tt.wantLocal)
			}
			if !d.Time.Equal(tt.wantUTC) {
				t.Errorf("Time = %v, want %v", d.Time, tt.wantUTC)
			}
		})
	}
}

func TestDateTimeReencodesLexicalForm(t *testing.T) {
	inputs := []string{
		"2024-05-01T10:00:00Z",
		"2024-05-01T12:00:00+02:00",
		"2024-05-01T10:00:00",
		"2024-05-01T10:00",
		"2024-05-01",
		"2024-05-01T10:00:00.25",
	}
	for _, in := range inputs {
		var d DateTime
		if err := d.UnmarshalText([]byte(in)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", in, err)
		}
		out, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		if string(out) != in {
			t.Errorf("re-encoded %q as %q", in, out)
		}
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, in := range []string{"yesterday", "2024-13-01", "01.05.2024"} {
		if _, err := ParseDateTime(in); err == nil {
			t.Errorf("ParseDateTime(%q) should fail", in)
		}
	}
}

func TestDateTimeConstructors(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	wall := time.Date(2023, 8, 14, 9, 30, 0, 0, cet)

	utc := NewUTCDateTime(wall)
	if got := utc.String(); got != "2023-08-14T08:30:00Z" {
		t.Errorf("NewUTCDateTime = %q", got)
	}

	local := NewLocalDateTime(wall)
	if !local.Local {
		t.Error("NewLocalDateTime should be local")
	}
	if got := local.String(); got != "2023-08-14T09:30:00" {
		t.Errorf("NewLocalDateTime = %q", got)
	}

	var zero DateTime
	if !zero.IsZero() || zero.String() != "" {
		t.Error("zero DateTime should be empty")
	}
}

func TestDateTimeAsAttributeAndElement(t *testing.T) {
	type trip struct {
		XMLName xml.Name  `xml:"dateoftrip"`
		Start   *DateTime `xml:"startdate,attr,omitempty"`
		When    *DateTime `xml:"datetime,omitempty"`
	}
	input := `<dateoftrip startdate="2024-02-01"><datetime>2024-02-03T08:15:00Z</datetime></dateoftrip>`

	var v trip
	if err := xml.Unmarshal([]byte(input), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.Start == nil || !v.Start.Local {
		t.Fatalf("startdate = %+v, want local date", v.Start)
	}
	out, err := xml.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != input {
		t.Errorf("got %s", out)
	}
}

func TestBinaryBase64(t *testing.T) {
	raw := Binary{0x00, 0x01, 0xfe, 0xff, 'U', 'D', 'D', 'F'}
	text, err := raw.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "AAH+/1VEREY=" {
		t.Errorf("MarshalText = %q", text)
	}

	var decoded Binary
	if err := decoded.UnmarshalText([]byte("\n  AAH+/1VE\n  REY=\n")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if string(decoded) != string(raw) {
		t.Errorf("decoded %x, want %x", decoded, raw)
	}

	if err := decoded.UnmarshalText([]byte("not*base64")); err == nil {
		t.Error("expected error for invalid base64")
	}
}
