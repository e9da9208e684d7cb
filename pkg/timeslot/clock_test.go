package timeslot

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"1:00 AM", 60},
		{"9:00 AM", 540},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:01 PM", 721},
		{"1:00 PM", 780},
		{"2:30 PM", 870},
		{"11:59 PM", 1439},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	inputs := []string{
		"",
		"9:00",
		"9:00AM",
		"09:0 AM",
		"9:60 AM",
		"0:30 AM",
		"13:00 PM",
		"9:00 am",
		"9:00 XM",
		" 9:00 AM",
		"9:00 AM ",
		"nine o'clock",
	}

	for _, input := range inputs {
		if _, err := ParseClock(input); !errors.Is(err, ErrInvalidClock) {
			t.Errorf("ParseClock(%q) error = %v, want ErrInvalidClock", input, err)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "12:00 AM"},
		{30, "12:30 AM"},
		{60, "1:00 AM"},
		{540, "9:00 AM"},
		{719, "11:59 AM"},
		{720, "12:00 PM"},
		{780, "1:00 PM"},
		{870, "2:30 PM"},
		{1439, "11:59 PM"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.input); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	// parse(format(m)) == m for every minute of the day
	for m := 0; m < 1440; m++ {
		label := FormatClock(m)
		got, err := ParseClock(label)
		if err != nil {
			t.Fatalf("ParseClock(FormatClock(%d)) error: %v", m, err)
		}
		if got != m {
			t.Fatalf("round trip failed: %d -> %q -> %d", m, label, got)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	// format(parse(s)) == s for canonical inputs
	inputs := []string{"12:00 AM", "6:05 AM", "11:59 AM", "12:00 PM", "3:45 PM", "11:59 PM"}
	for _, input := range inputs {
		m, err := ParseClock(input)
		if err != nil {
			t.Fatalf("ParseClock(%q) error: %v", input, err)
		}
		if got := FormatClock(m); got != input {
			t.Errorf("format round trip failed: %q -> %d -> %q", input, m, got)
		}
	}
}
