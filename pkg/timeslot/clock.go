// Package timeslot implements the 12-hour clock arithmetic and slot
// generation used by the appointment availability engine. Slot labels are
// canonical strings ("9:00 AM", "2:30 PM"); booking and availability must
// agree on this format byte-for-byte, since booked-slot lookups are string
// membership tests.
package timeslot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidClock is returned when a clock string does not match the
	// canonical "H:MM AM|PM" form.
	ErrInvalidClock = errors.New("invalid clock time, expected H:MM AM|PM")

	clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)
)

// ParseClock parses a canonical 12-hour clock string into a minute-of-day
// integer in [0, 1440). Hour 12 AM maps to 0, hour 12 PM maps to 720.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	if m[3] == "PM" && hour != 12 {
		hour += 12
	}
	if m[3] == "AM" && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}

// FormatClock is the inverse of ParseClock. The hour carries no leading
// zero, minutes are always two digits.
func FormatClock(minuteOfDay int) string {
	minuteOfDay = ((minuteOfDay % minutesPerDay) + minutesPerDay) % minutesPerDay

	hour := minuteOfDay / 60
	minute := minuteOfDay % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}
