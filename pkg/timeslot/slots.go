package timeslot

import "errors"

// ErrInvalidSlotDuration is returned for a non-positive slot duration.
// A zero or negative duration would never advance past the window end.
var ErrInvalidSlotDuration = errors.New("slot duration must be positive")

// GenerateSlots produces the ordered free slot labels for a schedule window.
// Candidates start at startMinute and step by durationMinutes while strictly
// before endMinute; a slot only needs to start inside the window, it is not
// required to fit entirely before the end. A candidate is dropped when its
// formatted label is present in booked.
//
// The result is ascending and contains no duplicates. It is empty when
// startMinute >= endMinute or every candidate is booked.
func GenerateSlots(startMinute, endMinute, durationMinutes int, booked map[string]struct{}) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	slots := []string{}
	for current := startMinute; current < endMinute; current += durationMinutes {
		label := FormatClock(current)
		if _, taken := booked[label]; taken {
			continue
		}
		slots = append(slots, label)
	}

	return slots, nil
}
