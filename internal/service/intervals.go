package service

import (
	"fmt"
	"strconv"
	"strings"
)

// FullDayLabel is the sentinel catalog entry scoping a whole calendar day.
const FullDayLabel = "Full Day"

const lastSlotEnd = "23:59"

// IntervalLabels returns the fixed catalog of day intervals: the full-day
// sentinel followed by the 96 quarter-hour slots in chronological order.
// The final slot ends at 23:59 rather than rolling over to 24:00.
func IntervalLabels() []string {
	labels := make([]string, 0, 97)
	labels = append(labels, FullDayLabel)
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 15, 30, 45} {
			endHour, endMinute := hour, minute+15
			if endMinute == 60 {
				endHour, endMinute = hour+1, 0
			}
			end := fmt.Sprintf("%02d:%02d", endHour, endMinute)
			if endHour >= 24 {
				end = lastSlotEnd
			}
			labels = append(labels, fmt.Sprintf("%02d:%02d - %s", hour, minute, end))
		}
	}
	return labels
}

var catalogLabels = func() map[string]struct{} {
	set := make(map[string]struct{}, 97)
	for _, label := range IntervalLabels() {
		set[label] = struct{}{}
	}
	return set
}()

// parseIntervalLabel splits a catalog slot label into start and end
// minute-of-day offsets. endOfDay is set for the 23:45 slot, whose 23:59 end
// label means "through the last millisecond of the day".
func parseIntervalLabel(label string) (startMinute, endMinute int, endOfDay bool, err error) {
	if _, ok := catalogLabels[label]; !ok || label == FullDayLabel {
		return 0, 0, false, fmt.Errorf("%w: interval %q is not a catalog slot", ErrMalformedSelection, label)
	}

	parts := strings.Split(label, " - ")
	start, err := parseClock(parts[0])
	if err != nil {
		return 0, 0, false, err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return 0, 0, false, err
	}
	return start, end, parts[1] == lastSlotEnd, nil
}

func parseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return 0, fmt.Errorf("%w: bad clock value %q", ErrMalformedSelection, value)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: bad clock value %q", ErrMalformedSelection, value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: bad clock value %q", ErrMalformedSelection, value)
	}
	return hour*60 + minute, nil
}
