package service

import (
	"errors"
	"fmt"
	"time"

	"traffic-dashboard/internal/model"
)

// ErrMalformedSelection marks a selection the resolver cannot honor: an
// unknown mode, a select_date without a date, or an interval label outside
// the catalog. This is a caller bug, so resolution fails instead of guessing.
var ErrMalformedSelection = errors.New("malformed selection")

// ResolveWindow turns a selection into a concrete time window. The caller
// supplies now explicitly and captures it once per resolution cycle, so the
// window cannot drift while the rest of the cycle runs.
func ResolveWindow(sel model.Selection, now time.Time) (model.TimeWindow, error) {
	switch sel.Mode {
	case model.ModeLive, model.ModeLastHour:
		return model.TimeWindow{From: now.Add(-time.Hour), To: now}, nil
	case model.ModeLast6Hours:
		return model.TimeWindow{From: now.Add(-6 * time.Hour), To: now}, nil
	case model.ModeLast24Hours:
		return model.TimeWindow{From: now.Add(-24 * time.Hour), To: now}, nil
	case model.ModeSelectDate:
		return resolveDateWindow(sel)
	default:
		return model.TimeWindow{}, fmt.Errorf("%w: unknown mode %q", ErrMalformedSelection, sel.Mode)
	}
}

func resolveDateWindow(sel model.Selection) (model.TimeWindow, error) {
	if sel.Date.IsZero() {
		return model.TimeWindow{}, fmt.Errorf("%w: select_date requires a date", ErrMalformedSelection)
	}

	year, month, day := sel.Date.Date()
	loc := sel.Date.Location()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, loc)
	dayEnd := time.Date(year, month, day, 23, 59, 59, 999_000_000, loc)

	if sel.Interval == FullDayLabel {
		return model.TimeWindow{From: dayStart, To: dayEnd}, nil
	}

	startMinute, endMinute, endOfDay, err := parseIntervalLabel(sel.Interval)
	if err != nil {
		return model.TimeWindow{}, err
	}

	window := model.TimeWindow{
		From: time.Date(year, month, day, startMinute/60, startMinute%60, 0, 0, loc),
		To:   time.Date(year, month, day, endMinute/60, endMinute%60, 0, 0, loc),
	}
	// The 23:45 slot is labeled "23:45 - 23:59"; its 23:59 end means the whole
	// remainder of the day, not 23:59:00.000.
	if endOfDay {
		window.To = dayEnd
	}
	return window, nil
}
