package model

import "time"

type SelectionMode string

const (
	ModeLive        SelectionMode = "live"
	ModeLastHour    SelectionMode = "last_hour"
	ModeLast6Hours  SelectionMode = "last_6_hours"
	ModeLast24Hours SelectionMode = "last_24_hours"
	ModeSelectDate  SelectionMode = "select_date"
)

// Selection is the user-chosen scope driving window resolution. Date and
// Interval are meaningful only for ModeSelectDate; CameraID nil means all
// cameras.
type Selection struct {
	Mode        SelectionMode `json:"mode"`
	Date        time.Time     `json:"date,omitempty"`
	Interval    string        `json:"interval,omitempty"`
	CameraID    *int          `json:"camera_id,omitempty"`
	AutoRefresh bool          `json:"auto_refresh"`
}

func (s Selection) IsLive() bool {
	return s.Mode == ModeLive
}

// Polls reports whether the scheduler should re-resolve this selection on its
// fixed cadence. Only live mode with auto-refresh enabled polls.
func (s Selection) Polls() bool {
	return s.Mode == ModeLive && s.AutoRefresh
}
