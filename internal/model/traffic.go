package model

import "time"

type Camera struct {
	ID   int    `json:"camera_id"`
	Name string `json:"name"`
}

// AggregateCounts holds one counter per canonical category. Instances built
// through NewAggregateCounts are always fully populated, zeros included.
type AggregateCounts map[Category]int64

func NewAggregateCounts() AggregateCounts {
	counts := make(AggregateCounts, len(Categories))
	for _, category := range Categories {
		counts[category] = 0
	}
	return counts
}

// CountBucket is one pre-aggregated interval from the counts service,
// typically 15 minutes wide. Buckets are read-only once fetched.
type CountBucket struct {
	BucketStart time.Time       `json:"bucket_start"`
	Counts      AggregateCounts `json:"counts"`
}

// DetectionEvent is a single observed vehicle crossing. Class carries the
// detector's raw label and must go through Categorize before aggregation.
type DetectionEvent struct {
	Timestamp  time.Time `json:"ts"`
	Class      string    `json:"vehicle_class"`
	Confidence *float64  `json:"conf,omitempty"`
	Direction  string    `json:"direction,omitempty"`
}

// TimeWindow is a half-open [From, To) range. The full-day and end-of-day
// interval cases close at 23:59:59.999 instead.
type TimeWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Metrics struct {
	PerCategory AggregateCounts `json:"per_category"`
	Total       int64           `json:"total"`
}

// TimeSeriesPoint is one chart point: the bucket's counts plus an HH:MM label
// for the axis and the original timestamp for tooltips.
type TimeSeriesPoint struct {
	Label       string          `json:"label"`
	BucketStart time.Time       `json:"bucket_start"`
	Counts      AggregateCounts `json:"counts"`
}

// Snapshot is the display-ready result of one resolution cycle. Recomputed
// whole on every cycle and swapped in atomically, never mutated in place.
type Snapshot struct {
	Selection   Selection         `json:"selection"`
	Window      TimeWindow        `json:"window"`
	Metrics     Metrics           `json:"metrics"`
	Series      []TimeSeriesPoint `json:"series"`
	Sequence    uint64            `json:"sequence"`
	GeneratedAt time.Time         `json:"generated_at"`
	LastError   string            `json:"last_error,omitempty"`
}
