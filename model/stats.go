package model

// DailyBucket holds one day's aggregated metrics for a tracker. A weekly
// chart series is always exactly 7 buckets, oldest first, ending today;
// days without entries carry zero values rather than being omitted.
type DailyBucket struct {
	DayLabel string             `json:"day"`  // short weekday name, e.g. "Mon"
	Date     string             `json:"date"` // yyyy-mm-dd
	Values   map[string]float64 `json:"values"`
}

// SummaryStat is a single labeled figure on a tracker's summary card.
// Target and Percent are only set for goal-backed stats.
type SummaryStat struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Target  string `json:"target,omitempty"`
	Percent *int   `json:"percent,omitempty"`
}

// DistributionSlice is one slice of a categorical breakdown (pie charts).
type DistributionSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
