package activity

import "time"

// Points is always fully populated by the normalizer; downstream code may
// assume every field is finite. SuccessRatio is a percentage in [0,100].
type Points struct {
	Earned       float64 `json:"earned"`
	Maximum      float64 `json:"maximum"`
	SuccessRatio float64 `json:"successRatio"`
}

type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Activity is the common normalized representation of any scored event. One
// source record yields one Activity, except dual-role records (two, one per
// role) and HR period documents (one per nested sub-record).
type Activity struct {
	ID         string         `json:"id"`
	Kind       SourceKind     `json:"sourceKind"`
	Title      string         `json:"title"`
	Category   string         `json:"category"`
	OccurredAt time.Time      `json:"occurredAt"`
	Points     Points         `json:"points"`
	Period     Period         `json:"period"`
	Role       Role           `json:"role,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

type CategoryBucket struct {
	Category      string  `json:"category"`
	TotalPoints   float64 `json:"totalPoints"`
	ActivityCount int     `json:"activityCount"`
	Average       float64 `json:"average"`
}

type Summary struct {
	CategoryBuckets []CategoryBucket `json:"categoryBuckets"`
	TotalActivities int              `json:"totalActivities"`
	TotalPoints     float64          `json:"totalPoints"`
}

// DailyBucket is emitted for every calendar day in the requested window,
// zero-filled when no activity occurred.
type DailyBucket struct {
	DateKey           string             `json:"dateKey"`
	TotalPoints       float64            `json:"totalPoints"`
	ActivityCount     int                `json:"activityCount"`
	Average           float64            `json:"average"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
}

type MonthlyBucket struct {
	DateKey           string             `json:"dateKey"`
	TotalPoints       float64            `json:"totalPoints"`
	ActivityCount     int                `json:"activityCount"`
	Average           float64            `json:"average"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
}

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

type MonthlyOverall struct {
	TotalPoints    float64 `json:"totalPoints"`
	AverageMonthly float64 `json:"averageMonthly"`
	Trend          Trend   `json:"trend"`
}

type MonthlyReport struct {
	MonthlyBuckets []MonthlyBucket `json:"monthlyBuckets"`
	Overall        MonthlyOverall  `json:"overall"`
}

type ListResult struct {
	Activities []Activity `json:"activities"`
	TotalCount int        `json:"totalCount"`
	TotalPages int        `json:"totalPages"`
}

type LeaderboardEntry struct {
	EmployeeID    string  `json:"employeeId"`
	TotalPoints   float64 `json:"totalPoints"`
	ActivityCount int     `json:"activityCount"`
	Rank          int     `json:"rank"`
}

// Detail is the expanded per-item breakdown behind one Activity, resolved by
// re-querying only the source the composite key names.
type Detail struct {
	Activity  Activity       `json:"activity"`
	Evaluator string         `json:"evaluator,omitempty"`
	Comments  string         `json:"comments,omitempty"`
	SubScores []SubScore     `json:"subScores,omitempty"`
	Source    map[string]any `json:"source,omitempty"`
}

type SubScore struct {
	Label  string  `json:"label"`
	Earned float64 `json:"earned"`
	Max    float64 `json:"max"`
}
