package activity

import "time"

// Raw source-shaped records as the fetchers return them. Optional numeric and
// date fields are pointers; the normalizer is the only place that resolves
// them.

type ChecklistItem struct {
	Label  string   `json:"label"`
	Done   bool     `json:"done"`
	Points *float64 `json:"points,omitempty"`
}

type CriterionScore struct {
	Label  string   `json:"label"`
	Earned *float64 `json:"earned,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

type RoutineTaskRecord struct {
	ID           string
	EmployeeID   string
	Title        string
	PointsEarned *float64
	PointsMax    *float64
	CompletedAt  *time.Time
	DueDate      *time.Time
	CreatedAt    time.Time
	Items        []ChecklistItem
}

type WorkOrderRecord struct {
	ID            string
	Title         string
	Machine       string
	MainWorkerID  string
	BuddyWorkerID string
	MainPoints    *float64
	BuddyPoints   *float64
	MaxPoints     *float64
	CompletedAt   *time.Time
	ScheduledAt   *time.Time
	CreatedAt     time.Time
	Notes         string
}

type QualityEvaluationRecord struct {
	ID          string
	EmployeeID  string
	EvaluatorID string
	Score       *float64
	MaxScore    *float64
	EvaluatedAt *time.Time
	CreatedAt   time.Time
	Criteria    []CriterionScore
	Comments    string
}

type HRChecklistEntry struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Points     *float64   `json:"points,omitempty"`
	MaxPoints  *float64   `json:"maxPoints,omitempty"`
	RecordedAt *time.Time `json:"recordedAt,omitempty"`
}

type HROvertimeEntry struct {
	ID     string     `json:"id"`
	Date   *time.Time `json:"date,omitempty"`
	Hours  *float64   `json:"hours,omitempty"`
	Points *float64   `json:"points,omitempty"`
}

type HRAbsenceEntry struct {
	ID     string     `json:"id"`
	Date   *time.Time `json:"date,omitempty"`
	Points *float64   `json:"points,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

// HRPeriodRecord is the one-per-(employee, year, month) document the HR source
// stores; its three nested lists are expanded into individual Activities.
type HRPeriodRecord struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int
	Checklist  []HRChecklistEntry
	Overtime   []HROvertimeEntry
	Absences   []HRAbsenceEntry
}

// BonusEvaluationRecord also carries folded-in mold-change evaluations: those
// rows keep the evaluation's own id and set FoldedFrom, which is what the
// deduplicator keys on.
type BonusEvaluationRecord struct {
	ID          string
	EmployeeID  string
	Title       string
	Points      *float64
	MaxPoints   *float64
	AwardedAt   *time.Time
	CreatedAt   time.Time
	EvaluatorID string
	Comments    string
	FoldedFrom  string
}

type ControlScoreRecord struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Points     *float64
	MaxPoints  *float64
	ScoredAt   *time.Time
	CreatedAt  time.Time
	Comments   string
}

type MoldChangeRecord struct {
	ID            string
	Mold          string
	MainWorkerID  string
	BuddyWorkerID string
	MainPoints    *float64
	BuddyPoints   *float64
	MaxPoints     *float64
	EvaluatedAt   *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	EvaluatorID   string
	Comments      string
	Criteria      []CriterionScore
}

// ScoringConfig carries the scoring rates the normalizer needs. It is threaded
// in explicitly from configuration rather than read from a global.
type ScoringConfig struct {
	// OvertimePointsPerHour values overtime entries that store hours but no
	// precomputed point total.
	OvertimePointsPerHour float64
	// ControlScoreWeight scales peer control scores into the common scale.
	ControlScoreWeight float64
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{OvertimePointsPerHour: 1, ControlScoreWeight: 1}
}
