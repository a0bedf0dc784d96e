package activity

import (
	"testing"
	"time"
)

func TestExpandHRPeriod(t *testing.T) {
	recorded := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	rec := HRPeriodRecord{
		ID:         "period-1",
		EmployeeID: "emp-1",
		Year:       2026,
		Month:      2,
		Checklist: []HRChecklistEntry{
			{ID: "c1", Label: "Attendance review", Points: fptr(9), MaxPoints: fptr(10), RecordedAt: &recorded},
		},
		Overtime: []HROvertimeEntry{
			{ID: "o1", Hours: fptr(3)},
		},
		Absences: []HRAbsenceEntry{
			{ID: "a1", Points: fptr(-5), Reason: "unexcused"},
		},
	}

	acts := ExpandHRPeriod(ScoringConfig{OvertimePointsPerHour: 2}, rec)
	if len(acts) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(acts))
	}

	byID := map[string]Activity{}
	for _, act := range acts {
		byID[act.ID] = act
	}

	checklist := byID["hr-checklist:period-1:c1"]
	if checklist.Points.Earned != 9 || checklist.Points.SuccessRatio != 90 {
		t.Fatalf("unexpected checklist points %+v", checklist.Points)
	}
	if !checklist.OccurredAt.Equal(recorded) {
		t.Fatalf("entry date should win, got %v", checklist.OccurredAt)
	}

	overtime := byID["hr-overtime:period-1:o1"]
	if overtime.Points.Earned != 6 {
		t.Fatalf("overtime should price hours at the configured rate, got %+v", overtime.Points)
	}
	if overtime.Points.SuccessRatio != 100 {
		t.Fatalf("non-negative overtime scores 100, got %v", overtime.Points.SuccessRatio)
	}
	monthStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if !overtime.OccurredAt.Equal(monthStart) {
		t.Fatalf("undated entries should land on the period month start, got %v", overtime.OccurredAt)
	}

	absence := byID["hr-absence:period-1:a1"]
	if absence.Points.Earned != -5 {
		t.Fatalf("absence sign must be preserved, got %+v", absence.Points)
	}
	if absence.Points.SuccessRatio != 0 {
		t.Fatalf("negative absence scores 0, got %v", absence.Points.SuccessRatio)
	}
	if absence.Title != "Absence: unexcused" {
		t.Fatalf("unexpected title %q", absence.Title)
	}
}

func TestExpandHRPeriodOvertimeStoredPointsWin(t *testing.T) {
	rec := HRPeriodRecord{
		ID: "period-1", EmployeeID: "emp-1", Year: 2026, Month: 2,
		Overtime: []HROvertimeEntry{{ID: "o1", Hours: fptr(3), Points: fptr(10)}},
	}
	acts := ExpandHRPeriod(ScoringConfig{OvertimePointsPerHour: 2}, rec)
	if acts[0].Points.Earned != 10 {
		t.Fatalf("stored points should win over the hourly rate, got %+v", acts[0].Points)
	}
}

func TestExpandHRPeriodEmpty(t *testing.T) {
	acts := ExpandHRPeriod(DefaultScoringConfig(), HRPeriodRecord{ID: "period-1", Year: 2026, Month: 2})
	if len(acts) != 0 {
		t.Fatalf("empty document expands to nothing, got %d", len(acts))
	}
}
