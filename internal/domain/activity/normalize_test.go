package activity

import (
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

var (
	day1 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	day3 = time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
)

func TestNormalizeRoutineTask(t *testing.T) {
	act := NormalizeRoutineTask(RoutineTaskRecord{
		ID:           "rec-1",
		EmployeeID:   "emp-1",
		Title:        "Morning checklist",
		PointsEarned: fptr(8),
		PointsMax:    fptr(10),
		CompletedAt:  tptr(day2),
		DueDate:      tptr(day3),
		CreatedAt:    day1,
	})

	if act.ID != "routine:rec-1" {
		t.Fatalf("unexpected id %q", act.ID)
	}
	if !act.OccurredAt.Equal(day2) {
		t.Fatalf("completion date should win, got %v", act.OccurredAt)
	}
	if act.Points.Earned != 8 || act.Points.Maximum != 10 || act.Points.SuccessRatio != 80 {
		t.Fatalf("unexpected points %+v", act.Points)
	}
	if act.Period.Month != 3 || act.Period.Year != 2026 {
		t.Fatalf("unexpected period %+v", act.Period)
	}
	if act.Role != RoleNone {
		t.Fatalf("routine tasks carry no role, got %q", act.Role)
	}
}

func TestCanonicalDateFallsBack(t *testing.T) {
	act := NormalizeRoutineTask(RoutineTaskRecord{ID: "rec-1", DueDate: tptr(day2), CreatedAt: day1})
	if !act.OccurredAt.Equal(day2) {
		t.Fatalf("due date should win over created, got %v", act.OccurredAt)
	}

	act = NormalizeRoutineTask(RoutineTaskRecord{ID: "rec-1", CreatedAt: day1})
	if !act.OccurredAt.Equal(day1) {
		t.Fatalf("created should be the final fallback, got %v", act.OccurredAt)
	}
}

func TestNormalizeRoutineTaskMissingPoints(t *testing.T) {
	act := NormalizeRoutineTask(RoutineTaskRecord{ID: "rec-1", CreatedAt: day1})
	if act.Points.Earned != 0 || act.Points.Maximum != 0 || act.Points.SuccessRatio != 0 {
		t.Fatalf("missing points must coerce to zero, got %+v", act.Points)
	}
}

func TestNormalizeWorkOrderSplit(t *testing.T) {
	rec := WorkOrderRecord{
		ID:            "wo-1",
		Title:         "Press changeover",
		MainWorkerID:  "emp-main",
		BuddyWorkerID: "emp-buddy",
		MainPoints:    fptr(20),
		BuddyPoints:   fptr(15),
		MaxPoints:     fptr(25),
		CompletedAt:   tptr(day2),
		CreatedAt:     day1,
	}

	mainActs := NormalizeWorkOrder(rec, "emp-main")
	if len(mainActs) != 1 {
		t.Fatalf("expected 1 activity for main, got %d", len(mainActs))
	}
	if mainActs[0].Kind != KindWorkOrderMain || mainActs[0].Role != RoleMain {
		t.Fatalf("unexpected main activity %+v", mainActs[0])
	}
	if mainActs[0].Points.Earned != 20 || mainActs[0].Points.Maximum != 25 {
		t.Fatalf("unexpected main points %+v", mainActs[0].Points)
	}

	buddyActs := NormalizeWorkOrder(rec, "emp-buddy")
	if len(buddyActs) != 1 {
		t.Fatalf("expected 1 activity for buddy, got %d", len(buddyActs))
	}
	if buddyActs[0].Kind != KindWorkOrderBuddy || buddyActs[0].Role != RoleBuddy {
		t.Fatalf("unexpected buddy activity %+v", buddyActs[0])
	}
	if buddyActs[0].Points.Earned != 15 || buddyActs[0].Points.Maximum != 25 {
		t.Fatalf("unexpected buddy points %+v", buddyActs[0].Points)
	}

	if mainActs[0].ID == buddyActs[0].ID {
		t.Fatal("split activities must never share an id")
	}

	if acts := NormalizeWorkOrder(rec, "emp-other"); len(acts) != 0 {
		t.Fatalf("uninvolved user should get nothing, got %d", len(acts))
	}
}

func TestNormalizeWorkOrderNoBuddy(t *testing.T) {
	rec := WorkOrderRecord{ID: "wo-1", MainWorkerID: "emp-1", MainPoints: fptr(10), MaxPoints: fptr(10), CreatedAt: day1}
	if acts := NormalizeWorkOrder(rec, "emp-1"); len(acts) != 1 || acts[0].Kind != KindWorkOrderMain {
		t.Fatalf("expected only the main activity, got %+v", acts)
	}
}

func TestNormalizeWorkOrderBothRoles(t *testing.T) {
	rec := WorkOrderRecord{
		ID:            "wo-1",
		MainWorkerID:  "emp-1",
		BuddyWorkerID: "emp-1",
		MainPoints:    fptr(10),
		BuddyPoints:   fptr(5),
		MaxPoints:     fptr(10),
		CreatedAt:     day1,
	}
	acts := NormalizeWorkOrder(rec, "emp-1")
	if len(acts) != 2 {
		t.Fatalf("user holding both roles gets two activities, got %d", len(acts))
	}
	if acts[0].ID == acts[1].ID {
		t.Fatal("the two role activities must have distinct ids")
	}
}

func TestNormalizeControlAppliesWeight(t *testing.T) {
	rec := ControlScoreRecord{ID: "cs-1", EmployeeID: "emp-1", Points: fptr(4), MaxPoints: fptr(5), CreatedAt: day1}

	act := NormalizeControl(ScoringConfig{ControlScoreWeight: 2}, rec)
	if act.Points.Earned != 8 || act.Points.Maximum != 10 {
		t.Fatalf("weight should scale both fields, got %+v", act.Points)
	}
	if act.Points.SuccessRatio != 80 {
		t.Fatalf("ratio should be unchanged by weighting, got %v", act.Points.SuccessRatio)
	}

	act = NormalizeControl(ScoringConfig{}, rec)
	if act.Points.Earned != 4 {
		t.Fatalf("zero weight should fall back to 1, got %+v", act.Points)
	}
}

func TestNormalizeBonusCarriesFoldedFrom(t *testing.T) {
	act := NormalizeBonus(BonusEvaluationRecord{ID: "mc-1", Title: "Mold change M7", FoldedFrom: "mc-1", CreatedAt: day1})
	if act.Meta["foldedFrom"] != "mc-1" {
		t.Fatalf("folded origin should be carried in meta, got %+v", act.Meta)
	}
}
