package activity

import "time"

// Canonical date selection per source kind. Sources carry several candidate
// date fields; the first non-nil, non-zero one in this order wins, with the
// record's creation time as the final fallback:
//
//	routine task:      completed_at, due_date, created_at
//	work order:        completed_at, scheduled_at, created_at
//	quality eval:      evaluated_at, created_at
//	hr sub-record:     the entry's own date, else first day of the period month
//	bonus eval:        awarded_at, created_at
//	control score:     scored_at, created_at
//	mold change eval:  evaluated_at, completed_at, created_at
func canonicalDate(fallback time.Time, candidates ...*time.Time) time.Time {
	for _, c := range candidates {
		if c != nil && !c.IsZero() {
			return *c
		}
	}
	return fallback
}

func periodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

func newActivity(key Key, title string, occurredAt time.Time, earned, maximum float64) Activity {
	return Activity{
		ID:         key.String(),
		Kind:       key.Kind,
		Title:      title,
		Category:   key.Kind.Category(),
		OccurredAt: occurredAt,
		Points: Points{
			Earned:       round2(earned),
			Maximum:      round2(maximum),
			SuccessRatio: ratio(earned, maximum),
		},
		Period: periodOf(occurredAt),
		Role:   key.Kind.Role(),
	}
}

func NormalizeRoutineTask(rec RoutineTaskRecord) Activity {
	occurred := canonicalDate(rec.CreatedAt, rec.CompletedAt, rec.DueDate)
	act := newActivity(Key{Kind: KindRoutineTask, RecordID: rec.ID}, rec.Title,
		occurred, orZero(rec.PointsEarned), orZero(rec.PointsMax))
	act.Meta = map[string]any{"itemCount": len(rec.Items)}
	return act
}

// NormalizeWorkOrder performs the buddy split: the requesting user gets one
// Activity per role they hold on the order, each with that role's own stored
// point total and the order's shared maximum. A record with no buddy yields
// only the main Activity.
func NormalizeWorkOrder(rec WorkOrderRecord, userID string) []Activity {
	occurred := canonicalDate(rec.CreatedAt, rec.CompletedAt, rec.ScheduledAt)
	maximum := orZero(rec.MaxPoints)

	var out []Activity
	if rec.MainWorkerID == userID {
		act := newActivity(Key{Kind: KindWorkOrderMain, RecordID: rec.ID}, rec.Title,
			occurred, orZero(rec.MainPoints), maximum)
		act.Meta = map[string]any{"machine": rec.Machine}
		out = append(out, act)
	}
	if rec.BuddyWorkerID != "" && rec.BuddyWorkerID == userID {
		act := newActivity(Key{Kind: KindWorkOrderBuddy, RecordID: rec.ID}, rec.Title,
			occurred, orZero(rec.BuddyPoints), maximum)
		act.Meta = map[string]any{"machine": rec.Machine}
		out = append(out, act)
	}
	return out
}

func NormalizeQuality(rec QualityEvaluationRecord) Activity {
	occurred := canonicalDate(rec.CreatedAt, rec.EvaluatedAt)
	act := newActivity(Key{Kind: KindQuality, RecordID: rec.ID}, "Quality evaluation",
		occurred, orZero(rec.Score), orZero(rec.MaxScore))
	act.Meta = map[string]any{"evaluator": rec.EvaluatorID, "criteriaCount": len(rec.Criteria)}
	return act
}

func NormalizeBonus(rec BonusEvaluationRecord) Activity {
	occurred := canonicalDate(rec.CreatedAt, rec.AwardedAt)
	title := rec.Title
	if title == "" {
		title = "Bonus evaluation"
	}
	act := newActivity(Key{Kind: KindBonus, RecordID: rec.ID}, title,
		occurred, orZero(rec.Points), orZero(rec.MaxPoints))
	if rec.FoldedFrom != "" {
		act.Meta = map[string]any{"foldedFrom": rec.FoldedFrom}
	}
	return act
}

func NormalizeControl(cfg ScoringConfig, rec ControlScoreRecord) Activity {
	occurred := canonicalDate(rec.CreatedAt, rec.ScoredAt)
	weight := cfg.ControlScoreWeight
	if weight <= 0 {
		weight = 1
	}
	act := newActivity(Key{Kind: KindControl, RecordID: rec.ID}, "Control score",
		occurred, orZero(rec.Points)*weight, orZero(rec.MaxPoints)*weight)
	act.Meta = map[string]any{"reviewer": rec.ReviewerID}
	return act
}

// NormalizeMoldChange splits exactly like work orders.
func NormalizeMoldChange(rec MoldChangeRecord, userID string) []Activity {
	occurred := canonicalDate(rec.CreatedAt, rec.EvaluatedAt, rec.CompletedAt)
	maximum := orZero(rec.MaxPoints)
	title := "Mold change"
	if rec.Mold != "" {
		title = "Mold change " + rec.Mold
	}

	var out []Activity
	if rec.MainWorkerID == userID {
		act := newActivity(Key{Kind: KindMoldChangeMain, RecordID: rec.ID}, title,
			occurred, orZero(rec.MainPoints), maximum)
		act.Meta = map[string]any{"evaluator": rec.EvaluatorID}
		out = append(out, act)
	}
	if rec.BuddyWorkerID != "" && rec.BuddyWorkerID == userID {
		act := newActivity(Key{Kind: KindMoldChangeBuddy, RecordID: rec.ID}, title,
			occurred, orZero(rec.BuddyPoints), maximum)
		act.Meta = map[string]any{"evaluator": rec.EvaluatorID}
		out = append(out, act)
	}
	return out
}
