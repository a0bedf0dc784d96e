package activity

import "time"

// ExpandHRPeriod turns one HR period document into one Activity per nested
// sub-record. The composite key pairs the period document's id with the
// sub-record's own id, so expanded entries never collide. Absence entries keep
// their stored (negative) sign; checklist entries score against their own
// maximum, while overtime and absence use the sign rule because they have no
// natural maximum.
func ExpandHRPeriod(cfg ScoringConfig, rec HRPeriodRecord) []Activity {
	monthStart := time.Date(rec.Year, time.Month(rec.Month), 1, 0, 0, 0, 0, time.UTC)
	out := make([]Activity, 0, len(rec.Checklist)+len(rec.Overtime)+len(rec.Absences))

	for _, entry := range rec.Checklist {
		occurred := canonicalDate(monthStart, entry.RecordedAt)
		title := entry.Label
		if title == "" {
			title = "HR checklist item"
		}
		act := newActivity(Key{Kind: KindHRChecklist, RecordID: rec.ID, SubID: entry.ID},
			title, occurred, orZero(entry.Points), orZero(entry.MaxPoints))
		out = append(out, act)
	}

	rate := cfg.OvertimePointsPerHour
	if rate <= 0 {
		rate = 1
	}
	for _, entry := range rec.Overtime {
		occurred := canonicalDate(monthStart, entry.Date)
		earned := orZero(entry.Points)
		if entry.Points == nil {
			earned = orZero(entry.Hours) * rate
		}
		act := newActivity(Key{Kind: KindHROvertime, RecordID: rec.ID, SubID: entry.ID},
			"Overtime", occurred, earned, 0)
		act.Points.SuccessRatio = signRatio(act.Points.Earned)
		act.Meta = map[string]any{"hours": orZero(entry.Hours)}
		out = append(out, act)
	}

	for _, entry := range rec.Absences {
		occurred := canonicalDate(monthStart, entry.Date)
		title := "Absence"
		if entry.Reason != "" {
			title = "Absence: " + entry.Reason
		}
		act := newActivity(Key{Kind: KindHRAbsence, RecordID: rec.ID, SubID: entry.ID},
			title, occurred, orZero(entry.Points), 0)
		act.Points.SuccessRatio = signRatio(act.Points.Earned)
		out = append(out, act)
	}

	return out
}
