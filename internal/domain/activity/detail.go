package activity

import "context"

// ActivityDetail parses a composite key back into its source coordinates and
// re-queries only that source for the full breakdown. The requesting employee
// must be the participant the key's kind designates, otherwise the record is
// treated as not found.
func (s *Service) ActivityDetail(ctx context.Context, employeeID, id string) (Detail, error) {
	key, err := ParseKey(id)
	if err != nil {
		return Detail{}, err
	}

	switch key.Kind {
	case KindRoutineTask:
		return s.routineTaskDetail(ctx, employeeID, key)
	case KindWorkOrderMain, KindWorkOrderBuddy:
		return s.workOrderDetail(ctx, employeeID, key)
	case KindQuality:
		return s.qualityDetail(ctx, employeeID, key)
	case KindHRChecklist, KindHROvertime, KindHRAbsence:
		return s.hrDetail(ctx, employeeID, key)
	case KindBonus:
		return s.bonusDetail(ctx, employeeID, key)
	case KindControl:
		return s.controlDetail(ctx, employeeID, key)
	case KindMoldChangeMain, KindMoldChangeBuddy:
		return s.moldChangeDetail(ctx, employeeID, key)
	}
	return Detail{}, ErrInvalidActivityID
}

func (s *Service) routineTaskDetail(ctx context.Context, employeeID string, key Key) (Detail, error) {
	rec, err := s.store.GetRoutineTask(ctx, key.RecordID)
	if err != nil {
		return Detail{}, err
	}
	if rec.EmployeeID != employeeID {
		return Detail{}, ErrNotFound
	}

	detail := Detail{Activity: NormalizeRoutineTask(rec)}
	for _, item := range rec.Items {
		detail.SubScores = append(detail.SubScores, SubScore{
			Label:  item.Label,
			Earned: orZero(item.Points),
		})
	}
	return detail, nil
}

func (s *Service) workOrderDetail(ctx context.Context, employeeID string, key Key) (Detail, error) {
	rec, err := s.store.GetWorkOrder(ctx, key.RecordID)
	if err != nil {
		return Detail{}, err
	}

	act, ok := pickRole(NormalizeWorkOrder(rec, employeeID), key.Kind)
	if !ok {
		return Detail{}, ErrNotFound
	}
	return Detail{
		Activity: act,
		Comments: rec.Notes,
		Source:   map[string]any{"machine": rec.Machine, "mainWorkerId": rec.MainWorkerID, "buddyWorkerId": rec.BuddyWorkerID},
	}, nil
}

func (s *Service) qualityDetail(ctx context.Context, employeeID string, key Key) (Detail, error) {
	rec, err := s.store.GetQualityEvaluation(ctx, key.RecordID)
	if err != nil {
		return Detail{}, err
	}
	if rec.EmployeeID != employeeID {
		return Detail{}, ErrNotFound
	}

	detail := Detail{
		Activity:  NormalizeQuality(rec),
		Evaluator: rec.EvaluatorID,
		Comments:  rec.Comments,
	}
	for _, criterion := range rec.Criteria {
		detail.SubScores = append(detail.SubScores, SubScore{
			Label:  criterion.Label,
			Earned: orZero(criterion.Earned),
			Max:    orZero(criterion.Max),
		})
	}
	return detail, nil
}

func (s *Service) hrDetail(ctx context.Context, employeeID string, key Key) (Detail, error) {
	rec, err := s.store.GetHRPeriod(ctx, key.RecordID)
	if err != nil {
		return Detail{}, err
	}
	if rec.EmployeeID != employeeID {
		return Detail{}, ErrNotFound
	}

	for _, act := range ExpandHRPeriod(s.scoring, rec) {
		if act.ID == key.String() {
			return Detail{
				Activity: act,
				Source:   map[string]any{"periodYear": rec.Year, "periodMonth": rec.Month},
			}, nil
		}
	}
	return Detail{}, ErrNotFound
}

func (s *Service) bonusDetail(ctx context.Context, employeeID string, key Key) (Detail, error) {
	rec, err := s.store.GetBonusEvaluation(ctx, key.RecordID)
	if err != nil {
		return Detail{}, err
	}
	if rec.EmployeeID != employeeID {
		return Detail{}, ErrNotFound
	}
	return Detail{
		Activity:  NormalizeBonus(rec),
		Evaluator: rec.EvaluatorID,
		Comments:  rec.Comments,
	}, nil
}

func (s *Service) controlDetail(ctx context.Context, employeeID string, key Key) (Detail, error) {
	rec, err := s.store.GetControlScore(ctx, key.RecordID)
	if err != nil {
		return Detail{}, err
	}
	if rec.EmployeeID != employeeID {
		return Detail{}, ErrNotFound
	}
	return Detail{
		Activity:  NormalizeControl(s.scoring, rec),
		Evaluator: rec.ReviewerID,
		Comments:  rec.Comments,
	}, nil
}

func (s *Service) moldChangeDetail(ctx context.Context, employeeID string, key Key) (Detail, error) {
	rec, err := s.store.GetMoldChange(ctx, key.RecordID)
	if err != nil {
		return Detail{}, err
	}

	act, ok := pickRole(NormalizeMoldChange(rec, employeeID), key.Kind)
	if !ok {
		return Detail{}, ErrNotFound
	}
	detail := Detail{
		Activity:  act,
		Evaluator: rec.EvaluatorID,
		Comments:  rec.Comments,
		Source:    map[string]any{"mold": rec.Mold, "mainWorkerId": rec.MainWorkerID, "buddyWorkerId": rec.BuddyWorkerID},
	}
	for _, criterion := range rec.Criteria {
		detail.SubScores = append(detail.SubScores, SubScore{
			Label:  criterion.Label,
			Earned: orZero(criterion.Earned),
			Max:    orZero(criterion.Max),
		})
	}
	return detail, nil
}

func pickRole(activities []Activity, kind SourceKind) (Activity, bool) {
	for _, act := range activities {
		if act.Kind == kind {
			return act, true
		}
	}
	return Activity{}, false
}
