package activity

import (
	"context"
	"encoding/json"
	"time"
)

func (s *Store) ListQualityEvaluations(ctx context.Context, employeeID string, start, end time.Time) ([]QualityEvaluationRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, COALESCE(evaluator_id::text, ''), score, max_score, evaluated_at, created_at, criteria, comments
    FROM quality_evaluations
    WHERE employee_id = $1
      AND COALESCE(evaluated_at, created_at) BETWEEN $2 AND $3
    ORDER BY COALESCE(evaluated_at, created_at) DESC
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []QualityEvaluationRecord
	for rows.Next() {
		rec, err := scanQualityEvaluation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) GetQualityEvaluation(ctx context.Context, id string) (QualityEvaluationRecord, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, COALESCE(evaluator_id::text, ''), score, max_score, evaluated_at, created_at, criteria, comments
    FROM quality_evaluations
    WHERE id = $1
  `, id)
	rec, err := scanQualityEvaluation(row)
	if err != nil {
		return QualityEvaluationRecord{}, mapNoRows(err)
	}
	return rec, nil
}

func scanQualityEvaluation(row rowScanner) (QualityEvaluationRecord, error) {
	var rec QualityEvaluationRecord
	var criteria []byte
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.EvaluatorID, &rec.Score, &rec.MaxScore,
		&rec.EvaluatedAt, &rec.CreatedAt, &criteria, &rec.Comments); err != nil {
		return QualityEvaluationRecord{}, err
	}
	if len(criteria) > 0 {
		if err := json.Unmarshal(criteria, &rec.Criteria); err != nil {
			return QualityEvaluationRecord{}, err
		}
	}
	return rec, nil
}

// ListBonusEvaluations reproduces the folded-in feed the presentation layer
// has always shown: true bonus rows plus mold-change evaluations presented as
// bonus-shaped rows under the evaluation's own id. The deduplicator removes
// the folded rows whenever the dedicated source also returned the evaluation.
func (s *Store) ListBonusEvaluations(ctx context.Context, employeeID string, start, end time.Time) ([]BonusEvaluationRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, title, points, max_points, awarded_at, created_at, COALESCE(evaluator_id::text, ''), comments, '' AS folded_from
    FROM bonus_evaluations
    WHERE employee_id = $1
      AND COALESCE(awarded_at, created_at) BETWEEN $2 AND $3
    UNION ALL
    SELECT m.id, $1::uuid, 'Mold change ' || m.mold,
           CASE WHEN m.main_worker_id = $1 THEN m.main_points ELSE m.buddy_points END,
           m.max_points, m.evaluated_at, m.created_at, COALESCE(m.evaluator_id::text, ''), m.comments, m.id::text
    FROM mold_change_evaluations m
    WHERE (m.main_worker_id = $1 OR m.buddy_worker_id = $1)
      AND COALESCE(m.evaluated_at, m.completed_at, m.created_at) BETWEEN $2 AND $3
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []BonusEvaluationRecord
	for rows.Next() {
		var rec BonusEvaluationRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Title, &rec.Points, &rec.MaxPoints,
			&rec.AwardedAt, &rec.CreatedAt, &rec.EvaluatorID, &rec.Comments, &rec.FoldedFrom); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) GetBonusEvaluation(ctx context.Context, id string) (BonusEvaluationRecord, error) {
	var rec BonusEvaluationRecord
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, title, points, max_points, awarded_at, created_at, COALESCE(evaluator_id::text, ''), comments
    FROM bonus_evaluations
    WHERE id = $1
  `, id).Scan(&rec.ID, &rec.EmployeeID, &rec.Title, &rec.Points, &rec.MaxPoints,
		&rec.AwardedAt, &rec.CreatedAt, &rec.EvaluatorID, &rec.Comments)
	if err != nil {
		return BonusEvaluationRecord{}, mapNoRows(err)
	}
	return rec, nil
}

func (s *Store) ListControlScores(ctx context.Context, employeeID string, start, end time.Time) ([]ControlScoreRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, COALESCE(reviewer_id::text, ''), points, max_points, scored_at, created_at, comments
    FROM control_scores
    WHERE employee_id = $1
      AND COALESCE(scored_at, created_at) BETWEEN $2 AND $3
    ORDER BY COALESCE(scored_at, created_at) DESC
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []ControlScoreRecord
	for rows.Next() {
		var rec ControlScoreRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.ReviewerID, &rec.Points, &rec.MaxPoints,
			&rec.ScoredAt, &rec.CreatedAt, &rec.Comments); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) GetControlScore(ctx context.Context, id string) (ControlScoreRecord, error) {
	var rec ControlScoreRecord
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, COALESCE(reviewer_id::text, ''), points, max_points, scored_at, created_at, comments
    FROM control_scores
    WHERE id = $1
  `, id).Scan(&rec.ID, &rec.EmployeeID, &rec.ReviewerID, &rec.Points, &rec.MaxPoints,
		&rec.ScoredAt, &rec.CreatedAt, &rec.Comments)
	if err != nil {
		return ControlScoreRecord{}, mapNoRows(err)
	}
	return rec, nil
}

func (s *Store) ListMoldChanges(ctx context.Context, employeeID string, start, end time.Time) ([]MoldChangeRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, mold, main_worker_id, COALESCE(buddy_worker_id::text, ''),
           main_points, buddy_points, max_points, evaluated_at, completed_at, created_at,
           COALESCE(evaluator_id::text, ''), comments, criteria
    FROM mold_change_evaluations
    WHERE (main_worker_id = $1 OR buddy_worker_id = $1)
      AND COALESCE(evaluated_at, completed_at, created_at) BETWEEN $2 AND $3
    ORDER BY COALESCE(evaluated_at, completed_at, created_at) DESC
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []MoldChangeRecord
	for rows.Next() {
		rec, err := scanMoldChange(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) GetMoldChange(ctx context.Context, id string) (MoldChangeRecord, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, mold, main_worker_id, COALESCE(buddy_worker_id::text, ''),
           main_points, buddy_points, max_points, evaluated_at, completed_at, created_at,
           COALESCE(evaluator_id::text, ''), comments, criteria
    FROM mold_change_evaluations
    WHERE id = $1
  `, id)
	rec, err := scanMoldChange(row)
	if err != nil {
		return MoldChangeRecord{}, mapNoRows(err)
	}
	return rec, nil
}

func scanMoldChange(row rowScanner) (MoldChangeRecord, error) {
	var rec MoldChangeRecord
	var criteria []byte
	if err := row.Scan(&rec.ID, &rec.Mold, &rec.MainWorkerID, &rec.BuddyWorkerID,
		&rec.MainPoints, &rec.BuddyPoints, &rec.MaxPoints, &rec.EvaluatedAt, &rec.CompletedAt,
		&rec.CreatedAt, &rec.EvaluatorID, &rec.Comments, &criteria); err != nil {
		return MoldChangeRecord{}, err
	}
	if len(criteria) > 0 {
		if err := json.Unmarshal(criteria, &rec.Criteria); err != nil {
			return MoldChangeRecord{}, err
		}
	}
	return rec, nil
}
