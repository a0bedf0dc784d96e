package activity

import (
	"context"
	"encoding/json"
	"time"
)

// The window filters below use the same COALESCE chain the normalizer uses as
// its canonical-date priority, so a record is fetched by the same date it will
// later be bucketed under.

func (s *Store) ListRoutineTasks(ctx context.Context, employeeID string, start, end time.Time) ([]RoutineTaskRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, title, points_earned, points_max, completed_at, due_date, created_at, items
    FROM routine_tasks
    WHERE employee_id = $1
      AND COALESCE(completed_at, due_date, created_at) BETWEEN $2 AND $3
    ORDER BY COALESCE(completed_at, due_date, created_at) DESC
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []RoutineTaskRecord
	for rows.Next() {
		rec, err := scanRoutineTask(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) GetRoutineTask(ctx context.Context, id string) (RoutineTaskRecord, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, title, points_earned, points_max, completed_at, due_date, created_at, items
    FROM routine_tasks
    WHERE id = $1
  `, id)
	rec, err := scanRoutineTask(row)
	if err != nil {
		return RoutineTaskRecord{}, mapNoRows(err)
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoutineTask(row rowScanner) (RoutineTaskRecord, error) {
	var rec RoutineTaskRecord
	var items []byte
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Title, &rec.PointsEarned, &rec.PointsMax,
		&rec.CompletedAt, &rec.DueDate, &rec.CreatedAt, &items); err != nil {
		return RoutineTaskRecord{}, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &rec.Items); err != nil {
			return RoutineTaskRecord{}, err
		}
	}
	return rec, nil
}

func (s *Store) ListWorkOrders(ctx context.Context, employeeID string, start, end time.Time) ([]WorkOrderRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, machine, main_worker_id, COALESCE(buddy_worker_id::text, ''),
           main_points, buddy_points, max_points, completed_at, scheduled_at, created_at, notes
    FROM work_orders
    WHERE (main_worker_id = $1 OR buddy_worker_id = $1)
      AND COALESCE(completed_at, scheduled_at, created_at) BETWEEN $2 AND $3
    ORDER BY COALESCE(completed_at, scheduled_at, created_at) DESC
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []WorkOrderRecord
	for rows.Next() {
		var rec WorkOrderRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Machine, &rec.MainWorkerID, &rec.BuddyWorkerID,
			&rec.MainPoints, &rec.BuddyPoints, &rec.MaxPoints, &rec.CompletedAt, &rec.ScheduledAt,
			&rec.CreatedAt, &rec.Notes); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) GetWorkOrder(ctx context.Context, id string) (WorkOrderRecord, error) {
	var rec WorkOrderRecord
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, machine, main_worker_id, COALESCE(buddy_worker_id::text, ''),
           main_points, buddy_points, max_points, completed_at, scheduled_at, created_at, notes
    FROM work_orders
    WHERE id = $1
  `, id).Scan(&rec.ID, &rec.Title, &rec.Machine, &rec.MainWorkerID, &rec.BuddyWorkerID,
		&rec.MainPoints, &rec.BuddyPoints, &rec.MaxPoints, &rec.CompletedAt, &rec.ScheduledAt,
		&rec.CreatedAt, &rec.Notes)
	if err != nil {
		return WorkOrderRecord{}, mapNoRows(err)
	}
	return rec, nil
}
