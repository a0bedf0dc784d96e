package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a small set of demo workers and records for local development.
// It is a no-op when employees already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	worker := uuid.NewString()
	buddy := uuid.NewString()
	evaluator := uuid.NewString()

	if _, err := pool.Exec(ctx, `
    INSERT INTO employees (id, full_name, role_name, active) VALUES
      ($1, 'Demo Worker', 'operator', true),
      ($2, 'Demo Buddy', 'operator', true),
      ($3, 'Demo Evaluator', 'supervisor', true)
  `, worker, buddy, evaluator); err != nil {
		return err
	}

	now := time.Now().UTC()

	if _, err := pool.Exec(ctx, `
    INSERT INTO routine_tasks (id, employee_id, title, points_earned, points_max, completed_at, items)
    VALUES ($1, $2, 'Morning line checklist', 8, 10, $3, '[{"label":"Lubrication","done":true,"points":4},{"label":"Safety guard","done":true,"points":4}]')
  `, uuid.NewString(), worker, now.AddDate(0, 0, -1)); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO work_orders (id, title, machine, main_worker_id, buddy_worker_id, main_points, buddy_points, max_points, completed_at, notes)
    VALUES ($1, 'Press changeover', 'Press 4', $2, $3, 20, 20, 25, $4, 'Demo order')
  `, uuid.NewString(), worker, buddy, now); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO hr_period_scores (id, employee_id, year, month, checklist, overtime, absences)
    VALUES ($1, $2, $3, $4,
      '[]'::jsonb,
      '[]'::jsonb,
      $5::jsonb)
  `, uuid.NewString(), worker, now.Year(), int(now.Month()),
		`[{"id":"`+uuid.NewString()+`","points":-5,"reason":"unexcused"}]`); err != nil {
		return err
	}

	return nil
}
