package activity

import (
	"context"
	"encoding/json"
	"time"
)

// HR period documents are stored one per (employee, year, month) with the
// three sub-record collections as JSONB. The window filter matches any period
// whose month overlaps [start, end].
func (s *Store) ListHRPeriods(ctx context.Context, employeeID string, start, end time.Time) ([]HRPeriodRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, year, month, checklist, overtime, absences
    FROM hr_period_scores
    WHERE employee_id = $1
      AND make_date(year, month, 1) <= $3::date
      AND (make_date(year, month, 1) + interval '1 month') > $2::date
    ORDER BY year, month
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []HRPeriodRecord
	for rows.Next() {
		rec, err := scanHRPeriod(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *Store) GetHRPeriod(ctx context.Context, id string) (HRPeriodRecord, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, year, month, checklist, overtime, absences
    FROM hr_period_scores
    WHERE id = $1
  `, id)
	rec, err := scanHRPeriod(row)
	if err != nil {
		return HRPeriodRecord{}, mapNoRows(err)
	}
	return rec, nil
}

func scanHRPeriod(row rowScanner) (HRPeriodRecord, error) {
	var rec HRPeriodRecord
	var checklist, overtime, absences []byte
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Year, &rec.Month,
		&checklist, &overtime, &absences); err != nil {
		return HRPeriodRecord{}, err
	}
	if len(checklist) > 0 {
		if err := json.Unmarshal(checklist, &rec.Checklist); err != nil {
			return HRPeriodRecord{}, err
		}
	}
	if len(overtime) > 0 {
		if err := json.Unmarshal(overtime, &rec.Overtime); err != nil {
			return HRPeriodRecord{}, err
		}
	}
	if len(absences) > 0 {
		if err := json.Unmarshal(absences, &rec.Absences); err != nil {
			return HRPeriodRecord{}, err
		}
	}
	return rec, nil
}
