package activity

import (
	"context"
	"time"
)

// StoreAPI is the data-access boundary the aggregation core depends on. The
// List methods are the Source Fetchers: each returns every record of its kind
// in which the employee participates (as main and, for dual-role sources, as
// buddy) within the window, filtered on that source's canonical date column.
// The Get methods back detail expansion and return ErrNotFound for missing
// records.
type StoreAPI interface {
	ListRoutineTasks(ctx context.Context, employeeID string, start, end time.Time) ([]RoutineTaskRecord, error)
	ListWorkOrders(ctx context.Context, employeeID string, start, end time.Time) ([]WorkOrderRecord, error)
	ListQualityEvaluations(ctx context.Context, employeeID string, start, end time.Time) ([]QualityEvaluationRecord, error)
	ListHRPeriods(ctx context.Context, employeeID string, start, end time.Time) ([]HRPeriodRecord, error)
	ListBonusEvaluations(ctx context.Context, employeeID string, start, end time.Time) ([]BonusEvaluationRecord, error)
	ListControlScores(ctx context.Context, employeeID string, start, end time.Time) ([]ControlScoreRecord, error)
	ListMoldChanges(ctx context.Context, employeeID string, start, end time.Time) ([]MoldChangeRecord, error)

	GetRoutineTask(ctx context.Context, id string) (RoutineTaskRecord, error)
	GetWorkOrder(ctx context.Context, id string) (WorkOrderRecord, error)
	GetQualityEvaluation(ctx context.Context, id string) (QualityEvaluationRecord, error)
	GetHRPeriod(ctx context.Context, id string) (HRPeriodRecord, error)
	GetBonusEvaluation(ctx context.Context, id string) (BonusEvaluationRecord, error)
	GetControlScore(ctx context.Context, id string) (ControlScoreRecord, error)
	GetMoldChange(ctx context.Context, id string) (MoldChangeRecord, error)

	ListEmployeeIDsByRole(ctx context.Context, roleName string) ([]string, error)
}
