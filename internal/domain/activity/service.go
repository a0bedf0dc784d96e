package activity

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
)

const defaultFetchTimeout = 5 * time.Second

type Service struct {
	store           StoreAPI
	scoring         ScoringConfig
	fetchTimeout    time.Duration
	now             func() time.Time
	onSourceFailure func(source string)
}

func NewService(store StoreAPI, scoring ScoringConfig, fetchTimeout time.Duration) *Service {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Service{
		store:        store,
		scoring:      scoring,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// OnSourceFailure registers a hook invoked with the source name whenever a
// fetcher fails, in addition to the warning log.
func (s *Service) OnSourceFailure(fn func(source string)) {
	s.onSourceFailure = fn
}

// Filters narrows the detailed list. Month/Year take precedence over
// WindowDays when set.
type Filters struct {
	WindowDays int
	Month      int
	Year       int
	Category   string
}

func (f Filters) window(now time.Time) (time.Time, time.Time) {
	if f.Month >= 1 && f.Month <= 12 && f.Year > 0 {
		start := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}
	days := f.WindowDays
	if days < 1 {
		days = 30
	}
	end := now.UTC()
	start := end.AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)
	return start, end
}

type sourceFetch struct {
	name string
	fn   func(ctx context.Context) ([]Activity, error)
}

func (s *Service) fetchers(employeeID string, start, end time.Time) []sourceFetch {
	return []sourceFetch{
		{"routine_tasks", func(ctx context.Context) ([]Activity, error) {
			recs, err := s.store.ListRoutineTasks(ctx, employeeID, start, end)
			if err != nil {
				return nil, err
			}
			out := make([]Activity, 0, len(recs))
			for _, rec := range recs {
				out = append(out, NormalizeRoutineTask(rec))
			}
			return out, nil
		}},
		{"work_orders", func(ctx context.Context) ([]Activity, error) {
			recs, err := s.store.ListWorkOrders(ctx, employeeID, start, end)
			if err != nil {
				return nil, err
			}
			var out []Activity
			for _, rec := range recs {
				out = append(out, NormalizeWorkOrder(rec, employeeID)...)
			}
			return out, nil
		}},
		{"quality_evaluations", func(ctx context.Context) ([]Activity, error) {
			recs, err := s.store.ListQualityEvaluations(ctx, employeeID, start, end)
			if err != nil {
				return nil, err
			}
			out := make([]Activity, 0, len(recs))
			for _, rec := range recs {
				out = append(out, NormalizeQuality(rec))
			}
			return out, nil
		}},
		{"hr_periods", func(ctx context.Context) ([]Activity, error) {
			recs, err := s.store.ListHRPeriods(ctx, employeeID, start, end)
			if err != nil {
				return nil, err
			}
			// Period documents are matched by month overlap, so expanded
			// sub-records can carry dates outside the window; keep only those
			// inside it, or the list totals would disagree with the daily
			// buckets.
			var out []Activity
			for _, rec := range recs {
				for _, act := range ExpandHRPeriod(s.scoring, rec) {
					if act.OccurredAt.Before(start) || act.OccurredAt.After(end) {
						continue
					}
					out = append(out, act)
				}
			}
			return out, nil
		}},
		{"bonus_evaluations", func(ctx context.Context) ([]Activity, error) {
			recs, err := s.store.ListBonusEvaluations(ctx, employeeID, start, end)
			if err != nil {
				return nil, err
			}
			out := make([]Activity, 0, len(recs))
			for _, rec := range recs {
				out = append(out, NormalizeBonus(rec))
			}
			return out, nil
		}},
		{"control_scores", func(ctx context.Context) ([]Activity, error) {
			recs, err := s.store.ListControlScores(ctx, employeeID, start, end)
			if err != nil {
				return nil, err
			}
			out := make([]Activity, 0, len(recs))
			for _, rec := range recs {
				out = append(out, NormalizeControl(s.scoring, rec))
			}
			return out, nil
		}},
		{"mold_changes", func(ctx context.Context) ([]Activity, error) {
			recs, err := s.store.ListMoldChanges(ctx, employeeID, start, end)
			if err != nil {
				return nil, err
			}
			var out []Activity
			for _, rec := range recs {
				out = append(out, NormalizeMoldChange(rec, employeeID)...)
			}
			return out, nil
		}},
	}
}

// Collect runs every source fetcher concurrently under a per-fetcher timeout,
// then deduplicates. A failing source degrades to an empty contribution so the
// remaining sources still produce a partial result. Results are concatenated
// in fetcher order, not completion order, so Activities tied on occurredAt
// keep the same relative order across calls and pagination stays
// reproducible.
func (s *Service) Collect(ctx context.Context, employeeID string, start, end time.Time) []Activity {
	fetchers := s.fetchers(employeeID, start, end)
	results := make([][]Activity, len(fetchers))

	p := pool.New().WithMaxGoroutines(len(fetchers))
	for i, f := range fetchers {
		p.Go(func() {
			fctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			acts, err := f.fn(fctx)
			if err != nil {
				slog.Warn("activity source unavailable", "source", f.name, "employeeId", employeeID, "err", err)
				if s.onSourceFailure != nil {
					s.onSourceFailure(f.name)
				}
				return
			}
			results[i] = acts
		})
	}
	p.Wait()

	var all []Activity
	for _, acts := range results {
		all = append(all, acts...)
	}
	return Dedup(all)
}

func (s *Service) Summary(ctx context.Context, employeeID string, windowDays int) Summary {
	start, end := Filters{WindowDays: windowDays}.window(s.now())
	return BuildSummary(s.Collect(ctx, employeeID, start, end))
}

func (s *Service) List(ctx context.Context, employeeID string, filters Filters, page, limit int) ListResult {
	start, end := filters.window(s.now())
	activities := s.Collect(ctx, employeeID, start, end)

	if filters.Category != "" {
		filtered := activities[:0:0]
		for _, act := range activities {
			if strings.EqualFold(act.Category, filters.Category) {
				filtered = append(filtered, act)
			}
		}
		activities = filtered
	}

	SortByDateDesc(activities)
	return Paginate(activities, page, limit)
}

func (s *Service) Daily(ctx context.Context, employeeID string, windowDays int) []DailyBucket {
	start, end := Filters{WindowDays: windowDays}.window(s.now())
	return DailyRollup(s.Collect(ctx, employeeID, start, end), start, end)
}

func (s *Service) Monthly(ctx context.Context, employeeID string, year int) MonthlyReport {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	if now := s.now().UTC(); now.Before(end) && now.After(start) {
		end = now
	}
	days := DailyRollup(s.Collect(ctx, employeeID, start, end), start, end)
	return BuildMonthlyReport(days)
}

// Leaderboard ranks every employee holding the given role by total earned
// points over the window.
func (s *Service) Leaderboard(ctx context.Context, roleName string, windowDays int) ([]LeaderboardEntry, error) {
	employeeIDs, err := s.store.ListEmployeeIDsByRole(ctx, roleName)
	if err != nil {
		return nil, err
	}
	start, end := Filters{WindowDays: windowDays}.window(s.now())

	byEmployee := make(map[string][]Activity, len(employeeIDs))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(4)
	for _, employeeID := range employeeIDs {
		p.Go(func() {
			activities := s.Collect(ctx, employeeID, start, end)
			mu.Lock()
			byEmployee[employeeID] = activities
			mu.Unlock()
		})
	}
	p.Wait()

	return RankEmployees(byEmployee), nil
}
