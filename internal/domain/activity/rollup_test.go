package activity

import (
	"testing"
	"time"
)

func TestDailyRollupZeroFills(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 23, 0, 0, 0, time.UTC)

	acts := []Activity{
		newActivity(Key{Kind: KindRoutineTask, RecordID: "r1"}, "t", day2, 8, 10),
		newActivity(Key{Kind: KindQuality, RecordID: "q1"}, "q", day2, 4, 10),
	}

	days := DailyRollup(acts, start, end)
	if len(days) != 5 {
		t.Fatalf("expected 5 daily buckets, got %d", len(days))
	}
	if days[0].DateKey != "2026-03-01" || days[4].DateKey != "2026-03-05" {
		t.Fatalf("unexpected bucket range %s..%s", days[0].DateKey, days[4].DateKey)
	}

	for _, day := range days {
		if day.DateKey == "2026-03-02" {
			if day.TotalPoints != 12 || day.ActivityCount != 2 || day.Average != 6 {
				t.Fatalf("unexpected active day %+v", day)
			}
			if day.CategoryBreakdown[KindRoutineTask.Category()] != 8 {
				t.Fatalf("unexpected breakdown %+v", day.CategoryBreakdown)
			}
			continue
		}
		if day.TotalPoints != 0 || day.ActivityCount != 0 || day.Average != 0 {
			t.Fatalf("empty day must be zero-filled: %+v", day)
		}
	}
}

func TestMonthlyRollupMatchesDailySum(t *testing.T) {
	start := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	acts := []Activity{
		newActivity(Key{Kind: KindRoutineTask, RecordID: "r1"}, "t", time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC), 5, 10),
		newActivity(Key{Kind: KindRoutineTask, RecordID: "r2"}, "t", day1, 8, 10),
		newActivity(Key{Kind: KindHRAbsence, RecordID: "p1", SubID: "a1"}, "a", day3, -5, 0),
	}

	days := DailyRollup(acts, start, end)
	months := MonthlyRollup(days)
	if len(months) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(months))
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, day := range days {
		monthKey := day.DateKey[:7]
		sums[monthKey] += day.TotalPoints
		counts[monthKey] += day.ActivityCount
	}
	for _, month := range months {
		if month.TotalPoints != round2(sums[month.DateKey]) {
			t.Fatalf("month %s total %v != daily sum %v", month.DateKey, month.TotalPoints, sums[month.DateKey])
		}
		if month.ActivityCount != counts[month.DateKey] {
			t.Fatalf("month %s count mismatch", month.DateKey)
		}
	}
}

func TestMonthlyRollupZeroCountAverage(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	months := MonthlyRollup(DailyRollup(nil, start, end))
	if len(months) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(months))
	}
	if months[0].Average != 0 || months[0].TotalPoints != 0 {
		t.Fatalf("empty month must average 0, got %+v", months[0])
	}
}

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		name     string
		previous float64
		current  float64
		want     Trend
	}{
		{"clear increase", 10, 12, TrendIncreasing},
		{"clear decrease", 10, 8, TrendDecreasing},
		{"within band", 10, 10.5, TrendStable},
		{"lower band edge", 10, 9.5, TrendStable},
		{"from zero", 0, 5, TrendIncreasing},
	}
	for _, tc := range cases {
		months := []MonthlyBucket{{Average: tc.previous}, {Average: tc.current}}
		if got := ClassifyTrend(months); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestClassifyTrendTooFewBuckets(t *testing.T) {
	if ClassifyTrend(nil) != TrendStable {
		t.Fatal("no buckets must be stable")
	}
	if ClassifyTrend([]MonthlyBucket{{Average: 10}}) != TrendStable {
		t.Fatal("one bucket must be stable")
	}
}

func TestBuildMonthlyReportOverall(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	acts := []Activity{
		newActivity(Key{Kind: KindRoutineTask, RecordID: "r1"}, "t", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 10, 10),
		newActivity(Key{Kind: KindRoutineTask, RecordID: "r2"}, "t", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 20, 20),
	}
	report := BuildMonthlyReport(DailyRollup(acts, start, end))
	if report.Overall.TotalPoints != 30 {
		t.Fatalf("expected 30 total, got %v", report.Overall.TotalPoints)
	}
	if report.Overall.AverageMonthly != 15 {
		t.Fatalf("expected 15 average, got %v", report.Overall.AverageMonthly)
	}
	if report.Overall.Trend != TrendIncreasing {
		t.Fatalf("expected increasing, got %s", report.Overall.Trend)
	}
}
