package activity

import "time"

const (
	dayKeyFormat   = "2006-01-02"
	monthKeyFormat = "2006-01"
)

// DailyRollup buckets Activities by calendar day (UTC) across the full
// window. Every day in [start, end] gets a bucket, zero-filled when nothing
// happened, so callers can render continuous series.
func DailyRollup(activities []Activity, start, end time.Time) []DailyBucket {
	start = start.UTC().Truncate(24 * time.Hour)
	end = end.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return nil
	}

	byDay := make(map[string][]Activity)
	for _, act := range activities {
		key := act.OccurredAt.UTC().Format(dayKeyFormat)
		byDay[key] = append(byDay[key], act)
	}

	var out []DailyBucket
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyFormat)
		bucket := DailyBucket{DateKey: key, CategoryBreakdown: map[string]float64{}}
		for _, act := range byDay[key] {
			bucket.TotalPoints += act.Points.Earned
			bucket.ActivityCount++
			bucket.CategoryBreakdown[act.Category] += act.Points.Earned
		}
		bucket.TotalPoints = round2(bucket.TotalPoints)
		if bucket.ActivityCount > 0 {
			bucket.Average = round2(bucket.TotalPoints / float64(bucket.ActivityCount))
		}
		for cat, pts := range bucket.CategoryBreakdown {
			bucket.CategoryBreakdown[cat] = round2(pts)
		}
		out = append(out, bucket)
	}
	return out
}

// MonthlyRollup aggregates daily buckets, never raw Activities, so a month's
// total always equals the sum of its days.
func MonthlyRollup(days []DailyBucket) []MonthlyBucket {
	var out []MonthlyBucket
	index := make(map[string]int)
	for _, day := range days {
		monthKey := day.DateKey[:len(monthKeyFormat)]
		i, ok := index[monthKey]
		if !ok {
			i = len(out)
			index[monthKey] = i
			out = append(out, MonthlyBucket{DateKey: monthKey, CategoryBreakdown: map[string]float64{}})
		}
		out[i].TotalPoints = round2(out[i].TotalPoints + day.TotalPoints)
		out[i].ActivityCount += day.ActivityCount
		for cat, pts := range day.CategoryBreakdown {
			out[i].CategoryBreakdown[cat] = round2(out[i].CategoryBreakdown[cat] + pts)
		}
	}
	for i := range out {
		if out[i].ActivityCount > 0 {
			out[i].Average = round2(out[i].TotalPoints / float64(out[i].ActivityCount))
		}
	}
	return out
}

// ClassifyTrend compares the two most recent monthly averages: more than 10%
// up is increasing, more than 10% down is decreasing, anything else stable.
// Buckets are expected in ascending date order.
func ClassifyTrend(months []MonthlyBucket) Trend {
	if len(months) < 2 {
		return TrendStable
	}
	current := months[len(months)-1].Average
	previous := months[len(months)-2].Average
	switch {
	case current > previous*1.1:
		return TrendIncreasing
	case current < previous*0.9:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// BuildMonthlyReport assembles the monthly endpoint payload from daily
// buckets.
func BuildMonthlyReport(days []DailyBucket) MonthlyReport {
	months := MonthlyRollup(days)
	report := MonthlyReport{MonthlyBuckets: months}
	for _, month := range months {
		report.Overall.TotalPoints += month.TotalPoints
	}
	report.Overall.TotalPoints = round2(report.Overall.TotalPoints)
	if len(months) > 0 {
		report.Overall.AverageMonthly = round2(report.Overall.TotalPoints / float64(len(months)))
	}
	report.Overall.Trend = ClassifyTrend(months)
	return report
}
