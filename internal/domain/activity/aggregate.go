package activity

import "sort"

// AggregateByCategory folds Activities into per-category buckets. Buckets are
// returned sorted by category name so repeated calls over the same input
// produce identical output.
func AggregateByCategory(activities []Activity) []CategoryBucket {
	byCategory := make(map[string]*CategoryBucket)
	for _, act := range activities {
		bucket, ok := byCategory[act.Category]
		if !ok {
			bucket = &CategoryBucket{Category: act.Category}
			byCategory[act.Category] = bucket
		}
		bucket.TotalPoints += act.Points.Earned
		bucket.ActivityCount++
	}

	out := make([]CategoryBucket, 0, len(byCategory))
	for _, bucket := range byCategory {
		bucket.TotalPoints = round2(bucket.TotalPoints)
		if bucket.ActivityCount > 0 {
			bucket.Average = round2(bucket.TotalPoints / float64(bucket.ActivityCount))
		}
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

func BuildSummary(activities []Activity) Summary {
	summary := Summary{
		CategoryBuckets: AggregateByCategory(activities),
		TotalActivities: len(activities),
	}
	for _, bucket := range summary.CategoryBuckets {
		summary.TotalPoints += bucket.TotalPoints
	}
	summary.TotalPoints = round2(summary.TotalPoints)
	return summary
}

// RankEmployees builds a leaderboard from per-employee activity lists: total
// earned points across all categories, descending, with a stable tie-break on
// employee id.
func RankEmployees(byEmployee map[string][]Activity) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(byEmployee))
	for employeeID, activities := range byEmployee {
		entry := LeaderboardEntry{EmployeeID: employeeID, ActivityCount: len(activities)}
		for _, act := range activities {
			entry.TotalPoints += act.Points.Earned
		}
		entry.TotalPoints = round2(entry.TotalPoints)
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].EmployeeID < entries[j].EmployeeID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
