package activity

import "sort"

// SortByDateDesc orders Activities newest first. The sort is stable so
// repeated calls over identical input produce identical pages even when
// timestamps tie.
func SortByDateDesc(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].OccurredAt.After(activities[j].OccurredAt)
	})
}

// Paginate slices the sorted list into the requested page. Page and limit are
// 1-based and clamped to sane values; a page past the end yields an empty
// slice with the counts intact.
func Paginate(activities []Activity, page, limit int) ListResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total := len(activities)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start >= total {
		return ListResult{Activities: []Activity{}, TotalCount: total, TotalPages: totalPages}
	}
	end := start + limit
	if end > total {
		end = total
	}
	return ListResult{Activities: activities[start:end], TotalCount: total, TotalPages: totalPages}
}
