// Package report derives summary statistics from the usage and feedback
// logs. Everything is pure and operates on whatever the repositories
// currently return.
package report

import (
	"sort"

	"github.com/enriquemv/speechdesk/internal/domain"
)

// TitleUsage is an aggregated usage count for one speech title.
type TitleUsage struct {
	Title string
	Uses  int
}

// TopUsage groups usage entries by title, sums their counters and returns
// the top n by descending total. Ties keep first-seen order.
func TopUsage(entries []domain.UsageEntry, n int) []TitleUsage {
	totals := make(map[string]int)
	var order []string
	for _, e := range entries {
		if _, seen := totals[e.Title]; !seen {
			order = append(order, e.Title)
		}
		totals[e.Title] += e.Uses
	}

	out := make([]TitleUsage, 0, len(order))
	for _, title := range order {
		out = append(out, TitleUsage{Title: title, Uses: totals[title]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Uses > out[j].Uses
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TotalUses sums every usage counter.
func TotalUses(entries []domain.UsageEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Uses
	}
	return total
}

// PolarityCounts tallies feedback entries by polarity.
func PolarityCounts(entries []domain.FeedbackEntry) (positive, negative int) {
	for _, e := range entries {
		switch e.Polarity {
		case domain.PolarityPositive:
			positive++
		case domain.PolarityNegative:
			negative++
		}
	}
	return positive, negative
}

// LastFeedback returns the n most recent feedback entries, newest first.
// The log is append-only, so file order is chronological.
func LastFeedback(entries []domain.FeedbackEntry, n int) []domain.FeedbackEntry {
	out := make([]domain.FeedbackEntry, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out
}
