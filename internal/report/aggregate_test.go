package report

import (
	"testing"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTopUsageSumsAndSorts(t *testing.T) {
	entries := []domain.UsageEntry{
		{BlockID: "B01", Title: "A", Uses: 3},
		{BlockID: "B02", Title: "B", Uses: 5},
		{BlockID: "B03", Title: "A", Uses: 2},
	}

	top := TopUsage(entries, 2)
	// A's rows sum to 5, tying with B; first-seen order breaks the tie.
	assert.Equal(t, []TitleUsage{{"A", 5}, {"B", 5}}, top)
}

func TestTopUsageTruncatesToN(t *testing.T) {
	entries := []domain.UsageEntry{
		{Title: "A", Uses: 1},
		{Title: "B", Uses: 9},
		{Title: "C", Uses: 4},
	}

	top := TopUsage(entries, 2)
	assert.Equal(t, []TitleUsage{{"B", 9}, {"C", 4}}, top)
}

func TestTopUsageEmpty(t *testing.T) {
	assert.Empty(t, TopUsage(nil, 5))
}

func TestTotalUses(t *testing.T) {
	entries := []domain.UsageEntry{{Uses: 3}, {Uses: 4}}
	assert.Equal(t, 7, TotalUses(entries))
	assert.Equal(t, 0, TotalUses(nil))
}

func TestPolarityCounts(t *testing.T) {
	entries := []domain.FeedbackEntry{
		{Polarity: domain.PolarityPositive},
		{Polarity: domain.PolarityNegative},
		{Polarity: domain.PolarityPositive},
	}
	pos, neg := PolarityCounts(entries)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 1, neg)
}

func TestLastFeedbackNewestFirst(t *testing.T) {
	entries := []domain.FeedbackEntry{
		{ID: "f1"}, {ID: "f2"}, {ID: "f3"},
	}
	last := LastFeedback(entries, 2)
	assert.Equal(t, "f3", last[0].ID)
	assert.Equal(t, "f2", last[1].ID)

	assert.Len(t, LastFeedback(entries, 10), 3)
	assert.Empty(t, LastFeedback(nil, 5))
}
