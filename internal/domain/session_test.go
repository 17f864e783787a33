package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionHistoryCapacity(t *testing.T) {
	s := NewSession()
	for i := 0; i < HistoryCapacity+5; i++ {
		s.Visit(fmt.Sprintf("B%02d", i))
	}

	h := s.History()
	assert.Len(t, h, HistoryCapacity)
	// Most recent first, oldest evicted.
	assert.Equal(t, "B11", h[0])
	assert.NotContains(t, h, "B00")
	assert.NotContains(t, h, "B04")
}

func TestSessionHistoryNoDuplicates(t *testing.T) {
	s := NewSession()
	s.Visit("B01")
	s.Visit("B02")
	s.Visit("B01")
	s.Visit("B01")

	h := s.History()
	assert.Equal(t, []string{"B02", "B01"}, h)
}

func TestSessionToggleFavorite(t *testing.T) {
	s := NewSession()
	assert.True(t, s.ToggleFavorite("B01"))
	assert.True(t, s.Favorites["B01"])
	assert.False(t, s.ToggleFavorite("B01"))
	assert.False(t, s.Favorites["B01"])
}

func TestSessionFeedbackStatusDefaultsToNone(t *testing.T) {
	s := NewSession()
	assert.Equal(t, FeedbackNone, s.FeedbackStatus("B01"))

	s.SetFeedbackStatus("B01", FeedbackPending)
	assert.Equal(t, FeedbackPending, s.FeedbackStatus("B01"))
	assert.Equal(t, FeedbackNone, s.FeedbackStatus("B02"))
}

func TestSessionSelectResetsTransientState(t *testing.T) {
	s := NewSession()
	s.Editing = true
	s.SetTone(ToneAngry)

	s.Select("B03")
	assert.Equal(t, "B03", s.SelectedID)
	assert.False(t, s.Editing)
	assert.False(t, s.HasTone)
}
