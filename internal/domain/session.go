package domain

import "github.com/google/uuid"

// HistoryCapacity bounds the recent-history queue.
const HistoryCapacity = 7

// Session is the ephemeral per-operator state. It is created when the
// process starts, passed explicitly to every handler that needs it, and
// discarded on exit; nothing in it is persisted.
type Session struct {
	ID                string
	SelectedID        string
	Favorites         map[string]bool
	Editing           bool
	PlaceholderValues map[string][]string // block id -> values in placeholder order
	LastTone          Tone
	HasTone           bool

	history  []string
	feedback map[string]FeedbackStatus
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		ID:                uuid.NewString(),
		Favorites:         make(map[string]bool),
		PlaceholderValues: make(map[string][]string),
		history:           make([]string, 0, HistoryCapacity),
		feedback:          make(map[string]FeedbackStatus),
	}
}

// Select records the given block as the current selection and resets the
// transient per-selection state.
func (s *Session) Select(blockID string) {
	s.SelectedID = blockID
	s.Editing = false
	s.HasTone = false
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() {
	s.SelectedID = ""
	s.HasTone = false
}

// ToggleFavorite flips membership of the block in the favorites set and
// reports the new state.
func (s *Session) ToggleFavorite(blockID string) bool {
	if s.Favorites[blockID] {
		delete(s.Favorites, blockID)
		return false
	}
	s.Favorites[blockID] = true
	return true
}

// Visit pushes a block id onto the recent-history queue. A block already in
// the queue is not re-added; when the queue is full the oldest entry is
// evicted.
func (s *Session) Visit(blockID string) {
	for _, id := range s.history {
		if id == blockID {
			return
		}
	}
	if len(s.history) == HistoryCapacity {
		copy(s.history, s.history[1:])
		s.history = s.history[:HistoryCapacity-1]
	}
	s.history = append(s.history, blockID)
}

// History returns visited block ids, most recent first.
func (s *Session) History() []string {
	out := make([]string, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// FeedbackStatus reports where the block is in the feedback flow.
func (s *Session) FeedbackStatus(blockID string) FeedbackStatus {
	if st, ok := s.feedback[blockID]; ok {
		return st
	}
	return FeedbackNone
}

// SetFeedbackStatus advances the feedback flow for the block.
func (s *Session) SetFeedbackStatus(blockID string, st FeedbackStatus) {
	s.feedback[blockID] = st
}

// SetTone records the tone detected for the last analyzed query.
func (s *Session) SetTone(t Tone) {
	s.LastTone = t
	s.HasTone = true
}
