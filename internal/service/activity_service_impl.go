package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	speeches repository.SpeechRepo
	usage    repository.UsageRepo
	feedback repository.FeedbackRepo
	reviews  repository.ReviewRepo
	snippets repository.SnippetRepo

	now func() time.Time
}

// NewActivityService creates the service that records operator actions into
// the log tables.
func NewActivityService(
	speeches repository.SpeechRepo,
	usage repository.UsageRepo,
	feedback repository.FeedbackRepo,
	reviews repository.ReviewRepo,
	snippets repository.SnippetRepo,
) ActivityService {
	return &activityService{
		speeches: speeches,
		usage:    usage,
		feedback: feedback,
		reviews:  reviews,
		snippets: snippets,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *activityService) RecordUse(ctx context.Context, blockID string) error {
	sp, err := s.lookup(ctx, blockID)
	if err != nil {
		return err
	}
	return s.usage.Increment(ctx, domain.UsageEntry{
		BlockID: sp.BlockID,
		Title:   sp.Title,
		Uses:    1,
	})
}

func (s *activityService) RecordFeedback(ctx context.Context, sess *domain.Session, blockID string, polarity domain.Polarity, comment string) error {
	if sess.FeedbackStatus(blockID) == domain.FeedbackSubmitted {
		return ErrFeedbackDuplicate
	}
	if _, err := s.lookup(ctx, blockID); err != nil {
		return err
	}

	err := s.feedback.Append(ctx, domain.FeedbackEntry{
		ID:        uuid.NewString(),
		BlockID:   blockID,
		Polarity:  polarity,
		Comment:   comment,
		CreatedAt: s.now(),
	})
	if err != nil {
		return err
	}
	sess.SetFeedbackStatus(blockID, domain.FeedbackSubmitted)
	return nil
}

func (s *activityService) FlagForReview(ctx context.Context, blockID string) error {
	sp, err := s.lookup(ctx, blockID)
	if err != nil {
		return err
	}
	return s.reviews.Append(ctx, domain.ReviewFlag{
		BlockID:   sp.BlockID,
		Title:     sp.Title,
		CreatedAt: s.now(),
	})
}

func (s *activityService) AddSnippet(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("snippet text is required")
	}
	return s.snippets.Append(ctx, domain.Snippet{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.now(),
	})
}

func (s *activityService) ListSnippets(ctx context.Context) ([]domain.Snippet, error) {
	return s.snippets.List(ctx)
}

func (s *activityService) lookup(ctx context.Context, blockID string) (*domain.Speech, error) {
	catalog, err := s.speeches.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, sp := range catalog {
		if sp.BlockID == blockID {
			return sp, nil
		}
	}
	return nil, fmt.Errorf("speech %s: %w", blockID, repository.ErrNotFound)
}
