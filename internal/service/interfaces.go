package service

import (
	"context"
	"errors"

	"github.com/enriquemv/speechdesk/internal/contract"
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/report"
)

// ErrFeedbackDuplicate is returned when the operator has already submitted
// feedback for a block within the current session.
var ErrFeedbackDuplicate = errors.New("feedback already submitted for this block in this session")

type CatalogService interface {
	// List returns the full catalog in load order.
	List(ctx context.Context) ([]*domain.Speech, error)
	// Search filters by substring over the derived search text and by main
	// category. Empty text or category means "no filter". Order follows
	// the catalog.
	Search(ctx context.Context, text, category string) ([]*domain.Speech, error)
	Get(ctx context.Context, blockID string) (*domain.Speech, error)
	// NextStep resolves the suggested follow-up speech, or nil when the
	// block has none or the reference dangles.
	NextStep(ctx context.Context, blockID string) (*domain.Speech, error)
	// Categories returns the distinct main categories, sorted.
	Categories(ctx context.Context) ([]string, error)
	// Edit rewrites body and recommendation, recomputes the search text
	// and persists the whole catalog.
	Edit(ctx context.Context, blockID, newBody, newRecommendation string) error
}

type TriageService interface {
	// Analyze classifies the query's tone and picks the best-matching
	// speech. A nil Suggestion means "use manual search", not an error.
	Analyze(ctx context.Context, req contract.TriageRequest) (*contract.TriageResponse, error)
}

type ActivityService interface {
	RecordUse(ctx context.Context, blockID string) error
	// RecordFeedback enforces the one-feedback-per-block-per-session rule
	// against the given session.
	RecordFeedback(ctx context.Context, sess *domain.Session, blockID string, polarity domain.Polarity, comment string) error
	FlagForReview(ctx context.Context, blockID string) error
	AddSnippet(ctx context.Context, text string) error
	ListSnippets(ctx context.Context) ([]domain.Snippet, error)
}

// Overview is the headline numbers for the performance panel.
type Overview struct {
	TotalUses int
	Positive  int
	Negative  int
}

type ReportService interface {
	Overview(ctx context.Context) (Overview, error)
	TopSpeeches(ctx context.Context, n int) ([]report.TitleUsage, error)
	RecentFeedback(ctx context.Context, n int) ([]domain.FeedbackEntry, error)
	ReviewQueue(ctx context.Context) ([]domain.ReviewFlag, error)
}
