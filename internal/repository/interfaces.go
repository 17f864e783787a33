package repository

import (
	"context"
	"errors"

	"github.com/enriquemv/speechdesk/internal/domain"
)

// ErrNotFound is returned when a block id does not resolve to a record.
var ErrNotFound = errors.New("record not found")

type SpeechRepo interface {
	// LoadAll returns the catalog in file order. Rows with an empty body
	// or block id are dropped during load.
	LoadAll(ctx context.Context) ([]*domain.Speech, error)
	// SaveAll replaces the whole persisted catalog.
	SaveAll(ctx context.Context, speeches []*domain.Speech) error
}

type UsageRepo interface {
	// Increment adds the entry's use count to the existing row for the
	// block id, or appends a new row. The table never holds two rows for
	// the same block.
	Increment(ctx context.Context, e domain.UsageEntry) error
	List(ctx context.Context) ([]domain.UsageEntry, error)
}

type FeedbackRepo interface {
	Append(ctx context.Context, e domain.FeedbackEntry) error
	List(ctx context.Context) ([]domain.FeedbackEntry, error)
}

type ReviewRepo interface {
	Append(ctx context.Context, f domain.ReviewFlag) error
	List(ctx context.Context) ([]domain.ReviewFlag, error)
}

type SnippetRepo interface {
	Append(ctx context.Context, s domain.Snippet) error
	List(ctx context.Context) ([]domain.Snippet, error)
}
