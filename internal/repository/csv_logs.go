package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/store"
)

// CSVUsageRepo implements UsageRepo over the flat-file store.
type CSVUsageRepo struct {
	store *store.Store
}

func NewCSVUsageRepo(s *store.Store) *CSVUsageRepo {
	return &CSVUsageRepo{store: s}
}

func (r *CSVUsageRepo) Increment(ctx context.Context, e domain.UsageEntry) error {
	row := store.Row{
		"ID_Bloque": e.BlockID,
		"Titulo":    e.Title,
		"Usos":      strconv.Itoa(e.Uses),
	}
	if err := r.store.AppendOrIncrement(store.TableUsage, row, "ID_Bloque", "Usos"); err != nil {
		return fmt.Errorf("recording use of %s: %w", e.BlockID, err)
	}
	return nil
}

func (r *CSVUsageRepo) List(ctx context.Context) ([]domain.UsageEntry, error) {
	rows, err := r.store.Load(store.TableUsage)
	if err != nil {
		return nil, fmt.Errorf("loading usage log: %w", err)
	}
	entries := make([]domain.UsageEntry, 0, len(rows))
	for _, row := range rows {
		uses, err := strconv.Atoi(row["Usos"])
		if err != nil {
			continue
		}
		entries = append(entries, domain.UsageEntry{
			BlockID: row["ID_Bloque"],
			Title:   row["Titulo"],
			Uses:    uses,
		})
	}
	return entries, nil
}

// CSVFeedbackRepo implements FeedbackRepo over the flat-file store.
type CSVFeedbackRepo struct {
	store *store.Store
}

func NewCSVFeedbackRepo(s *store.Store) *CSVFeedbackRepo {
	return &CSVFeedbackRepo{store: s}
}

func (r *CSVFeedbackRepo) Append(ctx context.Context, e domain.FeedbackEntry) error {
	row := store.Row{
		"ID":         e.ID,
		"ID_Bloque":  e.BlockID,
		"Feedback":   string(e.Polarity),
		"Comentario": e.Comment,
		"Fecha":      e.CreatedAt.Format(time.RFC3339),
	}
	if err := r.store.Append(store.TableFeedback, row); err != nil {
		return fmt.Errorf("appending feedback for %s: %w", e.BlockID, err)
	}
	return nil
}

func (r *CSVFeedbackRepo) List(ctx context.Context) ([]domain.FeedbackEntry, error) {
	rows, err := r.store.Load(store.TableFeedback)
	if err != nil {
		return nil, fmt.Errorf("loading feedback log: %w", err)
	}
	entries := make([]domain.FeedbackEntry, 0, len(rows))
	for _, row := range rows {
		if !domain.ValidPolarities[row["Feedback"]] {
			continue
		}
		entries = append(entries, domain.FeedbackEntry{
			ID:        row["ID"],
			BlockID:   row["ID_Bloque"],
			Polarity:  domain.Polarity(row["Feedback"]),
			Comment:   row["Comentario"],
			CreatedAt: parseTime(row["Fecha"]),
		})
	}
	return entries, nil
}

// CSVReviewRepo implements ReviewRepo over the flat-file store.
type CSVReviewRepo struct {
	store *store.Store
}

func NewCSVReviewRepo(s *store.Store) *CSVReviewRepo {
	return &CSVReviewRepo{store: s}
}

func (r *CSVReviewRepo) Append(ctx context.Context, f domain.ReviewFlag) error {
	row := store.Row{
		"ID_Bloque": f.BlockID,
		"Titulo":    f.Title,
		"Fecha":     f.CreatedAt.Format(time.RFC3339),
	}
	if err := r.store.Append(store.TableReview, row); err != nil {
		return fmt.Errorf("flagging %s for review: %w", f.BlockID, err)
	}
	return nil
}

func (r *CSVReviewRepo) List(ctx context.Context) ([]domain.ReviewFlag, error) {
	rows, err := r.store.Load(store.TableReview)
	if err != nil {
		return nil, fmt.Errorf("loading review log: %w", err)
	}
	flags := make([]domain.ReviewFlag, 0, len(rows))
	for _, row := range rows {
		flags = append(flags, domain.ReviewFlag{
			BlockID:   row["ID_Bloque"],
			Title:     row["Titulo"],
			CreatedAt: parseTime(row["Fecha"]),
		})
	}
	return flags, nil
}

// CSVSnippetRepo implements SnippetRepo over the flat-file store.
type CSVSnippetRepo struct {
	store *store.Store
}

func NewCSVSnippetRepo(s *store.Store) *CSVSnippetRepo {
	return &CSVSnippetRepo{store: s}
}

func (r *CSVSnippetRepo) Append(ctx context.Context, sn domain.Snippet) error {
	row := store.Row{
		"ID":      sn.ID,
		"Snippet": sn.Text,
		"Fecha":   sn.CreatedAt.Format(time.RFC3339),
	}
	if err := r.store.Append(store.TableSnippets, row); err != nil {
		return fmt.Errorf("appending snippet: %w", err)
	}
	return nil
}

func (r *CSVSnippetRepo) List(ctx context.Context) ([]domain.Snippet, error) {
	rows, err := r.store.Load(store.TableSnippets)
	if err != nil {
		return nil, fmt.Errorf("loading snippets: %w", err)
	}
	snippets := make([]domain.Snippet, 0, len(rows))
	for _, row := range rows {
		snippets = append(snippets, domain.Snippet{
			ID:        row["ID"],
			Text:      row["Snippet"],
			CreatedAt: parseTime(row["Fecha"]),
		})
	}
	return snippets, nil
}

// parseTime reads an RFC3339 timestamp, returning the zero time for rows
// written before timestamps were recorded.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
