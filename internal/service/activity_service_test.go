package service

import (
	"context"
	"testing"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/repository"
	"github.com/enriquemv/speechdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityFixture(t *testing.T) (ActivityService, *repository.CSVUsageRepo, *repository.CSVFeedbackRepo, *repository.CSVReviewRepo) {
	t.Helper()
	st := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, st)
	usage := repository.NewCSVUsageRepo(st)
	feedback := repository.NewCSVFeedbackRepo(st)
	reviews := repository.NewCSVReviewRepo(st)
	svc := NewActivityService(
		repository.NewCSVSpeechRepo(st), usage, feedback, reviews,
		repository.NewCSVSnippetRepo(st),
	)
	return svc, usage, feedback, reviews
}

func TestRecordUseIncrementsSingleRow(t *testing.T) {
	svc, usage, _, _ := newActivityFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RecordUse(ctx, "B01"))
	}
	require.NoError(t, svc.RecordUse(ctx, "B03"))

	entries, err := usage.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "B01", entries[0].BlockID)
	assert.Equal(t, "Bloqueo de cuenta", entries[0].Title)
	assert.Equal(t, 5, entries[0].Uses)
}

func TestRecordUseUnknownBlock(t *testing.T) {
	svc, _, _, _ := newActivityFixture(t)
	err := svc.RecordUse(context.Background(), "B99")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordFeedbackOncePerSession(t *testing.T) {
	svc, _, feedback, _ := newActivityFixture(t)
	ctx := context.Background()
	sess := domain.NewSession()

	require.NoError(t, svc.RecordFeedback(ctx, sess, "B01", domain.PolarityPositive, ""))
	assert.Equal(t, domain.FeedbackSubmitted, sess.FeedbackStatus("B01"))

	// Second submission for the same block in the same session is rejected.
	err := svc.RecordFeedback(ctx, sess, "B01", domain.PolarityNegative, "cambié de opinión")
	assert.ErrorIs(t, err, ErrFeedbackDuplicate)

	// Another block is fine.
	require.NoError(t, svc.RecordFeedback(ctx, sess, "B03", domain.PolarityNegative, "faltan plazos"))

	// A fresh session may submit for the same block again.
	require.NoError(t, svc.RecordFeedback(ctx, domain.NewSession(), "B01", domain.PolarityNegative, ""))

	entries, err := feedback.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestFlagForReviewMayRepeat(t *testing.T) {
	svc, _, _, reviews := newActivityFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.FlagForReview(ctx, "B01"))
	require.NoError(t, svc.FlagForReview(ctx, "B01"))

	flags, err := reviews.List(ctx)
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "Bloqueo de cuenta", flags[0].Title)
}

func TestAddSnippet(t *testing.T) {
	svc, _, _, _ := newActivityFixture(t)
	ctx := context.Background()

	assert.Error(t, svc.AddSnippet(ctx, "   "))
	require.NoError(t, svc.AddSnippet(ctx, "Confirmar número de operación antes de escalar"))

	snippets, err := svc.ListSnippets(ctx)
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.NotEmpty(t, snippets[0].ID)
}
