package service

import (
	"context"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/report"
	"github.com/enriquemv/speechdesk/internal/repository"
)

type reportService struct {
	usage    repository.UsageRepo
	feedback repository.FeedbackRepo
	reviews  repository.ReviewRepo
}

// NewReportService creates the read-only reporting service.
func NewReportService(usage repository.UsageRepo, feedback repository.FeedbackRepo, reviews repository.ReviewRepo) ReportService {
	return &reportService{usage: usage, feedback: feedback, reviews: reviews}
}

func (s *reportService) Overview(ctx context.Context) (Overview, error) {
	entries, err := s.usage.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	fb, err := s.feedback.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	pos, neg := report.PolarityCounts(fb)
	return Overview{
		TotalUses: report.TotalUses(entries),
		Positive:  pos,
		Negative:  neg,
	}, nil
}

func (s *reportService) TopSpeeches(ctx context.Context, n int) ([]report.TitleUsage, error) {
	entries, err := s.usage.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.TopUsage(entries, n), nil
}

func (s *reportService) RecentFeedback(ctx context.Context, n int) ([]domain.FeedbackEntry, error) {
	entries, err := s.feedback.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.LastFeedback(entries, n), nil
}

func (s *reportService) ReviewQueue(ctx context.Context) ([]domain.ReviewFlag, error) {
	return s.reviews.List(ctx)
}
