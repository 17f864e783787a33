package service

import (
	"context"

	"github.com/enriquemv/speechdesk/internal/contract"
	"github.com/enriquemv/speechdesk/internal/matcher"
	"github.com/enriquemv/speechdesk/internal/repository"
)

type triageService struct {
	speeches repository.SpeechRepo
}

// NewTriageService creates the triage service over the speech repository.
func NewTriageService(speeches repository.SpeechRepo) TriageService {
	return &triageService{speeches: speeches}
}

func (s *triageService) Analyze(ctx context.Context, req contract.TriageRequest) (*contract.TriageResponse, error) {
	catalog, err := s.speeches.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &contract.TriageResponse{
		Tone: matcher.ClassifyTone(req.Query),
	}
	if m := matcher.FindBestMatch(req.Query, catalog); m != nil {
		resp.Suggestion = &contract.Suggestion{
			BlockID: m.Speech.BlockID,
			Title:   m.Speech.Title,
			Score:   m.Score,
			Reasons: m.Reasons,
		}
	}
	return resp, nil
}
