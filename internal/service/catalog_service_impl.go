package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/repository"
)

type catalogService struct {
	speeches repository.SpeechRepo
}

// NewCatalogService creates the catalog service over the speech repository.
func NewCatalogService(speeches repository.SpeechRepo) CatalogService {
	return &catalogService{speeches: speeches}
}

func (s *catalogService) List(ctx context.Context) ([]*domain.Speech, error) {
	return s.speeches.LoadAll(ctx)
}

func (s *catalogService) Search(ctx context.Context, text, category string) ([]*domain.Speech, error) {
	catalog, err := s.speeches.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]*domain.Speech, 0, len(catalog))
	for _, sp := range catalog {
		if category != "" && sp.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(sp.SearchText, needle) {
			continue
		}
		out = append(out, sp)
	}
	return out, nil
}

func (s *catalogService) Get(ctx context.Context, blockID string) (*domain.Speech, error) {
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

func (s *catalogService) NextStep(ctx context.Context, blockID string) (*domain.Speech, error) {
	sp, err := s.Get(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if sp.NextStepID == "" {
		return nil, nil
	}
	next, err := s.Get(ctx, sp.NextStepID)
	if err != nil {
		// A dangling next-step reference is not an error for the caller;
		// the suggestion is simply absent.
		return nil, nil
	}
	return next, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	catalog, err := s.speeches.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, sp := range catalog {
		if sp.Category != "" && !seen[sp.Category] {
			seen[sp.Category] = true
			out = append(out, sp.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *catalogService) Edit(ctx context.Context, blockID, newBody, newRecommendation string) error {
	if strings.TrimSpace(newBody) == "" {
		return fmt.Errorf("speech %s: body is required", blockID)
	}

	catalog, err := s.speeches.LoadAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, sp := range catalog {
		if sp.BlockID != blockID {
			continue
		}
		sp.Body = newBody
		sp.Recommendation = newRecommendation
		sp.RebuildSearchText()
		found = true
		break
	}
	if !found {
		return fmt.Errorf("speech %s: %w", blockID, repository.ErrNotFound)
	}
	return s.speeches.SaveAll(ctx, catalog)
}
