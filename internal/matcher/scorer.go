package matcher

import (
	"sort"
	"strings"

	"github.com/enriquemv/speechdesk/internal/contract"
	"github.com/enriquemv/speechdesk/internal/domain"
)

// Scoring weights. Concept variants score higher than raw tokens, and title
// hits higher than body hits; all contributions accumulate additively.
const (
	weightConceptText  = 2.0
	weightConceptTitle = 5.0
	weightTokenText    = 1.0
	weightTokenTitle   = 2.0
)

// Match is the winning speech for a query with its accumulated score and
// the contributions that produced it.
type Match struct {
	Speech  *domain.Speech
	Score   float64
	Reasons []contract.MatchReason
}

// FindBestMatch scores every catalog record against the normalized query
// and returns the record with the strictly highest score. It returns nil
// when the query normalizes to nothing or no record scores above zero.
// Ties break toward the earliest record in catalog order.
func FindBestMatch(query string, catalog []*domain.Speech) *Match {
	tokens := Normalize(query)
	if len(tokens) == 0 || len(catalog) == 0 {
		return nil
	}

	// Sort tokens so reason lists are reproducible run to run.
	ordered := make([]string, 0, len(tokens))
	for tok := range tokens {
		ordered = append(ordered, tok)
	}
	sort.Strings(ordered)

	scores := make([]float64, len(catalog))
	reasons := make([][]contract.MatchReason, len(catalog))
	titles := make([]string, len(catalog))
	for i, s := range catalog {
		titles[i] = strings.ToLower(s.Title)
	}

	add := func(i int, r contract.MatchReason) {
		scores[i] += r.Delta
		reasons[i] = append(reasons[i], r)
	}

	for _, tok := range ordered {
		for _, c := range concepts {
			if !c.contains(tok) {
				continue
			}
			// Every variant of the concept contributes independently.
			for _, variant := range c.keywords {
				for i, s := range catalog {
					if strings.Contains(s.SearchText, variant) {
						add(i, contract.MatchReason{
							Code: contract.ReasonConceptText, Token: tok,
							Variant: variant, Concept: c.name, Delta: weightConceptText,
						})
					}
					if strings.Contains(titles[i], variant) {
						add(i, contract.MatchReason{
							Code: contract.ReasonConceptTitle, Token: tok,
							Variant: variant, Concept: c.name, Delta: weightConceptTitle,
						})
					}
				}
			}
		}

		// Direct token hits apply independently of concept expansion.
		for i, s := range catalog {
			if strings.Contains(s.SearchText, tok) {
				add(i, contract.MatchReason{
					Code: contract.ReasonTokenText, Token: tok, Delta: weightTokenText,
				})
			}
			if strings.Contains(titles[i], tok) {
				add(i, contract.MatchReason{
					Code: contract.ReasonTokenTitle, Token: tok, Delta: weightTokenTitle,
				})
			}
		}
	}

	best := -1
	var bestScore float64
	for i, sc := range scores {
		if sc > bestScore {
			best = i
			bestScore = sc
		}
	}
	if best < 0 {
		return nil
	}
	return &Match{
		Speech:  catalog[best],
		Score:   bestScore,
		Reasons: reasons[best],
	}
}
