// Package contract defines the request/response types exchanged between
// the UI layer and the triage pipeline.
package contract

import "github.com/enriquemv/speechdesk/internal/domain"

// MatchReasonCode identifies which scoring rule contributed to a match.
type MatchReasonCode string

const (
	ReasonConceptTitle MatchReasonCode = "CONCEPT_TITLE"
	ReasonConceptText  MatchReasonCode = "CONCEPT_TEXT"
	ReasonTokenTitle   MatchReasonCode = "TOKEN_TITLE"
	ReasonTokenText    MatchReasonCode = "TOKEN_TEXT"
)

// MatchReason is one scoring contribution, kept so the operator can see why
// a speech was suggested.
type MatchReason struct {
	Code    MatchReasonCode
	Token   string // query token that triggered the rule
	Variant string // matched keyword variant (concept rules only)
	Concept string // concept name (concept rules only)
	Delta   float64
}

// TriageRequest carries a raw customer query pasted by the operator.
type TriageRequest struct {
	Query string
}

// Suggestion references the best-matching speech for a query.
type Suggestion struct {
	BlockID string
	Title   string
	Score   float64
	Reasons []MatchReason
}

// TriageResponse is the outcome of analyzing a customer query. Suggestion
// is nil when no speech scored above zero; that is a "use manual search"
// signal, not an error.
type TriageResponse struct {
	Tone       domain.Tone
	Suggestion *Suggestion
}
