package formatter

import (
	"testing"

	"github.com/enriquemv/speechdesk/internal/contract"
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/template"
	"github.com/stretchr/testify/assert"
)

func TestFormatSearchResultsGroupsBySubcategory(t *testing.T) {
	speeches := []*domain.Speech{
		{BlockID: "B01", Title: "Uno", Subcategory: "Bloqueos"},
		{BlockID: "B02", Title: "Dos", Subcategory: "Bloqueos"},
		{BlockID: "B03", Title: "Tres", Subcategory: "Pagos"},
	}
	out := FormatSearchResults(speeches, map[string]bool{"B02": true})

	assert.Contains(t, out, "Bloqueos")
	assert.Contains(t, out, "Pagos")
	assert.Contains(t, out, "B01")
	assert.Contains(t, out, "⭐")
}

func TestFormatSearchResultsEmpty(t *testing.T) {
	out := FormatSearchResults(nil, nil)
	assert.Contains(t, out, "No se encontraron resultados")
}

func TestFormatSpeechShowsRenderedBodyAndNextStep(t *testing.T) {
	sp := &domain.Speech{
		BlockID: "B01", Title: "Saludo", Category: "General", Subcategory: "Inicio",
		Recommendation: "Tono cordial",
	}
	out := FormatSpeech(sp, template.Rendered{Text: "Hola Ana", CharCount: 8},
		&domain.Speech{BlockID: "B02", Title: "Cierre"})

	assert.Contains(t, out, "Hola Ana")
	assert.Contains(t, out, "Caracteres: 8")
	assert.Contains(t, out, "Tono cordial")
	assert.Contains(t, out, "Cierre")
}

func TestFormatTriageWithoutSuggestion(t *testing.T) {
	out := FormatTriage(&contract.TriageResponse{Tone: domain.ToneNeutral})
	assert.Contains(t, out, "Neutral")
	assert.Contains(t, out, "búsqueda manual")
}

func TestFormatTriageWithSuggestion(t *testing.T) {
	out := FormatTriage(&contract.TriageResponse{
		Tone: domain.ToneAngry,
		Suggestion: &contract.Suggestion{
			BlockID: "B01", Title: "Bloqueo", Score: 16,
			Reasons: []contract.MatchReason{
				{Code: contract.ReasonConceptTitle, Token: "bloqueo", Concept: "bloqueo", Variant: "bloqueo", Delta: 5},
				{Code: contract.ReasonTokenText, Token: "cuenta", Delta: 1},
			},
		},
	})
	assert.Contains(t, out, "B01")
	assert.Contains(t, out, "16.0")
	assert.Contains(t, out, "concepto bloqueo")
}
