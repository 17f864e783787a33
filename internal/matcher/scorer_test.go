package matcher

import (
	"testing"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func speech(blockID, title, body, tags string) *domain.Speech {
	s := &domain.Speech{BlockID: blockID, Title: title, Body: body}
	s.SetTags(tags)
	s.RebuildSearchText()
	return s
}

func TestFindBestMatchAccumulatesConceptAndTokenHits(t *testing.T) {
	catalog := []*domain.Speech{
		speech("B01", "Bloqueo de cuenta", "Tu acceso fue restringido", "desbloqueo"),
		speech("B02", "Pago pendiente", "Tu pago está en proceso", ""),
	}

	m := FindBestMatch("bloqueo", catalog)
	require.NotNil(t, m)
	assert.Equal(t, "B01", m.Speech.BlockID)

	// Concept variants: bloqueo (+2 text, +5 title), desbloqueo (+2),
	// acceso (+2), restringido (+2); raw token: +1 text, +2 title.
	assert.InDelta(t, 16.0, m.Score, 1e-9)
	assert.NotEmpty(t, m.Reasons)

	var sum float64
	for _, r := range m.Reasons {
		sum += r.Delta
	}
	assert.InDelta(t, m.Score, sum, 1e-9, "reasons must account for the full score")
}

func TestFindBestMatchConceptExpansionReachesRelatedVocabulary(t *testing.T) {
	catalog := []*domain.Speech{
		speech("B01", "Problemas con tu Yapeo", "El dinero no llegó", ""),
	}

	// "transferencia" appears nowhere in the record, but it is a keyword of
	// the transaction concept, whose variants "yapeo" and "dinero" do.
	m := FindBestMatch("transferencia", catalog)
	require.NotNil(t, m)
	assert.Equal(t, "B01", m.Speech.BlockID)
	assert.InDelta(t, 9.0, m.Score, 1e-9)
}

func TestFindBestMatchEmptyQueryReturnsNothing(t *testing.T) {
	catalog := []*domain.Speech{
		speech("B01", "Saludo", "Hola", ""),
	}

	assert.Nil(t, FindBestMatch("", catalog))
	assert.Nil(t, FindBestMatch("   ", catalog))
	// Queries reducing to the empty token set after stop-word removal.
	assert.Nil(t, FindBestMatch("de la que el", catalog))
}

func TestFindBestMatchZeroScoreReturnsNothing(t *testing.T) {
	catalog := []*domain.Speech{
		speech("B01", "Saludo", "Hola, bienvenido", ""),
		speech("B02", "Cierre", "Gracias por escribirnos", ""),
	}

	// No textual hit at all: the scorer must signal "no confident match"
	// rather than return an arbitrary record.
	assert.Nil(t, FindBestMatch("reembolso", catalog))
}

func TestFindBestMatchNeverReturnsZeroScore(t *testing.T) {
	catalog := []*domain.Speech{
		speech("B01", "Saludo", "Hola", ""),
		speech("B02", "Cierre", "Adiós", ""),
	}
	if m := FindBestMatch("cualquier consulta rara", catalog); m != nil {
		assert.Greater(t, m.Score, 0.0)
	}
}

func TestFindBestMatchTieBreaksOnCatalogOrder(t *testing.T) {
	catalog := []*domain.Speech{
		speech("B01", "Alfa", "Consulta sobre reembolso", ""),
		speech("B02", "Beta", "Otro caso de reembolso", ""),
	}

	m := FindBestMatch("reembolso", catalog)
	require.NotNil(t, m)
	assert.Equal(t, "B01", m.Speech.BlockID, "equal scores resolve to the earliest record")
}

func TestFindBestMatchMonotonicUnderCatalogGrowth(t *testing.T) {
	base := []*domain.Speech{
		speech("B01", "Bloqueo de cuenta", "Tu acceso fue restringido", "desbloqueo"),
	}
	before := FindBestMatch("bloqueo", base)
	require.NotNil(t, before)

	grown := append(base, speech("B02", "Bloqueo y desbloqueo de acceso",
		"Cuenta bloqueada, no puedes entrar ni ingresar", "bloquear"))
	after := FindBestMatch("bloqueo", grown)
	require.NotNil(t, after)

	assert.GreaterOrEqual(t, after.Score, before.Score,
		"adding a row with more hits cannot decrease the winning score")
	assert.Equal(t, "B02", after.Speech.BlockID)
}

func TestFindBestMatchEmptyCatalog(t *testing.T) {
	assert.Nil(t, FindBestMatch("bloqueo", nil))
}
