package matcher

import (
	"testing"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Tone
	}{
		{"critical", "esto es una estafa, voy a denunciarlos", domain.ToneCritical},
		{"angry", "pésimo servicio, tengo una queja", domain.ToneAngry},
		{"positive", "gracias, quedó solucionado", domain.TonePositive},
		{"neutral", "quiero saber mi saldo", domain.ToneNeutral},
		{"empty", "", domain.ToneNeutral},
		{"case insensitive", "ESTAFA TOTAL", domain.ToneCritical},
		// Matching is by substring, not whole word.
		{"substring hit", "la app está malograda", domain.ToneAngry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTone(tt.text))
		})
	}
}

func TestClassifyToneTierPriority(t *testing.T) {
	// A tier-1 and a tier-3 keyword in the same text: tier 1 wins.
	got := ClassifyTone("gracias por nada, esto es una estafa")
	assert.Equal(t, domain.ToneCritical, got)
	assert.Equal(t, "Crítico / Insulto", got.Label())

	// Tier 2 beats tier 3.
	assert.Equal(t, domain.ToneAngry, ClassifyTone("gracias pero el servicio es terrible"))
}

func TestToneGlyphs(t *testing.T) {
	assert.Equal(t, "🚨", domain.ToneCritical.Glyph())
	assert.Equal(t, "😡", domain.ToneAngry.Glyph())
	assert.Equal(t, "😊", domain.TonePositive.Glyph())
	assert.Equal(t, "😐", domain.ToneNeutral.Glyph())
}
