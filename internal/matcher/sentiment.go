package matcher

import (
	"strings"

	"github.com/enriquemv/speechdesk/internal/domain"
)

// Tone keyword tiers, checked by substring containment in strict priority
// order; the first tier with a hit wins.
var (
	criticalWords = []string{
		"mierda", "odio", "joder", "puta", "estafa", "robo", "ladrones",
		"denuncia", "indecopi",
	}
	angryWords = []string{
		"pésimo", "nunca", "basura", "inútil", "terrible", "horrible",
		"decepcionado", "frustrado", "molesto", "enojado", "rabia", "exijo",
		"demando", "problema", "queja", "reclamo", "deficiente", "malo",
	}
	positiveWords = []string{
		"gracias", "excelente", "genial", "perfecto", "maravilloso",
		"increíble", "amo", "encanta", "solucionado", "ayuda", "rápido",
		"eficiente", "amable",
	}
)

// ClassifyTone detects the emotional register of a customer query. It is a
// pure function and always returns a label; text matching no tier is
// neutral.
func ClassifyTone(text string) domain.Tone {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, criticalWords):
		return domain.ToneCritical
	case containsAny(lower, angryWords):
		return domain.ToneAngry
	case containsAny(lower, positiveWords):
		return domain.TonePositive
	default:
		return domain.ToneNeutral
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
