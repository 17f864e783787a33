package formatter

import (
	"fmt"
	"strings"

	"github.com/enriquemv/speechdesk/internal/contract"
	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/template"
)

// FormatSearchResults renders catalog rows grouped by subcategory, keeping
// catalog order inside each group.
func FormatSearchResults(speeches []*domain.Speech, favorites map[string]bool) string {
	if len(speeches) == 0 {
		return Dim("No se encontraron resultados.") + "\n"
	}

	var b strings.Builder
	var lastGroup string
	first := true
	for _, sp := range speeches {
		group := sp.Subcategory
		if group == "" {
			group = "Sin clasificar"
		}
		if group != lastGroup {
			if !first {
				b.WriteString("\n")
			}
			b.WriteString(Bold(group) + "\n")
			lastGroup = group
			first = false
		}
		marker := "✩"
		if favorites[sp.BlockID] {
			marker = StyleYellow.Render("⭐")
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", marker, StylePurple.Render(sp.BlockID), sp.Title))
	}
	return b.String()
}

// FormatSpeech renders the full detail card for a speech, with the body
// already filled in.
func FormatSpeech(sp *domain.Speech, rendered template.Rendered, next *domain.Speech) string {
	var b strings.Builder

	b.WriteString(Header(sp.Title) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s · %s · %s", sp.BlockID, sp.Category, sp.Subcategory)) + "\n\n")

	if sp.Recommendation != "" {
		b.WriteString(StyleYellow.Render("💡 Nota interna: ") + sp.Recommendation + "\n\n")
	}

	b.WriteString(Bold("Texto final para el cliente:") + "\n")
	b.WriteString(rendered.Text + "\n")
	b.WriteString(Dim(fmt.Sprintf("Caracteres: %d", rendered.CharCount)) + "\n")

	if next != nil {
		b.WriteString("\n" + StyleGreen.Render("➡ Siguiente paso sugerido: ") +
			fmt.Sprintf("%s (%s)", next.Title, next.BlockID) + "\n")
	}
	return b.String()
}

// FormatTriage renders the tone banner and suggestion for an analyzed query.
func FormatTriage(resp *contract.TriageResponse) string {
	var b strings.Builder
	b.WriteString("Tono del cliente detectado: " + ToneIndicator(resp.Tone) + "\n")

	if resp.Suggestion == nil {
		b.WriteString(Dim("No se encontró una coincidencia clara. Usa la búsqueda manual.") + "\n")
		return b.String()
	}

	s := resp.Suggestion
	b.WriteString(fmt.Sprintf("Respuesta sugerida: %s %s %s\n",
		StylePurple.Render(s.BlockID), Bold(s.Title), Dim(fmt.Sprintf("(puntaje %.1f)", s.Score))))

	for _, r := range s.Reasons {
		switch r.Code {
		case contract.ReasonConceptTitle, contract.ReasonConceptText:
			b.WriteString(Dim(fmt.Sprintf("  +%.1f  %q vía concepto %s (%s)", r.Delta, r.Token, r.Concept, r.Variant)) + "\n")
		default:
			b.WriteString(Dim(fmt.Sprintf("  +%.1f  %q", r.Delta, r.Token)) + "\n")
		}
	}
	return b.String()
}
