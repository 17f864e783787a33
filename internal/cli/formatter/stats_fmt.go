package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/enriquemv/speechdesk/internal/domain"
	"github.com/enriquemv/speechdesk/internal/report"
	"github.com/enriquemv/speechdesk/internal/service"
)

// FormatOverview renders the headline usage and feedback numbers.
func FormatOverview(ov service.Overview) string {
	var b strings.Builder
	b.WriteString(Header("Mi Rendimiento") + "\n")
	b.WriteString(fmt.Sprintf("Total de usos: %s   Positivos: %s   Negativos: %s\n",
		Bold(strconv.Itoa(ov.TotalUses)),
		StyleGreen.Render(strconv.Itoa(ov.Positive)),
		StyleRed.Render(strconv.Itoa(ov.Negative))))
	return b.String()
}

// FormatTopSpeeches renders the most-used speeches table.
func FormatTopSpeeches(top []report.TitleUsage) string {
	if len(top) == 0 {
		return Dim("Aún no hay datos de uso.") + "\n"
	}
	rows := make([][]string, len(top))
	for i, t := range top {
		rows[i] = []string{t.Title, strconv.Itoa(t.Uses)}
	}
	return RenderTable([]string{"Speech", "Usos"}, rows)
}

// FormatRecentFeedback renders the latest feedback entries, newest first.
func FormatRecentFeedback(entries []domain.FeedbackEntry) string {
	if len(entries) == 0 {
		return Dim("No hay feedbacks registrados.") + "\n"
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		comment := e.Comment
		if comment == "" {
			comment = Dim("—")
		}
		rows[i] = []string{PolarityGlyph(e.Polarity), e.BlockID, comment}
	}
	return RenderTable([]string{"", "Bloque", "Comentario"}, rows)
}

// FormatReviewQueue renders the blocks flagged for supervisor review.
func FormatReviewQueue(flags []domain.ReviewFlag) string {
	if len(flags) == 0 {
		return StyleGreen.Render("¡Excelente! No hay speeches marcados para revisión.") + "\n"
	}
	rows := make([][]string, len(flags))
	for i, f := range flags {
		rows[i] = []string{f.BlockID, f.Title}
	}
	return Header("Pendientes de revisión") + "\n" + RenderTable([]string{"Bloque", "Título"}, rows)
}

// FormatSnippets renders the operator's personal notes.
func FormatSnippets(snippets []domain.Snippet) string {
	if len(snippets) == 0 {
		return Dim("No tienes snippets guardados.") + "\n"
	}
	var b strings.Builder
	for _, sn := range snippets {
		b.WriteString("  • " + sn.Text + "\n")
	}
	return b.String()
}
