package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/enriquemv/speechdesk/internal/domain"
)

// Yape-inspired palette over a muted base.
var (
	ColorPurple = lipgloss.Color("#5E4DB2")
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPurple).Bold(true)
)

// ToneIndicator renders a colored tone label with its glyph.
func ToneIndicator(t domain.Tone) string {
	label := fmt.Sprintf("%s %s", t.Glyph(), t.Label())
	switch t {
	case domain.ToneCritical:
		return StyleRed.Render(label)
	case domain.ToneAngry:
		return StyleYellow.Render(label)
	case domain.TonePositive:
		return StyleGreen.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// PolarityGlyph renders the thumbs glyph for a feedback polarity.
func PolarityGlyph(p domain.Polarity) string {
	if p == domain.PolarityPositive {
		return StyleGreen.Render("👍")
	}
	return StyleRed.Render("👎")
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return StyleBold.Render(text)
}
