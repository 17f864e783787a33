package domain

// Tone is the detected emotional register of a customer query.
type Tone string

const (
	ToneCritical Tone = "critico"
	ToneAngry    Tone = "enojado"
	TonePositive Tone = "positivo"
	ToneNeutral  Tone = "neutral"
)

// Label returns the operator-facing name for the tone.
func (t Tone) Label() string {
	switch t {
	case ToneCritical:
		return "Crítico / Insulto"
	case ToneAngry:
		return "Enojado / Queja"
	case TonePositive:
		return "Amable / Positivo"
	default:
		return "Neutral"
	}
}

// Glyph returns the display glyph associated with the tone.
func (t Tone) Glyph() string {
	switch t {
	case ToneCritical:
		return "🚨"
	case ToneAngry:
		return "😡"
	case TonePositive:
		return "😊"
	default:
		return "😐"
	}
}

// Polarity is the direction of an operator feedback entry.
type Polarity string

const (
	PolarityPositive Polarity = "positivo"
	PolarityNegative Polarity = "negativo"
)

// ValidPolarities is the canonical set of accepted polarity strings.
var ValidPolarities = map[string]bool{
	"positivo": true,
	"negativo": true,
}

// FeedbackStatus tracks the per-block feedback flow within a session.
type FeedbackStatus string

const (
	FeedbackNone      FeedbackStatus = "none"
	FeedbackPending   FeedbackStatus = "pending"
	FeedbackSubmitted FeedbackStatus = "submitted"
)
