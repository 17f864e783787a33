package domain

import (
	"fmt"
	"strings"
)

// Speech is a canned support-response template with metadata.
// Body may contain bracketed placeholders such as [nombre] and embedded
// line breaks. SearchText is derived and must be rebuilt whenever Title,
// Body or Tags change.
type Speech struct {
	BlockID        string
	Title          string
	Category       string
	Subcategory    string
	Body           string
	Recommendation string
	NextStepID     string // block id of the suggested follow-up, empty if none
	Tags           []string
	SearchText     string
}

// Validate checks the invariants required for a speech to enter the catalog.
func (s *Speech) Validate() error {
	if strings.TrimSpace(s.BlockID) == "" {
		return fmt.Errorf("speech block id is required")
	}
	if strings.TrimSpace(s.Body) == "" {
		return fmt.Errorf("speech %s: body is required", s.BlockID)
	}
	return nil
}

// RebuildSearchText recomputes the derived lowercase search text from
// title, body and tags.
func (s *Speech) RebuildSearchText() {
	parts := []string{strings.ToLower(s.Title), strings.ToLower(s.Body)}
	if len(s.Tags) > 0 {
		parts = append(parts, strings.Join(s.Tags, " "))
	}
	s.SearchText = strings.Join(parts, " ")
}

// SetTags normalizes and assigns the tag list. Tags are stored lowercase;
// empty entries are dropped.
func (s *Speech) SetTags(raw string) {
	s.Tags = s.Tags[:0]
	for _, t := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			s.Tags = append(s.Tags, t)
		}
	}
}

// TagString renders the tag list back to its stored comma-separated form.
func (s *Speech) TagString() string {
	return strings.Join(s.Tags, ", ")
}
