package domain

import "time"

// UsageEntry counts how many times a speech has been used. The usage table
// holds at most one entry per block id; repeated uses increment Uses rather
// than appending new rows.
type UsageEntry struct {
	BlockID string
	Title   string
	Uses    int
}

// FeedbackEntry records a single operator verdict on a speech. Append-only.
type FeedbackEntry struct {
	ID        string
	BlockID   string
	Polarity  Polarity
	Comment   string
	CreatedAt time.Time
}

// ReviewFlag marks a speech for supervisor review. Append-only; the same
// block may be flagged more than once.
type ReviewFlag struct {
	BlockID   string
	Title     string
	CreatedAt time.Time
}

// Snippet is a free-text personal note authored by the operator.
type Snippet struct {
	ID        string
	Text      string
	CreatedAt time.Time
}
