package domain

import (
	"fmt"
	"strings"
	"time"
)

// QuoteDisplayLayout renders the recorded time as "January 02, 2006 15:04:05".
const QuoteDisplayLayout = "January 02, 2006 15:04:05"

// anonymousAuthor stands in for quotes stored without attribution.
const anonymousAuthor = "Someone"

// Quote is something a community member said, stored for later recall.
// Quotes are append-only: nothing mutates or deletes them once stored.
type Quote struct {
	// Text is what was said. Never empty.
	Text string

	// Author is who said it. Optional.
	Author string

	// RecordedAt is when the quote was stored.
	RecordedAt time.Time

	// CommunityID scopes the quote to one chat server.
	CommunityID int64
}

// NewQuote builds a quote and validates it.
func NewQuote(text, author string, communityID int64, recordedAt time.Time) (*Quote, error) {
	q := &Quote{
		Text:        text,
		Author:      strings.TrimSpace(author),
		RecordedAt:  recordedAt,
		CommunityID: communityID,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks the quote invariants.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("text", "must not be empty")
	}

	return nil
}

// Display formats the quote the way it is shown in chat:
//
//	January 05, 2024 13:04:05: alice said, "hello"
func (q *Quote) Display(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	author := q.Author
	if author == "" {
		author = anonymousAuthor
	}

	return fmt.Sprintf("%s: %s said, \"%s\"",
		q.RecordedAt.In(loc).Format(QuoteDisplayLayout), author, q.Text)
}
