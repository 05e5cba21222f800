package dto

import (
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

// QuoteRequest stores something a community member said.
type QuoteRequest struct {
	Text   string `json:"text" validate:"notempty,max=2000,printable"`
	Author string `json:"author" validate:"max=100,printable"`
}

// QuoteResponse is a stored or recalled quote.
type QuoteResponse struct {
	// Text is the line for the chat host to post.
	Text string `json:"text"`

	Quote *QuoteBody `json:"quote,omitempty"`
}

// QuoteBody is the raw quote.
type QuoteBody struct {
	Text       string    `json:"text"`
	Author     string    `json:"author,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// NewQuoteBody converts a domain quote.
func NewQuoteBody(q *domain.Quote) *QuoteBody {
	if q == nil {
		return nil
	}

	return &QuoteBody{Text: q.Text, Author: q.Author, RecordedAt: q.RecordedAt}
}
