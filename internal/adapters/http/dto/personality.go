package dto

import (
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

// MaxMentionTextLength bounds the message text forwarded by the chat host.
const MaxMentionTextLength = 4000

// MentionRequest is a message that mentioned the corgi.
type MentionRequest struct {
	SubjectID int64  `json:"subjectId" validate:"required"`
	Text      string `json:"text" validate:"max=4000,printable"`

	// MentionCount is the number of participants mentioned, the corgi included.
	MentionCount int `json:"mentionCount" validate:"gte=0,lte=1000"`
}

// MessageRequest is an ordinary message the corgi may react to unprompted.
type MessageRequest struct {
	SubjectID int64 `json:"subjectId" validate:"required"`
}

// ActionRequest applies a pet, treat, ball toss or belly rub to a subject.
type ActionRequest struct {
	SubjectID int64 `json:"subjectId" validate:"required"`

	// Magnitude is the number of pets or treats. Omitted means one.
	Magnitude int64 `json:"magnitude" validate:"omitempty,gte=1,lte=1000000"`

	// SentAt is when the user sent the command. Used for ball tosses.
	SentAt *time.Time `json:"sentAt,omitempty"`
}

// ApologyRequest asks the corgi to forgive a subject.
type ApologyRequest struct {
	SubjectID int64 `json:"subjectId" validate:"required"`
}

// RollRequest rolls dice written as "NdM".
type RollRequest struct {
	Dice string `json:"dice" validate:"required,max=16"`
}

// AffectionQuery names how the subject should be addressed in the reply.
type AffectionQuery struct {
	Mention string `form:"mention" json:"mention" validate:"max=64,printable"`
}

// LeaderboardQuery selects the leaderboard size. Zero uses the default.
type LeaderboardQuery struct {
	N int `form:"n" json:"n" validate:"gte=0"`
}

// HelloQuery names who is being greeted.
type HelloQuery struct {
	Mention string `form:"mention" json:"mention" validate:"required,max=64,printable"`
}

// MessageResponse carries a single line for the chat host to post.
type MessageResponse struct {
	Text string `json:"text"`
}

// MentionResponse is the reply to a mention.
type MentionResponse struct {
	Text    string `json:"text"`
	Trigger string `json:"trigger"`
	Delta   int64  `json:"delta"`
	Score   *int64 `json:"score,omitempty"`
}

// ActionResponse is the reply to an action.
type ActionResponse struct {
	Text  string `json:"text"`
	Kind  string `json:"kind"`
	Tone  string `json:"tone"`
	Delta int64  `json:"delta"`
	Score int64  `json:"score"`
}

// AffectionResponse reports a subject's score.
type AffectionResponse struct {
	Text      string `json:"text"`
	SubjectID int64  `json:"subjectId"`
	Score     int64  `json:"score"`
	Max       int64  `json:"max"`
	LovedMost bool   `json:"lovedMost"`
}

// LeaderboardEntry is one leaderboard row.
type LeaderboardEntry struct {
	Rank      int   `json:"rank"`
	SubjectID int64 `json:"subjectId"`
	Score     int64 `json:"score"`
}

// LeaderboardResponse lists the most loved subjects.
type LeaderboardResponse struct {
	Text    string             `json:"text"`
	Size    int                `json:"size"`
	Entries []LeaderboardEntry `json:"entries"`
}

// ApologyResponse is the outcome of an apology.
type ApologyResponse struct {
	Text    string `json:"text"`
	Outcome string `json:"outcome"`
}

// RollResponse is a dice roll.
type RollResponse struct {
	Text  string `json:"text"`
	Dice  string `json:"dice"`
	Rolls []int  `json:"rolls"`
	Total int    `json:"total"`
}

// NewLeaderboardEntries ranks entries starting at 1.
func NewLeaderboardEntries(entries []domain.ScoreEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(entries))
	for i, e := range entries {
		out = append(out, LeaderboardEntry{Rank: i + 1, SubjectID: e.SubjectID, Score: e.Score})
	}

	return out
}
