package domain

import "regexp"

var (
	goodBoyPattern = regexp.MustCompile(`(?i)good (?:boy|dog)\s*(\?)?`)
	badDogPattern  = regexp.MustCompile(`(?i)bad dog!?`)
	treatPattern   = regexp.MustCompile(`(?i)treat\??`)
)

// Mention reaction deltas.
const (
	GoodBoyStatementDelta int64 = 2
	BadDogDelta           int64 = -1
	TreatRequestDelta     int64 = 5
)

// ClassifyMention maps the text of a message that mentions the corgi to a
// trigger and its score delta. mentionCount is the number of participants
// the message mentions, the corgi included; anything other than the corgi
// alone is a comparison and skips pattern matching.
func ClassifyMention(text string, mentionCount int) (TriggerKind, int64) {
	if mentionCount > 1 {
		return TriggerMultiMention, 0
	}

	if m := goodBoyPattern.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			return TriggerGoodBoyQuestion, 0
		}

		return TriggerGoodBoyStatement, GoodBoyStatementDelta
	}

	if badDogPattern.MatchString(text) {
		return TriggerBadDog, BadDogDelta
	}

	if treatPattern.MatchString(text) {
		return TriggerTreatRequest, TreatRequestDelta
	}

	return TriggerUnrecognized, 0
}
