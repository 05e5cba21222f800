package domain

import "strings"

// Tone is the qualitative bucket of a scored action, used to pick a reply family.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// TriggerKind is the classified intent of a free-text mention.
type TriggerKind int

const (
	TriggerUnrecognized TriggerKind = iota
	TriggerGoodBoyQuestion
	TriggerGoodBoyStatement
	TriggerBadDog
	TriggerTreatRequest
	TriggerMultiMention
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerGoodBoyQuestion:
		return "good_boy_question"
	case TriggerGoodBoyStatement:
		return "good_boy_statement"
	case TriggerBadDog:
		return "bad_dog"
	case TriggerTreatRequest:
		return "treat_request"
	case TriggerMultiMention:
		return "multi_mention"
	default:
		return "unrecognized"
	}
}

// ActionKind names a score-changing command a user can direct at the corgi.
type ActionKind string

const (
	ActionPet      ActionKind = "pet"
	ActionTreat    ActionKind = "treat"
	ActionBall     ActionKind = "ball"
	ActionBellyRub ActionKind = "belly_rub"
)

// ParseActionKind resolves a case-insensitive action name.
func ParseActionKind(s string) (ActionKind, error) {
	switch kind := ActionKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case ActionPet, ActionTreat, ActionBall, ActionBellyRub:
		return kind, nil
	default:
		return "", NewValidationErrorWithValue("kind", "must be one of pet, treat, ball, belly_rub", s)
	}
}

// Scaled reports whether the action's delta depends on a magnitude.
func (a ActionKind) Scaled() bool {
	return a == ActionPet || a == ActionTreat
}

// ApologyOutcome is the result of asking the corgi for forgiveness.
type ApologyOutcome int

const (
	ApologyAlreadyFine ApologyOutcome = iota
	ApologyForgiven
	ApologyStillMad
	ApologyUnforgivable
)

func (o ApologyOutcome) String() string {
	switch o {
	case ApologyForgiven:
		return "forgiven"
	case ApologyStillMad:
		return "still_mad"
	case ApologyUnforgivable:
		return "unforgivable"
	default:
		return "already_fine"
	}
}
