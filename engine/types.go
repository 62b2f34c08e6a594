package engine

import "fmt"

// Card is a rank in [MinRank, MaxRank]. Suits do not exist in this game.
type Card uint8

const (
	MinRank Card = 1
	MaxRank Card = 13

	// CopiesPerRank is the number of copies of each rank in a standard deck.
	CopiesPerRank = 4
)

// Valid reports whether the card carries a playable rank.
func (c Card) Valid() bool { return c >= MinRank && c <= MaxRank }

// DeckSize returns the number of cards in a deck, 52 or 65 with specials.
func DeckSize(includeSpecials bool) int {
	copies := CopiesPerRank
	if includeSpecials {
		copies++
	}
	return copies * int(MaxRank)
}

// Side indexes a team within a rally.
const (
	SideA  = 0
	SideB  = 1
	NoSide = -1
)

// Constraint is the legality rule for a step: the played card must be
// strictly higher or strictly lower than the target.
type Constraint uint8

const (
	High Constraint = iota
	Low
)

func (c Constraint) String() string {
	switch c {
	case High:
		return "HIGH"
	case Low:
		return "LOW"
	}
	return fmt.Sprintf("Constraint(%d)", uint8(c))
}

// Allows reports whether a card satisfies the constraint against target.
func (c Constraint) Allows(card Card, target int) bool {
	switch c {
	case High:
		return int(card) > target
	case Low:
		return int(card) < target
	}
	return false
}

// Step labels a position within a sequence turn.
type Step uint8

const (
	StepReception Step = iota
	StepPass
	StepAttack
)

// StepsPerSequence is the length of a full sequence turn.
const StepsPerSequence = 3

func (s Step) String() string {
	switch s {
	case StepReception:
		return "RECV"
	case StepPass:
		return "PASS"
	case StepAttack:
		return "ATK"
	}
	return fmt.Sprintf("Step(%d)", uint8(s))
}

func (s Step) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Step) UnmarshalText(text []byte) error {
	for candidate := StepReception; candidate < StepsPerSequence; candidate++ {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", text)
}

// Sequence is the constraint applied at each step of a sequence turn.
type Sequence [StepsPerSequence]Constraint

var (
	// ReceivingSequence applies to the side that did not serve.
	ReceivingSequence = Sequence{High, Low, Low}
	// ServingSequence applies to the serving side.
	ServingSequence = Sequence{Low, High, High}
)

// EndReason records why a rally ended.
type EndReason uint8

const (
	ReasonNone EndReason = iota
	ReasonNoReception
	ReasonNoPass
	ReasonNoAttack
	ReasonRallyCap
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "NONE"
	case ReasonNoReception:
		return "NO_RECV"
	case ReasonNoPass:
		return "NO_PASS"
	case ReasonNoAttack:
		return "NO_ATTACK"
	case ReasonRallyCap:
		return "CAP_RALLY_LIMIT"
	}
	return fmt.Sprintf("EndReason(%d)", uint8(r))
}

func (r EndReason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *EndReason) UnmarshalText(text []byte) error {
	for candidate := ReasonNone; candidate <= ReasonRallyCap; candidate++ {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown end reason %q", text)
}

// IsExhaustion reports whether the rally ended because a side had no legal card.
func (r EndReason) IsExhaustion() bool {
	switch r {
	case ReasonNoReception, ReasonNoPass, ReasonNoAttack:
		return true
	}
	return false
}

// failureReason maps the step that could not be played to its end reason.
func failureReason(s Step) EndReason {
	switch s {
	case StepReception:
		return ReasonNoReception
	case StepPass:
		return ReasonNoPass
	case StepAttack:
		return ReasonNoAttack
	}
	return ReasonNone
}
