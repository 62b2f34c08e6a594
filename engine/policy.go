package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// Policy decides which card a team plays. Implementations receive a copy
// of the hand and must not assume the card is removed until the engine
// plays it.
//
// ChooseBlock targets the attacking card itself. ChooseCard takes an int
// target because a reception bonus can shift it to 0 or past a card rank.
type Policy interface {
	// ChooseServe picks the serve card, false when the hand is empty.
	ChooseServe(hand Hand) (Card, bool)
	// ChooseBlock picks a card within window ranks of target, false when
	// the team does not block.
	ChooseBlock(hand Hand, target Card, window int) (Card, bool)
	// ChooseCard picks a card satisfying constraint against target, false
	// when none exists.
	ChooseCard(hand Hand, constraint Constraint, target int) (Card, bool)
}

// PolicyKind selects a Policy implementation.
type PolicyKind uint8

const (
	PolicyBasic PolicyKind = iota
	PolicyRandom
)

func (k PolicyKind) String() string {
	switch k {
	case PolicyBasic:
		return "basic"
	case PolicyRandom:
		return "random"
	}
	return fmt.Sprintf("PolicyKind(%d)", uint8(k))
}

// ParsePolicyKind resolves a policy name; the empty name means basic.
func ParsePolicyKind(name string) (PolicyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "basic":
		return PolicyBasic, nil
	case "random":
		return PolicyRandom, nil
	}
	return 0, fmt.Errorf("unknown policy %q", name)
}

// NewPolicy creates the policy for kind. Randomized policies draw from rng.
func NewPolicy(kind PolicyKind, rng *rand.Rand) (Policy, error) {
	switch kind {
	case PolicyBasic:
		return BasicPolicy{}, nil
	case PolicyRandom:
		if rng == nil {
			return nil, fmt.Errorf("random policy requires a random source")
		}
		return &RandomPolicy{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown policy kind: %d", kind)
	}
}

// blockRange returns the inclusive rank range a block may use.
func blockRange(target Card, window int) (lo, hi int) {
	lo = max(int(MinRank), int(target)-window)
	hi = min(int(MaxRank), int(target)+window)
	return lo, hi
}

// BasicPolicy always plays the lowest legal card.
type BasicPolicy struct{}

func (BasicPolicy) ChooseServe(hand Hand) (Card, bool) {
	return hand.Min()
}

func (BasicPolicy) ChooseBlock(hand Hand, target Card, window int) (Card, bool) {
	if window < 0 {
		return 0, false
	}
	lo, hi := blockRange(target, window)
	return hand.minIn(lo, hi)
}

func (BasicPolicy) ChooseCard(hand Hand, constraint Constraint, target int) (Card, bool) {
	return hand.MinAllowed(constraint, target)
}

// RandomPolicy plays a uniformly chosen legal card.
type RandomPolicy struct {
	rng *rand.Rand
}

func (p *RandomPolicy) pick(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return 0, false
	}
	return cards[p.rng.Intn(len(cards))], true
}

func (p *RandomPolicy) ChooseServe(hand Hand) (Card, bool) {
	return p.pick(hand.Cards())
}

func (p *RandomPolicy) ChooseBlock(hand Hand, target Card, window int) (Card, bool) {
	if window < 0 {
		return 0, false
	}
	return p.pick(hand.between(blockRange(target, window)))
}

func (p *RandomPolicy) ChooseCard(hand Hand, constraint Constraint, target int) (Card, bool) {
	return p.pick(hand.Allowed(constraint, target))
}
