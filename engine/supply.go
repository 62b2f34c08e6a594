package engine

import (
	"errors"
	"math/rand"
)

var (
	// ErrSupplyExhausted is returned when a draw finds both piles empty.
	ErrSupplyExhausted = errors.New("supply exhausted")
	// ErrEmptyServerHand is returned when the serving team has nothing to serve.
	ErrEmptyServerHand = errors.New("server has no card to play")
)

// Supply is the shared draw pile and discard pile of one game.
type Supply struct {
	draw       []Card
	discard    []Card
	reshuffles int
	rng        *rand.Rand
}

// NewSupply builds a shuffled deck of four copies of each rank, or five
// with specials. All shuffles draw from rng.
func NewSupply(includeSpecials bool, rng *rand.Rand) *Supply {
	copies := CopiesPerRank
	if includeSpecials {
		copies++
	}
	cards := make([]Card, 0, DeckSize(includeSpecials))
	for i := 0; i < copies; i++ {
		for r := MinRank; r <= MaxRank; r++ {
			cards = append(cards, r)
		}
	}
	s := &Supply{
		draw:    cards,
		discard: make([]Card, 0, len(cards)),
		rng:     rng,
	}
	s.shuffle(s.draw)
	return s
}

func (s *Supply) shuffle(cards []Card) {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Draw pops one card. An empty draw pile is first refilled from the
// discard pile when the discard pile holds anything.
func (s *Supply) Draw() (Card, error) {
	if len(s.draw) == 0 {
		s.reshuffle()
	}
	if len(s.draw) == 0 {
		return 0, ErrSupplyExhausted
	}
	n := len(s.draw) - 1
	c := s.draw[n]
	s.draw = s.draw[:n]
	return c, nil
}

// reshuffle swaps the discard pile in as the new draw pile.
func (s *Supply) reshuffle() {
	if len(s.discard) == 0 {
		return
	}
	s.draw, s.discard = s.discard, s.draw[:0]
	s.shuffle(s.draw)
	s.reshuffles++
}

// Discard adds a card to the discard pile.
func (s *Supply) Discard(c Card) {
	s.discard = append(s.discard, c)
}

// Remaining returns the size of the draw pile.
func (s *Supply) Remaining() int { return len(s.draw) }

// DiscardCount returns the size of the discard pile.
func (s *Supply) DiscardCount() int { return len(s.discard) }

// Reshuffles returns how many times the discard pile has been recycled.
func (s *Supply) Reshuffles() int { return s.reshuffles }
