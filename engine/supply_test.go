package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawAll(t *testing.T, s *Supply) []Card {
	t.Helper()
	var out []Card
	for s.Remaining() > 0 {
		c, err := s.Draw()
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestNewSupplyComposition(t *testing.T) {
	for _, specials := range []bool{false, true} {
		s := NewSupply(specials, rand.New(rand.NewSource(1)))
		require.Equal(t, DeckSize(specials), s.Remaining())
		assert.Zero(t, s.DiscardCount())

		cards := drawAll(t, s)
		hand := NewHand(cards...)
		want := CopiesPerRank
		if specials {
			want++
		}
		for r := MinRank; r <= MaxRank; r++ {
			assert.Equal(t, want, hand.Count(r), "rank %d", r)
		}
	}
}

func TestSupplyShuffleIsSeeded(t *testing.T) {
	a := drawAll(t, NewSupply(false, rand.New(rand.NewSource(42))))
	b := drawAll(t, NewSupply(false, rand.New(rand.NewSource(42))))
	c := drawAll(t, NewSupply(false, rand.New(rand.NewSource(43))))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSupplyReshuffleOnEmpty(t *testing.T) {
	s := NewSupply(false, rand.New(rand.NewSource(7)))
	cards := drawAll(t, s)
	for _, c := range cards[:10] {
		s.Discard(c)
	}
	require.Zero(t, s.Remaining())
	require.Equal(t, 10, s.DiscardCount())
	require.Zero(t, s.Reshuffles())

	_, err := s.Draw()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Reshuffles())
	assert.Equal(t, 9, s.Remaining())
	assert.Zero(t, s.DiscardCount())

	// Draining the refilled pile again without discards is not a reshuffle.
	drawAll(t, s)
	_, err = s.Draw()
	assert.ErrorIs(t, err, ErrSupplyExhausted)
	assert.Equal(t, 1, s.Reshuffles())
}

func TestSupplyConservation(t *testing.T) {
	s := NewSupply(true, rand.New(rand.NewSource(3)))
	var held Hand
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		if held.Len() > 0 && rng.Intn(2) == 0 {
			c := held.Cards()[rng.Intn(held.Len())]
			held.Remove(c)
			s.Discard(c)
		} else {
			c, err := s.Draw()
			if err != nil {
				require.ErrorIs(t, err, ErrSupplyExhausted)
				continue
			}
			held.Add(c)
		}
		require.Equal(t, DeckSize(true), s.Remaining()+s.DiscardCount()+held.Len())
	}
}
