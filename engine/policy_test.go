package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicPolicyServe(t *testing.T) {
	p := BasicPolicy{}
	c, ok := p.ChooseServe(NewHand(9, 4, 11))
	require.True(t, ok)
	assert.Equal(t, Card(4), c)

	_, ok = p.ChooseServe(Hand{})
	assert.False(t, ok)
}

func TestBasicPolicyBlock(t *testing.T) {
	p := BasicPolicy{}
	c, ok := p.ChooseBlock(NewHand(5, 9, 12), 9, 2)
	require.True(t, ok)
	assert.Equal(t, Card(9), c)

	_, ok = p.ChooseBlock(NewHand(5, 12), 9, 2)
	assert.False(t, ok)

	// The window is clamped to the rank range.
	c, ok = p.ChooseBlock(NewHand(1), 2, 5)
	require.True(t, ok)
	assert.Equal(t, Card(1), c)

	_, ok = p.ChooseBlock(NewHand(9), 9, -1)
	assert.False(t, ok)
}

func TestBasicPolicyCard(t *testing.T) {
	p := BasicPolicy{}
	hand := NewHand(3, 8, 10)

	c, ok := p.ChooseCard(hand, High, 8)
	require.True(t, ok)
	assert.Equal(t, Card(10), c)

	_, ok = p.ChooseCard(hand, High, 11)
	assert.False(t, ok)

	c, ok = p.ChooseCard(hand, Low, 10)
	require.True(t, ok)
	assert.Equal(t, Card(3), c)
}

func TestRandomPolicyStaysLegal(t *testing.T) {
	p, err := NewPolicy(PolicyRandom, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	hand := NewHand(2, 4, 6, 8, 10, 12)

	seen := map[Card]bool{}
	for i := 0; i < 200; i++ {
		c, ok := p.ChooseCard(hand, High, 6)
		require.True(t, ok)
		assert.Greater(t, int(c), 6)
		seen[c] = true

		b, ok := p.ChooseBlock(hand, 7, 1)
		require.True(t, ok)
		assert.Contains(t, []Card{6, 8}, b)
	}
	assert.Len(t, seen, 3, "every candidate should eventually be picked")

	_, ok := p.ChooseCard(hand, Low, 2)
	assert.False(t, ok)
	_, ok = p.ChooseServe(Hand{})
	assert.False(t, ok)
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy(PolicyBasic, nil)
	require.NoError(t, err)
	assert.IsType(t, BasicPolicy{}, p)

	_, err = NewPolicy(PolicyRandom, nil)
	assert.Error(t, err)

	_, err = NewPolicy(PolicyKind(9), nil)
	assert.Error(t, err)
}

func TestParsePolicyKind(t *testing.T) {
	for name, want := range map[string]PolicyKind{
		"":        PolicyBasic,
		"basic":   PolicyBasic,
		" Random": PolicyRandom,
	} {
		got, err := ParsePolicyKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParsePolicyKind("lookahead")
	assert.Error(t, err)
}
