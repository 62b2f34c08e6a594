package engine

import "fmt"

// Hand is a multiset of cards indexed by rank. Order is irrelevant to the
// rules, so the zero value is an empty hand and copies are cheap.
type Hand struct {
	counts [MaxRank + 1]uint8
	size   int
}

// NewHand returns a hand holding the given cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add puts a card into the hand. It panics if c is not a valid rank.
func (h *Hand) Add(c Card) {
	if !c.Valid() {
		panic(fmt.Sprintf("engine: invalid card rank %d", c))
	}
	h.counts[c]++
	h.size++
}

// Remove takes one copy of c out of the hand. It returns false when the
// hand holds no such card.
func (h *Hand) Remove(c Card) bool {
	if !c.Valid() || h.counts[c] == 0 {
		return false
	}
	h.counts[c]--
	h.size--
	return true
}

// Len returns the number of cards held.
func (h Hand) Len() int { return h.size }

// Count returns how many copies of c are held.
func (h Hand) Count(c Card) int {
	if !c.Valid() {
		return 0
	}
	return int(h.counts[c])
}

// Cards lists the hand in ascending rank order.
func (h Hand) Cards() []Card {
	out := make([]Card, 0, h.size)
	for r := MinRank; r <= MaxRank; r++ {
		for i := uint8(0); i < h.counts[r]; i++ {
			out = append(out, r)
		}
	}
	return out
}

// Min returns the lowest card held.
func (h Hand) Min() (Card, bool) {
	return h.minIn(int(MinRank), int(MaxRank))
}

// MinAllowed returns the lowest card satisfying the constraint against target.
func (h Hand) MinAllowed(c Constraint, target int) (Card, bool) {
	lo, hi := allowedRange(c, target)
	return h.minIn(lo, hi)
}

// AnyAllowed reports whether some card satisfies the constraint against target.
func (h Hand) AnyAllowed(c Constraint, target int) bool {
	_, ok := h.MinAllowed(c, target)
	return ok
}

// Allowed lists every card satisfying the constraint, ascending.
func (h Hand) Allowed(c Constraint, target int) []Card {
	lo, hi := allowedRange(c, target)
	return h.between(lo, hi)
}

// minIn returns the lowest card with rank in [lo, hi].
func (h Hand) minIn(lo, hi int) (Card, bool) {
	lo = max(lo, int(MinRank))
	hi = min(hi, int(MaxRank))
	for r := lo; r <= hi; r++ {
		if h.counts[r] > 0 {
			return Card(r), true
		}
	}
	return 0, false
}

// between lists cards with rank in [lo, hi], ascending.
func (h Hand) between(lo, hi int) []Card {
	lo = max(lo, int(MinRank))
	hi = min(hi, int(MaxRank))
	var out []Card
	for r := lo; r <= hi; r++ {
		for i := uint8(0); i < h.counts[r]; i++ {
			out = append(out, Card(r))
		}
	}
	return out
}

func allowedRange(c Constraint, target int) (lo, hi int) {
	switch c {
	case High:
		return target + 1, int(MaxRank)
	case Low:
		return int(MinRank), target - 1
	}
	return 1, 0
}

// Team is one side of the net: a name, a hand and the policy that plays it.
type Team struct {
	Name   string
	Hand   Hand
	Policy Policy
}
