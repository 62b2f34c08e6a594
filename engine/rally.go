package engine

import "fmt"

// RallyRules are the per-rally knobs taken from the game configuration.
type RallyRules struct {
	// BlockWindow is the block half-width; negative disables blocking.
	BlockWindow int
	// TwoTouchPenalty shifts the opposing reception target after a two-touch.
	TwoTouchPenalty int
	PenaltyEnabled  bool
	// RallyCap bounds the cards played in one rally.
	RallyCap int
}

// RallyResult describes a finished rally.
type RallyResult struct {
	Server      int
	Winner      int
	CardsPlayed int
	Reason      EndReason

	BlockAttempts  int
	BlockSuccesses int

	// TwoTouchSide is the first side to take a two-touch, NoSide if none did.
	TwoTouchSide    int
	TwoTouchStep    Step
	PenaltiesQueued int

	StartHands [2]int
	EndHands   [2]int
}

// TwoTouchUsed reports whether any side took a two-touch shortcut.
func (r RallyResult) TwoTouchUsed() bool { return r.TwoTouchSide != NoSide }

// turnOutcome is the result of one side's sequence turn.
type turnOutcome struct {
	ok     bool
	attack int
	played int
	reason EndReason

	twoTouch     bool
	twoTouchStep Step

	blockTried bool
	blocked    bool
}

// rally holds the mutable context of one point.
type rally struct {
	rules   RallyRules
	supply  *Supply
	teams   *[2]Team
	played  int
	pending [2]int
}

// PlayRally plays one point served by teams[server]. Cards leave the
// playing team's hand and go to the supply's discard pile. The only errors
// are fatal ones; a side running out of legal cards is a normal outcome.
func PlayRally(rules RallyRules, supply *Supply, teams *[2]Team, server int) (RallyResult, error) {
	r := &rally{rules: rules, supply: supply, teams: teams}
	res := RallyResult{
		Server:       server,
		Winner:       NoSide,
		TwoTouchSide: NoSide,
		StartHands:   r.handSizes(),
	}

	srv := &teams[server]
	serve, ok := srv.Policy.ChooseServe(srv.Hand)
	if !ok {
		return res, fmt.Errorf("team %s: %w", srv.Name, ErrEmptyServerHand)
	}
	if err := r.play(server, serve); err != nil {
		return res, err
	}

	last := int(serve)
	lastWasAttack := false
	receiver := 1 - server

	for turn := 0; res.Winner == NoSide; turn++ {
		side, seq := receiver, ReceivingSequence
		if turn%2 == 1 {
			side, seq = server, ServingSequence
		}

		if r.played >= rules.RallyCap {
			res.Winner = 1 - side
			res.Reason = ReasonRallyCap
			break
		}

		out, err := r.sequenceTurn(side, seq, last, lastWasAttack)
		if err != nil {
			return res, err
		}
		r.pending[side] = 0
		r.played += out.played
		if out.blockTried {
			res.BlockAttempts++
		}
		if out.blocked {
			res.BlockSuccesses++
		}

		if !out.ok {
			res.Winner = 1 - side
			res.Reason = out.reason
			break
		}

		if out.twoTouch && res.TwoTouchSide == NoSide {
			res.TwoTouchSide = side
			res.TwoTouchStep = out.twoTouchStep
			if rules.PenaltyEnabled {
				r.pending[1-side] = rules.TwoTouchPenalty
				res.PenaltiesQueued++
			}
		}
		last = out.attack
		// A blocked ball is returned, not attacked, so it cannot be blocked back.
		lastWasAttack = !out.blocked
	}

	res.CardsPlayed = r.played
	res.EndHands = r.handSizes()
	return res, nil
}

// sequenceTurn runs one side's block check and reception, pass, attack
// steps against the incoming value.
func (r *rally) sequenceTurn(side int, seq Sequence, incoming int, allowBlock bool) (turnOutcome, error) {
	team := &r.teams[side]
	var out turnOutcome

	if allowBlock && r.rules.BlockWindow >= 0 {
		out.blockTried = true
		if _, ok := team.Policy.ChooseBlock(team.Hand, Card(incoming), r.rules.BlockWindow); ok {
			out.ok = true
			out.blocked = true
			out.attack = incoming
			return out, nil
		}
	}

	last := incoming
	for i, constraint := range seq {
		step := Step(i)
		// Count this turn's cards against the cap as well as the rally's.
		if r.played+out.played >= r.rules.RallyCap {
			out.reason = ReasonRallyCap
			return out, nil
		}

		target := last
		if step == StepReception {
			target = adjustTarget(constraint, target, r.pending[side])
		}

		card, ok := team.Policy.ChooseCard(team.Hand, constraint, target)
		if !ok {
			out.reason = failureReason(step)
			return out, nil
		}
		if !team.Hand.Remove(card) {
			return out, fmt.Errorf("team %s: policy chose %d which is not in hand", team.Name, card)
		}
		r.supply.Discard(card)
		out.played++
		last = int(card)

		if step == StepAttack {
			break
		}
		if !team.Hand.AnyAllowed(seq[i+1], last) {
			out.twoTouch = true
			out.twoTouchStep = step
			break
		}
	}

	out.ok = true
	out.attack = last
	return out, nil
}

// play removes a card from a side's hand and discards it.
func (r *rally) play(side int, c Card) error {
	team := &r.teams[side]
	if !team.Hand.Remove(c) {
		return fmt.Errorf("team %s: policy chose %d which is not in hand", team.Name, c)
	}
	r.supply.Discard(c)
	r.played++
	return nil
}

func (r *rally) handSizes() [2]int {
	return [2]int{r.teams[0].Hand.Len(), r.teams[1].Hand.Len()}
}

// adjustTarget applies a pending two-touch bonus to a reception target,
// clamped at 0 under High and at MaxRank under Low.
func adjustTarget(c Constraint, target, bonus int) int {
	if bonus <= 0 {
		return target
	}
	switch c {
	case High:
		return max(0, target-bonus)
	case Low:
		return min(int(MaxRank), target+bonus)
	}
	return target
}
