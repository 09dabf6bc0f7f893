package games

import "math/rand"

// PhotoSet is one hint-reveal question: three progressively more revealing
// images sharing a base name. Incomplete triples never reach the engine.
type PhotoSet struct {
	Base   string    `json:"base"`
	Images [3]string `json:"images"`
}

// photoPoints decays strictly with the hint level: 30, 20, then 10.
func photoPoints(hintLevel int) int {
	switch hintLevel {
	case 1:
		return 30
	case 2:
		return 20
	default:
		return 10
	}
}

// PhotoRound is the hinted-photo minigame. Unlike the other engines it does
// not auto-advance: an answer (or pass) moves to AwaitContinue so the result
// view can show all three hint images, and Continue loads the next set.
type PhotoRound struct {
	phase     Phase
	sets      []PhotoSet
	index     int
	hintLevel int
	board     board
}

// NewPhotoRound shuffles the sets and starts at hint level 1.
func NewPhotoRound(sets []PhotoSet, ids []ParticipantID, lifetime *Ledger, rng *rand.Rand) (*PhotoRound, error) {
	if len(sets) == 0 {
		return nil, ErrNoContent
	}

	return &PhotoRound{
		phase:     PhaseRunning,
		sets:      shuffled(rng, sets),
		hintLevel: 1,
		board:     newBoard(ids, lifetime),
	}, nil
}

func (p *PhotoRound) Phase() Phase { return p.phase }

// Index returns the zero-based position of the current set.
func (p *PhotoRound) Index() int { return p.index }

// Total returns the number of photo sets in play.
func (p *PhotoRound) Total() int { return len(p.sets) }

// HintLevel returns the current reveal stage, 1 through 3.
func (p *PhotoRound) HintLevel() int { return p.hintLevel }

// Points returns the award for a correct call at the current hint level.
func (p *PhotoRound) Points() int { return photoPoints(p.hintLevel) }

// Current returns the active photo set.
func (p *PhotoRound) Current() (PhotoSet, bool) {
	if p.phase != PhaseRunning && p.phase != PhaseAwaitContinue {
		return PhotoSet{}, false
	}
	return p.sets[p.index], true
}

// RevealNextHint moves to the next reveal stage. The level never decrements
// and never wraps; at level 3 this is a no-op.
func (p *PhotoRound) RevealNextHint() bool {
	if p.phase != PhaseRunning || p.hintLevel >= 3 {
		return false
	}
	p.hintLevel++
	return true
}

// Answer resolves the current set at the current hint level. A winner gets the
// level's points in both ledgers; nil means pass. The engine then waits for an
// explicit Continue.
func (p *PhotoRound) Answer(winner *ParticipantID) (int, bool) {
	if p.phase != PhaseRunning {
		return 0, false
	}

	points := photoPoints(p.hintLevel)
	p.board.award(winner, points)
	p.phase = PhaseAwaitContinue

	if winner == nil {
		return 0, true
	}
	return points, true
}

// Continue moves to the next set, resetting the hint level. Returns true when
// the round has just ended.
func (p *PhotoRound) Continue() bool {
	if p.phase != PhaseAwaitContinue {
		return false
	}

	p.index++
	p.hintLevel = 1
	if p.index >= len(p.sets) {
		p.phase = PhaseEnded
		return true
	}
	p.phase = PhaseRunning
	return false
}

// Scores exposes the per-minigame ledger for the result ranking.
func (p *PhotoRound) Scores() *Ledger { return p.board.round }
