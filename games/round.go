package games

import (
	"errors"
	"math/rand"
)

var (
	// ErrNoContent signals that an asset source produced zero usable items;
	// the requested round must not start.
	ErrNoContent = errors.New("no usable content")
	// ErrInvalidTransition is returned for operations that are not legal in
	// the engine's current phase.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnknownParticipant is returned for operations referencing an ID that
	// is not on the roster.
	ErrUnknownParticipant = errors.New("unknown participant")
	// ErrNameTaken guards display-name uniqueness.
	ErrNameTaken = errors.New("name already taken")
	// ErrIncompleteSelections blocks O/X resolution until everyone has chosen.
	ErrIncompleteSelections = errors.New("not every participant has selected")
)

// Phase is the single source of truth for what a round engine will accept.
// Independent boolean flags (running/paused/penalty) are deliberately avoided
// so contradictory combinations cannot exist.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhasePenalty
	PhaseAwaitContinue
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhasePenalty:
		return "penalty"
	case PhaseAwaitContinue:
		return "await_continue"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Summary carries a round's terminal values after they have been folded into
// the ledgers.
type Summary struct {
	Score   int `json:"score"`
	Hits    int `json:"hitCount"`
	Misses  int `json:"missCount"`
	Elapsed int `json:"elapsed,omitempty"`
}

// board is the shared scoring sink for a running minigame: every engine writes
// through the same award path into its per-minigame ledger and the lifetime
// ledger, instead of repeating the two-map mutation in five places.
type board struct {
	round    *Ledger
	lifetime *Ledger
}

func newBoard(ids []ParticipantID, lifetime *Ledger) board {
	return board{
		round:    NewLedger(ids),
		lifetime: lifetime,
	}
}

// award credits points in both scopes. A nil winner (pass) is a no-op.
func (b board) award(winner *ParticipantID, points int) {
	if winner == nil || points == 0 {
		return
	}
	b.round.add(*winner, points)
	b.lifetime.add(*winner, points)
}

// shuffled returns a copied, shuffled slice.
func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
