package games

import "math/rand"

// QuestionKind distinguishes call-out prompts from act-it-out prompts.
type QuestionKind string

const (
	KindSpeed QuestionKind = "speed"
	KindBody  QuestionKind = "body"
)

// QuestionItem is one speed-quiz prompt.
type QuestionItem struct {
	Text     string       `json:"text"`
	Kind     QuestionKind `json:"kind"`
	Category string       `json:"category"`
}

// questionPoints implements the scoring table: speed prompts are worth 10,
// act-it-out prompts 20, proverbs 30.
func questionPoints(q QuestionItem) int {
	if q.Kind == KindBody {
		if q.Category == "proverbs" {
			return 30
		}
		return 20
	}
	return 10
}

// Wrong answers lock input for this many seconds.
const penaltySeconds = 3

// SpeedRound is the timed presenter/guesser minigame.
//
// Phases: Idle -> Running <-> Penalty -> Ended, with Running <-> Paused.
// Pausing force-clears an in-flight penalty (the miss is already counted), so
// pause and penalty can never overlap and resume never has to re-check the
// penalty branch.
type SpeedRound struct {
	phase   Phase
	rng     *rand.Rand
	pairing Pairing

	questions   []QuestionItem
	index       int
	remaining   int
	penaltyLeft int

	score  int
	hits   int
	misses int

	session  *Ledger
	lifetime *Ledger
	summary  Summary
}

// NewSpeedRound prepares a round for the given pairing. Scores fold into the
// session and lifetime ledgers when the round ends.
func NewSpeedRound(pairing Pairing, session, lifetime *Ledger, rng *rand.Rand) *SpeedRound {
	return &SpeedRound{
		phase:    PhaseIdle,
		rng:      rng,
		pairing:  pairing,
		session:  session,
		lifetime: lifetime,
	}
}

// Start resets all counters, shuffles the combined question pool, and begins
// the countdown.
func (s *SpeedRound) Start(timerSeconds int, questions []QuestionItem) error {
	if s.phase != PhaseIdle {
		return ErrInvalidTransition
	}
	if len(questions) == 0 {
		return ErrNoContent
	}

	s.questions = shuffled(s.rng, questions)
	s.index = 0
	s.remaining = timerSeconds
	s.penaltyLeft = 0
	s.score = 0
	s.hits = 0
	s.misses = 0
	s.phase = PhaseRunning

	return nil
}

func (s *SpeedRound) Phase() Phase { return s.phase }

// Pairing returns the presenter/guesser pair playing this round.
func (s *SpeedRound) Pairing() Pairing { return s.pairing }

// Remaining returns the main countdown in seconds.
func (s *SpeedRound) Remaining() int { return s.remaining }

// PenaltyRemaining returns the seconds left on the input lockout, zero when no
// penalty is active.
func (s *SpeedRound) PenaltyRemaining() int { return s.penaltyLeft }

// Score returns the running round score.
func (s *SpeedRound) Score() int { return s.score }

// Current returns the active question.
func (s *SpeedRound) Current() (QuestionItem, bool) {
	switch s.phase {
	case PhaseRunning, PhasePaused, PhasePenalty:
		return s.questions[s.index], true
	default:
		return QuestionItem{}, false
	}
}

// Tick advances one second of game time. The main countdown only moves while
// Running; during Penalty the same tick source drives the lockout countdown
// instead. Returns true when the round has just ended.
func (s *SpeedRound) Tick() bool {
	switch s.phase {
	case PhaseRunning:
		s.remaining--
		if s.remaining <= 0 {
			s.remaining = 0
			s.End()
			return true
		}
	case PhasePenalty:
		s.penaltyLeft--
		if s.penaltyLeft <= 0 {
			s.penaltyLeft = 0
			s.advance()
			s.phase = PhaseRunning
		}
	}
	return false
}

// MarkCorrect scores the current question and moves to the next one. Only
// legal while Running.
func (s *SpeedRound) MarkCorrect() bool {
	if s.phase != PhaseRunning {
		return false
	}

	s.score += questionPoints(s.questions[s.index])
	s.hits++
	s.advance()
	return true
}

// MarkWrong counts a miss and enters the fixed-length penalty lockout. The
// question advances when the lockout expires.
func (s *SpeedRound) MarkWrong() bool {
	if s.phase != PhaseRunning {
		return false
	}

	s.misses++
	s.penaltyLeft = penaltySeconds
	s.phase = PhasePenalty
	return true
}

// Pause suspends the countdown. An in-flight penalty is force-cleared without
// advancing the question, keeping pause and penalty mutually exclusive.
func (s *SpeedRound) Pause() bool {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePenalty:
		s.penaltyLeft = 0
		s.phase = PhasePaused
	default:
		return false
	}
	return true
}

// Resume continues the countdown after a pause.
func (s *SpeedRound) Resume() bool {
	if s.phase != PhasePaused {
		return false
	}
	s.phase = PhaseRunning
	return true
}

// End stops the round and folds the round score into both ledgers for both
// pairing members (the full score each, not a split). Idempotent: calling End
// again returns the same summary without folding twice.
func (s *SpeedRound) End() Summary {
	if s.phase == PhaseEnded {
		return s.summary
	}
	if s.phase == PhaseIdle {
		s.phase = PhaseEnded
		return s.summary
	}

	s.penaltyLeft = 0
	s.phase = PhaseEnded

	for _, id := range []ParticipantID{s.pairing.Presenter, s.pairing.Guesser} {
		s.session.add(id, s.score)
		s.lifetime.add(id, s.score)
	}

	s.summary = Summary{
		Score:  s.score,
		Hits:   s.hits,
		Misses: s.misses,
	}
	return s.summary
}

// advance moves to the next question, reshuffling and restarting when the pool
// is exhausted so it never runs dry.
func (s *SpeedRound) advance() {
	s.index++
	if s.index >= len(s.questions) {
		s.questions = shuffled(s.rng, s.questions)
		s.index = 0
	}
}
