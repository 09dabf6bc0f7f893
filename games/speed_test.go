package games_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/iniiswil/speed-quiz/games"
)

func TestSpeedScoringTable(t *testing.T) {
	tests := []struct {
		name     string
		question games.QuestionItem
		want     int
	}{
		{"speed prompt", games.QuestionItem{Text: "apple", Kind: games.KindSpeed, Category: "objects"}, 10},
		{"body prompt", games.QuestionItem{Text: "swimming", Kind: games.KindBody, Category: "actions"}, 20},
		{"body proverb", games.QuestionItem{Text: "early bird", Kind: games.KindBody, Category: "proverbs"}, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			round, _, _ := newSpeedRound(t, 60, tc.question)

			if !round.MarkCorrect() {
				t.Fatal("expected MarkCorrect to succeed while running")
			}
			if got := round.Score(); got != tc.want {
				t.Fatalf("expected score %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSpeedStartRequiresIdleAndContent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ledger := games.NewLedger([]games.ParticipantID{"p1", "p2"})
	round := games.NewSpeedRound(games.Pairing{Presenter: "p1", Guesser: "p2"}, ledger, ledger, rng)

	if err := round.Start(60, nil); !errors.Is(err, games.ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}

	if err := round.Start(60, []games.QuestionItem{{Text: "a", Kind: games.KindSpeed}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := round.Start(60, []games.QuestionItem{{Text: "a", Kind: games.KindSpeed}}); !errors.Is(err, games.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on double start, got %v", err)
	}
}

func TestSpeedPenaltyLocksInputAndAdvances(t *testing.T) {
	round, _, _ := newSpeedRound(t, 60,
		games.QuestionItem{Text: "first", Kind: games.KindSpeed},
		games.QuestionItem{Text: "second", Kind: games.KindSpeed},
	)

	before, _ := round.Current()

	if !round.MarkWrong() {
		t.Fatal("expected MarkWrong to succeed while running")
	}
	if round.Phase() != games.PhasePenalty {
		t.Fatalf("expected penalty phase, got %v", round.Phase())
	}
	if round.PenaltyRemaining() != 3 {
		t.Fatalf("expected 3s lockout, got %d", round.PenaltyRemaining())
	}

	// Input is refused for the whole lockout.
	if round.MarkCorrect() || round.MarkWrong() {
		t.Fatal("expected inputs to be refused during penalty")
	}

	// Penalty ticks must not consume round time.
	remaining := round.Remaining()
	for i := 0; i < 3; i++ {
		if round.Tick() {
			t.Fatal("round must not end from a penalty tick")
		}
	}
	if round.Remaining() != remaining {
		t.Fatalf("expected main timer frozen at %d, got %d", remaining, round.Remaining())
	}

	if round.Phase() != games.PhaseRunning {
		t.Fatalf("expected running after lockout, got %v", round.Phase())
	}
	after, _ := round.Current()
	if after.Text == before.Text {
		t.Fatal("expected the missed question to be skipped after the lockout")
	}
	if round.Score() != 0 {
		t.Fatalf("expected no points for a miss, got %d", round.Score())
	}
}

func TestSpeedPauseClearsPenaltyWithoutAdvancing(t *testing.T) {
	round, _, _ := newSpeedRound(t, 60,
		games.QuestionItem{Text: "first", Kind: games.KindSpeed},
		games.QuestionItem{Text: "second", Kind: games.KindSpeed},
	)

	before, _ := round.Current()
	round.MarkWrong()

	if !round.Pause() {
		t.Fatal("expected pause during penalty to succeed")
	}
	if round.PenaltyRemaining() != 0 {
		t.Fatalf("expected penalty cleared by pause, got %d", round.PenaltyRemaining())
	}

	// Time stands still while paused.
	remaining := round.Remaining()
	round.Tick()
	if round.Remaining() != remaining {
		t.Fatal("expected no countdown while paused")
	}

	if !round.Resume() {
		t.Fatal("expected resume from paused")
	}
	if round.Phase() != games.PhaseRunning {
		t.Fatalf("expected running after resume, got %v", round.Phase())
	}
	after, _ := round.Current()
	if after.Text != before.Text {
		t.Fatal("expected the question to survive a pause-cancelled penalty")
	}
}

func TestSpeedTimerExpiryEndsRound(t *testing.T) {
	round, session, lifetime := newSpeedRound(t, 2, games.QuestionItem{Text: "a", Kind: games.KindSpeed})

	round.MarkCorrect()

	if round.Tick() {
		t.Fatal("expected round still running after first tick")
	}
	if !round.Tick() {
		t.Fatal("expected round to end when the timer hits zero")
	}
	if round.Phase() != games.PhaseEnded {
		t.Fatalf("expected ended, got %v", round.Phase())
	}

	// Both pairing members receive the full round score in both ledgers.
	for _, id := range []games.ParticipantID{"p1", "p2"} {
		if got := session.Score(id); got != 10 {
			t.Fatalf("expected session score 10 for %s, got %d", id, got)
		}
		if got := lifetime.Score(id); got != 10 {
			t.Fatalf("expected lifetime score 10 for %s, got %d", id, got)
		}
	}
}

func TestSpeedEndIsIdempotent(t *testing.T) {
	round, session, lifetime := newSpeedRound(t, 60,
		games.QuestionItem{Text: "a", Kind: games.KindSpeed},
	)

	round.MarkCorrect()
	round.MarkWrong()

	first := round.End()
	second := round.End()

	if first != second {
		t.Fatalf("expected identical summaries, got %+v and %+v", first, second)
	}
	if first.Score != 10 || first.Hits != 1 || first.Misses != 1 {
		t.Fatalf("unexpected summary %+v", first)
	}
	if session.Score("p1") != 10 || lifetime.Score("p1") != 10 {
		t.Fatal("expected score folded exactly once")
	}
}

func TestSpeedPoolReshufflesInsteadOfRunningDry(t *testing.T) {
	round, _, _ := newSpeedRound(t, 600, games.QuestionItem{Text: "only", Kind: games.KindSpeed})

	for i := 0; i < 10; i++ {
		if !round.MarkCorrect() {
			t.Fatalf("expected question %d to be available", i+1)
		}
		if _, ok := round.Current(); !ok {
			t.Fatalf("expected a current question after %d answers", i+1)
		}
	}
	if round.Score() != 100 {
		t.Fatalf("expected 100 points, got %d", round.Score())
	}
}

func newSpeedRound(t *testing.T, timerSeconds int, questions ...games.QuestionItem) (*games.SpeedRound, *games.Ledger, *games.Ledger) {
	t.Helper()

	ids := []games.ParticipantID{"p1", "p2"}
	session := games.NewLedger(ids)
	lifetime := games.NewLedger(ids)
	rng := rand.New(rand.NewSource(1))

	round := games.NewSpeedRound(games.Pairing{Presenter: "p1", Guesser: "p2"}, session, lifetime, rng)
	if err := round.Start(timerSeconds, questions); err != nil {
		t.Fatalf("start: %v", err)
	}
	return round, session, lifetime
}
