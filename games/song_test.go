package games_test

import (
	"math/rand"
	"testing"

	"github.com/iniiswil/speed-quiz/games"
)

func TestSongPointsTierBoundaries(t *testing.T) {
	tests := []struct {
		elapsed int
		want    int
	}{
		{0, 50},
		{19, 50},
		{20, 40},
		{39, 40},
		{40, 30},
		{59, 30},
		{60, 20},
		{79, 20},
		{80, 10},
		{500, 10},
	}

	for _, tc := range tests {
		round, _ := newSongRound(t, 1)
		winner := games.ParticipantID("p1")

		for i := 0; i < tc.elapsed; i++ {
			round.Tick()
		}

		points, elapsed, ok := round.Answer(&winner)
		if !ok {
			t.Fatalf("elapsed %d: expected answer to resolve", tc.elapsed)
		}
		if elapsed != tc.elapsed {
			t.Fatalf("expected elapsed %d, got %d", tc.elapsed, elapsed)
		}
		if points != tc.want {
			t.Fatalf("elapsed %d: expected %d points, got %d", tc.elapsed, tc.want, points)
		}
	}
}

func TestSongPauseSuspendsElapsed(t *testing.T) {
	round, _ := newSongRound(t, 1)

	for i := 0; i < 5; i++ {
		round.Tick()
	}

	if !round.TogglePlayback() {
		t.Fatal("expected toggle to succeed")
	}
	for i := 0; i < 30; i++ {
		round.Tick()
	}
	if got := round.Elapsed(); got != 5 {
		t.Fatalf("expected elapsed frozen at 5 while paused, got %d", got)
	}

	round.TogglePlayback()
	round.Tick()
	if got := round.Elapsed(); got != 6 {
		t.Fatalf("expected accrual to resume from 5, got %d", got)
	}
}

func TestSongContinueResetsCounterAndPlayback(t *testing.T) {
	round, lifetime := newSongRound(t, 2)
	winner := games.ParticipantID("p2")

	for i := 0; i < 25; i++ {
		round.Tick()
	}

	points, _, ok := round.Answer(&winner)
	if !ok || points != 40 {
		t.Fatalf("expected 40 points at 25s, got %d (ok=%v)", points, ok)
	}
	if round.Playing() {
		t.Fatal("expected playback stopped after an answer")
	}
	if got := lifetime.Score("p2"); got != 40 {
		t.Fatalf("expected lifetime score 40, got %d", got)
	}

	if round.Continue() {
		t.Fatal("expected a second track to remain")
	}
	if got := round.Elapsed(); got != 0 {
		t.Fatalf("expected counter reset, got %d", got)
	}
	if !round.Playing() {
		t.Fatal("expected next track to start playing")
	}

	round.Answer(nil)
	if !round.Continue() {
		t.Fatal("expected round to end after the last track")
	}
}

func TestSongPassAwardsNothing(t *testing.T) {
	round, lifetime := newSongRound(t, 1)

	points, _, ok := round.Answer(nil)
	if !ok || points != 0 {
		t.Fatalf("expected pass to award 0, got %d (ok=%v)", points, ok)
	}
	if got := lifetime.Score("p1"); got != 0 {
		t.Fatalf("expected no award on pass, got %d", got)
	}
}

func TestSongStopHaltsRound(t *testing.T) {
	round, _ := newSongRound(t, 1)

	round.Stop()

	if round.Playing() {
		t.Fatal("expected playback stopped")
	}
	if round.Phase() != games.PhaseEnded {
		t.Fatalf("expected ended, got %v", round.Phase())
	}
	if _, _, ok := round.Answer(nil); ok {
		t.Fatal("expected answers refused after stop")
	}
}

func newSongRound(t *testing.T, tracks int) (*games.SongRound, *games.Ledger) {
	t.Helper()

	pool := make([]games.SongAsset, 0, tracks)
	for i := 0; i < tracks; i++ {
		name := string(rune('a' + i))
		pool = append(pool, games.SongAsset{
			Path:  "songs/" + name + ".mp3",
			Title: name,
		})
	}

	ids := []games.ParticipantID{"p1", "p2"}
	lifetime := games.NewLedger(ids)
	rng := rand.New(rand.NewSource(1))

	round, err := games.NewSongRound(pool, ids, lifetime, rng)
	if err != nil {
		t.Fatalf("song: %v", err)
	}
	return round, lifetime
}
