package games_test

import (
	"math/rand"
	"testing"

	"github.com/iniiswil/speed-quiz/games"
)

func TestDrawPairingsFormsRotation(t *testing.T) {
	roster := newTestRoster(t, "Alice", "Bob", "Carol", "Dave", "Eve")

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		pairings := games.DrawPairings(roster, rng)

		if len(pairings) != roster.Len() {
			t.Fatalf("seed %d: expected %d pairings, got %d", seed, roster.Len(), len(pairings))
		}

		presented := make(map[games.ParticipantID]int)
		guessed := make(map[games.ParticipantID]int)
		for _, p := range pairings {
			if p.Presenter == p.Guesser {
				t.Fatalf("seed %d: participant paired with themselves: %+v", seed, p)
			}
			presented[p.Presenter]++
			guessed[p.Guesser]++
		}

		for _, id := range roster.IDs() {
			if presented[id] != 1 {
				t.Fatalf("seed %d: %s presents %d times", seed, id, presented[id])
			}
			if guessed[id] != 1 {
				t.Fatalf("seed %d: %s guesses %d times", seed, id, guessed[id])
			}
		}
	}
}
