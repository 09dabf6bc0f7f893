package games

import "math/rand"

// Pairing assigns one presenter and one guesser for a speed-quiz round. The
// list is drawn once per session and read-only afterwards; names are resolved
// through the roster at render time.
type Pairing struct {
	Presenter ParticipantID
	Guesser   ParticipantID
}

// DrawPairings shuffles the roster, pairs every participant with the next one
// in the shuffled order (wrapping), then shuffles the pairing list itself so
// the reveal order is independent of the rotation.
func DrawPairings(roster *Roster, rng *rand.Rand) []Pairing {
	ids := shuffled(rng, roster.IDs())

	pairings := make([]Pairing, 0, len(ids))
	for i := range ids {
		pairings = append(pairings, Pairing{
			Presenter: ids[i],
			Guesser:   ids[(i+1)%len(ids)],
		})
	}

	return shuffled(rng, pairings)
}
