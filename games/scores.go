package games

import "sort"

// Manual score edits are clamped to this range.
const (
	minScore = 0
	maxScore = 9999
)

// Ledger maps participants to non-negative integer scores. Every roster member
// always has an entry; absence is never meaningful.
type Ledger struct {
	scores map[ParticipantID]int
}

// NewLedger creates a ledger with a zero entry for every given participant.
func NewLedger(ids []ParticipantID) *Ledger {
	l := &Ledger{
		scores: make(map[ParticipantID]int, len(ids)),
	}
	for _, id := range ids {
		l.scores[id] = 0
	}
	return l
}

// Score returns the current score for a participant.
func (l *Ledger) Score(id ParticipantID) int {
	return l.scores[id]
}

// Has reports whether the ledger carries an entry for the participant.
func (l *Ledger) Has(id ParticipantID) bool {
	_, ok := l.scores[id]
	return ok
}

// add is the single award path used by all round engines.
func (l *Ledger) add(id ParticipantID, points int) {
	if _, ok := l.scores[id]; !ok {
		return
	}
	l.scores[id] += points
	if l.scores[id] < minScore {
		l.scores[id] = minScore
	}
}

// Set overwrites a score, clamped to [0, 9999].
func (l *Ledger) Set(id ParticipantID, score int) {
	if _, ok := l.scores[id]; !ok {
		return
	}
	l.scores[id] = clampScore(score)
}

// Adjust shifts a score by delta, clamped to [0, 9999].
func (l *Ledger) Adjust(id ParticipantID, delta int) {
	if current, ok := l.scores[id]; ok {
		l.scores[id] = clampScore(current + delta)
	}
}

// Reset zeroes every entry, keeping the participant set intact.
func (l *Ledger) Reset() {
	for id := range l.scores {
		l.scores[id] = 0
	}
}

func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// RankedEntry is a derived standings row; it is never stored.
type RankedEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rank  int    `json:"rank"`
}

// Rank produces standings in score-descending order with standard competition
// ranking: equal scores share a rank, and the next distinct score's rank is its
// 1-based position, so ties skip ranks ([50,50,30] -> [1,1,3]). Participants
// with equal scores keep roster order.
func Rank(roster *Roster, ledger *Ledger) []RankedEntry {
	entries := make([]RankedEntry, 0, roster.Len())
	for _, p := range roster.Members() {
		entries = append(entries, RankedEntry{
			Name:  p.Name,
			Score: ledger.Score(p.ID),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		if i > 0 && entries[i].Score == entries[i-1].Score {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}

	return entries
}
