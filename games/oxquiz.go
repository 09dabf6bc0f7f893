package games

import "math/rand"

// OXChoice is a true/false selection.
type OXChoice string

const (
	ChoiceO OXChoice = "O"
	ChoiceX OXChoice = "X"
)

// TrueFalseItem is one O/X question with its recorded answer and explanation.
type TrueFalseItem struct {
	Question    string   `json:"question"`
	Answer      OXChoice `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Every matching selection earns this much.
const oxPoints = 10

// OXResult reports one resolved question.
type OXResult struct {
	Item    TrueFalseItem
	Correct []ParticipantID
}

// OXRound is the true/false minigame. Every participant must submit exactly
// one choice per question before resolution is permitted.
type OXRound struct {
	phase      Phase
	items      []TrueFalseItem
	index      int
	ids        []ParticipantID
	selections map[ParticipantID]OXChoice
	board      board
}

// NewOXRound shuffles the question list.
func NewOXRound(items []TrueFalseItem, ids []ParticipantID, lifetime *Ledger, rng *rand.Rand) (*OXRound, error) {
	if len(items) == 0 {
		return nil, ErrNoContent
	}

	return &OXRound{
		phase:      PhaseRunning,
		items:      shuffled(rng, items),
		ids:        ids,
		selections: make(map[ParticipantID]OXChoice, len(ids)),
		board:      newBoard(ids, lifetime),
	}, nil
}

func (o *OXRound) Phase() Phase { return o.phase }

// Index returns the zero-based position of the current question.
func (o *OXRound) Index() int { return o.index }

// Total returns the number of questions in play.
func (o *OXRound) Total() int { return len(o.items) }

// Current returns the active question.
func (o *OXRound) Current() (TrueFalseItem, bool) {
	if o.phase != PhaseRunning && o.phase != PhaseAwaitContinue {
		return TrueFalseItem{}, false
	}
	return o.items[o.index], true
}

// Selections returns a copy of the current choices.
func (o *OXRound) Selections() map[ParticipantID]OXChoice {
	out := make(map[ParticipantID]OXChoice, len(o.selections))
	for id, choice := range o.selections {
		out[id] = choice
	}
	return out
}

// Select records (or replaces) one participant's choice for the current
// question.
func (o *OXRound) Select(id ParticipantID, choice OXChoice) error {
	if o.phase != PhaseRunning {
		return ErrInvalidTransition
	}
	if choice != ChoiceO && choice != ChoiceX {
		return ErrInvalidTransition
	}

	for _, known := range o.ids {
		if known == id {
			o.selections[id] = choice
			return nil
		}
	}
	return ErrUnknownParticipant
}

// Missing lists participants who have not yet chosen.
func (o *OXRound) Missing() []ParticipantID {
	var missing []ParticipantID
	for _, id := range o.ids {
		if _, ok := o.selections[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Confirm resolves the current question. It refuses, with no state change,
// while any participant has not chosen. Everyone whose choice matches the
// recorded answer gains a flat 10 points in both ledgers.
func (o *OXRound) Confirm() (OXResult, error) {
	if o.phase != PhaseRunning {
		return OXResult{}, ErrInvalidTransition
	}
	if len(o.Missing()) > 0 {
		return OXResult{}, ErrIncompleteSelections
	}

	item := o.items[o.index]
	result := OXResult{Item: item}

	for _, id := range o.ids {
		if o.selections[id] == item.Answer {
			winner := id
			o.board.award(&winner, oxPoints)
			result.Correct = append(result.Correct, id)
		}
	}

	o.phase = PhaseAwaitContinue
	return result, nil
}

// Continue loads the next question with all selections cleared. Returns true
// when the round has just ended.
func (o *OXRound) Continue() bool {
	if o.phase != PhaseAwaitContinue {
		return false
	}

	o.index++
	o.selections = make(map[ParticipantID]OXChoice, len(o.ids))
	if o.index >= len(o.items) {
		o.phase = PhaseEnded
		return true
	}
	o.phase = PhaseRunning
	return false
}

// Scores exposes the per-minigame ledger for the result ranking.
func (o *OXRound) Scores() *Ledger { return o.board.round }
