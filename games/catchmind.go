package games

import "math/rand"

// ImageAsset is one picture-guess question. Points come from the filename
// suffix convention and are resolved by the asset bank.
type ImageAsset struct {
	Path   string `json:"path"`
	Points int    `json:"points"`
}

// Catchmind question counts are bounded to this range at setup.
const (
	CatchmindMinCount = 1
	CatchmindMaxCount = 50
)

// CatchmindRound runs a linear sequence of shuffled images. Whoever calls the
// picture gets its point value; a pass still consumes the image.
type CatchmindRound struct {
	phase  Phase
	images []ImageAsset
	index  int
	total  int
	board  board
}

// NewCatchmindRound shuffles the available images and plays at most count of
// them.
func NewCatchmindRound(count int, images []ImageAsset, ids []ParticipantID, lifetime *Ledger, rng *rand.Rand) (*CatchmindRound, error) {
	if len(images) == 0 {
		return nil, ErrNoContent
	}

	total := min(count, len(images))
	if total < 1 {
		total = 1
	}

	return &CatchmindRound{
		phase:  PhaseRunning,
		images: shuffled(rng, images),
		total:  total,
		board:  newBoard(ids, lifetime),
	}, nil
}

func (c *CatchmindRound) Phase() Phase { return c.phase }

// Index returns the zero-based position of the current image.
func (c *CatchmindRound) Index() int { return c.index }

// Total returns how many images will be played.
func (c *CatchmindRound) Total() int { return c.total }

// Current returns the active image.
func (c *CatchmindRound) Current() (ImageAsset, bool) {
	if c.phase != PhaseRunning {
		return ImageAsset{}, false
	}
	return c.images[c.index], true
}

// Advance resolves the current image. A winner is awarded the image's points
// in both the round and lifetime ledgers; nil means pass. The index moves
// either way. Returns true when the round has just ended.
func (c *CatchmindRound) Advance(winner *ParticipantID) bool {
	if c.phase != PhaseRunning {
		return false
	}

	c.board.award(winner, c.images[c.index].Points)

	c.index++
	if c.index >= c.total {
		c.phase = PhaseEnded
		return true
	}
	return false
}

// Scores exposes the per-minigame ledger for the result ranking.
func (c *CatchmindRound) Scores() *Ledger { return c.board.round }
