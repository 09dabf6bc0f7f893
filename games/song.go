package games

import "math/rand"

// SongAsset is one song-guess track; the title doubles as the answer.
type SongAsset struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// songPoints is a step function of how long the track has played before the
// correct call. Boundaries are half-open with the lower bound belonging to the
// next tier: 19s is still 50, 20s is 40.
func songPoints(elapsedSeconds int) int {
	switch {
	case elapsedSeconds < 20:
		return 50
	case elapsedSeconds < 40:
		return 40
	case elapsedSeconds < 60:
		return 30
	case elapsedSeconds < 80:
		return 20
	default:
		return 10
	}
}

// SongRound is the song-guess minigame. Playback starts automatically per
// track; the elapsed counter accrues only while the track is playing, so
// toggling playback also suspends the score decay. Answers resolve into
// AwaitContinue so the result view can show the title.
type SongRound struct {
	phase   Phase
	songs   []SongAsset
	index   int
	elapsed int
	playing bool
	board   board
}

// NewSongRound shuffles the track list and starts the first track playing.
func NewSongRound(songs []SongAsset, ids []ParticipantID, lifetime *Ledger, rng *rand.Rand) (*SongRound, error) {
	if len(songs) == 0 {
		return nil, ErrNoContent
	}

	return &SongRound{
		phase:   PhaseRunning,
		songs:   shuffled(rng, songs),
		playing: true,
		board:   newBoard(ids, lifetime),
	}, nil
}

func (s *SongRound) Phase() Phase { return s.phase }

// Index returns the zero-based position of the current track.
func (s *SongRound) Index() int { return s.index }

// Total returns the number of tracks in play.
func (s *SongRound) Total() int { return len(s.songs) }

// Elapsed returns how many seconds of the current track have played.
func (s *SongRound) Elapsed() int { return s.elapsed }

// Playing reports whether playback (and therefore the counter) is running.
func (s *SongRound) Playing() bool { return s.playing }

// Points returns the award for a correct call right now.
func (s *SongRound) Points() int { return songPoints(s.elapsed) }

// Current returns the active track.
func (s *SongRound) Current() (SongAsset, bool) {
	if s.phase != PhaseRunning && s.phase != PhaseAwaitContinue {
		return SongAsset{}, false
	}
	return s.songs[s.index], true
}

// Tick advances the elapsed counter by one second while the track is playing.
func (s *SongRound) Tick() {
	if s.phase == PhaseRunning && s.playing {
		s.elapsed++
	}
}

// TogglePlayback pauses or resumes the track. Resume continues accrual from
// where it stopped.
func (s *SongRound) TogglePlayback() bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.playing = !s.playing
	return true
}

// Answer stops playback and the counter, awards the tier points to the winner
// (nil means pass), and waits for an explicit Continue. Returns the awarded
// points and the elapsed seconds at the moment of the call.
func (s *SongRound) Answer(winner *ParticipantID) (points, elapsed int, ok bool) {
	if s.phase != PhaseRunning {
		return 0, 0, false
	}

	elapsed = s.elapsed
	s.playing = false
	s.phase = PhaseAwaitContinue

	if winner == nil {
		return 0, elapsed, true
	}

	points = songPoints(elapsed)
	s.board.award(winner, points)
	return points, elapsed, true
}

// Continue loads the next track with the counter reset and playback started.
// Returns true when the round has just ended.
func (s *SongRound) Continue() bool {
	if s.phase != PhaseAwaitContinue {
		return false
	}

	s.index++
	if s.index >= len(s.songs) {
		s.phase = PhaseEnded
		return true
	}

	s.elapsed = 0
	s.playing = true
	s.phase = PhaseRunning
	return false
}

// Stop halts playback and the counter on an exit path.
func (s *SongRound) Stop() {
	s.playing = false
	s.phase = PhaseEnded
}

// Scores exposes the per-minigame ledger for the result ranking.
func (s *SongRound) Scores() *Ledger { return s.board.round }
