package games

import (
	"context"
	"math/rand"
	"time"
)

// ScreenID names a display screen. The core only asks for screens by ID; what
// they look like is the presentation layer's business.
type ScreenID string

const (
	ScreenIntro          ScreenID = "intro"
	ScreenHub            ScreenID = "main-hub"
	ScreenSpeedSetup     ScreenID = "speed-setup"
	ScreenPairingDraw    ScreenID = "pairing-draw"
	ScreenSpeedHub       ScreenID = "speed-hub"
	ScreenSpeedGame      ScreenID = "speed-game"
	ScreenRoundResult    ScreenID = "round-result"
	ScreenSessionResult  ScreenID = "session-result"
	ScreenCatchmindSetup ScreenID = "catchmind-setup"
	ScreenCatchmind      ScreenID = "catchmind-game"
	ScreenPhoto          ScreenID = "photo-game"
	ScreenPhotoResult    ScreenID = "photo-result"
	ScreenSong           ScreenID = "song-game"
	ScreenSongResult     ScreenID = "song-result"
	ScreenOX             ScreenID = "ox-game"
	ScreenOXResult       ScreenID = "ox-result"
	ScreenQuizResult     ScreenID = "quiz-result"
)

// Presenter is the outbound edge to the presentation layer. Every call is
// fire-and-forget; the core never reads anything back.
type Presenter interface {
	RenderScreen(id ScreenID, state any)
	PlayCue(name string)
	SpawnEffect(name string)
	Notice(message string)
}

// ContentSource supplies normalized minigame content. Loading is the only
// latency-bearing operation in the system, awaited before a round starts.
type ContentSource interface {
	Questions(ctx context.Context) ([]QuestionItem, error)
	CatchmindImages(ctx context.Context) ([]ImageAsset, error)
	PhotoSets(ctx context.Context) ([]PhotoSet, error)
	Songs(ctx context.Context) ([]SongAsset, error)
	TrueFalseItems(ctx context.Context) ([]TrueFalseItem, error)
}

// Scope selects which ledger a manual score edit applies to.
type Scope string

const (
	ScopeLifetime Scope = "lifetime"
	ScopeSession  Scope = "session"
)

// SessionConfig carries the tunable defaults for a session.
type SessionConfig struct {
	TimerSeconds   int
	CatchmindCount int
	Rand           *rand.Rand
}

// Session owns the whole event: the roster, both score scopes, the active
// minigame engine, and the screen flow from introduction through the hub into
// rounds and results. All methods are called from a single event loop; ticks
// and operator commands are already serialized by the caller.
type Session struct {
	roster    *Roster
	content   ContentSource
	presenter Presenter
	rng       *rand.Rand

	lifetime *Ledger
	session  *Ledger

	timerSeconds   int
	catchmindCount int

	introIndex int

	questions    []QuestionItem
	pairings     []Pairing
	revealIndex  int
	pairingIndex int

	speed     *SpeedRound
	catchmind *CatchmindRound
	photo     *PhotoRound
	song      *SongRound
	ox        *OXRound
}

// NewSession builds the session context for one event.
func NewSession(roster *Roster, content ContentSource, presenter Presenter, cfg SessionConfig) *Session {
	if cfg.TimerSeconds <= 0 {
		cfg.TimerSeconds = 60
	}
	if cfg.CatchmindCount < CatchmindMinCount || cfg.CatchmindCount > CatchmindMaxCount {
		cfg.CatchmindCount = 10
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ids := roster.IDs()
	return &Session{
		roster:         roster,
		content:        content,
		presenter:      presenter,
		rng:            cfg.Rand,
		lifetime:       NewLedger(ids),
		session:        NewLedger(ids),
		timerSeconds:   cfg.TimerSeconds,
		catchmindCount: cfg.CatchmindCount,
	}
}

// Roster exposes the live roster.
func (s *Session) Roster() *Roster { return s.roster }

// Lifetime exposes the cumulative ledger.
func (s *Session) Lifetime() *Ledger { return s.lifetime }

// SessionScores exposes the speed-quiz session ledger.
func (s *Session) SessionScores() *Ledger { return s.session }

// Pairings returns the drawn pairings for the current speed session.
func (s *Session) Pairings() []Pairing { return s.pairings }

// Speed returns the active speed round, if any.
func (s *Session) Speed() *SpeedRound { return s.speed }

// StopAll deterministically stops every pending timer and discards any active
// round without folding its score, so no engine outlives an exit path.
// Idempotent; invoked on every exit and before every round start.
func (s *Session) StopAll() {
	if s.song != nil && s.song.Phase() != PhaseEnded {
		s.song.Stop()
		s.presenter.PlayCue("stop-audio")
	}
	s.speed = nil
	s.catchmind = nil
	s.photo = nil
	s.song = nil
	s.ox = nil
}

// Tick advances one second of game time for whichever engine is active and
// refreshes its screen.
func (s *Session) Tick() {
	switch {
	case s.speed != nil && s.speed.Phase() != PhaseEnded:
		if s.speed.Phase() == PhasePaused {
			// Nothing moves while paused; the screen is already current.
			return
		}
		if s.speed.Tick() {
			s.finishSpeedRound()
			return
		}
		s.renderSpeedGame()
	case s.song != nil && s.song.Phase() == PhaseRunning:
		s.song.Tick()
		s.renderSong()
	}
}

// --- introduction / hub ---

// IntroState shows one participant at a time before the event begins.
type IntroState struct {
	Index       int         `json:"index"`
	Total       int         `json:"total"`
	Participant Participant `json:"participant"`
	Last        bool        `json:"last"`
}

// StartIntroduction begins the participant reveal sequence.
func (s *Session) StartIntroduction() {
	s.introIndex = 0
	s.renderIntro()
}

// NextIntroduction advances the reveal; after the last participant it lands on
// the hub.
func (s *Session) NextIntroduction() {
	s.introIndex++
	if s.introIndex >= s.roster.Len() {
		s.ShowHub()
		return
	}
	s.renderIntro()
}

func (s *Session) renderIntro() {
	members := s.roster.Members()
	s.presenter.RenderScreen(ScreenIntro, IntroState{
		Index:       s.introIndex + 1,
		Total:       len(members),
		Participant: members[s.introIndex],
		Last:        s.introIndex == len(members)-1,
	})
}

// HubState is the main hub: cumulative standings plus the roster for edits.
type HubState struct {
	Rankings []RankedEntry `json:"rankings"`
	Members  []Participant `json:"members"`
}

// ShowHub returns to the main hub, stopping anything still running.
func (s *Session) ShowHub() {
	s.StopAll()
	s.renderHub()
}

func (s *Session) renderHub() {
	s.presenter.RenderScreen(ScreenHub, HubState{
		Rankings: Rank(s.roster, s.lifetime),
		Members:  s.roster.Members(),
	})
}

// --- roster and score management ---

// Rename changes a participant's display name everywhere at once.
func (s *Session) Rename(id ParticipantID, newName string) error {
	if err := s.roster.Rename(id, newName); err != nil {
		s.presenter.Notice(err.Error())
		return err
	}
	s.renderHub()
	return nil
}

// AdjustScore shifts a score by delta in the chosen scope, clamped.
func (s *Session) AdjustScore(scope Scope, id ParticipantID, delta int) {
	s.ledgerFor(scope).Adjust(id, delta)
	s.renderScoreboards(scope)
}

// SetScore overwrites a score in the chosen scope, clamped.
func (s *Session) SetScore(scope Scope, id ParticipantID, score int) {
	s.ledgerFor(scope).Set(id, score)
	s.renderScoreboards(scope)
}

// ResetLifetime zeroes the cumulative standings.
func (s *Session) ResetLifetime() {
	s.lifetime.Reset()
	s.renderHub()
}

func (s *Session) ledgerFor(scope Scope) *Ledger {
	if scope == ScopeSession {
		return s.session
	}
	return s.lifetime
}

func (s *Session) renderScoreboards(scope Scope) {
	if scope == ScopeSession {
		s.renderSpeedHub()
		return
	}
	s.renderHub()
}

// --- speed quiz ---

// PairingView resolves a pairing to displayable participants.
type PairingView struct {
	Number    int         `json:"number"`
	Presenter Participant `json:"presenter"`
	Guesser   Participant `json:"guesser"`
}

// SpeedSetupState carries the timer choice.
type SpeedSetupState struct {
	TimerSeconds int `json:"timerSeconds"`
}

// PairingDrawState reveals one pairing at a time.
type PairingDrawState struct {
	Pairing PairingView `json:"pairing"`
	Total   int         `json:"total"`
	Last    bool        `json:"last"`
}

// SpeedHubState is the between-rounds screen for a speed session.
type SpeedHubState struct {
	Pairings        []PairingView `json:"pairings"`
	Active          int           `json:"active"`
	SessionRankings []RankedEntry `json:"sessionRankings"`
	TimerSeconds    int           `json:"timerSeconds"`
}

// SpeedGameState is the live round screen, refreshed every tick and event.
type SpeedGameState struct {
	Pairing          PairingView  `json:"pairing"`
	Question         QuestionItem `json:"question"`
	Points           int          `json:"points"`
	Remaining        int          `json:"remaining"`
	PenaltyRemaining int          `json:"penaltyRemaining"`
	Score            int          `json:"score"`
	Phase            string       `json:"phase"`
}

// RoundResultState shows one pairing's finished round.
type RoundResultState struct {
	Pairing PairingView `json:"pairing"`
	Summary Summary     `json:"summary"`
}

// RankingState is the shared per-minigame result view.
type RankingState struct {
	Title    string        `json:"title"`
	Rankings []RankedEntry `json:"rankings"`
}

// ShowSpeedSetup opens the timer selection screen.
func (s *Session) ShowSpeedSetup() {
	s.presenter.RenderScreen(ScreenSpeedSetup, SpeedSetupState{TimerSeconds: s.timerSeconds})
}

// SetTimer stores the round length for subsequent speed rounds.
func (s *Session) SetTimer(seconds int) {
	if seconds > 0 {
		s.timerSeconds = seconds
	}
	s.ShowSpeedSetup()
}

// StartSpeedSession loads the question pool, resets session scores, draws the
// pairings, and begins the reveal. With no usable prompts the session never
// starts and the operator gets a blocking notice.
func (s *Session) StartSpeedSession(ctx context.Context) error {
	questions, err := s.content.Questions(ctx)
	if err != nil || len(questions) == 0 {
		s.presenter.Notice("No quiz prompts available. Add files to the questions folder.")
		return ErrNoContent
	}

	s.StopAll()
	s.questions = questions
	s.session.Reset()
	s.pairings = DrawPairings(s.roster, s.rng)
	s.revealIndex = 0
	s.pairingIndex = 0

	s.presenter.PlayCue("draw")
	s.renderPairingDraw()
	return nil
}

// RevealNextPairing advances the pairing reveal; after the last one it lands
// on the speed hub.
func (s *Session) RevealNextPairing() {
	s.revealIndex++
	if s.revealIndex >= len(s.pairings) {
		s.renderSpeedHub()
		return
	}
	s.renderPairingDraw()
}

func (s *Session) renderPairingDraw() {
	s.presenter.RenderScreen(ScreenPairingDraw, PairingDrawState{
		Pairing: s.pairingView(s.revealIndex),
		Total:   len(s.pairings),
		Last:    s.revealIndex == len(s.pairings)-1,
	})
}

// SelectPairing makes the given pairing the active one.
func (s *Session) SelectPairing(index int) {
	if index >= 0 && index < len(s.pairings) {
		s.pairingIndex = index
	}
	s.renderSpeedHub()
}

// NextPairing cycles the active pairing forward.
func (s *Session) NextPairing() {
	if len(s.pairings) > 0 {
		s.pairingIndex = (s.pairingIndex + 1) % len(s.pairings)
	}
	s.renderSpeedHub()
}

// PrevPairing cycles the active pairing backward.
func (s *Session) PrevPairing() {
	if len(s.pairings) > 0 {
		s.pairingIndex = (s.pairingIndex - 1 + len(s.pairings)) % len(s.pairings)
	}
	s.renderSpeedHub()
}

func (s *Session) renderSpeedHub() {
	if len(s.pairings) == 0 {
		s.renderHub()
		return
	}

	views := make([]PairingView, 0, len(s.pairings))
	for i := range s.pairings {
		views = append(views, s.pairingView(i))
	}

	s.presenter.RenderScreen(ScreenSpeedHub, SpeedHubState{
		Pairings:        views,
		Active:          s.pairingIndex,
		SessionRankings: Rank(s.roster, s.session),
		TimerSeconds:    s.timerSeconds,
	})
}

// StartSpeedRound begins a timed round for the active pairing.
func (s *Session) StartSpeedRound() error {
	if len(s.pairings) == 0 {
		s.presenter.Notice("Draw pairings before starting a round.")
		return ErrInvalidTransition
	}

	s.StopAll()
	round := NewSpeedRound(s.pairings[s.pairingIndex], s.session, s.lifetime, s.rng)
	if err := round.Start(s.timerSeconds, s.questions); err != nil {
		s.presenter.Notice("No quiz prompts available. Add files to the questions folder.")
		return err
	}
	s.speed = round

	s.presenter.PlayCue("round-start")
	s.renderSpeedGame()
	return nil
}

// MarkCorrect scores the current prompt for the active round.
func (s *Session) MarkCorrect() {
	if s.speed == nil {
		return
	}
	if s.speed.MarkCorrect() {
		s.presenter.PlayCue("correct")
		s.presenter.SpawnEffect("flash-correct")
		s.renderSpeedGame()
	}
}

// MarkWrong counts a miss and starts the penalty lockout.
func (s *Session) MarkWrong() {
	if s.speed == nil {
		return
	}
	if s.speed.MarkWrong() {
		s.presenter.PlayCue("wrong")
		s.presenter.SpawnEffect("flash-wrong")
		s.renderSpeedGame()
	}
}

// PauseRound suspends the active round (exit-confirmation path).
func (s *Session) PauseRound() {
	if s.speed != nil && s.speed.Pause() {
		s.renderSpeedGame()
	}
}

// ResumeRound continues a paused round.
func (s *Session) ResumeRound() {
	if s.speed != nil && s.speed.Resume() {
		s.renderSpeedGame()
	}
}

// ExitRound abandons whatever round is active without folding its score and
// retreats to the matching hub.
func (s *Session) ExitRound() {
	speedSession := s.speed != nil
	s.StopAll()
	if speedSession {
		s.renderSpeedHub()
		return
	}
	s.renderHub()
}

func (s *Session) finishSpeedRound() {
	summary := s.speed.End()
	s.pairingIndex = (s.pairingIndex + 1) % len(s.pairings)

	s.presenter.RenderScreen(ScreenRoundResult, RoundResultState{
		Pairing: s.pairingView(indexOfPairing(s.pairings, s.speed.Pairing())),
		Summary: summary,
	})
	s.presenter.PlayCue("round-end")
	s.presenter.SpawnEffect("confetti")
	s.speed = nil
}

// BackToSpeedHub returns from a round result to the speed hub.
func (s *Session) BackToSpeedHub() {
	s.renderSpeedHub()
}

// EndSpeedSession shows the session standings and closes the speed session.
func (s *Session) EndSpeedSession() {
	s.StopAll()
	s.presenter.RenderScreen(ScreenSessionResult, RankingState{
		Title:    "Speed quiz results",
		Rankings: Rank(s.roster, s.session),
	})
	s.presenter.SpawnEffect("confetti")
	s.pairings = nil
}

func (s *Session) renderSpeedGame() {
	if s.speed == nil {
		return
	}

	question, _ := s.speed.Current()
	s.presenter.RenderScreen(ScreenSpeedGame, SpeedGameState{
		Pairing:          s.pairingView(indexOfPairing(s.pairings, s.speed.Pairing())),
		Question:         question,
		Points:           questionPoints(question),
		Remaining:        s.speed.Remaining(),
		PenaltyRemaining: s.speed.PenaltyRemaining(),
		Score:            s.speed.Score(),
		Phase:            s.speed.Phase().String(),
	})
}

func (s *Session) pairingView(index int) PairingView {
	if index < 0 || index >= len(s.pairings) {
		return PairingView{}
	}
	pairing := s.pairings[index]
	presenter, _ := s.roster.Get(pairing.Presenter)
	guesser, _ := s.roster.Get(pairing.Guesser)
	return PairingView{
		Number:    index + 1,
		Presenter: presenter,
		Guesser:   guesser,
	}
}

func indexOfPairing(pairings []Pairing, p Pairing) int {
	for i, candidate := range pairings {
		if candidate == p {
			return i
		}
	}
	return -1
}

// --- catchmind ---

// CatchmindSetupState carries the question count choice.
type CatchmindSetupState struct {
	Count int `json:"count"`
}

// CatchmindState is the live picture-guess screen.
type CatchmindState struct {
	Index int        `json:"index"`
	Total int        `json:"total"`
	Image ImageAsset `json:"image"`
}

// ShowCatchmindSetup opens the picture-guess setup screen.
func (s *Session) ShowCatchmindSetup() {
	s.presenter.RenderScreen(ScreenCatchmindSetup, CatchmindSetupState{Count: s.catchmindCount})
}

// AdjustCatchmindCount shifts the configured question count within [1, 50].
func (s *Session) AdjustCatchmindCount(delta int) {
	s.catchmindCount += delta
	if s.catchmindCount < CatchmindMinCount {
		s.catchmindCount = CatchmindMinCount
	}
	if s.catchmindCount > CatchmindMaxCount {
		s.catchmindCount = CatchmindMaxCount
	}
	s.ShowCatchmindSetup()
}

// StartCatchmind loads the picture pool and begins the round.
func (s *Session) StartCatchmind(ctx context.Context) error {
	images, err := s.content.CatchmindImages(ctx)
	if err != nil || len(images) == 0 {
		s.presenter.Notice("No pictures available. Add images to the catchmind folder.")
		return ErrNoContent
	}

	s.StopAll()
	round, err := NewCatchmindRound(s.catchmindCount, images, s.roster.IDs(), s.lifetime, s.rng)
	if err != nil {
		s.presenter.Notice("No pictures available. Add images to the catchmind folder.")
		return err
	}
	s.catchmind = round

	s.renderCatchmind()
	return nil
}

// CatchmindAnswer resolves the current picture; nil winner means pass.
func (s *Session) CatchmindAnswer(winner *ParticipantID) {
	if s.catchmind == nil {
		return
	}

	if winner != nil {
		s.presenter.PlayCue("correct")
	}
	if s.catchmind.Advance(winner) {
		scores := s.catchmind.Scores()
		s.catchmind = nil
		s.showQuizResult("Picture quiz results", scores)
		return
	}
	s.renderCatchmind()
}

func (s *Session) renderCatchmind() {
	image, ok := s.catchmind.Current()
	if !ok {
		return
	}
	s.presenter.RenderScreen(ScreenCatchmind, CatchmindState{
		Index: s.catchmind.Index() + 1,
		Total: s.catchmind.Total(),
		Image: image,
	})
}

// --- hinted photo quiz ---

// PhotoState is the live hint-reveal screen.
type PhotoState struct {
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	HintLevel int    `json:"hintLevel"`
	Image     string `json:"image"`
	Points    int    `json:"points"`
}

// PhotoResultState shows all three hint images plus the outcome.
type PhotoResultState struct {
	Set    PhotoSet     `json:"set"`
	Winner *Participant `json:"winner,omitempty"`
	Points int          `json:"points"`
}

// StartPhotoQuiz loads the photo sets and begins the round.
func (s *Session) StartPhotoQuiz(ctx context.Context) error {
	sets, err := s.content.PhotoSets(ctx)
	if err != nil || len(sets) == 0 {
		s.presenter.Notice("No photo sets available. Use name_1/name_2/name_3 files in the pictures folder.")
		return ErrNoContent
	}

	s.StopAll()
	round, err := NewPhotoRound(sets, s.roster.IDs(), s.lifetime, s.rng)
	if err != nil {
		s.presenter.Notice("No photo sets available. Use name_1/name_2/name_3 files in the pictures folder.")
		return err
	}
	s.photo = round

	s.renderPhoto()
	return nil
}

// PhotoReveal shows the next hint image.
func (s *Session) PhotoReveal() {
	if s.photo != nil && s.photo.RevealNextHint() {
		s.presenter.PlayCue("reveal")
		s.renderPhoto()
	}
}

// PhotoAnswer resolves the current set; nil winner means pass.
func (s *Session) PhotoAnswer(winner *ParticipantID) {
	if s.photo == nil {
		return
	}

	points, ok := s.photo.Answer(winner)
	if !ok {
		return
	}

	set, _ := s.photo.Current()
	state := PhotoResultState{Set: set, Points: points}
	if winner != nil {
		s.presenter.PlayCue("correct")
		if p, found := s.roster.Get(*winner); found {
			state.Winner = &p
		}
	}
	s.presenter.RenderScreen(ScreenPhotoResult, state)
}

// PhotoContinue moves to the next photo set.
func (s *Session) PhotoContinue() {
	if s.photo == nil {
		return
	}
	if s.photo.Continue() {
		scores := s.photo.Scores()
		s.photo = nil
		s.showQuizResult("Photo quiz results", scores)
		return
	}
	s.renderPhoto()
}

func (s *Session) renderPhoto() {
	set, ok := s.photo.Current()
	if !ok {
		return
	}
	s.presenter.RenderScreen(ScreenPhoto, PhotoState{
		Index:     s.photo.Index() + 1,
		Total:     s.photo.Total(),
		HintLevel: s.photo.HintLevel(),
		Image:     set.Images[s.photo.HintLevel()-1],
		Points:    s.photo.Points(),
	})
}

// --- song quiz ---

// SongState is the live song-guess screen, refreshed every tick.
type SongState struct {
	Index   int    `json:"index"`
	Total   int    `json:"total"`
	Path    string `json:"path"`
	Elapsed int    `json:"elapsed"`
	Playing bool   `json:"playing"`
	Points  int    `json:"points"`
}

// SongResultState shows the answer plus the outcome.
type SongResultState struct {
	Title   string       `json:"title"`
	Winner  *Participant `json:"winner,omitempty"`
	Points  int          `json:"points"`
	Elapsed int          `json:"elapsed"`
}

// StartSongQuiz loads the track list and begins the round with the first
// track playing.
func (s *Session) StartSongQuiz(ctx context.Context) error {
	songs, err := s.content.Songs(ctx)
	if err != nil || len(songs) == 0 {
		s.presenter.Notice("No songs available. Add audio files to the songs folder.")
		return ErrNoContent
	}

	s.StopAll()
	round, err := NewSongRound(songs, s.roster.IDs(), s.lifetime, s.rng)
	if err != nil {
		s.presenter.Notice("No songs available. Add audio files to the songs folder.")
		return err
	}
	s.song = round

	s.presenter.PlayCue("play-track")
	s.renderSong()
	return nil
}

// SongToggle pauses or resumes playback; the elapsed counter follows.
func (s *Session) SongToggle() {
	if s.song == nil {
		return
	}
	if s.song.TogglePlayback() {
		if s.song.Playing() {
			s.presenter.PlayCue("play-track")
		} else {
			s.presenter.PlayCue("pause-track")
		}
		s.renderSong()
	}
}

// SongAnswer resolves the current track; nil winner means pass.
func (s *Session) SongAnswer(winner *ParticipantID) {
	if s.song == nil {
		return
	}

	points, elapsed, ok := s.song.Answer(winner)
	if !ok {
		return
	}
	s.presenter.PlayCue("stop-audio")

	track, _ := s.song.Current()
	state := SongResultState{Title: track.Title, Points: points, Elapsed: elapsed}
	if winner != nil {
		s.presenter.PlayCue("correct")
		if p, found := s.roster.Get(*winner); found {
			state.Winner = &p
		}
	}
	s.presenter.RenderScreen(ScreenSongResult, state)
}

// SongContinue loads the next track with playback restarted.
func (s *Session) SongContinue() {
	if s.song == nil {
		return
	}
	if s.song.Continue() {
		scores := s.song.Scores()
		s.song = nil
		s.showQuizResult("Song quiz results", scores)
		return
	}
	s.presenter.PlayCue("play-track")
	s.renderSong()
}

func (s *Session) renderSong() {
	_, ok := s.song.Current()
	if !ok {
		return
	}
	track, _ := s.song.Current()
	s.presenter.RenderScreen(ScreenSong, SongState{
		Index:   s.song.Index() + 1,
		Total:   s.song.Total(),
		Path:    track.Path,
		Elapsed: s.song.Elapsed(),
		Playing: s.song.Playing(),
		Points:  s.song.Points(),
	})
}

// --- O/X quiz ---

// OXState is the live true/false screen. Choices stay hidden; only who has
// answered is shown.
type OXState struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Question string   `json:"question"`
	Answered []string `json:"answered"`
	Missing  []string `json:"missing"`
}

// OXResultState reveals the answer and the winners for one question.
type OXResultState struct {
	Question    string        `json:"question"`
	Answer      OXChoice      `json:"answer"`
	Explanation string        `json:"explanation"`
	Correct     []Participant `json:"correct"`
	Points      int           `json:"points"`
}

// StartOXQuiz loads the true/false items and begins the round.
func (s *Session) StartOXQuiz(ctx context.Context) error {
	items, err := s.content.TrueFalseItems(ctx)
	if err != nil || len(items) == 0 {
		s.presenter.Notice("No true/false questions available.")
		return ErrNoContent
	}

	s.StopAll()
	round, err := NewOXRound(items, s.roster.IDs(), s.lifetime, s.rng)
	if err != nil {
		s.presenter.Notice("No true/false questions available.")
		return err
	}
	s.ox = round

	s.renderOX()
	return nil
}

// OXSelect records one participant's choice for the current question.
func (s *Session) OXSelect(id ParticipantID, choice OXChoice) {
	if s.ox == nil {
		return
	}
	if err := s.ox.Select(id, choice); err != nil {
		return
	}
	s.renderOX()
}

// OXConfirm resolves the current question, refusing with a visible prompt
// while anyone has not chosen.
func (s *Session) OXConfirm() {
	if s.ox == nil {
		return
	}

	result, err := s.ox.Confirm()
	if err != nil {
		s.presenter.Notice("Everyone must choose O or X first.")
		return
	}

	correct := make([]Participant, 0, len(result.Correct))
	for _, id := range result.Correct {
		if p, found := s.roster.Get(id); found {
			correct = append(correct, p)
		}
	}

	s.presenter.PlayCue("reveal")
	s.presenter.RenderScreen(ScreenOXResult, OXResultState{
		Question:    result.Item.Question,
		Answer:      result.Item.Answer,
		Explanation: result.Item.Explanation,
		Correct:     correct,
		Points:      oxPoints,
	})
}

// OXContinue loads the next question with selections cleared.
func (s *Session) OXContinue() {
	if s.ox == nil {
		return
	}
	if s.ox.Continue() {
		scores := s.ox.Scores()
		s.ox = nil
		s.showQuizResult("O/X quiz results", scores)
		return
	}
	s.renderOX()
}

func (s *Session) renderOX() {
	item, ok := s.ox.Current()
	if !ok {
		return
	}

	selections := s.ox.Selections()
	var answered, missing []string
	for _, p := range s.roster.Members() {
		if _, chose := selections[p.ID]; chose {
			answered = append(answered, p.Name)
		} else {
			missing = append(missing, p.Name)
		}
	}

	s.presenter.RenderScreen(ScreenOX, OXState{
		Index:    s.ox.Index() + 1,
		Total:    s.ox.Total(),
		Question: item.Question,
		Answered: answered,
		Missing:  missing,
	})
}

// --- shared result ---

func (s *Session) showQuizResult(title string, scores *Ledger) {
	s.presenter.RenderScreen(ScreenQuizResult, RankingState{
		Title:    title,
		Rankings: Rank(s.roster, scores),
	})
	s.presenter.PlayCue("round-end")
	s.presenter.SpawnEffect("confetti")
}
