// Speed-Quiz host hub
//
// One operator drives one display for one live event. The display connects
// over a websocket; every button press arrives as a command message. A 1 Hz
// ticker drives game time. Commands and ticks are consumed by a single run()
// loop, so an input event is always ordered strictly before or after a tick,
// never interleaved with one.
//
// The hub implements games.Presenter: the core asks for screens, audio cues,
// and visual effects by name, fire-and-forget, and the hub broadcasts them to
// every connected display. Late-joining displays receive the last rendered
// screen on connect.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/iniiswil/speed-quiz/games"
)

// ClientMessage is an operator command from the display.
type ClientMessage struct {
	Type        string `json:"type"`
	Seconds     int    `json:"seconds,omitempty"`     // set_timer
	Delta       int    `json:"delta,omitempty"`       // adjust_count / adjust_score
	Index       int    `json:"index,omitempty"`       // select_pairing
	Participant string `json:"participant,omitempty"` // winner / selector / edit target
	Choice      string `json:"choice,omitempty"`      // ox_select: "O" or "X"
	Name        string `json:"name,omitempty"`        // rename
	Scope       string `json:"scope,omitempty"`       // adjust_score / set_score
	Score       *int   `json:"score,omitempty"`       // set_score
	Pass        bool   `json:"pass,omitempty"`        // answer with no winner
}

// RenderMessage asks the display to show a screen with the given state.
type RenderMessage struct {
	Type   string         `json:"type"` // "render"
	Screen games.ScreenID `json:"screen"`
	State  any            `json:"state"`
}

// CueMessage names an audio cue to play.
type CueMessage struct {
	Type string `json:"type"` // "cue"
	Name string `json:"name"`
}

// EffectMessage names a transient visual effect to spawn.
type EffectMessage struct {
	Type string `json:"type"` // "effect"
	Name string `json:"name"`
}

// NoticeMessage is a blocking operator-visible notice.
type NoticeMessage struct {
	Type    string `json:"type"` // "notice"
	Message string `json:"message"`
}

type Client struct {
	conn *websocket.Conn
	send chan any
}

type Hub struct {
	cfg     *Config
	session *games.Session
	ctx     context.Context

	clients  map[*Client]bool
	register chan *Client
	unreg    chan *Client
	commands chan ClientMessage
	done     chan struct{}

	lastRender *RenderMessage
}

func newHub(cfg *Config) *Hub {
	return &Hub{
		cfg:      cfg,
		clients:  make(map[*Client]bool),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		commands: make(chan ClientMessage, 16),
		done:     make(chan struct{}),
	}
}

// setSession wires the session after construction; the session needs the hub
// as its Presenter and the hub needs the session for dispatch.
func (h *Hub) setSession(session *games.Session) {
	h.session = session
}

// run serializes everything the core sees onto one timeline. Closing done on
// exit unblocks any client pump still trying to hand the hub a message.
func (h *Hub) run(ctx context.Context) {
	h.ctx = ctx
	defer close(h.done)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.session.StopAll()
			for c := range h.clients {
				close(c.send)
				_ = c.conn.Close()
				delete(h.clients, c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			if h.lastRender != nil {
				c.send <- *h.lastRender
			}
			logf(h.cfg, "HUB: Display connected (%d active)", len(h.clients))

		case c := <-h.unreg:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			logf(h.cfg, "HUB: Display disconnected (%d active)", len(h.clients))

		case <-ticker.C:
			h.session.Tick()

		case msg := <-h.commands:
			h.dispatch(msg)
		}
	}
}

// dispatch maps an operator command to the matching session call. Unknown or
// currently-invalid commands are absorbed: the operator can always retreat to
// the hub and pick another activity.
func (h *Hub) dispatch(msg ClientMessage) {
	s := h.session

	switch msg.Type {
	case "start_intro":
		s.StartIntroduction()
	case "next_intro":
		s.NextIntroduction()
	case "hub":
		s.ShowHub()

	case "rename":
		_ = s.Rename(h.participantID(msg), msg.Name)
	case "adjust_score":
		s.AdjustScore(games.Scope(msg.Scope), h.participantID(msg), msg.Delta)
	case "set_score":
		if msg.Score != nil {
			s.SetScore(games.Scope(msg.Scope), h.participantID(msg), *msg.Score)
		}
	case "reset_scores":
		s.ResetLifetime()

	case "speed_setup":
		s.ShowSpeedSetup()
	case "set_timer":
		s.SetTimer(msg.Seconds)
	case "start_speed_session":
		_ = s.StartSpeedSession(h.ctx)
	case "reveal_pairing":
		s.RevealNextPairing()
	case "select_pairing":
		s.SelectPairing(msg.Index)
	case "next_pairing":
		s.NextPairing()
	case "prev_pairing":
		s.PrevPairing()
	case "start_round":
		_ = s.StartSpeedRound()
	case "mark_correct":
		s.MarkCorrect()
	case "mark_wrong":
		s.MarkWrong()
	case "pause":
		s.PauseRound()
	case "resume":
		s.ResumeRound()
	case "exit_round":
		s.ExitRound()
	case "back_to_hub":
		s.BackToSpeedHub()
	case "end_speed_session":
		s.EndSpeedSession()

	case "catchmind_setup":
		s.ShowCatchmindSetup()
	case "adjust_count":
		s.AdjustCatchmindCount(msg.Delta)
	case "start_catchmind":
		_ = s.StartCatchmind(h.ctx)
	case "catchmind_answer":
		s.CatchmindAnswer(h.winner(msg))

	case "start_photo":
		_ = s.StartPhotoQuiz(h.ctx)
	case "photo_hint":
		s.PhotoReveal()
	case "photo_answer":
		s.PhotoAnswer(h.winner(msg))
	case "photo_continue":
		s.PhotoContinue()

	case "start_song":
		_ = s.StartSongQuiz(h.ctx)
	case "song_toggle":
		s.SongToggle()
	case "song_answer":
		s.SongAnswer(h.winner(msg))
	case "song_continue":
		s.SongContinue()

	case "start_ox":
		_ = s.StartOXQuiz(h.ctx)
	case "ox_select":
		s.OXSelect(h.participantID(msg), games.OXChoice(msg.Choice))
	case "ox_confirm":
		s.OXConfirm()
	case "ox_continue":
		s.OXContinue()

	default:
		// ignore unknown types
	}
}

func (h *Hub) participantID(msg ClientMessage) games.ParticipantID {
	return games.ParticipantID(msg.Participant)
}

// winner resolves an answer command to a participant, or nil on pass.
func (h *Hub) winner(msg ClientMessage) *games.ParticipantID {
	if msg.Pass || msg.Participant == "" {
		return nil
	}
	id := games.ParticipantID(msg.Participant)
	if _, ok := h.session.Roster().Get(id); !ok {
		return nil
	}
	return &id
}

// --- games.Presenter ---

// RenderScreen broadcasts a screen change; the latest one is replayed to
// displays that connect afterwards.
func (h *Hub) RenderScreen(id games.ScreenID, state any) {
	msg := RenderMessage{
		Type:   "render",
		Screen: id,
		State:  state,
	}
	h.lastRender = &msg
	h.broadcast(msg)
}

func (h *Hub) PlayCue(name string) {
	h.broadcast(CueMessage{Type: "cue", Name: name})
}

func (h *Hub) SpawnEffect(name string) {
	h.broadcast(EffectMessage{Type: "effect", Name: name})
}

func (h *Hub) Notice(message string) {
	h.broadcast(NoticeMessage{Type: "notice", Message: message})
}

// broadcast is only called from the run goroutine, so the client map needs no
// locking. Slow displays are dropped rather than allowed to stall the event.
func (h *Hub) broadcast(msg any) {
	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// --- websocket plumbing ---

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWS(cfg *Config, hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "HUB: upgrade error: %v", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan any, 32),
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

// forwardCommand hands an operator command to the run loop, giving up once the
// hub has shut down.
func (h *Hub) forwardCommand(msg ClientMessage) bool {
	select {
	case h.commands <- msg:
		return true
	case <-h.done:
		return false
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		if !h.forwardCommand(msg) {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
