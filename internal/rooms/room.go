package rooms

import (
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"quizarena/internal/protocol"
	"quizarena/internal/questions"
)

// Room is one quiz session: a host connection, an ordered member list, and
// the countdown state machine. All mutation happens under the room mutex, so
// each inbound event or timer tick runs to completion before the next.
type Room struct {
	Code      string
	Questions []questions.Question
	CreatedAt time.Time

	mu       sync.Mutex
	cfg      Config
	host     Sender
	players  []*Player
	phase    Phase
	timeLeft int
	tickStop chan struct{}
	endTimer *time.Timer
}

func NewRoom(code string, cfg Config, bank []questions.Question) *Room {
	return &Room{
		Code:      code,
		Questions: bank,
		CreatedAt: time.Now(),
		cfg:       cfg,
		phase:     PhaseLobby,
		timeLeft:  cfg.GameDuration,
	}
}

func (r *Room) SetHost(host Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.host = host
}

func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Room) TimeLeft() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timeLeft
}

// TimerActive reports whether the countdown ticker is armed.
func (r *Room) TimerActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tickStop != nil
}

// AddPlayer appends a member and broadcasts the full roster to everyone.
// Duplicate IDs are not rejected; later lookups resolve to the first match
// in join order.
func (r *Room) AddPlayer(state protocol.PlayerState, conn Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = append(r.players, &Player{
		ID:                state.ID,
		Name:              state.Name,
		School:            state.School,
		City:              state.City,
		Score:             state.Score,
		AnsweredQuestions: state.AnsweredQuestions,
		Finished:          state.Finished,
		conn:              conn,
	})
	r.broadcastToAllLocked(protocol.NewPlayerJoined(r.rosterLocked()))
}

// RemovePlayer drops the member with the given ID and broadcasts the new
// roster. A missing ID still triggers the broadcast.
func (r *Room) RemovePlayer(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.players[:0]
	for _, p := range r.players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.players = kept
	r.broadcastToAllLocked(protocol.NewPlayerJoined(r.rosterLocked()))
}

// Start moves the room from the lobby into a running game: the countdown is
// armed and every member is told the game began. No-op outside the lobby.
func (r *Room) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseLobby {
		return
	}
	r.phase = PhaseRunning
	r.timeLeft = r.cfg.GameDuration
	r.startTickerLocked()
	r.broadcastToAllLocked(protocol.NewGameStarted())
}

// UpdateScore overwrites a member's score (last write wins) and sends the
// host a leaderboard update. Unknown IDs are a silent no-op.
func (r *Room) UpdateScore(id string, newScore int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findLocked(id)
	if p == nil {
		return
	}
	p.Score = newScore
	r.broadcastToHostLocked(protocol.NewLeaderboardUpdate(r.rosterLocked()))
}

// FinishPlayer marks a member done with their final score. Once every member
// of a non-empty running room is finished, the end of the game is scheduled
// after a short delay so clients get a beat before results. The scheduled
// end is ignored if the room has left the running phase by the time it fires.
func (r *Room) FinishPlayer(id string, finalScore int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.findLocked(id); p != nil {
		p.Finished = true
		p.Score = finalScore
	}
	if r.phase != PhaseRunning || len(r.players) == 0 {
		return
	}
	for _, p := range r.players {
		if !p.Finished {
			return
		}
	}
	if r.endTimer != nil {
		return
	}
	r.endTimer = time.AfterFunc(r.cfg.FinishDelay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.endTimer = nil
		if r.phase == PhaseRunning {
			r.endLocked()
		}
	})
}

// Restart returns a running or ended room to the lobby: timers released,
// every member's score, answered count, and finished flag reset. No-op in
// the lobby.
func (r *Room) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseLobby {
		return
	}
	r.stopTickerLocked()
	r.stopEndTimerLocked()
	r.phase = PhaseLobby
	r.timeLeft = r.cfg.GameDuration
	for _, p := range r.players {
		p.Score = 0
		p.AnsweredQuestions = 0
		p.Finished = false
	}
}

// Shutdown releases the room's timer resources. Called when the room is
// removed from the directory; safe to call more than once.
func (r *Room) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTickerLocked()
	r.stopEndTimerLocked()
}

// Ranking returns the members sorted by score descending, ties broken by
// join order. The member list itself is left in join order.
func (r *Room) Ranking() []protocol.PlayerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rankingLocked()
}

func (r *Room) Roster() []protocol.PlayerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rosterLocked()
}

func (r *Room) startTickerLocked() {
	stop := make(chan struct{})
	r.tickStop = stop
	ticker := time.NewTicker(r.cfg.TickInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.tick()
			}
		}
	}()
}

func (r *Room) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseRunning {
		return
	}
	r.timeLeft--
	r.broadcastToHostLocked(protocol.NewTimerUpdate(r.timeLeft))
	if r.timeLeft <= 0 {
		r.endLocked()
	}
}

func (r *Room) endLocked() {
	r.stopTickerLocked()
	r.stopEndTimerLocked()
	r.phase = PhaseEnded
	r.broadcastToAllLocked(protocol.NewGameEnded(r.rankingLocked()))
}

func (r *Room) stopTickerLocked() {
	if r.tickStop != nil {
		close(r.tickStop)
		r.tickStop = nil
	}
}

func (r *Room) stopEndTimerLocked() {
	if r.endTimer != nil {
		r.endTimer.Stop()
		r.endTimer = nil
	}
}

func (r *Room) findLocked(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) rosterLocked() []protocol.PlayerState {
	roster := make([]protocol.PlayerState, 0, len(r.players))
	for _, p := range r.players {
		roster = append(roster, p.state())
	}
	return roster
}

func (r *Room) rankingLocked() []protocol.PlayerState {
	ranked := make([]*Player, len(r.players))
	copy(ranked, r.players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	states := make([]protocol.PlayerState, 0, len(ranked))
	for _, p := range ranked {
		states = append(states, p.state())
	}
	return states
}

// Fan-out is best effort: a dead or backed-up recipient never blocks the
// rest of the delivery.

func (r *Room) broadcastToAllLocked(v any) {
	data, ok := marshal(v)
	if !ok {
		return
	}
	if r.host != nil {
		r.host.TrySend(data)
	}
	for _, p := range r.players {
		if p.conn != nil {
			p.conn.TrySend(data)
		}
	}
}

func (r *Room) broadcastToHostLocked(v any) {
	data, ok := marshal(v)
	if !ok {
		return
	}
	if r.host != nil {
		r.host.TrySend(data)
	}
}

// BroadcastToPlayers fans a message out to every member, host excluded.
func (r *Room) BroadcastToPlayers(v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcastToPlayersLocked(v)
}

func (r *Room) broadcastToPlayersLocked(v any) {
	data, ok := marshal(v)
	if !ok {
		return
	}
	for _, p := range r.players {
		if p.conn != nil {
			p.conn.TrySend(data)
		}
	}
}

func marshal(v any) ([]byte, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[Rooms] Marshal error: %v\n", err)
		return nil, false
	}
	return data, true
}
