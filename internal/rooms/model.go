package rooms

import (
	"time"

	"quizarena/internal/protocol"
)

// Phase is a room's coarse game state.
type Phase string

const (
	PhaseLobby   = Phase("lobby")
	PhaseRunning = Phase("running")
	PhaseEnded   = Phase("ended")
)

// Sender delivers one serialized message to a connection. Delivery is best
// effort: false means the recipient is gone or backed up, and the caller
// moves on. Rooms borrow senders for delivery only; they never own the
// underlying connection.
type Sender interface {
	TrySend(data []byte) bool
}

type Config struct {
	GameDuration int // seconds
	FinishDelay  time.Duration
	TickInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		GameDuration: 300,
		FinishDelay:  2 * time.Second,
		TickInterval: time.Second,
	}
}

// Player is one room member. Join order is preserved in the room's member
// list and breaks score ties in the final ranking.
type Player struct {
	ID                string
	Name              string
	School            string
	City              string
	Score             int
	AnsweredQuestions int
	Finished          bool

	conn Sender
}

func (p *Player) state() protocol.PlayerState {
	return protocol.PlayerState{
		ID:                p.ID,
		Name:              p.Name,
		School:            p.School,
		City:              p.City,
		Score:             p.Score,
		AnsweredQuestions: p.AnsweredQuestions,
		Finished:          p.Finished,
	}
}
