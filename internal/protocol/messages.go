// Package protocol defines the JSON wire messages exchanged with clients.
// Messages are discriminated by a top-level "type" field; type-specific
// fields sit alongside it rather than under a payload key.
package protocol

// Inbound message types.
const (
	TypeCreateRoom      = "create_room"
	TypeJoinGame        = "join_game"
	TypeStartGame       = "start_game"
	TypeAnswerSubmitted = "answer_submitted"
	TypePlayerFinished  = "player_finished"
	TypeRestartGame     = "restart_game"
)

// Outbound message types.
const (
	TypeRoomCreated       = "room_created"
	TypePlayerJoined      = "player_joined"
	TypeGameStarted       = "game_started"
	TypeTimerUpdate       = "timer_update"
	TypeLeaderboardUpdate = "leaderboard_update"
	TypeGameEnded         = "game_ended"
	TypeError             = "error"
)

// PlayerState is a player's public state as it appears on the wire, both in
// the join_game request and in roster broadcasts.
type PlayerState struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	School            string `json:"school"`
	City              string `json:"city"`
	Score             int    `json:"score"`
	AnsweredQuestions int    `json:"answeredQuestions"`
	Finished          bool   `json:"finished"`
}

// ClientMessage is the envelope for every inbound message.
type ClientMessage struct {
	Type       string       `json:"type"`
	Player     *PlayerState `json:"player,omitempty"`
	PlayerID   string       `json:"playerId,omitempty"`
	IsCorrect  bool         `json:"isCorrect,omitempty"`
	NewScore   int          `json:"newScore,omitempty"`
	FinalScore int          `json:"finalScore,omitempty"`
}

type RoomCreated struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

func NewRoomCreated(code string) RoomCreated {
	return RoomCreated{Type: TypeRoomCreated, RoomCode: code}
}

// PlayerJoined carries the full roster; it is reused for both joins and
// leaves, so an empty roster is valid and must serialize as [].
type PlayerJoined struct {
	Type    string        `json:"type"`
	Players []PlayerState `json:"players"`
}

func NewPlayerJoined(players []PlayerState) PlayerJoined {
	if players == nil {
		players = []PlayerState{}
	}
	return PlayerJoined{Type: TypePlayerJoined, Players: players}
}

type GameStarted struct {
	Type string `json:"type"`
}

func NewGameStarted() GameStarted {
	return GameStarted{Type: TypeGameStarted}
}

type TimerUpdate struct {
	Type     string `json:"type"`
	TimeLeft int    `json:"timeLeft"`
}

func NewTimerUpdate(timeLeft int) TimerUpdate {
	return TimerUpdate{Type: TypeTimerUpdate, TimeLeft: timeLeft}
}

type LeaderboardUpdate struct {
	Type    string        `json:"type"`
	Players []PlayerState `json:"players"`
}

func NewLeaderboardUpdate(players []PlayerState) LeaderboardUpdate {
	if players == nil {
		players = []PlayerState{}
	}
	return LeaderboardUpdate{Type: TypeLeaderboardUpdate, Players: players}
}

type FinalResults struct {
	Players []PlayerState `json:"players"`
}

type GameEnded struct {
	Type         string       `json:"type"`
	FinalResults FinalResults `json:"finalResults"`
}

func NewGameEnded(players []PlayerState) GameEnded {
	if players == nil {
		players = []PlayerState{}
	}
	return GameEnded{Type: TypeGameEnded, FinalResults: FinalResults{Players: players}}
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}
